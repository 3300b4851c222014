package library

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Normalize maps a raw catalog element onto a Record, applying the fallback
// defaults and the legacy aliases (desc, Download, ID). In strict mode both
// download and filename are required; otherwise a missing filename becomes
// "<name>.jar". The returned error is one of the ErrMissing* sentinels.
func Normalize(raw Raw, strict bool) (Record, error) {
	name, ok := text(raw, "name")
	if !ok {
		return Record{}, ErrMissingName
	}
	download, ok := text(raw, "download", "Download")
	if !ok {
		return Record{}, ErrMissingDownload
	}

	rec := Record{
		Name:     name,
		Download: download,
		Tags:     list(raw, "tags"),
		Features: list(raw, "features"),
	}
	rec.Documentation, _ = text(raw, "documentation")

	filename, ok := text(raw, "filename")
	if !ok {
		if strict {
			return Record{}, ErrMissingFilename
		}
		filename = name + ".jar"
		rec.Fallbacks = append(rec.Fallbacks, "filename")
	}
	rec.Filename = filename

	rec.ID = rec.fallback(raw, "id", DefaultID, "id", "ID")
	rec.Description = rec.fallback(raw, "description", DefaultDescription, "description", "desc")
	rec.Version = rec.fallback(raw, "version", DefaultVersion, "version")
	rec.Size = rec.fallback(raw, "size", DefaultSize, "size")
	rec.JavaVersion = rec.fallback(raw, "javaVersion", DefaultJavaVersion, "javaVersion")

	return rec, nil
}

func (r *Record) fallback(raw Raw, field, def string, keys ...string) string {
	if v, ok := text(raw, keys...); ok {
		return v
	}
	r.Fallbacks = append(r.Fallbacks, field)
	return def
}

// text returns the first non-blank scalar found under keys.
func text(raw Raw, keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := scalar(raw[k]); ok {
			return s, true
		}
	}
	return "", false
}

func scalar(v any) (string, bool) {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func list(raw Raw, key string) []string {
	items, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := scalar(item); ok {
			out = append(out, s)
		}
	}
	return out
}
