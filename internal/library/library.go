package library

import (
	"errors"
)

// Fallback values applied when an optional field is absent.
const (
	DefaultID          = "N/A"
	DefaultDescription = "No description available."
	DefaultVersion     = "1.0"
	DefaultSize        = "Unknown size"
	DefaultJavaVersion = "Java 8+"
)

var (
	ErrMissingName     = errors.New("missing name")
	ErrMissingDownload = errors.New("missing download")
	ErrMissingFilename = errors.New("missing filename")
)

// Raw is one undecoded element of the catalog array. A nil Raw stands for an
// element that was not a JSON object.
type Raw map[string]any

// ID returns the raw identifier text, honoring the legacy "ID" key.
func (r Raw) ID() string {
	id, _ := text(r, "id", "ID")
	return id
}

func (r Raw) Name() string {
	name, _ := text(r, "name")
	return name
}

// Record is a fully normalized library entry, ready to be displayed.
type Record struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Version       string   `json:"version"`
	Size          string   `json:"size"`
	JavaVersion   string   `json:"javaVersion"`
	Tags          []string `json:"tags,omitempty"`
	Features      []string `json:"features,omitempty"`
	Download      string   `json:"download"`
	Filename      string   `json:"filename"`
	Documentation string   `json:"documentation,omitempty"`
	Fallbacks     []string `json:"fallbacks,omitempty"`
}

type Stats struct {
	Total       int     `json:"total"`
	TotalSizeKB float64 `json:"total_size_kb"`
	TotalSize   string  `json:"total_size"`
}
