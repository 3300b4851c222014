package library

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var (
	ErrInvalidJSON = errors.New("catalog is not valid JSON")
	ErrNotArray    = errors.New("expected an array of library records")
)

// UseNumber keeps numeric ids and versions in their original textual form.
var catalogJSON = jsoniter.Config{
	UseNumber: true,
}.Froze()

// Decode parses a catalog document. The top level must be a JSON array;
// elements that are not objects are kept as nil so that positions survive.
func Decode(body []byte) ([]Raw, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidJSON)
	}

	// Unmarshal alone lets malformed numbers such as 01 or 1. through.
	if !catalogJSON.Valid(body) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, syntaxError(body))
	}

	var doc any
	if err := catalogJSON.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w, got %s", ErrNotArray, kindOf(doc))
	}

	raws := make([]Raw, len(items))
	for i, item := range items {
		if obj, ok := item.(map[string]any); ok {
			raws[i] = Raw(obj)
		}
	}
	return raws, nil
}

// syntaxError reports where the document stops being JSON.
func syntaxError(body []byte) string {
	iter := catalogJSON.BorrowIterator(body)
	defer catalogJSON.ReturnIterator(iter)

	iter.Skip()
	switch {
	case iter.Error == nil:
		return "malformed value"
	case errors.Is(iter.Error, io.EOF):
		return "unexpected end of JSON input"
	default:
		return iter.Error.Error()
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}
