package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// SampleCatalog is a small libs.json with one record of every kind: complete,
// minimal, missing a name and missing a filename.
const SampleCatalog = `[
  {
    "ID": "2",
    "name": "Json Toolkit",
    "filename": "json-toolkit.jar",
    "download": "./Libs/json-toolkit.jar",
    "documentation": "./docs/json-toolkit.html",
    "description": "Streaming JSON reader and writer",
    "version": "2.1",
    "size": "45 KB",
    "javaVersion": "Java 11+",
    "tags": ["json", "io"],
    "features": ["Thread-safe", "Zero dependencies"]
  },
  {"ID": "1", "name": "Tiny Logger", "filename": "tiny-logger.jar", "download": "./Libs/tiny-logger.jar", "size": "2 MB"},
  {"ID": "3", "filename": "ghost.jar", "download": "./Libs/ghost.jar"},
  {"ID": "0", "name": "Half Done", "download": "./Libs/half.jar"}
]`

// WriteSite creates a site directory holding libs.json with the given body.
func WriteSite(t testing.TB, catalog string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "libs.json"), []byte(catalog), 0644); err != nil {
		t.Fatalf("write libs.json: %v", err)
	}
	return dir
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
	Raw    []byte
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 && result.Header.Get("Content-Type") == "application/json" {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
		Raw:    bodyBytes,
	}
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

// AssertResponseBody checks if the response body contains expected field
func AssertResponseBody(t interface {
	Errorf(format string, args ...any)
}, body map[string]interface{}, key string, expectedValue interface{}) {
	value, ok := body[key]
	if !ok {
		t.Errorf("response body missing key %q", key)
		return
	}
	if value != expectedValue {
		t.Errorf("got %v for key %q, want %v", value, key, expectedValue)
	}
}
