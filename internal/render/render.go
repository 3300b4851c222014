// Package render runs the catalog render pass: fetch the catalog document,
// validate and normalize its records, and hand one display unit per record to
// a Container while reporting progress through a StatusArea.
package render

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"libcatalog/internal/library"
)

//go:generate mockgen -destination=mock_fetcher_test.go -package=render libcatalog/internal/render Fetcher

var ErrFetch = errors.New("could not load catalog")

type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// Container receives the display units of a pass, in display order.
type Container interface {
	SetStats(stats library.Stats)
	Append(rec library.Record)
	// AppendEmpty adds the placeholder shown when no record was displayable.
	AppendEmpty()
}

type StatusArea interface {
	ShowLoading()
	ShowError(block ErrorBlock)
	Hide()
}

type ErrorBlock struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Hint    string `json:"hint"`
	Example string `json:"example"`
}

type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Outcome struct {
	State    State
	Rendered int
	Skipped  int
	Stats    library.Stats
	Err      error
}

type Options struct {
	// Strict requires download and filename on every record.
	Strict bool
	// SourceName is the document name quoted in the remediation hint.
	SourceName string
}

const exampleDocument = `[
  {
    "ID": "0",
    "name": "Library Name",
    "filename": "library.jar",
    "download": "./Libs/library.jar",
    "documentation": "./docs/library.html",
    "description": "Description here",
    "version": "2.1",
    "size": "45 KB",
    "javaVersion": "Java 8+",
    "tags": ["tag1", "tag2"],
    "features": ["Thread-safe", "Zero dependencies"]
  }
]`

type Renderer struct {
	fetcher Fetcher
	logger  *zap.Logger
	opts    Options
}

func NewRenderer(fetcher Fetcher, logger *zap.Logger, opts Options) *Renderer {
	if opts.SourceName == "" {
		opts.SourceName = "libs.json"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{fetcher: fetcher, logger: logger, opts: opts}
}

// Render performs one complete pass. It never retries; a fatal error leaves
// container untouched and shows an error block in status.
func (r *Renderer) Render(ctx context.Context, source string, container Container, status StatusArea) Outcome {
	status.ShowLoading()

	body, err := r.fetcher.Fetch(ctx, source)
	if err != nil {
		return r.fail(status, source, fmt.Errorf("%w: %w", ErrFetch, err))
	}

	raws, err := library.Decode(body)
	if err != nil {
		return r.fail(status, source, err)
	}

	out := Outcome{Stats: library.ComputeStats(raws)}
	container.SetStats(out.Stats)

	for pos, raw := range library.SortByID(raws) {
		rec, err := library.Normalize(raw, r.opts.Strict)
		if err != nil {
			out.Skipped++
			r.logger.Info("skipping library record",
				zap.Int("position", pos),
				zap.String("id", raw.ID()),
				zap.String("name", raw.Name()),
				zap.Error(err),
			)
			continue
		}
		container.Append(rec)
		out.Rendered++
	}

	if out.Rendered == 0 {
		container.AppendEmpty()
	}

	status.Hide()
	out.State = StateSuccess

	r.logger.Debug("catalog rendered",
		zap.String("source", source),
		zap.Int("rendered", out.Rendered),
		zap.Int("skipped", out.Skipped),
		zap.String("total_size", out.Stats.TotalSize),
	)
	return out
}

func (r *Renderer) fail(status StatusArea, source string, err error) Outcome {
	r.logger.Error("error loading libraries", zap.String("source", source), zap.Error(err))
	status.ShowError(ErrorBlock{
		Title:   "Error loading libraries",
		Message: err.Error(),
		Hint:    fmt.Sprintf("Please check if %s exists and is valid JSON.", r.opts.SourceName),
		Example: exampleDocument,
	})
	return Outcome{State: StateError, Err: err}
}
