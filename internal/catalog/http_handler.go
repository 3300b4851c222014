package catalog

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"libcatalog/internal/httpx"
	"libcatalog/internal/render"
)

type HTTPHandler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHTTPHandler(svc *Service, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, logger: logger}
}

// Page handles GET /. A failed pass still returns the page, carrying the
// error block, with 502.
func (h *HTTPHandler) Page(w http.ResponseWriter, r *http.Request) {
	page, out := h.svc.Page(r.Context())

	var buf bytes.Buffer
	if _, err := page.WriteTo(&buf); err != nil {
		h.logger.Error("write catalog page", zap.String("request_id", httpx.RequestIDFrom(r)), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if out.State == render.StateError {
		status = http.StatusBadGateway
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Libraries handles GET /api/libraries
func (h *HTTPHandler) Libraries(w http.ResponseWriter, r *http.Request) {
	view, out := h.svc.View(r.Context())
	if out.State == render.StateError {
		httpx.JSONError(w, r, http.StatusBadGateway, "CATALOG_UNAVAILABLE", view.Error.Message, []httpx.ErrorDetail{
			{Field: "source", Message: view.Error.Hint},
		})
		return
	}

	httpx.JSONSuccess(w, r, view.Libraries, map[string]interface{}{
		"total":      out.Stats.Total,
		"total_size": out.Stats.TotalSize,
		"rendered":   out.Rendered,
		"skipped":    out.Skipped,
		"empty":      view.Empty,
	})
}

// Stylesheet handles GET /assets/catalog.css
func (h *HTTPHandler) Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write([]byte(render.Stylesheet))
}
