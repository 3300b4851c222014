package catalog

import (
	"context"

	"libcatalog/internal/render"
)

// Service starts one render pass per page load against a fixed source.
type Service struct {
	renderer *render.Renderer
	source   string
	title    string
}

func NewService(renderer *render.Renderer, source, title string) *Service {
	return &Service{renderer: renderer, source: source, title: title}
}

// Page renders the catalog into a fresh HTML page.
func (s *Service) Page(ctx context.Context) (*render.Page, render.Outcome) {
	page := render.NewPage(s.title)
	out := s.renderer.Render(ctx, s.source, page, page)
	return page, out
}

// View renders the catalog into a fresh JSON view model.
func (s *Service) View(ctx context.Context) (*render.View, render.Outcome) {
	view := render.NewView()
	out := s.renderer.Render(ctx, s.source, view, view)
	return view, out
}
