package render

import (
	"bytes"
	"html/template"
	"io"

	"libcatalog/internal/library"
)

// Page is the HTML sink: it is both the grid container and the loading
// region of a single catalog page.
type Page struct {
	Title    string
	Stats    library.Stats
	StatsSet bool
	Units    []library.Record
	Empty    bool
	Loading  bool
	Error    *ErrorBlock
}

func NewPage(title string) *Page {
	return &Page{Title: title}
}

func (p *Page) SetStats(stats library.Stats) {
	p.Stats = stats
	p.StatsSet = true
}

func (p *Page) Append(rec library.Record) {
	p.Units = append(p.Units, rec)
}

func (p *Page) AppendEmpty() {
	p.Empty = true
}

func (p *Page) ShowLoading() {
	p.Loading = true
	p.Error = nil
}

func (p *Page) ShowError(block ErrorBlock) {
	p.Loading = false
	p.Error = &block
}

func (p *Page) Hide() {
	p.Loading = false
}

// StatusHidden reports whether the loading region has nothing to show.
func (p *Page) StatusHidden() bool {
	return !p.Loading && p.Error == nil
}

// WriteTo renders the whole page; nothing is written if the template fails.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/assets/catalog.css">
</head>
<body>
  <header class="page-header">
    <h1>{{.Title}}</h1>
    <div class="stats">
      <div class="stat"><span id="totalLibs">{{if .StatsSet}}{{.Stats.Total}}{{else}}-{{end}}</span> libraries</div>
      <div class="stat"><span id="totalSize">{{if .StatsSet}}{{.Stats.TotalSize}}{{else}}-{{end}}</span> total</div>
    </div>
  </header>
  <main>
    <div class="loading"{{if .StatusHidden}} hidden{{end}}>
      {{- with .Error}}
      <div class="error-block">
        <h3>{{.Title}}</h3>
        <p class="error-message">{{.Message}}</p>
        <p class="error-hint">{{.Hint}}</p>
        <pre class="error-example">{{.Example}}</pre>
      </div>
      {{- else}}
      <p>Loading libraries...</p>
      {{- end}}
    </div>
    <div class="libraries-grid">
      {{- range .Units}}
      {{template "card" .}}
      {{- end}}
      {{- if .Empty}}
      <div class="no-libraries">
        <h3>No libraries found</h3>
        <p>The catalog does not list any downloadable library yet.</p>
      </div>
      {{- end}}
    </div>
  </main>
</body>
</html>
{{define "card"}}<div class="library-card">
        <div class="lib-header">
          <h3 class="lib-name">{{.Name}}</h3>
          <span class="lib-id">ID: {{.ID}}</span>
        </div>
        <p class="lib-desc">{{.Description}}</p>
        {{- if .Tags}}
        <div class="lib-tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
        {{- end}}
        <div class="lib-info">
          <span class="lib-version">v{{.Version}}</span>
          <span class="lib-size">{{.Size}}</span>
          <span class="lib-runtime">{{.JavaVersion}}</span>
        </div>
        {{- if .Features}}
        <ul class="lib-features">{{range .Features}}<li>{{.}}</li>{{end}}</ul>
        {{- end}}
        <div class="lib-actions">
          <a href="{{.Download}}" class="download-btn" download="{{.Filename}}">Download {{.Filename}}</a>
          {{- if .Documentation}}
          <a href="{{.Documentation}}" class="docs-btn" target="_blank" rel="noopener">Documentation</a>
          {{- end}}
        </div>
      </div>{{end}}`

// Stylesheet is served alongside the page so that the default
// Content-Security-Policy does not have to allow inline styles.
const Stylesheet = `body { margin: 0; font-family: system-ui, sans-serif; background: #101418; color: #e6e6e6; }
.page-header { padding: 24px; border-bottom: 1px solid #2a3038; }
.stats { display: flex; gap: 24px; color: #9aa4ad; }
.stat span { color: #ffffff; font-weight: 600; }
main { padding: 24px; }
.loading { text-align: center; padding: 20px; }
.error-block { color: #ff6b6b; text-align: left; max-width: 720px; margin: 0 auto; }
.error-example { background: #1a1f26; color: #e6e6e6; padding: 12px; overflow-x: auto; }
.libraries-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 16px; }
.library-card { background: #1a1f26; border: 1px solid #2a3038; border-radius: 8px; padding: 16px; }
.lib-header { display: flex; justify-content: space-between; align-items: baseline; }
.lib-id { color: #9aa4ad; font-size: 0.85em; }
.lib-tags { display: flex; flex-wrap: wrap; gap: 6px; margin: 8px 0; }
.tag { background: #24415f; color: #9fd0ff; border-radius: 10px; padding: 2px 8px; font-size: 0.8em; }
.lib-info { display: flex; gap: 12px; color: #9aa4ad; font-size: 0.9em; margin: 8px 0; }
.lib-features { list-style: none; padding: 0; }
.lib-features li::before { content: "\2713  "; color: #4caf50; }
.lib-actions { display: flex; gap: 8px; margin-top: 12px; }
.download-btn, .docs-btn { padding: 8px 12px; border-radius: 6px; text-decoration: none; color: #ffffff; }
.download-btn { background: #2e7d32; }
.docs-btn { background: #37474f; }
.no-libraries { grid-column: 1 / -1; text-align: center; color: #9aa4ad; }
`
