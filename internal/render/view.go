package render

import "libcatalog/internal/library"

// View is the JSON sink: the same display units as Page, as a view model.
type View struct {
	Stats     library.Stats    `json:"stats"`
	Libraries []library.Record `json:"libraries"`
	Empty     bool             `json:"empty"`
	Loading   bool             `json:"-"`
	Error     *ErrorBlock      `json:"error,omitempty"`
}

func NewView() *View {
	return &View{Libraries: []library.Record{}}
}

func (v *View) SetStats(stats library.Stats) { v.Stats = stats }

func (v *View) Append(rec library.Record) { v.Libraries = append(v.Libraries, rec) }

func (v *View) AppendEmpty() { v.Empty = true }

func (v *View) ShowLoading() { v.Loading = true }

func (v *View) ShowError(block ErrorBlock) {
	v.Loading = false
	v.Error = &block
}

func (v *View) Hide() { v.Loading = false }
