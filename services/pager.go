package services

import "bikeshare/models"

// Pager walks a view in fixed-size windows.
type Pager struct {
	view   models.View
	size   int
	offset int
}

// NewPager creates a Pager; sizes below 1 are treated as 1.
func NewPager(view models.View, pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Pager{view: view, size: pageSize}
}

// Next returns the next window. ok is false once the view is exhausted.
func (p *Pager) Next() (w models.Window, ok bool) {
	if p.offset >= p.view.Len() {
		return models.Window{}, false
	}
	w = p.view.Window(p.offset, p.size)
	p.offset = w.End
	return w, true
}
