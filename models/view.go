package models

// View is a read-only, order-preserving window onto a Dataset.
// It holds indices into the dataset's trips; the trips are never copied
// or modified. The zero View is empty.
type View struct {
	dataset *Dataset
	indices []int
}

// NewView returns a view over every trip of the dataset.
func NewView(ds *Dataset) View {
	indices := make([]int, len(ds.Trips))
	for i := range indices {
		indices[i] = i
	}
	return View{dataset: ds, indices: indices}
}

// Select returns a view over the trips at the given positions of v.
// Positions must be in range and are kept in the order given.
func (v View) Select(positions []int) View {
	indices := make([]int, len(positions))
	for i, p := range positions {
		indices[i] = v.indices[p]
	}
	return View{dataset: v.dataset, indices: indices}
}

// Len returns the number of trips in the view.
func (v View) Len() int { return len(v.indices) }

// At returns the i-th trip of the view.
func (v View) At(i int) Trip {
	return v.dataset.Trips[v.indices[i]]
}

// Trips copies the view's trips into a new slice.
func (v View) Trips() []Trip {
	out := make([]Trip, len(v.indices))
	for i, idx := range v.indices {
		out[i] = v.dataset.Trips[idx]
	}
	return out
}

// City returns the city of the underlying dataset.
func (v View) City() string {
	if v.dataset == nil {
		return ""
	}
	return v.dataset.City
}

// HasDemographics reports whether the underlying dataset carries gender
// and birth year columns.
func (v View) HasDemographics() bool {
	return v.dataset != nil && v.dataset.HasDemographics
}

// Window is the half-open range [Offset, End) of a view.
type Window struct {
	Offset int
	End    int
	Total  int
	Trips  []Trip
}

// Window returns the trips in [offset, offset+size) clamped to the view.
func (v View) Window(offset, size int) Window {
	if offset < 0 {
		offset = 0
	}
	end := offset + size
	if end > v.Len() {
		end = v.Len()
	}
	if offset > end {
		offset = end
	}
	w := Window{Offset: offset, End: end, Total: v.Len()}
	for i := offset; i < end; i++ {
		w.Trips = append(w.Trips, v.At(i))
	}
	return w
}
