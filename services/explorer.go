package services

import (
	"context"
	"fmt"

	"bikeshare/models"
	"bikeshare/storage"
	"bikeshare/utils"
)

// Explorer answers one selection at a time: load, clean, filter, summarise.
// It keeps no state between calls; every call builds its own dataset.
type Explorer struct {
	source   storage.TripSource
	cleaner  *Cleaner
	insights *InsightService
	logger   *utils.Logger
}

// NewExplorer wires an Explorer over a trip source.
func NewExplorer(source storage.TripSource, cleaner *Cleaner, insights *InsightService, logger *utils.Logger) *Explorer {
	return &Explorer{source: source, cleaner: cleaner, insights: insights, logger: logger}
}

// Explore returns the report for sel and the filtered view it was computed
// from. Only a failure to load the city's dataset is returned as an error.
func (e *Explorer) Explore(ctx context.Context, sel models.Selection) (*models.Report, models.View, error) {
	raw, err := e.source.Load(ctx, sel.City)
	if err != nil {
		return nil, models.View{}, fmt.Errorf("explore %s: %w", sel.City, err)
	}

	ds, err := e.cleaner.Clean(raw)
	if err != nil {
		return nil, models.View{}, fmt.Errorf("explore %s: %w", sel.City, err)
	}

	view := Filter(models.NewView(ds), sel.Month, sel.Day)
	e.logger.Info("[explorer] %s: %d of %d trips match", sel, view.Len(), len(ds.Trips))

	return e.insights.Generate(sel, view), view, nil
}
