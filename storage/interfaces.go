package storage

import (
	"context"

	"bikeshare/models"
)

// TripSource supplies one raw dataset per city.
type TripSource interface {
	Load(ctx context.Context, city string) (*models.RawDataset, error)
}

// TripImporter persists a city's raw dataset so it can be loaded back later.
type TripImporter interface {
	Import(ctx context.Context, ds *models.RawDataset) error
}
