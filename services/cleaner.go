package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"bikeshare/models"
	"bikeshare/storage"
	"bikeshare/utils"
)

// timeLayouts are tried in order when parsing Start Time / End Time.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

// Cleaner transforms a RawDataset into a Dataset of typed trips.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean parses every raw row. The first malformed row aborts the load with
// storage.ErrDataUnavailable wrapping storage.ErrMalformedRecord.
func (c *Cleaner) Clean(raw *models.RawDataset) (*models.Dataset, error) {
	ds := &models.Dataset{
		City:            raw.City,
		Trips:           make([]models.Trip, 0, len(raw.Rows)),
		HasDemographics: raw.HasDemographics,
	}

	for _, r := range raw.Rows {
		trip, err := c.parseTrip(r, raw.HasDemographics)
		if err != nil {
			c.logger.Warn("[cleaner] %s: rejecting dataset at line %d: %v", raw.City, r.Line, err)
			return nil, fmt.Errorf("%w: %w: line %d: %w",
				storage.ErrDataUnavailable, storage.ErrMalformedRecord, r.Line, err)
		}
		ds.Trips = append(ds.Trips, trip)
	}

	c.logger.Debug("[cleaner] %s: cleaned %d trips (demographics: %v)",
		raw.City, len(ds.Trips), ds.HasDemographics)
	return ds, nil
}

func (c *Cleaner) parseTrip(r models.RawTrip, withDemographics bool) (models.Trip, error) {
	start, err := parseTime(r.Get(models.ColStartTime))
	if err != nil {
		return models.Trip{}, fmt.Errorf("start time: %w", err)
	}

	trip := models.Trip{
		StartTime:    start,
		StartStation: normaliseText(r.Get(models.ColStartStation)),
		EndStation:   normaliseText(r.Get(models.ColEndStation)),
		UserType:     normaliseText(r.Get(models.ColUserType)),
	}

	if raw := r.Get(models.ColEndTime); raw != "" {
		trip.EndTime, err = parseTime(raw)
		if err != nil {
			return models.Trip{}, fmt.Errorf("end time: %w", err)
		}
	}

	trip.Duration, err = parseDuration(r.Get(models.ColDuration), trip.StartTime, trip.EndTime)
	if err != nil {
		return models.Trip{}, err
	}

	if !withDemographics {
		return trip, nil
	}

	if g := normaliseText(r.Get(models.ColGender)); g != "" {
		trip.Gender = &g
	}
	if raw := r.Get(models.ColBirthYear); raw != "" {
		year, err := parseYear(raw)
		if err != nil {
			return models.Trip{}, fmt.Errorf("birth year: %w", err)
		}
		trip.BirthYear = &year
	}

	return trip, nil
}

func parseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", raw)
}

// parseDuration uses the supplied duration when present, otherwise the
// difference between end and start.
func parseDuration(raw string, start, end time.Time) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, fmt.Errorf("trip duration: invalid value %q", raw)
		}
		if d < 0 {
			return 0, fmt.Errorf("trip duration: negative value %q", raw)
		}
		return d, nil
	}

	if end.IsZero() {
		return 0, fmt.Errorf("trip duration: no duration and no end time")
	}
	d := end.Sub(start).Seconds()
	if d < 0 {
		return 0, fmt.Errorf("trip duration: end time before start time")
	}
	return d, nil
}

// parseYear accepts "1985" as well as the "1985.0" float form.
func parseYear(raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid year %q", raw)
	}
	return int(f), nil
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
