package services

import (
	"errors"
	"strings"
	"testing"

	"bikeshare/models"
	"bikeshare/storage"
)

func rawRow(line int, kv ...string) models.RawTrip {
	fields := make(map[string]string)
	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i]] = kv[i+1]
	}
	return models.RawTrip{Line: line, Fields: fields}
}

func TestCleanerParsesRow(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := &models.RawDataset{City: "chicago", HasDemographics: true, Rows: []models.RawTrip{
		rawRow(2,
			models.ColStartTime, "2017-06-23 15:09:32",
			models.ColEndTime, "2017-06-23 15:14:53",
			models.ColDuration, "321",
			models.ColStartStation, "  Wood St  &  Hubbard St ",
			models.ColEndStation, "Damen Ave & Chicago Ave",
			models.ColUserType, "Subscriber",
			models.ColGender, "Male",
			models.ColBirthYear, "1992.0"),
	}}

	ds, err := c.Clean(raw)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	trip := ds.Trips[0]
	if trip.StartStation != "Wood St & Hubbard St" {
		t.Errorf("StartStation: got %q", trip.StartStation)
	}
	if trip.Duration != 321 {
		t.Errorf("Duration: got %v, want 321", trip.Duration)
	}
	if trip.Gender == nil || *trip.Gender != "Male" {
		t.Errorf("Gender: got %v, want Male", trip.Gender)
	}
	if trip.BirthYear == nil || *trip.BirthYear != 1992 {
		t.Errorf("BirthYear: got %v, want 1992", trip.BirthYear)
	}
	if trip.Month() != 6 || trip.StartHour() != 15 || trip.DayOfWeek() != models.Friday {
		t.Errorf("derived fields: month %d hour %d day %v", trip.Month(), trip.StartHour(), trip.DayOfWeek())
	}
}

func TestCleanerDerivesDuration(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := &models.RawDataset{Rows: []models.RawTrip{
		rawRow(2, models.ColStartTime, "2017-01-02 08:00:00", models.ColEndTime, "2017-01-02T08:01:30"),
	}}

	ds, err := c.Clean(raw)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if ds.Trips[0].Duration != 90 {
		t.Errorf("Duration: got %v, want 90", ds.Trips[0].Duration)
	}
}

func TestCleanerMissingDemographicsAreAbsent(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := &models.RawDataset{HasDemographics: true, Rows: []models.RawTrip{
		rawRow(2, models.ColStartTime, "2017-01-02 08:00:00", models.ColDuration, "5",
			models.ColGender, "", models.ColBirthYear, ""),
	}}

	ds, err := c.Clean(raw)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if ds.Trips[0].Gender != nil || ds.Trips[0].BirthYear != nil {
		t.Errorf("expected absent gender and birth year, got %+v", ds.Trips[0])
	}
}

func TestCleanerIgnoresDemographicsWhenDatasetLacksThem(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := &models.RawDataset{HasDemographics: false, Rows: []models.RawTrip{
		rawRow(2, models.ColStartTime, "2017-01-02 08:00:00", models.ColDuration, "5",
			models.ColGender, "Male", models.ColBirthYear, "not a year"),
	}}

	ds, err := c.Clean(raw)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if ds.HasDemographics || ds.Trips[0].Gender != nil {
		t.Errorf("demographics should be ignored, got %+v", ds.Trips[0])
	}
}

func TestCleanerRejectsMalformedRows(t *testing.T) {
	tests := []struct {
		name string
		row  models.RawTrip
	}{
		{"bad start", rawRow(7, models.ColStartTime, "23/06/2017", models.ColDuration, "5")},
		{"bad end", rawRow(7, models.ColStartTime, "2017-01-02 08:00:00", models.ColEndTime, "soon")},
		{"bad duration", rawRow(7, models.ColStartTime, "2017-01-02 08:00:00", models.ColDuration, "long")},
		{"negative duration", rawRow(7, models.ColStartTime, "2017-01-02 08:00:00", models.ColDuration, "-3")},
		{"end before start", rawRow(7, models.ColStartTime, "2017-01-02 08:00:00", models.ColEndTime, "2017-01-02 07:00:00")},
		{"no duration", rawRow(7, models.ColStartTime, "2017-01-02 08:00:00")},
		{"bad birth year", rawRow(7, models.ColStartTime, "2017-01-02 08:00:00", models.ColDuration, "5", models.ColBirthYear, "1990.5")},
	}

	c := NewCleaner(newTestLogger())
	for _, tt := range tests {
		raw := &models.RawDataset{City: "chicago", HasDemographics: true, Rows: []models.RawTrip{tt.row}}
		_, err := c.Clean(raw)
		if !errors.Is(err, storage.ErrMalformedRecord) || !errors.Is(err, storage.ErrDataUnavailable) {
			t.Errorf("%s: got %v, want malformed record / data unavailable", tt.name, err)
			continue
		}
		if !strings.Contains(err.Error(), "line 7") {
			t.Errorf("%s: error should name the line: %v", tt.name, err)
		}
	}
}
