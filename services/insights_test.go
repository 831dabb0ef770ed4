package services

import (
	"testing"

	"bikeshare/models"
)

func sampleReport() *models.Report {
	svc := NewInsightService(newTestLogger(), 4)
	return svc.Generate(models.Selection{City: "chicago", Day: models.DayAll}, models.NewView(sampleDataset()))
}

func TestInsightTimeStats(t *testing.T) {
	r := sampleReport()
	if r.Time == nil {
		t.Fatal("Time should not be nil")
	}
	if r.Time.MostCommonMonth == nil || *r.Time.MostCommonMonth != 1 {
		t.Errorf("MostCommonMonth: got %v, want 1", r.Time.MostCommonMonth)
	}
	if r.Time.MostCommonDay == nil || *r.Time.MostCommonDay != models.Monday {
		t.Errorf("MostCommonDay: got %v, want Monday", r.Time.MostCommonDay)
	}
	if r.Time.MostCommonHour == nil || *r.Time.MostCommonHour != 8 {
		t.Errorf("MostCommonHour: got %v, want 8", r.Time.MostCommonHour)
	}
}

func TestInsightStationStats(t *testing.T) {
	r := sampleReport()
	s := r.Stations
	if s == nil {
		t.Fatal("Stations should not be nil")
	}
	if s.MostCommonStart == nil || *s.MostCommonStart != "A" {
		t.Errorf("MostCommonStart: got %v, want A", s.MostCommonStart)
	}
	if s.MostCommonEnd == nil || *s.MostCommonEnd != "B" {
		t.Errorf("MostCommonEnd: got %v, want B", s.MostCommonEnd)
	}
	if s.MostCommonTrip == nil || *s.MostCommonTrip != "A -> B" {
		t.Errorf("MostCommonTrip: got %v, want %q", s.MostCommonTrip, "A -> B")
	}
}

func TestInsightRepeatedTripKey(t *testing.T) {
	ds := &models.Dataset{Trips: []models.Trip{
		{StartTime: at("2017-01-02 08:00:00"), StartStation: "Z", EndStation: "Y"},
		{StartTime: at("2017-01-02 09:00:00"), StartStation: "A", EndStation: "B"},
		{StartTime: at("2017-01-02 10:00:00"), StartStation: "Z", EndStation: "Y"},
	}}
	s := ComputeStationStats(models.NewView(ds))
	if s.MostCommonTrip == nil || *s.MostCommonTrip != "Z -> Y" {
		t.Errorf("MostCommonTrip: got %v, want %q", s.MostCommonTrip, "Z -> Y")
	}
}

func TestInsightDurations(t *testing.T) {
	ds := &models.Dataset{Trips: []models.Trip{
		{StartTime: at("2017-01-02 08:00:00"), Duration: 10},
		{StartTime: at("2017-01-02 08:00:00"), Duration: 20},
		{StartTime: at("2017-01-02 08:00:00"), Duration: 30},
	}}
	d := ComputeDurationStats(models.NewView(ds))
	if d.Total != 60 {
		t.Errorf("Total: got %v, want 60", d.Total)
	}
	if d.Mean == nil || *d.Mean != 20 {
		t.Errorf("Mean: got %v, want 20", d.Mean)
	}
}

func TestInsightUserStats(t *testing.T) {
	u := sampleReport().Users
	if u == nil {
		t.Fatal("Users should not be nil")
	}
	if u.Note != "" {
		t.Errorf("unexpected note: %q", u.Note)
	}
	if len(u.UserTypes) != 2 || u.UserTypes[1].Key != "Subscriber" || u.UserTypes[1].Count != 4 {
		t.Errorf("UserTypes: got %+v", u.UserTypes)
	}
	if len(u.Genders) != 2 || u.Genders[0].Count != 2 || u.Genders[1].Count != 2 {
		t.Errorf("Genders: got %+v", u.Genders)
	}
	if u.EarliestBirthYear == nil || *u.EarliestBirthYear != 1985 {
		t.Errorf("EarliestBirthYear: got %v, want 1985", u.EarliestBirthYear)
	}
	if u.MostCommonBirthYear == nil || *u.MostCommonBirthYear != 1990 {
		t.Errorf("MostCommonBirthYear: got %v, want 1990", u.MostCommonBirthYear)
	}
	if u.MostRecentBirthYear == nil || *u.MostRecentBirthYear != 2001 {
		t.Errorf("MostRecentBirthYear: got %v, want 2001", u.MostRecentBirthYear)
	}
}

func TestInsightUserStatsWithoutDemographics(t *testing.T) {
	ds := sampleDataset()
	ds.HasDemographics = false

	u := ComputeUserStats(models.NewView(ds))
	if u.Note != NoDemographicsNote {
		t.Errorf("Note: got %q", u.Note)
	}
	if u.Genders != nil || u.EarliestBirthYear != nil || u.MostCommonBirthYear != nil || u.MostRecentBirthYear != nil {
		t.Errorf("expected no demographic results, got %+v", u)
	}
	if len(u.UserTypes) != 2 {
		t.Errorf("UserTypes: got %+v", u.UserTypes)
	}
}

func TestInsightNoBirthYears(t *testing.T) {
	ds := &models.Dataset{HasDemographics: true, Trips: []models.Trip{
		{StartTime: at("2017-01-02 08:00:00"), UserType: "Customer"},
	}}
	u := ComputeUserStats(models.NewView(ds))
	if u.EarliestBirthYear != nil || u.MostCommonBirthYear != nil || u.MostRecentBirthYear != nil {
		t.Errorf("expected absent birth years, got %+v", u)
	}
	if len(u.Genders) != 0 {
		t.Errorf("Genders: got %+v, want none", u.Genders)
	}
}

func TestInsightEmptyInput(t *testing.T) {
	svc := NewInsightService(newTestLogger(), 2)
	r := svc.Generate(models.Selection{City: "chicago"}, models.View{})
	if r.Trips != 0 {
		t.Errorf("expected 0 trips for empty input")
	}
	if r.Time == nil || r.Time.MostCommonMonth != nil || r.Time.MostCommonDay != nil || r.Time.MostCommonHour != nil {
		t.Errorf("Time: got %+v, want all absent", r.Time)
	}
	if r.Stations == nil || r.Stations.MostCommonStart != nil || r.Stations.MostCommonEnd != nil || r.Stations.MostCommonTrip != nil {
		t.Errorf("Stations: got %+v, want all absent", r.Stations)
	}
	if r.Durations == nil || r.Durations.Total != 0 || r.Durations.Mean != nil {
		t.Errorf("Durations: got %+v", r.Durations)
	}
	if r.Users == nil {
		t.Error("Users should not be nil")
	}
}

func TestInsightGenerateSurvivesPanic(t *testing.T) {
	saved := insightJobs
	defer func() { insightJobs = saved }()

	insightJobs = append([]insightJob(nil), saved...)
	for i, job := range insightJobs {
		if job.name == "stations" {
			insightJobs[i].run = func(models.View, *models.Report) { panic("station index corrupted") }
		}
	}

	r := sampleReport()
	if r.Stations != nil {
		t.Errorf("Stations: got %+v, want nil after failure", r.Stations)
	}
	if r.Time == nil || r.Durations == nil || r.Users == nil {
		t.Errorf("other sections should complete: time=%v durations=%v users=%v", r.Time, r.Durations, r.Users)
	}
	if r.Trips != 5 {
		t.Errorf("Trips: got %d, want 5", r.Trips)
	}
}
