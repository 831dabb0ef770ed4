package models

import "time"

// Column names used by the city datasets.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColDuration     = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// TripKeySeparator joins start and end station into a trip key.
const TripKeySeparator = " -> "

// RawTrip holds one dataset row exactly as read, keyed by column name.
// Line is the 1-based line number in the source (header is line 1).
type RawTrip struct {
	Line   int
	Fields map[string]string
}

// Get returns the trimmed value of a column, or "" if the column is missing.
func (r RawTrip) Get(column string) string {
	return r.Fields[column]
}

// RawDataset is a city's rows before cleaning.
type RawDataset struct {
	City            string
	Columns         []string
	Rows            []RawTrip
	HasDemographics bool
}

// Trip is one cleaned bikeshare ride.
type Trip struct {
	StartTime    time.Time
	EndTime      time.Time
	StartStation string
	EndStation   string
	Duration     float64
	UserType     string
	Gender       *string
	BirthYear    *int
}

// Month returns the month of the start time, January = 1.
func (t Trip) Month() int {
	return int(t.StartTime.Month())
}

// DayOfWeek returns the weekday of the start time, Monday = 0.
func (t Trip) DayOfWeek() Weekday {
	return WeekdayOf(t.StartTime)
}

// StartHour returns the hour of the start time (0-23).
func (t Trip) StartHour() int {
	return t.StartTime.Hour()
}

// TripKey returns "start -> end". ok is false unless both stations are known.
func (t Trip) TripKey() (key string, ok bool) {
	if t.StartStation == "" || t.EndStation == "" {
		return "", false
	}
	return t.StartStation + TripKeySeparator + t.EndStation, true
}

// Dataset is the in-memory record store of one city, in source order.
type Dataset struct {
	City            string
	Trips           []Trip
	HasDemographics bool
}
