package models

import "time"

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	MostCommonMonth *int
	MostCommonDay   *Weekday
	MostCommonHour  *int
	Elapsed         time.Duration
}

// StationStats holds the most popular stations and trip.
type StationStats struct {
	MostCommonStart *string
	MostCommonEnd   *string
	MostCommonTrip  *string
	Elapsed         time.Duration
}

// DurationStats holds total and mean trip duration in seconds.
// Mean is nil when there are no trips.
type DurationStats struct {
	Count   int
	Total   float64
	Mean    *float64
	Elapsed time.Duration
}

// Count is one group of a group-count, e.g. a user type and its trips.
type Count struct {
	Key   string
	Count int
}

// UserStats holds user type counts and, when the dataset carries them,
// gender counts and birth year extremes.
type UserStats struct {
	UserTypes           []Count
	Genders             []Count
	EarliestBirthYear   *int
	MostCommonBirthYear *int
	MostRecentBirthYear *int
	Note                string
	Elapsed             time.Duration
}

// Report bundles the statistics computed for one selection.
// A nil section means its computation failed.
type Report struct {
	Selection Selection
	Trips     int
	Time      *TimeStats
	Stations  *StationStats
	Durations *DurationStats
	Users     *UserStats
}
