package services

import (
	"time"

	"bikeshare/models"
	"bikeshare/utils"
)

// NoDemographicsNote is reported instead of gender and birth year figures
// for datasets without those columns.
const NoDemographicsNote = "Gender and birth year data is not available for the selected city."

// ComputeTimeStats finds the most common month, weekday and start hour.
func ComputeTimeStats(view models.View) *models.TimeStats {
	started := time.Now()
	months := make([]int, view.Len())
	days := make([]models.Weekday, view.Len())
	hours := make([]int, view.Len())
	for i := 0; i < view.Len(); i++ {
		trip := view.At(i)
		months[i] = trip.Month()
		days[i] = trip.DayOfWeek()
		hours[i] = trip.StartHour()
	}

	stats := &models.TimeStats{}
	if m, ok := Mode(months); ok {
		stats.MostCommonMonth = &m
	}
	if d, ok := Mode(days); ok {
		stats.MostCommonDay = &d
	}
	if h, ok := Mode(hours); ok {
		stats.MostCommonHour = &h
	}
	stats.Elapsed = time.Since(started)
	return stats
}

// ComputeStationStats finds the most common start station, end station and
// start/end combination. Trips missing a station are left out of the
// corresponding count.
func ComputeStationStats(view models.View) *models.StationStats {
	started := time.Now()
	var starts, ends, trips []string
	for i := 0; i < view.Len(); i++ {
		trip := view.At(i)
		if trip.StartStation != "" {
			starts = append(starts, trip.StartStation)
		}
		if trip.EndStation != "" {
			ends = append(ends, trip.EndStation)
		}
		if key, ok := trip.TripKey(); ok {
			trips = append(trips, key)
		}
	}

	stats := &models.StationStats{}
	if s, ok := Mode(starts); ok {
		stats.MostCommonStart = &s
	}
	if e, ok := Mode(ends); ok {
		stats.MostCommonEnd = &e
	}
	if k, ok := Mode(trips); ok {
		stats.MostCommonTrip = &k
	}
	stats.Elapsed = time.Since(started)
	return stats
}

// ComputeDurationStats sums and averages trip durations.
func ComputeDurationStats(view models.View) *models.DurationStats {
	started := time.Now()
	stats := &models.DurationStats{Count: view.Len()}
	for i := 0; i < view.Len(); i++ {
		stats.Total += view.At(i).Duration
	}
	if stats.Count > 0 {
		mean := stats.Total / float64(stats.Count)
		stats.Mean = &mean
	}
	stats.Elapsed = time.Since(started)
	return stats
}

// ComputeUserStats counts user types and, for datasets with demographics,
// genders and birth year extremes and mode.
func ComputeUserStats(view models.View) *models.UserStats {
	started := time.Now()
	var userTypes, genders []string
	var years []int
	for i := 0; i < view.Len(); i++ {
		trip := view.At(i)
		if trip.UserType != "" {
			userTypes = append(userTypes, trip.UserType)
		}
		if trip.Gender != nil {
			genders = append(genders, *trip.Gender)
		}
		if trip.BirthYear != nil {
			years = append(years, *trip.BirthYear)
		}
	}

	stats := &models.UserStats{UserTypes: GroupCount(userTypes)}
	if !view.HasDemographics() {
		stats.Note = NoDemographicsNote
		stats.Elapsed = time.Since(started)
		return stats
	}

	stats.Genders = GroupCount(genders)
	if len(years) > 0 {
		earliest, recent := years[0], years[0]
		for _, y := range years[1:] {
			earliest = min(earliest, y)
			recent = max(recent, y)
		}
		stats.EarliestBirthYear = &earliest
		stats.MostRecentBirthYear = &recent
	}
	if y, ok := Mode(years); ok {
		stats.MostCommonBirthYear = &y
	}
	stats.Elapsed = time.Since(started)
	return stats
}

// InsightService computes the statistics report of a view.
type InsightService struct {
	logger      *utils.Logger
	concurrency int
}

// NewInsightService creates an InsightService running up to concurrency
// computations at once.
func NewInsightService(logger *utils.Logger, concurrency int) *InsightService {
	return &InsightService{logger: logger, concurrency: concurrency}
}

type insightJob struct {
	name string
	run  func(models.View, *models.Report)
}

// insightJobs each fill one section of the report.
var insightJobs = []insightJob{
	{"time", func(v models.View, r *models.Report) { r.Time = ComputeTimeStats(v) }},
	{"stations", func(v models.View, r *models.Report) { r.Stations = ComputeStationStats(v) }},
	{"durations", func(v models.View, r *models.Report) { r.Durations = ComputeDurationStats(v) }},
	{"users", func(v models.View, r *models.Report) { r.Users = ComputeUserStats(v) }},
}

// Generate runs the four statistic computations in parallel. They only read
// the view. A computation that panics is logged and leaves its section nil;
// the others still complete.
func (s *InsightService) Generate(sel models.Selection, view models.View) *models.Report {
	report := &models.Report{Selection: sel, Trips: view.Len()}
	pool := utils.NewWorkerPool(s.concurrency, 0).OnPanic(func(job string, recovered any) {
		s.logger.Error("[insights] %s stats failed: %v", job, recovered)
	})

	for _, job := range insightJobs {
		pool.SubmitNamed(job.name, func() { job.run(view, report) })
	}
	pool.Wait()

	s.logger.Debug("[insights] %s: %d trips summarised", sel, view.Len())
	return report
}
