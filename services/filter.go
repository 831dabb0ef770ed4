package services

import "bikeshare/models"

// Filter returns the trips of view whose start month and weekday match.
// MonthAll and DayAll disable the respective constraint. Order is preserved
// and view is left untouched; an empty result is a valid view.
func Filter(view models.View, month models.Month, day models.Weekday) models.View {
	if month == models.MonthAll && day == models.DayAll {
		return view
	}

	positions := make([]int, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		trip := view.At(i)
		if month != models.MonthAll && trip.Month() != int(month) {
			continue
		}
		if day != models.DayAll && trip.DayOfWeek() != day {
			continue
		}
		positions = append(positions, i)
	}

	return view.Select(positions)
}
