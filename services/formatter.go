package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	"bikeshare/models"
	"bikeshare/utils"
)

// Formatter renders reports and raw pages as terminal text.
type Formatter struct {
	w     io.Writer
	color bool
}

// NewFormatter creates a Formatter writing to w. With color set, headings
// and values are highlighted with ANSI escapes.
func NewFormatter(w io.Writer, color bool) *Formatter {
	return &Formatter{w: w, color: color}
}

func (f *Formatter) paint(code, s string) string {
	if !f.color {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func (f *Formatter) printf(format string, args ...any) {
	fmt.Fprintf(f.w, format, args...)
}

func (f *Formatter) section(title string) {
	f.printf("%s\n", f.paint("1;33", "  "+title))
	f.printf("  %s\n", strings.Repeat("─", 54))
}

func (f *Formatter) line(label string, value string) {
	f.printf("  %-26s: %s\n", label, f.paint("1", value))
}

func (f *Formatter) took(elapsed time.Duration) {
	f.printf("\n  This took %.6f seconds.\n\n", elapsed.Seconds())
}

// Print writes every section of the report.
func (f *Formatter) Print(r *models.Report) {
	sep := strings.Repeat("═", 54)

	f.printf("\n%s\n", f.paint("1;35", sep))
	f.printf("%s\n", f.paint("1;35", "  BIKESHARE STATISTICS: "+strings.ToUpper(r.Selection.City)))
	f.printf("%s\n", f.paint("1;35", sep))
	f.printf("  Month: %s | Day: %s | Trips: %d\n\n", r.Selection.Month, r.Selection.Day, r.Trips)

	if r.Trips == 0 {
		f.printf("  No trips match the selected filters.\n\n")
	}

	f.printTime(r.Time)
	f.printStations(r.Stations)
	f.printDurations(r.Durations)
	f.printUsers(r.Users)

	f.printf("%s\n\n", f.paint("1;35", sep))
}

func (f *Formatter) printTime(s *models.TimeStats) {
	f.section("Most Frequent Times of Travel")
	if s == nil {
		f.printf("  Not available\n\n")
		return
	}
	if s.MostCommonMonth != nil {
		f.line("Most common month", models.Month(*s.MostCommonMonth).String())
	}
	if s.MostCommonDay != nil {
		f.line("Most common day of week", s.MostCommonDay.String())
	}
	if s.MostCommonHour != nil {
		f.line("Most common start hour", fmt.Sprintf("%d", *s.MostCommonHour))
	}
	f.took(s.Elapsed)
}

func (f *Formatter) printStations(s *models.StationStats) {
	f.section("Most Popular Stations and Trip")
	if s == nil {
		f.printf("  Not available\n\n")
		return
	}
	if s.MostCommonStart != nil {
		f.line("Most common start station", *s.MostCommonStart)
	}
	if s.MostCommonEnd != nil {
		f.line("Most common end station", *s.MostCommonEnd)
	}
	if s.MostCommonTrip != nil {
		f.line("Most frequent trip", *s.MostCommonTrip)
	}
	f.took(s.Elapsed)
}

func (f *Formatter) printDurations(s *models.DurationStats) {
	f.section("Trip Duration")
	if s == nil {
		f.printf("  Not available\n\n")
		return
	}
	f.line("Total travel time", utils.PreciseDelta(s.Total))
	if s.Mean != nil {
		f.line("Mean travel time", utils.PreciseDelta(*s.Mean))
	}
	f.took(s.Elapsed)
}

func (f *Formatter) printUsers(s *models.UserStats) {
	f.section("User Stats")
	if s == nil {
		f.printf("  Not available\n\n")
		return
	}

	f.printf("  Counts of user types:\n")
	f.counts(s.UserTypes)

	if s.Note != "" {
		f.printf("  %s\n", s.Note)
		f.took(s.Elapsed)
		return
	}

	f.printf("  Counts of gender:\n")
	f.counts(s.Genders)

	if s.EarliestBirthYear != nil {
		f.line("Earliest birth year", fmt.Sprintf("%d", *s.EarliestBirthYear))
	}
	if s.MostCommonBirthYear != nil {
		f.line("Most common birth year", fmt.Sprintf("%d", *s.MostCommonBirthYear))
	}
	if s.MostRecentBirthYear != nil {
		f.line("Most recent birth year", fmt.Sprintf("%d", *s.MostRecentBirthYear))
	}
	f.took(s.Elapsed)
}

func (f *Formatter) counts(counts []models.Count) {
	if len(counts) == 0 {
		f.printf("    (none)\n")
		return
	}
	for _, c := range counts {
		f.printf("    %-22s %d\n", c.Key, c.Count)
	}
}

// PrintWindow writes one page of raw trips.
func (f *Formatter) PrintWindow(w models.Window) {
	f.printf("Displaying records %d to %d of %d.\n", w.Offset, w.End, w.Total)
	f.printf("%s\n", strings.Repeat("-", 40))
	for i, t := range w.Trips {
		f.printf("%6d  %s  %s  %s -> %s  %s  %s%s\n",
			w.Offset+i,
			t.StartTime.Format("2006-01-02 15:04:05"),
			utils.PreciseDelta(t.Duration),
			orDash(t.StartStation), orDash(t.EndStation),
			orDash(t.UserType),
			optionalGender(t.Gender),
			optionalYear(t.BirthYear))
	}
	f.printf("%s\n", strings.Repeat("-", 40))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func optionalGender(g *string) string {
	if g == nil {
		return ""
	}
	return " " + *g
}

func optionalYear(y *int) string {
	if y == nil {
		return ""
	}
	return fmt.Sprintf(" %d", *y)
}
