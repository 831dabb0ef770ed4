package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownMonth = errors.New("unknown month")
	ErrUnknownDay   = errors.New("unknown day")
)

// AllValue is the vocabulary word that disables a month or day filter.
const AllValue = "all"

// Month is a month filter: MonthAll or 1 (January) through 12 (December).
type Month int

// MonthAll disables the month filter.
const MonthAll Month = 0

// Weekday is a day of week with Monday = 0 ... Sunday = 6.
// DayAll disables the day filter.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DayAll disables the day filter.
const DayAll Weekday = -1

// MonthNames lists the accepted month words; index 0 is "all".
var MonthNames = []string{AllValue, "january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december"}

// DayNames lists the accepted weekday words in Monday-first order.
var DayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// ParseMonth maps "all" or a month name (case-insensitive) to a Month.
func ParseMonth(s string) (Month, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range MonthNames {
		if name == s {
			return Month(i), nil
		}
	}
	return MonthAll, fmt.Errorf("%w: %q", ErrUnknownMonth, s)
}

// ParseDay maps "all" or a weekday name (case-insensitive) to a Weekday.
func ParseDay(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == AllValue {
		return DayAll, nil
	}
	for i, name := range DayNames {
		if name == s {
			return Weekday(i), nil
		}
	}
	return DayAll, fmt.Errorf("%w: %q", ErrUnknownDay, s)
}

// String returns the title-cased month name, "All" for MonthAll.
func (m Month) String() string {
	if m < MonthAll || int(m) >= len(MonthNames) {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return titleCase(MonthNames[m])
}

// String returns the title-cased weekday name, "All" for DayAll.
func (d Weekday) String() string {
	if d == DayAll {
		return "All"
	}
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return titleCase(DayNames[d])
}

// WeekdayOf converts a time's weekday to the Monday-first numbering.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// Selection is one validated filter request.
type Selection struct {
	City  string
	Month Month
	Day   Weekday
}

func (s Selection) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", s.City, s.Month, s.Day)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
