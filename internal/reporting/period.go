package reporting

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Granularity is the size of a reporting period.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
	yearLayout  = "2006"

	minYear = 1
)

var (
	// ErrValidation is the parent of every client-side report error.
	ErrValidation = errors.New("report request validation failed")

	// ErrInvalidPeriod is returned when a period value does not match its granularity.
	ErrInvalidPeriod = fmt.Errorf("%w: invalid period value", ErrValidation)

	// ErrUnsupportedGranularity is returned for granularities other than day, month and year.
	ErrUnsupportedGranularity = fmt.Errorf("%w: unsupported granularity", ErrValidation)
)

// Period is a validated reporting period. An empty Value means "all time".
type Period struct {
	Granularity Granularity
	Value       string
	start       time.Time
}

// ParsePeriod validates granularity and value and returns the typed Period.
func ParsePeriod(granularity, value string) (Period, error) {
	g := Granularity(strings.TrimSpace(granularity))
	value = strings.TrimSpace(value)

	switch g {
	case GranularityDay, GranularityMonth, GranularityYear:
	default:
		return Period{}, fmt.Errorf("%w: %q (expected day, month or year)", ErrUnsupportedGranularity, granularity)
	}
	if value == "" {
		return Period{Granularity: g}, nil
	}

	var (
		start time.Time
		err   error
	)
	switch g {
	case GranularityDay:
		start, err = time.Parse(dayLayout, value)
		if err != nil {
			return Period{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidPeriod, value)
		}
	case GranularityMonth:
		start, err = time.Parse(monthLayout, value)
		if err != nil {
			return Period{}, fmt.Errorf("%w: %q is not a YYYY-MM month", ErrInvalidPeriod, value)
		}
	case GranularityYear:
		year, convErr := strconv.Atoi(value)
		if convErr != nil || len(value) != 4 || !isDigits(value) || year < minYear {
			return Period{}, fmt.Errorf("%w: year %q must be a four digit integer", ErrInvalidPeriod, value)
		}
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if start.Year() < minYear {
		return Period{}, fmt.Errorf("%w: %q is before year 0001", ErrInvalidPeriod, value)
	}

	return Period{Granularity: g, Value: value, start: start}, nil
}

// IsAllTime reports whether the period carries no time filter.
func (p Period) IsAllTime() bool {
	return p.Value == ""
}

// end returns the exclusive upper bound of the period.
func (p Period) end() time.Time {
	switch p.Granularity {
	case GranularityDay:
		return p.start.AddDate(0, 0, 1)
	case GranularityMonth:
		return p.start.AddDate(0, 1, 0)
	default:
		return p.start.AddDate(1, 0, 0)
	}
}

// Previous returns the immediately preceding period of the same granularity.
// It reports false for all-time periods and when the predecessor would fall before year 1.
func (p Period) Previous() (Period, bool) {
	if p.IsAllTime() {
		return Period{}, false
	}

	var prev time.Time
	switch p.Granularity {
	case GranularityDay:
		prev = p.start.AddDate(0, 0, -1)
	case GranularityMonth:
		prev = p.start.AddDate(0, -1, 0)
	default:
		prev = p.start.AddDate(-1, 0, 0)
	}
	if prev.Year() < minYear {
		return Period{}, false
	}
	return Period{Granularity: p.Granularity, Value: formatPeriodValue(p.Granularity, prev), start: prev}, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func formatPeriodValue(g Granularity, t time.Time) string {
	switch g {
	case GranularityDay:
		return t.Format(dayLayout)
	case GranularityMonth:
		return t.Format(monthLayout)
	default:
		return t.Format(yearLayout)
	}
}

// Predicate returns the date filter selecting rows of this period.
func (p Period) Predicate() Predicate {
	if p.IsAllTime() {
		return Predicate{All: true}
	}
	return Predicate{Start: p.start, End: p.end()}
}

// Predicate is a half-open calendar range [Start, End), or every row when All is set.
type Predicate struct {
	All   bool
	Start time.Time
	End   time.Time
}

// Matches reports whether the calendar date of t falls inside the predicate.
func (pr Predicate) Matches(t time.Time) bool {
	if pr.All {
		return true
	}
	d := calendarDate(t)
	return !d.Before(pr.Start) && d.Before(pr.End)
}

// SQL renders the predicate over column using positional placeholders starting at firstArg.
// The second return value lists the arguments to append, in placeholder order. Bounds are
// passed as dates so the session time zone never shifts them.
func (pr Predicate) SQL(column string, firstArg int) (string, []interface{}) {
	if pr.All {
		return "TRUE", nil
	}
	clause := fmt.Sprintf("%s >= $%d::date AND %s < $%d::date", column, firstArg, column, firstArg+1)
	return clause, []interface{}{pr.Start.Format(dayLayout), pr.End.Format(dayLayout)}
}

// calendarDate drops the clock and zone of t, keeping its calendar date in UTC.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
