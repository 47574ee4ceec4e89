package payroll

import (
	"fmt"
	"time"
)

// DateLayout is the wire form of period bounds and record dates.
const DateLayout = "2006-01-02"

// Period is an inclusive range of calendar dates.
type Period struct {
	Start time.Time
	End   time.Time
}

// DateOf drops the clock part of t, keeping its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func NewPeriod(start, end time.Time) (Period, error) {
	p := Period{Start: DateOf(start), End: DateOf(end)}
	if p.End.Before(p.Start) {
		return Period{}, ErrInvalidPeriod
	}
	return p, nil
}

// ParsePeriod reads YYYY-MM-DD bounds.
func ParsePeriod(start, end string) (Period, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return Period{}, fmt.Errorf("%w: period_start %q", ErrInvalidPeriod, start)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return Period{}, fmt.Errorf("%w: period_end %q", ErrInvalidPeriod, end)
	}
	return NewPeriod(s, e)
}

func (p Period) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

func (p Period) String() string {
	return p.Start.Format(DateLayout) + ".." + p.End.Format(DateLayout)
}

// IsMonthEnd reports whether the period closes a month: it ends on the last
// day of a month or crosses a month boundary.
func (p Period) IsMonthEnd() bool {
	return IsMonthEnd(p.Start, p.End)
}

func IsMonthEnd(start, end time.Time) bool {
	if end.AddDate(0, 0, 1).Month() != end.Month() {
		return true
	}
	return start.Year() != end.Year() || start.Month() != end.Month()
}

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// Months lists every calendar month the period touches, in order.
func (p Period) Months() []YearMonth {
	var months []YearMonth
	cur := time.Date(p.Start.Year(), p.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(p.End) {
		months = append(months, YearMonth{Year: cur.Year(), Month: cur.Month()})
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

// CutoffFor returns the semi-monthly cut-off containing t: the 1st to the
// 15th, or the 16th to the last day of the month.
func CutoffFor(t time.Time) Period {
	d := DateOf(t)
	if d.Day() <= 15 {
		return Period{
			Start: time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(d.Year(), d.Month(), 15, 0, 0, 0, 0, time.UTC),
		}
	}
	return Period{
		Start: time.Date(d.Year(), d.Month(), 16, 0, 0, 0, 0, time.UTC),
		End:   time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, time.UTC),
	}
}
