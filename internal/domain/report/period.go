package report

import "time"

// PeriodType selects the width of a reporting window
type PeriodType string

const (
	PeriodDay   PeriodType = "day"
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
	PeriodYear  PeriodType = "year"
)

// IsValid checks if the period type is one of the closed set
func (t PeriodType) IsValid() bool {
	switch t {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// Period is a calendar window: a type plus the reference date that anchors
// it. Membership is decided on local calendar components, never on instants,
// so records near midnight do not drift across timezone boundaries.
type Period struct {
	Type      PeriodType
	Reference time.Time
}

// Contains reports whether t falls inside the period:
//   - day: same local calendar day as the reference
//   - week: the Monday-to-Sunday week containing the reference (Sunday
//     normalized to day 7)
//   - month: same local year and month
//   - year: same local year
func (p Period) Contains(t time.Time) bool {
	// Imported records can carry a UTC zone; membership always reads local
	// calendar components.
	t = t.In(time.Local)
	ref := p.Reference.In(time.Local)
	switch p.Type {
	case PeriodDay:
		return sameDay(t, ref)
	case PeriodWeek:
		start := weekStart(ref)
		end := start.AddDate(0, 0, 6)
		d := truncateDay(t)
		return !d.Before(start) && !d.After(end)
	case PeriodMonth:
		return t.Year() == ref.Year() && t.Month() == ref.Month()
	case PeriodYear:
		return t.Year() == ref.Year()
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weekStart returns the Monday of the week containing t
func weekStart(t time.Time) time.Time {
	day := int(t.Weekday())
	if day == 0 {
		day = 7
	}
	return truncateDay(t).AddDate(0, 0, -(day - 1))
}
