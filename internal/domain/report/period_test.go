package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func localDate(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.Local)
}

func TestPeriodTypeIsValid(t *testing.T) {
	assert.True(t, PeriodDay.IsValid())
	assert.True(t, PeriodWeek.IsValid())
	assert.True(t, PeriodMonth.IsValid())
	assert.True(t, PeriodYear.IsValid())
	assert.False(t, PeriodType("quarter").IsValid())
}

func TestPeriodContainsDay(t *testing.T) {
	p := Period{Type: PeriodDay, Reference: localDate(2026, time.February, 13, 12)}

	assert.True(t, p.Contains(localDate(2026, time.February, 13, 0)))
	assert.True(t, p.Contains(localDate(2026, time.February, 13, 23)))
	assert.False(t, p.Contains(localDate(2026, time.February, 14, 0)))
}

func TestPeriodContainsWeek(t *testing.T) {
	// 2026-02-13 is a Friday; its week runs Monday 02-09 through Sunday 02-15
	p := Period{Type: PeriodWeek, Reference: localDate(2026, time.February, 13, 12)}

	t.Run("monday start is inside", func(t *testing.T) {
		assert.True(t, p.Contains(localDate(2026, time.February, 9, 0)))
	})

	t.Run("sunday end is inside", func(t *testing.T) {
		assert.True(t, p.Contains(localDate(2026, time.February, 15, 23)))
	})

	t.Run("previous sunday is outside", func(t *testing.T) {
		assert.False(t, p.Contains(localDate(2026, time.February, 8, 23)))
	})

	t.Run("next monday is outside", func(t *testing.T) {
		assert.False(t, p.Contains(localDate(2026, time.February, 16, 0)))
	})

	t.Run("sunday reference anchors the week ending that day", func(t *testing.T) {
		// 2026-02-15 is a Sunday; the week is still 02-09 through 02-15
		sunday := Period{Type: PeriodWeek, Reference: localDate(2026, time.February, 15, 10)}
		assert.True(t, sunday.Contains(localDate(2026, time.February, 9, 0)))
		assert.False(t, sunday.Contains(localDate(2026, time.February, 16, 0)))
	})
}

func TestPeriodContainsUTCStampedRecord(t *testing.T) {
	// Restored backups keep the UTC zone their isoDate was written with;
	// membership must still read local calendar components.
	restore := time.Local
	time.Local = time.FixedZone("UTC+8", 8*3600)
	defer func() { time.Local = restore }()

	// 20:00 UTC is already the next local day at UTC+8
	record := time.Date(2026, time.February, 13, 20, 0, 0, 0, time.UTC)

	t.Run("counts toward its local day", func(t *testing.T) {
		p := Period{Type: PeriodDay, Reference: localDate(2026, time.February, 14, 12)}
		assert.True(t, p.Contains(record))
	})

	t.Run("not toward the day its own zone spells", func(t *testing.T) {
		p := Period{Type: PeriodDay, Reference: localDate(2026, time.February, 13, 12)}
		assert.False(t, p.Contains(record))
	})

	t.Run("week boundary follows the local day", func(t *testing.T) {
		// Sunday 2026-02-15 16:00 UTC is local Monday 02-16 00:00, the
		// first day of the following week
		sundayUTC := time.Date(2026, time.February, 15, 16, 0, 0, 0, time.UTC)
		thisWeek := Period{Type: PeriodWeek, Reference: localDate(2026, time.February, 13, 12)}
		assert.False(t, thisWeek.Contains(sundayUTC))
		nextWeek := Period{Type: PeriodWeek, Reference: localDate(2026, time.February, 17, 12)}
		assert.True(t, nextWeek.Contains(sundayUTC))
	})

	t.Run("month boundary follows the local day", func(t *testing.T) {
		janUTC := time.Date(2026, time.January, 31, 20, 0, 0, 0, time.UTC)
		feb := Period{Type: PeriodMonth, Reference: localDate(2026, time.February, 13, 12)}
		assert.True(t, feb.Contains(janUTC))
	})
}

func TestPeriodContainsMonth(t *testing.T) {
	p := Period{Type: PeriodMonth, Reference: localDate(2026, time.February, 13, 12)}

	assert.True(t, p.Contains(localDate(2026, time.February, 1, 0)))
	assert.True(t, p.Contains(localDate(2026, time.February, 28, 23)))
	assert.False(t, p.Contains(localDate(2026, time.March, 1, 0)))
	assert.False(t, p.Contains(localDate(2025, time.February, 13, 12)))
}

func TestPeriodContainsYear(t *testing.T) {
	p := Period{Type: PeriodYear, Reference: localDate(2026, time.February, 13, 12)}

	assert.True(t, p.Contains(localDate(2026, time.December, 31, 23)))
	assert.False(t, p.Contains(localDate(2027, time.January, 1, 0)))
}
