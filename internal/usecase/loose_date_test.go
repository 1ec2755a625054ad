package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/galvanlaw/crm-intake/internal/usecase"
)

func TestParseLooseDateStripsWeekdayAndOrdinal(t *testing.T) {
	parsed, ok := usecase.ParseLooseDate("Tuesday, January 20th, 2026")
	assert.True(t, ok)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 20, parsed.Day())
}

func TestParseLooseDateOrdinalEquivalence(t *testing.T) {
	withOrdinal, ok1 := usecase.ParseLooseDate("January 20th, 2026")
	plain, ok2 := usecase.ParseLooseDate("January 20, 2026")

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.True(t, usecase.SameCalendarDay(withOrdinal, plain))
}

func TestParseLooseDateAlternateLayouts(t *testing.T) {
	for _, raw := range []string{
		"Monday, March 2nd, 2026",
		"March 2, 2026",
		"2026-03-02",
		"03/02/2026",
		"3/2/2026",
	} {
		parsed, ok := usecase.ParseLooseDate(raw)
		assert.True(t, ok, "expected %q to parse", raw)
		assert.Equal(t, 2026, parsed.Year(), raw)
		assert.Equal(t, time.March, parsed.Month(), raw)
		assert.Equal(t, 2, parsed.Day(), raw)
	}
}

func TestParseLooseDateUnparseable(t *testing.T) {
	_, ok := usecase.ParseLooseDate("sometime next week")
	assert.False(t, ok)

	_, ok = usecase.ParseLooseDate("")
	assert.False(t, ok)
}

func TestSameCalendarDayIgnoresClockTime(t *testing.T) {
	morning := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.March, 2, 22, 30, 0, 0, time.UTC)
	nextDay := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)

	assert.True(t, usecase.SameCalendarDay(morning, evening))
	assert.False(t, usecase.SameCalendarDay(morning, nextDay))
}
