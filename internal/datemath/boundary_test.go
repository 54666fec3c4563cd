package datemath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 28, DaysInMonth(2022, time.February))
	assert.Equal(t, 29, DaysInMonth(2020, time.February))
	assert.Equal(t, 31, DaysInMonth(2022, time.December))
}

func TestMonthBounds(t *testing.T) {
	assert.Equal(t, Date(2022, 2, 1), BeginningOfMonth(Date(2022, 2, 17)))
	assert.Equal(t, Date(2022, 2, 28), EndOfMonth(Date(2022, 2, 17)))
	assert.Equal(t, Date(2022, 12, 31), MonthEnd(2022, time.December))
}

func TestQuarterBounds(t *testing.T) {
	assert.Equal(t, Date(2022, 1, 1), BeginningOfQuarter(Date(2022, 2, 3)))
	assert.Equal(t, Date(2022, 3, 31), EndOfQuarter(Date(2022, 2, 3)))
	assert.Equal(t, Date(2022, 10, 1), BeginningOfQuarter(Date(2022, 12, 31)))
	assert.Equal(t, Date(2022, 12, 31), EndOfQuarter(Date(2022, 10, 1)))
}

func TestYearBounds(t *testing.T) {
	assert.Equal(t, Date(2022, 1, 1), BeginningOfYear(Date(2022, 5, 18)))
	assert.Equal(t, Date(2022, 12, 31), EndOfYear(Date(2022, 5, 18)))
}

func TestWeekBounds(t *testing.T) {
	// 2022-02-03 is a Thursday
	assert.Equal(t, Date(2022, 1, 31), BeginningOfWeek(Date(2022, 2, 3)))
	assert.Equal(t, Date(2022, 2, 6), EndOfWeek(Date(2022, 2, 3)))
	// Monday maps to itself
	assert.Equal(t, Date(2022, 1, 31), BeginningOfWeek(Date(2022, 1, 31)))
}

func TestBiweekBounds(t *testing.T) {
	// 2022-01-01 falls in ISO week 52 of 2021, an even week
	assert.Equal(t, Date(2021, 12, 20), BeginningOfBiweek(Date(2022, 1, 1)))
	assert.Equal(t, Date(2022, 1, 2), EndOfBiweek(Date(2022, 1, 1)))

	assert.Equal(t, Date(2022, 1, 31), BeginningOfBiweek(Date(2022, 2, 3)))
	assert.Equal(t, Date(2022, 2, 13), EndOfBiweek(Date(2022, 2, 3)))
}

func TestISOWeekStart(t *testing.T) {
	assert.Equal(t, Date(2022, 1, 3), ISOWeekStart(2022, 1))
	assert.Equal(t, Date(2020, 12, 28), ISOWeekStart(2020, 53))
	// years where week 1 starts in the previous calendar year
	assert.Equal(t, Date(2020, 12, 28), ISOWeekStart(2021, 1).AddDate(0, 0, -7))
}

func TestWeeksInYear(t *testing.T) {
	assert.Equal(t, 53, WeeksInYear(2020))
	assert.Equal(t, 52, WeeksInYear(2021))
	assert.Equal(t, 52, WeeksInYear(2022))
}
