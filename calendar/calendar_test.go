package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/pto-calendar/calendar"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
		want  int
	}{
		{"january", 1, 2024, 31},
		{"april", 4, 2024, 30},
		{"february leap year", 2, 2024, 29},
		{"february non-leap", 2, 2023, 28},
		{"february 1900 is not a leap year", 2, 1900, 28},
		{"february 2000 is a leap year", 2, 2000, 29},
		{"december", 12, 2024, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.DaysInMonth(tt.month, tt.year))
		})
	}
}

func TestFirstWeekday(t *testing.T) {
	// January 1, 2024 was a Monday; September 1, 2024 a Sunday.
	assert.Equal(t, 1, calendar.FirstWeekday(1, 2024))
	assert.Equal(t, 0, calendar.FirstWeekday(9, 2024))
	// June 1, 2024 was a Saturday.
	assert.Equal(t, 6, calendar.FirstWeekday(6, 2024))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, calendar.IsWeekend(0))
	assert.True(t, calendar.IsWeekend(6))
	for weekday := 1; weekday <= 5; weekday++ {
		assert.False(t, calendar.IsWeekend(weekday))
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", calendar.MonthName(1))
	assert.Equal(t, "December", calendar.MonthName(12))
}
