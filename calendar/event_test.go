package calendar_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/pto-calendar/calendar"
)

func TestBuildTable(t *testing.T) {
	records := []calendar.Record{
		{Month: 7, Day: 4, Code: "h", Days: 1, Description: "Independence Day"},
		{Month: 7, Day: 5, Code: "v", Days: 0.5, Description: "Long weekend"},
	}

	table, err := calendar.BuildTable(2024, records)
	require.NoError(t, err)

	event, ok := table.Lookup(7, 4)
	require.True(t, ok)
	assert.Equal(t, calendar.CategoryHoliday, event.Category)
	assert.True(t, event.Amount.Equal(decimal.NewFromInt(1)))

	event, ok = table.Lookup(7, 5)
	require.True(t, ok)
	assert.Equal(t, calendar.CategoryVacation, event.Category)

	_, ok = table.Lookup(7, 6)
	assert.False(t, ok)
}

func TestBuildTable_RejectsDuplicateDate(t *testing.T) {
	// Two events on the same date is a configuration mistake, not a
	// silent overwrite.
	records := []calendar.Record{
		{Month: 3, Day: 15, Code: "v", Days: 1},
		{Month: 3, Day: 15, Code: "s", Days: 0.5},
	}

	_, err := calendar.BuildTable(2024, records)
	assert.ErrorIs(t, err, calendar.ErrDuplicateEvent)
}

func TestBuildTable_RejectsImpossibleDates(t *testing.T) {
	_, err := calendar.BuildTable(2024, []calendar.Record{{Month: 2, Day: 30, Code: "v", Days: 1}})
	assert.ErrorIs(t, err, calendar.ErrDayOutOfRange)

	_, err = calendar.BuildTable(2024, []calendar.Record{{Month: 13, Day: 1, Code: "v", Days: 1}})
	assert.ErrorIs(t, err, calendar.ErrMonthOutOfRange)

	// February 29 exists in 2024 but not in 1900.
	_, err = calendar.BuildTable(2024, []calendar.Record{{Month: 2, Day: 29, Code: "v", Days: 1}})
	assert.NoError(t, err)
	_, err = calendar.BuildTable(1900, []calendar.Record{{Month: 2, Day: 29, Code: "v", Days: 1}})
	assert.ErrorIs(t, err, calendar.ErrDayOutOfRange)
}

func TestBuildTable_KeepsUnknownCodesAsAnnotations(t *testing.T) {
	table, err := calendar.BuildTable(2024, []calendar.Record{
		{Month: 6, Day: 10, Code: "xyz", Days: 1, Description: "Team offsite"},
	})
	require.NoError(t, err)

	event, ok := table.Lookup(6, 10)
	require.True(t, ok)
	assert.Empty(t, event.Category)
	assert.Equal(t, "Team offsite", event.Description)
}

func TestParseCategory(t *testing.T) {
	category, ok := calendar.ParseCategory("vo")
	assert.True(t, ok)
	assert.Equal(t, calendar.CategoryVolunteer, category)

	_, ok = calendar.ParseCategory("nope")
	assert.False(t, ok)
}

func TestEventTooltip(t *testing.T) {
	full := calendar.Event{Amount: decimal.NewFromInt(1), Description: "Vacation"}
	assert.Equal(t, "Vacation", full.Tooltip())

	partial := calendar.Event{Amount: decimal.NewFromFloat(0.5), Description: "Dentist"}
	assert.Equal(t, "Dentist (4 hours PTO)", partial.Tooltip())

	unnamed := calendar.Event{Amount: decimal.NewFromInt(1)}
	assert.Empty(t, unnamed.Tooltip())
}
