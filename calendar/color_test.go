package calendar_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/pto-calendar/calendar"
)

func event(code string, days float64) *calendar.Event {
	category, _ := calendar.ParseCategory(code)
	return &calendar.Event{Category: category, Amount: decimal.NewFromFloat(days)}
}

func TestParseHex(t *testing.T) {
	c, err := calendar.ParseHex("#00FF00")
	require.NoError(t, err)
	assert.Equal(t, calendar.Color{R: 0, G: 0xFF, B: 0}, c)
	assert.Equal(t, "#00ff00", c.Hex())

	_, err = calendar.ParseHex("00FF00")
	assert.Error(t, err)
	_, err = calendar.ParseHex("#short")
	assert.Error(t, err)
}

func TestColorize_WorkingWeekendOverridesWeekendStyle(t *testing.T) {
	// A "w" event on a Saturday renders as a workday.
	style, color := calendar.Colorize(6, event("w", 1))
	assert.Equal(t, calendar.StyleWorkday, style)
	assert.Empty(t, color)
}

func TestColorize_Weekends(t *testing.T) {
	for _, weekday := range []int{0, 6} {
		style, color := calendar.Colorize(weekday, nil)
		assert.Equal(t, calendar.StyleWeekend, style)
		assert.Empty(t, color)
	}

	// Even a vacation event on a weekend keeps the weekend style.
	style, _ := calendar.Colorize(0, event("v", 1))
	assert.Equal(t, calendar.StyleWeekend, style)
}

func TestColorize_CategoryStyles(t *testing.T) {
	style, color := calendar.Colorize(2, event("v", 1))
	assert.Equal(t, "vacation", style)
	assert.Empty(t, color, "full days use the stylesheet color")

	style, color = calendar.Colorize(2, nil)
	assert.Equal(t, calendar.StyleWorkday, style)
	assert.Empty(t, color)

	// Unknown codes keep the workday default.
	style, color = calendar.Colorize(2, &calendar.Event{Amount: decimal.NewFromInt(1)})
	assert.Equal(t, calendar.StyleWorkday, style)
	assert.Empty(t, color)
}

func TestColorize_LighteningIsIdentityOutsidePartialRange(t *testing.T) {
	// Amounts >= 1 are full days; negative amounts are corrections.
	// Neither gets a lightened color.
	for _, days := range []float64{1, 1.5, 2, -0.5, -1} {
		_, color := calendar.Colorize(2, event("v", days))
		assert.Empty(t, color, "days=%v", days)
	}
}

func TestColorize_HalfDayBlendsTowardWhite(t *testing.T) {
	// GIVEN: vacation's base color #00FF00 and a half-day event
	// THEN: R and B move to the midpoint toward white, G stays at max
	_, color := calendar.Colorize(2, event("v", 0.5))
	assert.Equal(t, "#80ff80", color)
}

func TestColorize_ZeroDayIsFullyWhite(t *testing.T) {
	_, color := calendar.Colorize(2, event("v", 0))
	assert.Equal(t, "#ffffff", color)
}

func TestLighten(t *testing.T) {
	base := calendar.Color{R: 0, G: 0xFF, B: 0}
	assert.Equal(t, calendar.Color{R: 0x80, G: 0xFF, B: 0x80}, base.Lighten(decimal.NewFromFloat(0.5)))
	assert.Equal(t, base, base.Lighten(decimal.NewFromInt(1)), "a full day keeps the base color")
}
