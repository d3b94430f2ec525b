package calendar

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// COLORS
// =============================================================================

// Color is an RGB triple. Base colors must stay in sync with the
// stylesheet; the lightened shades for partial days are computed from
// these values.
type Color struct {
	R, G, B uint8
}

// ParseHex parses a "#RRGGBB" color string.
func ParseHex(s string) (Color, error) {
	var c Color
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lighten blends the color toward white in proportion to the time NOT
// taken off: per channel, new = round(255 - (255-channel)*days). A full
// day keeps the base color, a quarter day is three quarters of the way
// to white.
func (c Color) Lighten(days decimal.Decimal) Color {
	return Color{
		R: lightenChannel(c.R, days),
		G: lightenChannel(c.G, days),
		B: lightenChannel(c.B, days),
	}
}

func lightenChannel(channel uint8, days decimal.Decimal) uint8 {
	full := decimal.NewFromInt(255)
	gap := full.Sub(decimal.NewFromInt(int64(channel))).Mul(days)
	return uint8(full.Sub(gap).Round(0).IntPart())
}

// Style names for days that carry no event category.
const (
	StyleWorkday = "workday"
	StyleWeekend = "weekend"
)

// BaseColors are the full-saturation day colors, keyed by style name.
// Category styles use the category string itself.
var BaseColors = map[string]Color{
	StyleWorkday:                {0xFF, 0xFF, 0xFF}, // white
	StyleWeekend:                {0xFF, 0x00, 0x00}, // red
	string(CategoryBereavement): {0xAA, 0xAA, 0xFF},
	string(CategoryFloating):    {0xFF, 0x99, 0x99},
	string(CategoryHoliday):     {0xFF, 0x00, 0x00},
	string(CategoryPersonal):    {0x00, 0xFF, 0xFF},
	string(CategorySick):        {0xFF, 0xFF, 0x00},
	string(CategoryUnofficial):  {0x3F, 0x3F, 0xFF},
	string(CategoryVacation):    {0x00, 0xFF, 0x00},
	string(CategoryVolunteer):   {0x00, 0xCC, 0xCC},
}

// =============================================================================
// DAY COLORIZER
// =============================================================================

// Colorize resolves the display style for a day and, for partial-day
// events, the lightened background color. The color is empty whenever
// the stylesheet's full-saturation color applies.
//
// Precedence:
//  1. A working-weekend event forces the workday style.
//  2. Saturdays and Sundays are weekends.
//  3. An event's category is the style; otherwise the day is a workday.
//
// A nil event means the date has no PTO record.
func Colorize(weekday int, event *Event) (style, color string) {
	if event != nil && event.Category == CategoryWorkday {
		return StyleWorkday, ""
	}
	if IsWeekend(weekday) {
		return StyleWeekend, ""
	}

	style = StyleWorkday
	if event == nil || event.Category == "" {
		// No event, or an unrecognized category code: default coloring.
		return style, ""
	}

	style = string(event.Category)
	if !event.PartialDay() {
		return style, ""
	}
	base := BaseColors[style]
	return style, base.Lighten(event.Amount).Hex()
}
