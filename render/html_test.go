package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/pto-calendar/balance"
	"github.com/warp/pto-calendar/calendar"
	"github.com/warp/pto-calendar/render"
)

func renderHTML(t *testing.T, doc *render.Document) string {
	t.Helper()
	var buf bytes.Buffer
	writer := &render.HTMLWriter{}
	require.NoError(t, writer.WriteDocument(&buf, doc))
	return buf.String()
}

func TestHTMLWriter_Document(t *testing.T) {
	doc := buildYear(t, render.Input{
		Company: "Initech", Employee: "Ada", Year: 2024,
		Policy: balance.Policy{Vacation: 10, VacationCarryoverLimit: floatPtr(5)},
		Events: []calendar.Record{
			{Month: 7, Day: 5, Code: "v", Days: 0.5, Description: "Half day"},
		},
	})
	out := renderHTML(t, doc)

	// Header and navigation, with explicit per-year links.
	assert.Contains(t, out, "<h1>Ada&#39;s PTO for 2024</h1>")
	assert.Contains(t, out, `<a href="pto2023.html">`)
	assert.Contains(t, out, `<a href="pto2025.html">`)
	assert.Contains(t, out, `<a href="pto.html">This year</a>`)

	// January 2024 starts on Monday: one leading gap cell.
	assert.Contains(t, out, `<td colspan="1"></td>`)

	// The half vacation day gets a lightened inline color and tooltip.
	assert.Contains(t, out, `class="vacation" style="background-color:#80ff80;" title="Half day (4 hours PTO)"`)

	// Weekday and weekend cells rely on the stylesheet alone.
	assert.Contains(t, out, `<td class="workday">`)
	assert.Contains(t, out, `<td class="weekend">`)

	// Summary, legend, warning, hint.
	assert.Contains(t, out, "Vacation: 9.5 days (76 hours)")
	assert.Contains(t, out, "<caption><b>Legend</b></caption>")
	assert.Contains(t, out, "Vacation (10 days total)")
	assert.Contains(t, out, "<b>WARNING:</b> 9.5 days Vacation have been carried over to the next year.")
	assert.Contains(t, out, "Hover your mouse over a time-off date for an explanation.")

	// Navigation repeats after the hint.
	assert.Equal(t, 2, strings.Count(out, `<a href="pto.html">This year</a>`))
}

func TestHTMLWriter_AlertMarkup(t *testing.T) {
	doc := buildYear(t, render.Input{
		Company: "Initech", Employee: "Ada", Year: 2024,
		Policy: balance.Policy{Vacation: 1},
		Events: []calendar.Record{
			{Month: 1, Day: 8, Code: "v", Days: 2, Description: "Overdrawn"},
		},
	})
	out := renderHTML(t, doc)

	assert.Contains(t, out, `Vacation: <span class="alert">-1 days (-8 hours)</span>`)
}

func TestHTMLWriter_Page(t *testing.T) {
	doc := buildYear(t, render.Input{
		Company: "Initech", Employee: "Ada", Year: 2024,
		Policy: balance.Policy{Vacation: 10},
	})

	var buf bytes.Buffer
	writer := &render.HTMLWriter{Stylesheet: "calendar.css"}
	require.NoError(t, writer.WritePage(&buf, doc))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Ada&#39;s PTO for 2024</title>")
	assert.Contains(t, out, `<link rel="stylesheet" href="calendar.css">`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</html>"))
}

func TestHTMLWriter_EscapesUserText(t *testing.T) {
	doc := buildYear(t, render.Input{
		Company: "A&B <Corp>", Employee: "Ada", Year: 2024,
		Policy: balance.Policy{},
		Events: []calendar.Record{
			{Month: 2, Day: 6, Code: "p", Days: 1, Description: `<script>"x"</script>`},
		},
	})
	out := renderHTML(t, doc)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "A&amp;B &lt;Corp&gt; Closed")
}
