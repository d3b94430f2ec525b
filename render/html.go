package render

import (
	"fmt"
	"html"
	"io"
)

// HTMLWriter serializes a Document into the printable HTML layout:
// navigation links, a 3x4 grid of month panels, legend, warnings, hint,
// and the navigation repeated. Day styling comes from the stylesheet
// classes; only lightened partial-day colors are inlined.
type HTMLWriter struct {
	// Stylesheet is the href emitted by WritePage. Empty means no link.
	Stylesheet string
}

// monthsPerRow fixes the panel grid shape: three rows of four.
const monthsPerRow = 4

// WritePage writes a complete standalone HTML page.
func (hw *HTMLWriter) WritePage(out io.Writer, doc *Document) error {
	w := &sticky{out: out}
	w.printf("<!DOCTYPE html>\n<html>\n<head>\n")
	w.printf("<title>%s</title>\n", html.EscapeString(doc.Title()))
	if hw.Stylesheet != "" {
		w.printf("<link rel=\"stylesheet\" href=%q>\n", hw.Stylesheet)
	}
	w.printf("</head>\n<body>\n")
	if w.err == nil {
		w.err = hw.WriteDocument(w, doc)
	}
	w.printf("</body>\n</html>\n")
	return w.err
}

// WriteDocument writes the document body without the page scaffolding.
func (hw *HTMLWriter) WriteDocument(out io.Writer, doc *Document) error {
	w := &sticky{out: out}

	writeNav(w, doc.Year)

	w.printf("<table class=\"calendar\" cellspacing=\"10\">\n")
	w.printf("<caption><h1>%s</h1></caption>\n", html.EscapeString(doc.Title()))
	for row := 0; row < len(doc.Months)/monthsPerRow; row++ {
		w.printf("<tr valign=\"top\">\n")
		for col := 0; col < monthsPerRow; col++ {
			writeMonth(w, &doc.Months[row*monthsPerRow+col])
		}
		w.printf("</tr>\n")
	}
	w.printf("</table>\n")

	writeLegend(w, doc.Legend)

	w.printf("<p>\n")
	for _, warning := range doc.Warnings {
		w.printf("<b>WARNING:</b> %s<br />\n", html.EscapeString(warning.Text))
	}
	w.printf("</p>\n")

	w.printf("<p>%s</p>\n", html.EscapeString(doc.Hint))

	writeNav(w, doc.Year)
	return w.err
}

func writeNav(w *sticky, year int) {
	w.printf("<div style=\"float:left;\">\n")
	w.printf("<a href=\"pto%d.html\">&lt;&lt;&lt;----- Previous year</a>\n", year-1)
	w.printf("</div><div style=\"float:right;\">\n")
	w.printf("<a href=\"pto%d.html\">Next year -----&gt;&gt;&gt;</a>\n", year+1)
	w.printf("</div><div style=\"text-align:center;\">\n")
	w.printf("<a href=\"pto.html\">This year</a>\n")
	w.printf("</div>\n")
}

func writeMonth(w *sticky, panel *MonthPanel) {
	w.printf("  <td>\n")
	w.printf("    <table border=\"1\" cellspacing=\"0\" class=\"month\">\n")
	w.printf("    <caption><b>%s</b></caption>\n", panel.Name)
	w.printf("    <tr><th>S</th><th>M</th><th>T</th><th>W</th><th>R</th><th>F</th><th>S</th></tr>\n")

	for _, week := range panel.Weeks {
		w.printf("    <tr>\n")
		gaps := 0
		for _, cell := range week {
			if cell.Gap() {
				gaps++
				continue
			}
			if gaps > 0 {
				w.printf("      <td colspan=\"%d\"></td>\n", gaps)
				gaps = 0
			}
			writeDay(w, cell)
		}
		w.printf("    </tr>\n")
	}
	w.printf("    </table>\n")

	for i, line := range panel.Summary {
		if i > 0 {
			w.printf("<br />")
		}
		writeSummaryLine(w, line)
	}
	if len(panel.Summary) > 0 {
		w.printf("\n")
	}
	w.printf("  </td>\n")
}

func writeDay(w *sticky, cell DayCell) {
	w.printf("      <td class=%q", cell.Style)
	if cell.Color != "" {
		w.printf(" style=\"background-color:%s;\"", cell.Color)
	}
	if cell.Tooltip != "" {
		w.printf(" title=%q", html.EscapeString(cell.Tooltip))
	}
	w.printf(">%d</td>\n", cell.Day)
}

func writeSummaryLine(w *sticky, line SummaryLine) {
	if line.Plain {
		w.printf("    <b>%s</b>", html.EscapeString(line.Label))
		return
	}
	w.printf("    %s: ", html.EscapeString(line.Label))
	if line.Alert {
		w.printf("<span class=\"alert\">%s</span>", FormatDaysHours(line.Days))
	} else {
		w.printf("%s", FormatDaysHours(line.Days))
	}
}

func writeLegend(w *sticky, legend []LegendEntry) {
	w.printf("<p></p>\n<table border=\"1\" cellspacing=\"0\">\n")
	w.printf("<caption><b>Legend</b></caption>\n")
	for _, entry := range legend {
		w.printf("<tr><td class=%q>%s</td></tr>\n", entry.Style, html.EscapeString(entry.Text))
	}
	w.printf("</table>\n")
}

// sticky is an io.Writer wrapper that remembers the first write error
// so the emit helpers stay unconditional.
type sticky struct {
	out io.Writer
	err error
}

func (w *sticky) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.out.Write(p)
	if err != nil {
		w.err = err
	}
	return n, err
}

func (w *sticky) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}
