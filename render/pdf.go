package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/warp/pto-calendar/calendar"
)

// PDFWriter serializes a Document into a printable PDF: a landscape
// page with the 3x4 month grid, followed by a page with the legend and
// warnings. Day cells are filled with the same colors the stylesheet
// assigns to the HTML classes.
type PDFWriter struct{}

// Layout constants, in millimeters on A4 landscape.
const (
	pdfMargin      = 10.0
	pdfPanelWidth  = 69.0
	pdfPanelGap    = 2.5
	pdfPanelHeight = 62.0
	pdfCellHeight  = 5.0
	pdfSummaryLine = 3.2
)

// WriteDocument renders the document to out as a PDF.
func (pw *PDFWriter) WriteDocument(out io.Writer, doc *Document) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, doc.Title(), "", 1, "C", false, 0, "")

	for i := range doc.Months {
		row := i / monthsPerRow
		col := i % monthsPerRow
		x := pdfMargin + float64(col)*(pdfPanelWidth+pdfPanelGap)
		y := 20 + float64(row)*pdfPanelHeight
		pw.writeMonth(pdf, x, y, &doc.Months[i])
	}

	pdf.AddPage()
	pw.writeLegend(pdf, doc)

	if err := pdf.Output(out); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func (pw *PDFWriter) writeMonth(pdf *gofpdf.Fpdf, x, y float64, panel *MonthPanel) {
	cellWidth := pdfPanelWidth / 7

	pdf.SetXY(x, y)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(pdfPanelWidth, 4.5, panel.Name, "", 2, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 7)
	for _, h := range []string{"S", "M", "T", "W", "R", "F", "S"} {
		pdf.CellFormat(cellWidth, 4, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 7)
	for _, week := range panel.Weeks {
		pdf.SetX(x)
		for _, cell := range week {
			if cell.Gap() {
				pdf.CellFormat(cellWidth, pdfCellHeight, "", "", 0, "", false, 0, "")
				continue
			}
			fill := pw.setFill(pdf, cell)
			pdf.CellFormat(cellWidth, pdfCellHeight, itoa(cell.Day), "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "", 6)
	for _, line := range panel.Summary {
		pdf.SetX(x)
		pw.writeSummaryLine(pdf, line)
	}
	pdf.SetTextColor(0, 0, 0)
}

// setFill configures the fill color for a day cell and reports whether
// the cell should be filled at all (workdays stay white).
func (pw *PDFWriter) setFill(pdf *gofpdf.Fpdf, cell DayCell) bool {
	color, ok := calendar.BaseColors[cell.Style]
	if cell.Color != "" {
		if parsed, err := calendar.ParseHex(cell.Color); err == nil {
			color, ok = parsed, true
		}
	}
	if !ok || cell.Style == calendar.StyleWorkday && cell.Color == "" {
		return false
	}
	pdf.SetFillColor(int(color.R), int(color.G), int(color.B))
	return true
}

func (pw *PDFWriter) writeSummaryLine(pdf *gofpdf.Fpdf, line SummaryLine) {
	if line.Plain {
		pdf.SetFont("Arial", "B", 6)
		pdf.CellFormat(pdfPanelWidth, pdfSummaryLine, line.Label, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 6)
		return
	}
	if line.Alert {
		pdf.SetTextColor(255, 0, 0)
	} else {
		pdf.SetTextColor(0, 0, 0)
	}
	text := line.Label + ": " + FormatDaysHours(line.Days)
	pdf.CellFormat(pdfPanelWidth, pdfSummaryLine, text, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (pw *PDFWriter) writeLegend(pdf *gofpdf.Fpdf, doc *Document) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Legend", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, entry := range doc.Legend {
		if color, ok := calendar.BaseColors[entry.Style]; ok {
			pdf.SetFillColor(int(color.R), int(color.G), int(color.B))
			pdf.CellFormat(8, 6, "", "1", 0, "", true, 0, "")
		} else {
			pdf.CellFormat(8, 6, "", "1", 0, "", false, 0, "")
		}
		pdf.CellFormat(0, 6, " "+entry.Text, "", 1, "L", false, 0, "")
	}

	if len(doc.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 9)
		pdf.SetTextColor(255, 0, 0)
		for _, warning := range doc.Warnings {
			pdf.CellFormat(0, 5, "WARNING: "+warning.Text, "", 1, "L", false, 0, "")
		}
		pdf.SetTextColor(0, 0, 0)
	}
}
