package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/orders-service/internal/model"
)

const fontName = "Helvetica"

var (
	headers   = []string{"ID", "Name", "Address", "Start", "End", "Price", "Customer", "Executor", "Offers"}
	colWidths = []float64{12, 62, 62, 24, 24, 22, 22, 22, 17}
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the order table on landscape A4 pages with the core
// Helvetica font, so text outside cp1252 is transliterated or dropped.
func (g *Generator) Generate(report model.OrderReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 12)
	pdf.SetFillColor(230, 230, 230)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		drawTableRow(pdf, tr, headers, true)
	})
	pdf.AddPage()

	for _, row := range report.Rows {
		order := row.Order
		drawTableRow(pdf, tr, []string{
			strconv.FormatUint(uint64(order.ID), 10),
			order.Name,
			safeValue(order.Address),
			safeValue(order.StartDate),
			safeValue(order.EndDate),
			formatInt(order.Price),
			formatID(order.CustomerID),
			formatID(order.ExecutorID),
			strconv.Itoa(row.OfferCount),
		}, false)
	}

	pdf.Ln(4)
	pdf.SetFont(fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Orders: %d   Offers: %d   Total price: %d",
		len(report.Rows), len(report.Offers), report.TotalPrice), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, "Generated "+formatTime(report.GeneratedAt), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 9)
	for i, col := range cols {
		align := "L"
		if i == 0 || i > 4 {
			align = "R"
		}
		pdf.CellFormat(colWidths[i], 7, truncate(pdf, tr(col), colWidths[i]-2), "1", 0, align, header, 0, "")
	}
	pdf.Ln(-1)
}

// truncate shortens text to fit width, marking the cut with "...".
func truncate(pdf *gofpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}
	for len(text) > 0 && pdf.GetStringWidth(text+"...") > width {
		text = text[:len(text)-1]
	}
	return text + "..."
}

func safeValue(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}
	return *value
}

func formatInt(value *int) string {
	if value == nil {
		return "-"
	}
	return strconv.Itoa(*value)
}

func formatID(value *uint) string {
	if value == nil {
		return "-"
	}
	return strconv.FormatUint(uint64(*value), 10)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006 15:04")
}
