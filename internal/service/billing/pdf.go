package billing

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
)

// FileName is the download name for a statement PDF.
func FileName(st Statement) string {
	return fmt.Sprintf("%s-bill-%d-%d.pdf", st.CustomerName, st.Month, st.Year)
}

// PDF renders a statement as a one-page A4 bill. Amounts use "Rs." because
// the built-in PDF fonts cannot encode the rupee sign.
func PDF(farmName string, st Statement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, farmName, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(190, 7, fmt.Sprintf("Month: %d/%d", st.Month, st.Year), "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 7, fmt.Sprintf("Customer: %s", st.CustomerName), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(95, 7, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 7, "Quantity", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	rows := []struct {
		label string
		qty   float64
	}{
		{"Milk", st.Milk},
		{"Extra Milk", st.ExtraMilk},
		{"Egg", st.Egg},
		{"Curd", st.Curd},
		{"Chanakapodi", st.Chanakapodi},
	}
	for _, row := range rows {
		pdf.CellFormat(95, 6, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 6, fmt.Sprintf("%g", row.qty), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 9, fmt.Sprintf("Total: Rs. %.2f", st.Total), "1", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(190, 6, "Thank you", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render bill pdf: %w", err)
	}
	return buf.Bytes(), nil
}
