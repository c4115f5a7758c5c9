package certificates

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFOptions configures certificate rendering.
type PDFOptions struct {
	FontFamily  string
	TitleSize   float64
	BodySize    float64
	AccentColor [3]int
}

// DefaultPDFOptions returns the standard certificate layout options.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		FontFamily:  "Arial",
		TitleSize:   22,
		BodySize:    11,
		AccentColor: [3]int{34, 139, 34},
	}
}

// RenderPDF produces the printable certificate document.
func RenderPDF(cert *Certificate, opts PDFOptions) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	r, g, b := opts.AccentColor[0], opts.AccentColor[1], opts.AccentColor[2]

	// Border
	pdf.SetDrawColor(r, g, b)
	pdf.SetLineWidth(1.2)
	pdf.Rect(10, 10, 277, 190, "D")

	pdf.SetFont(opts.FontFamily, "B", opts.TitleSize)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(0, 16, cert.Title, "", 1, "C", false, 0, "")

	pdf.SetFont(opts.FontFamily, "", opts.BodySize)
	pdf.SetTextColor(60, 60, 60)
	pdf.MultiCell(0, 6, cert.Description, "", "C", false)
	pdf.Ln(6)

	pdf.SetFont(opts.FontFamily, "", opts.BodySize+1)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, "This certificate is proudly presented to", "", 1, "C", false, 0, "")

	pdf.SetFont(opts.FontFamily, "B", opts.TitleSize-4)
	pdf.CellFormat(0, 12, cert.UserName, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Certificate ID", cert.CertificateID},
		{"Waste Type", cert.WasteType},
		{"Processing Method", cert.ProcessingMethod},
		{"CO2 Saved", fmt.Sprintf("%.2f tonnes CO2e", cert.CO2SavedTons)},
		{"Carbon Credits", fmt.Sprintf("%.2f", cert.CarbonCredits)},
		{"Estimated Value", fmt.Sprintf("INR %.2f", cert.EstimatedValue)},
		{"Standard", cert.Standard},
		{"Issued", cert.IssuedAt.Format("2 January 2006")},
		{"Valid Until", cert.ExpiresAt.Format("2 January 2006")},
	}

	pdf.SetFont(opts.FontFamily, "", opts.BodySize)
	for _, row := range rows {
		pdf.SetX(70)
		pdf.SetFont(opts.FontFamily, "B", opts.BodySize)
		pdf.CellFormat(60, 7, row[0], "", 0, "R", false, 0, "")
		pdf.SetFont(opts.FontFamily, "", opts.BodySize)
		pdf.CellFormat(80, 7, "  "+row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(opts.FontFamily, "I", opts.BodySize-1)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 6, EnvironmentalBenefit(cert.CO2SavedTons), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(opts.FontFamily, "", opts.BodySize-2)
	pdf.CellFormat(0, 5, fmt.Sprintf("Verification code: %s", cert.VerificationCode), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Issued by %s", cert.Authority), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render certificate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
