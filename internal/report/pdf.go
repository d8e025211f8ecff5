package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"moneybrief/internal/model"
)

const (
	pdfMargin = 15.0
	pdfFont   = "Helvetica"
)

// RenderPDF writes an A4 portrait rendering of the report to w
func RenderPDF(w io.Writer, r *model.Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Investor Profile", true)
	pdf.SetCreator("moneybrief", true)
	pdf.SetCreationDate(r.GeneratedAt)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	// Core fonts are cp1252; en dashes and bullets from the catalog survive this
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	width := pageW - 2*pdfMargin

	pdf.SetFont(pdfFont, "B", 20)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(width, 12, tr("Your Investment Profile Results"), "", 1, "C", false, 0, "")

	pdf.SetFont(pdfFont, "B", 16)
	pdf.SetTextColor(5, 150, 105)
	pdf.CellFormat(width, 10, tr(string(r.Profile)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	heading(pdf, tr, width, fmt.Sprintf("Risk Tolerance Score: %d", r.RiskScore))
	scoreBar(pdf, width, r)
	pdf.SetFont(pdfFont, "", 9)
	pdf.SetTextColor(75, 85, 99)
	third := width / 3
	pdf.CellFormat(third, 5, "Conservative", "", 0, "L", false, 0, "")
	pdf.CellFormat(third, 5, "Moderate", "", 0, "C", false, 0, "")
	pdf.CellFormat(third, 5, "Aggressive", "", 1, "R", false, 0, "")
	pdf.Ln(4)

	heading(pdf, tr, width, "Profile Summary")
	body(pdf)
	pdf.MultiCell(width, 5.5, tr(r.Description), "", "L", false)
	pdf.Ln(4)

	heading(pdf, tr, width, "Personalized Recommendations")
	body(pdf)
	for _, rec := range r.Recommendations {
		pdf.MultiCell(width, 5.5, tr("• "+rec), "", "L", false)
		pdf.Ln(1)
	}
	pdf.Ln(3)

	heading(pdf, tr, width, "Your Responses")
	for i, resp := range r.Responses {
		fill := i%2 == 0
		pdf.SetFillColor(243, 244, 246)
		pdf.SetFont(pdfFont, "", 10)
		pdf.SetTextColor(75, 85, 99)
		pdf.CellFormat(width*0.4, 7, tr(resp.Question), "", 0, "L", fill, 0, "")
		pdf.SetFont(pdfFont, "B", 10)
		pdf.SetTextColor(17, 24, 39)
		pdf.MultiCell(width*0.6, 7, tr(resp.Answer), "", "L", fill)
	}
	pdf.Ln(4)

	if len(r.Resources) > 0 {
		heading(pdf, tr, width, "Further Investment Resources")
		for _, res := range r.Resources {
			body(pdf)
			pdf.Write(5.5, tr(strings.TrimSuffix(res.Text, ".")+": "))
			pdf.SetTextColor(37, 99, 235)
			pdf.WriteLinkString(5.5, tr(res.LinkText), res.Link)
			pdf.Ln(7)
		}
	}

	pdf.Ln(6)
	pdf.SetFont(pdfFont, "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(width, 5, "Generated on "+r.GeneratedAt.Format("January 2, 2006"), "", 1, "C", false, 0, "")

	return pdf.Output(w)
}

func heading(pdf *fpdf.Fpdf, tr func(string) string, width float64, text string) {
	pdf.SetFont(pdfFont, "B", 13)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(width, 8, tr(text), "", 1, "L", false, 0, "")
}

func body(pdf *fpdf.Fpdf) {
	pdf.SetFont(pdfFont, "", 11)
	pdf.SetTextColor(31, 41, 55)
}

func scoreBar(pdf *fpdf.Fpdf, width float64, r *model.Report) {
	x, y := pdf.GetXY()
	pdf.SetFillColor(229, 231, 235)
	pdf.Rect(x, y, width, 3, "F")
	red, green, blue := hexRGB(r.Band.Start)
	pdf.SetFillColor(red, green, blue)
	if r.RiskScore > 0 {
		pdf.Rect(x, y, width*float64(r.RiskScore)/100, 3, "F")
	}
	pdf.SetXY(x, y+5)
}

// hexRGB parses "#RRGGBB"; anything else is gray
func hexRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 156, 163, 175
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 156, 163, 175
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
