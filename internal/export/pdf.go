package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/insurai/claimlens/internal/model"
	"github.com/insurai/claimlens/internal/stats"
)

// Layout constants for the A4 portrait report.
const (
	pdfMargin     = 14.0
	pdfRowHeight  = 7.0
	pdfBreakAt    = 265.0 // start a new page once a row would pass this Y
	pdfHeaderSize = 18.0
)

var (
	claimTableHeader = []string{"Employee", "ID", "Type", "Amount", "Date", "Status", "Policy"}
	claimTableWidths = []float64{32, 18, 26, 20, 22, 20, 30}

	summaryTableHeader = []string{"Metric", "Count", "Amount"}
	summaryTableWidths = []float64{60, 35, 40}
)

// ClaimsPDF renders the claims analytics report: a title block, an
// executive summary section built from the snapshot, then the itemized
// claims table. The summary always precedes the listing. Long tables
// paginate automatically with the header row repeated on each page.
func ClaimsPDF(claims []model.EnrichedClaim, snap *stats.Snapshot, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 5, "Generated by Claims Management System", "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Title block.
	pdf.SetFont("Helvetica", "B", pdfHeaderSize)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(0, 10, "CLAIMS ANALYTICS REPORT", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, "Generated on: "+generatedAt.Format("2006-01-02"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total Records: %d", len(claims)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeSectionTitle(pdf, "EXECUTIVE SUMMARY")
	writeTable(pdf, summaryTableHeader, summaryTableWidths, summaryRows(snap))
	pdf.Ln(6)

	writeSectionTitle(pdf, "DETAILED CLAIMS DATA")
	writeTable(pdf, claimTableHeader, claimTableWidths, claimRows(claims))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func summaryRows(snap *stats.Snapshot) [][]string {
	return [][]string{
		{"Total Claims", strconv.Itoa(snap.TotalClaims), formatAmount(snap.TotalAmount)},
		{"Approved Claims", strconv.Itoa(snap.Count(model.StatusApproved)), formatAmount(snap.ApprovedAmount)},
		{"Pending Claims", strconv.Itoa(snap.Count(model.StatusPending)), "-"},
		{"Rejected Claims", strconv.Itoa(snap.Count(model.StatusRejected)), "-"},
		{"Average Claim", formatAmount(snap.AverageAmount), "-"},
	}
}

func claimRows(claims []model.EnrichedClaim) [][]string {
	rows := make([][]string, 0, len(claims))
	for _, c := range claims {
		rows = append(rows, []string{
			c.EmployeeName,
			c.EmployeeIDDisplay,
			c.Title,
			formatAmount(c.Amount),
			formatDate(c.Date),
			string(c.Status),
			c.PolicyName,
		})
	}
	return rows
}

func writeSectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(22, 4, 63)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

// writeTable renders a header row plus body rows, breaking to a new page
// (and repeating the header) whenever the next row would run off the
// printable area. An empty body leaves a header-only table.
func writeTable(pdf *fpdf.Fpdf, header []string, widths []float64, rows [][]string) {
	writeTableHeader(pdf, header, widths)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(40, 40, 40)
	for _, row := range rows {
		if pdf.GetY()+pdfRowHeight > pdfBreakAt {
			pdf.AddPage()
			writeTableHeader(pdf, header, widths)
			pdf.SetFont("Helvetica", "", 8)
			pdf.SetTextColor(40, 40, 40)
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], pdfRowHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func writeTableHeader(pdf *fpdf.Fpdf, header []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(22, 4, 63)
	pdf.SetTextColor(255, 255, 255)
	for i, cell := range header {
		pdf.CellFormat(widths[i], pdfRowHeight, cell, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}
