package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/services"
)

// PDFRenderer writes the executive cost-optimization report.
type PDFRenderer struct {
	logger  *logrus.Logger
	printer *message.Printer
}

// NewPDFRenderer creates a renderer. Numbers are formatted with grouping
// separators for readability in the report body.
func NewPDFRenderer(logger *logrus.Logger) *PDFRenderer {
	return &PDFRenderer{
		logger:  logger,
		printer: message.NewPrinter(language.English),
	}
}

// cp1252 has no glyph for these; swap them before translation
var pdfSymbols = strings.NewReplacer("≤", "<=", "≥", ">=")

// Render writes the report to path.
func (r *PDFRenderer) Render(path string, analysis *services.AnalysisResult, evaluation *services.EvaluationReport, forecast *models.ForecastResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("AWS Cost Optimization Report", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	write := func(s string) string { return tr(pdfSymbols.Replace(s)) }

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "AWS Cost Optimization Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Run %s, generated %s", evaluation.RunID, evaluation.GeneratedAt.Format("2006-01-02 15:04 UTC")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	r.section(pdf, "Executive Summary")
	pdf.SetFont("Helvetica", "", 11)
	summary := r.printer.Sprintf(
		"Across %d billing records from %s to %s, total spend was INR %.2f, of which INR %.2f (%.2f%%) was idle. "+
			"The analysis surfaced %d rightsizing opportunities worth an estimated INR %.2f.",
		analysis.Records,
		analysis.StartDate.Format("2006-01-02"),
		analysis.EndDate.Format("2006-01-02"),
		analysis.TotalCost.InexactFloat64(),
		analysis.TotalIdleCost.InexactFloat64(),
		evaluation.KPIs.WasteRate,
		len(analysis.Opportunities),
		analysis.TotalPotentialSavings.InexactFloat64(),
	)
	pdf.MultiCell(0, 6, write(summary), "", "L", false)
	pdf.Ln(4)

	if forecast != nil {
		r.section(pdf, "Forecast Insight")
		pdf.SetFont("Helvetica", "", 11)
		direction := "decrease"
		if forecast.ProjectedChange > 0 {
			direction = "increase"
		}
		insight := r.printer.Sprintf(
			"The fitted trend model projects an average daily spend of INR %.2f over the next %d days, "+
				"a %.1f%% %s against the current daily average of INR %.2f.",
			forecast.ForecastDailyAvg, forecast.HorizonDays, abs(forecast.ProjectedChange), direction, forecast.CurrentDailyAvg,
		)
		pdf.MultiCell(0, 6, write(insight), "", "L", false)
		pdf.Ln(4)
	}

	r.section(pdf, "Metrics Summary")
	r.summaryTable(pdf, write, evaluation.Summary)

	pdf.AddPage()
	r.section(pdf, "Top Optimization Opportunities")
	r.opportunityTable(pdf, write, analysis.Opportunities)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return err
	}

	r.logger.WithField("path", path).Info("PDF report written")
	return nil
}

func (r *PDFRenderer) section(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(31, 78, 120)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (r *PDFRenderer) summaryTable(pdf *fpdf.Fpdf, write func(string) string, rows []models.SummaryRow) {
	widths := []float64{42, 58, 28, 28, 24}
	headers := []string{"Category", "Metric", "Value", "Target", "Status"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(221, 235, 247)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		cells := []string{string(row.Category), row.Name, row.Value, row.Target, string(row.Status)}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, write(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func (r *PDFRenderer) opportunityTable(pdf *fpdf.Fpdf, write func(string) string, opportunities []models.Opportunity) {
	const maxRows = 15
	if len(opportunities) > maxRows {
		opportunities = opportunities[:maxRows]
	}

	widths := []float64{26, 24, 28, 26, 32, 34}
	headers := []string{"Date", "Service", "Region", "CPU (%)", "Cost (INR)", "Savings (INR)"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(221, 235, 247)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, o := range opportunities {
		cells := []string{
			o.Date.Format("2006-01-02"),
			o.Service,
			o.Region,
			fmt.Sprintf("%.1f", o.CPUUtilization),
			o.Cost.StringFixed(2),
			o.EstimatedSavings.StringFixed(2),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, write(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
