package reports

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/services"
)

// ExcelRenderer writes the FinOps dashboard workbook: a KPI sheet, the
// service/regional summaries, the monthly trend and the evaluation summary.
type ExcelRenderer struct {
	logger *logrus.Logger
}

// NewExcelRenderer creates a renderer.
func NewExcelRenderer(logger *logrus.Logger) *ExcelRenderer {
	return &ExcelRenderer{logger: logger}
}

// Render writes the workbook to path.
func (r *ExcelRenderer) Render(path string, analysis *services.AnalysisResult, evaluation *services.EvaluationReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			r.logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1F4E78"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := r.writeKPISheet(f, headerStyle, analysis, evaluation); err != nil {
		return err
	}
	if err := r.writeServiceSheet(f, headerStyle, analysis); err != nil {
		return err
	}
	if err := r.writeRegionSheet(f, headerStyle, analysis); err != nil {
		return err
	}
	if err := r.writeMonthlySheet(f, headerStyle, analysis); err != nil {
		return err
	}
	if err := r.writeSummarySheet(f, headerStyle, evaluation); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return err
	}

	r.logger.WithField("path", path).Info("Excel dashboard written")
	return nil
}

func (r *ExcelRenderer) writeKPISheet(f *excelize.File, headerStyle int, analysis *services.AnalysisResult, evaluation *services.EvaluationReport) error {
	const sheet = "KPI Dashboard"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]interface{}{
		{"KPI", "Value"},
		{"Total Cost (INR)", analysis.TotalCost.InexactFloat64()},
		{"Idle Cost (INR)", analysis.TotalIdleCost.InexactFloat64()},
		{"Waste Rate (%)", evaluation.KPIs.WasteRate},
		{"Unit Cost (INR per request)", evaluation.KPIs.UnitCostINR},
		{"Budget Variance (INR)", evaluation.KPIs.BudgetVariance.VarianceINR},
		{"Budget Variance (%)", evaluation.KPIs.BudgetVariance.VariancePct},
		{"RI/SP Coverage (%)", evaluation.KPIs.RISPCoverage},
		{"RI/SP Utilization (%)", evaluation.KPIs.RISPUtilization},
		{"Tag Compliance (%)", evaluation.KPIs.TagCompliance},
		{"Cost Growth CAGR (%)", evaluation.KPIs.CAGR},
		{"Spending Volatility CV (%)", evaluation.KPIs.CostVolatility},
		{"Avg CPU Utilization (%)", analysis.AvgUtilization},
		{"Anomalous Records", analysis.AnomalyCount},
		{"Potential Savings (INR)", analysis.TotalPotentialSavings.InexactFloat64()},
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "B", 32)
}

func (r *ExcelRenderer) writeServiceSheet(f *excelize.File, headerStyle int, analysis *services.AnalysisResult) error {
	const sheet = "Service Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Service", "Total Cost (INR)", "Idle Cost (INR)", "Avg Utilization (%)", "Share (%)", "Records"},
	}
	for _, s := range analysis.ServiceSummaries {
		rows = append(rows, []interface{}{
			s.Service,
			s.TotalCost.InexactFloat64(),
			s.IdleCost.InexactFloat64(),
			s.AvgUtilization,
			s.SharePct,
			s.Records,
		})
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "F1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "F", 20)
}

func (r *ExcelRenderer) writeRegionSheet(f *excelize.File, headerStyle int, analysis *services.AnalysisResult) error {
	const sheet = "Regional Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Region", "Total Cost (INR)", "Share (%)", "Records"},
	}
	for _, reg := range analysis.RegionalSummaries {
		rows = append(rows, []interface{}{
			reg.Region,
			reg.TotalCost.InexactFloat64(),
			reg.SharePct,
			reg.Records,
		})
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "D", 20)
}

func (r *ExcelRenderer) writeMonthlySheet(f *excelize.File, headerStyle int, analysis *services.AnalysisResult) error {
	const sheet = "Monthly Trend"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"Month", "Total Cost (INR)"}}
	for _, m := range analysis.MonthlyCosts {
		rows = append(rows, []interface{}{m.Month, m.Cost.InexactFloat64()})
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "B", 20)
}

func (r *ExcelRenderer) writeSummarySheet(f *excelize.File, headerStyle int, evaluation *services.EvaluationReport) error {
	const sheet = "Metrics Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"Category", "Metric", "Value", "Target", "Status"}}
	for _, row := range evaluation.Summary {
		rows = append(rows, []interface{}{
			string(row.Category), row.Name, row.Value, row.Target, string(row.Status),
		})
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "E", 24)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
