package reports

import (
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/sirupsen/logrus"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/services"
)

// DashboardRenderer writes a single-page interactive FinOps dashboard.
type DashboardRenderer struct {
	logger *logrus.Logger
}

// NewDashboardRenderer creates a renderer.
func NewDashboardRenderer(logger *logrus.Logger) *DashboardRenderer {
	return &DashboardRenderer{logger: logger}
}

// Render writes the dashboard HTML to path.
func (r *DashboardRenderer) Render(path string, analysis *services.AnalysisResult, evaluation *services.EvaluationReport, forecast *models.ForecastResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		r.kpiGauge("Waste Rate (%)", evaluation.KPIs.WasteRate),
		r.kpiGauge("RI/SP Coverage (%)", evaluation.KPIs.RISPCoverage),
		r.kpiGauge("RI/SP Utilization (%)", evaluation.KPIs.RISPUtilization),
		r.kpiGauge("Tag Compliance (%)", evaluation.KPIs.TagCompliance),
		r.dailyTrendChart(analysis, forecast),
		r.monthlyBarChart(analysis),
		r.serviceShareChart(analysis),
		r.kpiBarChart(evaluation),
	)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return err
	}

	r.logger.WithField("path", path).Info("HTML dashboard written")
	return nil
}

// kpiGauge renders one percentage KPI as a dial in the dashboard's card row.
func (r *DashboardRenderer) kpiGauge(name string, value float64) *charts.Gauge {
	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: name}),
	)
	gauge.AddSeries(name, []opts.GaugeData{{Name: name, Value: value}})
	return gauge
}

func (r *DashboardRenderer) dailyTrendChart(analysis *services.AnalysisResult, forecast *models.ForecastResult) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Daily AWS Spend", Subtitle: "Historical and forecasted daily cost (INR)"}),
	)

	dates, values := analysis.DailySeries()
	labels := make([]string, 0, len(dates)+horizonLen(forecast))
	historical := make([]opts.LineData, 0, len(values))
	for i, d := range dates {
		labels = append(labels, d.Format("2006-01-02"))
		historical = append(historical, opts.LineData{Value: values[i]})
	}

	line.SetXAxis(labels).AddSeries("Historical", historical)

	if forecast != nil {
		projected := make([]opts.LineData, 0, len(values)+len(forecast.Points))
		// pad so the forecast continues where history ends
		for range values {
			projected = append(projected, opts.LineData{Value: "-"})
		}
		for _, p := range forecast.Points {
			labels = append(labels, p.Date.Format("2006-01-02"))
			projected = append(projected, opts.LineData{Value: p.Forecast})
		}
		line.SetXAxis(labels).AddSeries("Forecast", projected)
	}

	return line
}

func (r *DashboardRenderer) monthlyBarChart(analysis *services.AnalysisResult) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Monthly AWS Costs", Subtitle: "Total spend per calendar month (INR)"}),
	)

	labels := make([]string, len(analysis.MonthlyCosts))
	data := make([]opts.BarData, len(analysis.MonthlyCosts))
	for i, m := range analysis.MonthlyCosts {
		labels[i] = m.Month
		data[i] = opts.BarData{Value: m.Cost.InexactFloat64()}
	}

	bar.SetXAxis(labels).AddSeries("Cost (INR)", data)
	return bar
}

func (r *DashboardRenderer) serviceShareChart(analysis *services.AnalysisResult) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Cost Share by Service"}),
	)

	data := make([]opts.PieData, len(analysis.ServiceSummaries))
	for i, s := range analysis.ServiceSummaries {
		data[i] = opts.PieData{Name: s.Service, Value: s.TotalCost.InexactFloat64()}
	}

	pie.AddSeries("share", data)
	return pie
}

func (r *DashboardRenderer) kpiBarChart(evaluation *services.EvaluationReport) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "FinOps KPIs", Subtitle: "Percentage-based governance indicators"}),
	)

	kpis := evaluation.KPIs
	labels := []string{"Waste Rate", "Budget Var", "RI/SP Coverage", "RI/SP Utilization", "Tag Compliance", "Volatility (CV)"}
	data := []opts.BarData{
		{Value: kpis.WasteRate},
		{Value: kpis.BudgetVariance.VariancePct},
		{Value: kpis.RISPCoverage},
		{Value: kpis.RISPUtilization},
		{Value: kpis.TagCompliance},
		{Value: kpis.CostVolatility},
	}

	bar.SetXAxis(labels).AddSeries("Percent", data)
	return bar
}

func horizonLen(forecast *models.ForecastResult) int {
	if forecast == nil {
		return 0
	}
	return len(forecast.Points)
}
