package reports

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/services"
)

var (
	colorActual   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	colorForecast = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	colorBound    = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	colorBar      = color.RGBA{R: 0, G: 128, B: 128, A: 255}
)

// ChartRenderer writes the PNG chart set into an output directory.
type ChartRenderer struct {
	outputDir string
	logger    *logrus.Logger
}

// NewChartRenderer creates a renderer writing into outputDir.
func NewChartRenderer(outputDir string, logger *logrus.Logger) *ChartRenderer {
	return &ChartRenderer{outputDir: outputDir, logger: logger}
}

// RenderAll produces the full chart set and returns the written file paths.
// The forecast chart is skipped when forecast is nil.
func (c *ChartRenderer) RenderAll(analysis *services.AnalysisResult, forecast *models.ForecastResult) ([]string, error) {
	if err := os.MkdirAll(c.outputDir, 0o755); err != nil {
		return nil, err
	}

	renders := []struct {
		name string
		fn   func(string) error
	}{
		{"daily_cost_trend.png", func(p string) error { return c.renderDailyTrend(analysis, p) }},
		{"monthly_costs.png", func(p string) error { return c.renderMonthlyBars(analysis, p) }},
		{"cost_by_service.png", func(p string) error { return c.renderServiceBars(analysis, p) }},
		{"cost_by_region.png", func(p string) error { return c.renderRegionBars(analysis, p) }},
		{"utilization_vs_cost.png", func(p string) error { return c.renderUtilizationScatter(analysis, p) }},
	}
	if forecast != nil {
		renders = append(renders, struct {
			name string
			fn   func(string) error
		}{"cost_forecast.png", func(p string) error { return c.renderForecast(analysis, forecast, p) }})
	}

	var written []string
	for _, r := range renders {
		path := filepath.Join(c.outputDir, r.name)
		if err := r.fn(path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	c.logger.WithFields(logrus.Fields{
		"charts": len(written),
		"dir":    c.outputDir,
	}).Info("Rendered chart set")

	return written, nil
}

func (c *ChartRenderer) renderDailyTrend(analysis *services.AnalysisResult, path string) error {
	p := newTimePlot("Daily AWS Cost Trend", "Cost (INR)")

	dates, values := analysis.DailySeries()
	pts := make(plotter.XYs, len(values))
	for i := range values {
		pts[i].X = float64(dates[i].Unix())
		pts[i].Y = values[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = colorActual
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("Daily cost", line)

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

func (c *ChartRenderer) renderMonthlyBars(analysis *services.AnalysisResult, path string) error {
	labels := make([]string, len(analysis.MonthlyCosts))
	values := make(plotter.Values, len(analysis.MonthlyCosts))
	for i, m := range analysis.MonthlyCosts {
		labels[i] = m.Month
		values[i] = m.Cost.InexactFloat64()
	}
	return renderBars("Monthly AWS Costs", "Cost (INR)", labels, values, path)
}

func (c *ChartRenderer) renderServiceBars(analysis *services.AnalysisResult, path string) error {
	labels := make([]string, len(analysis.ServiceSummaries))
	values := make(plotter.Values, len(analysis.ServiceSummaries))
	for i, s := range analysis.ServiceSummaries {
		labels[i] = s.Service
		values[i] = s.TotalCost.InexactFloat64()
	}
	return renderBars("Total Cost by AWS Service", "Cost (INR)", labels, values, path)
}

func (c *ChartRenderer) renderRegionBars(analysis *services.AnalysisResult, path string) error {
	labels := make([]string, len(analysis.RegionalSummaries))
	values := make(plotter.Values, len(analysis.RegionalSummaries))
	for i, r := range analysis.RegionalSummaries {
		labels[i] = r.Region
		values[i] = r.TotalCost.InexactFloat64()
	}
	return renderBars("Total Cost by Region", "Cost (INR)", labels, values, path)
}

func (c *ChartRenderer) renderUtilizationScatter(analysis *services.AnalysisResult, path string) error {
	p := plot.New()
	p.Title.Text = "CPU Utilization vs Cost by Service"
	p.X.Label.Text = "Avg CPU Utilization (%)"
	p.Y.Label.Text = "Total Cost (INR)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, len(analysis.ServiceSummaries))
	for _, s := range analysis.ServiceSummaries {
		// services without a CPU metric have nothing to plot
		if s.AvgUtilization <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: s.AvgUtilization, Y: s.TotalCost.InexactFloat64()})
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = colorActual
	scatter.GlyphStyle.Radius = vg.Points(4)
	p.Add(scatter)

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

func (c *ChartRenderer) renderForecast(analysis *services.AnalysisResult, forecast *models.ForecastResult, path string) error {
	p := newTimePlot("AWS Cost Forecast", "Daily Cost (INR)")

	dates, values := analysis.DailySeries()
	history := make(plotter.XYs, len(values))
	for i := range values {
		history[i].X = float64(dates[i].Unix())
		history[i].Y = values[i]
	}
	historyLine, err := plotter.NewLine(history)
	if err != nil {
		return err
	}
	historyLine.Color = colorActual
	historyLine.Width = vg.Points(1.5)

	projected := make(plotter.XYs, len(forecast.Points))
	lower := make(plotter.XYs, len(forecast.Points))
	upper := make(plotter.XYs, len(forecast.Points))
	for i, pt := range forecast.Points {
		x := float64(pt.Date.Unix())
		projected[i] = plotter.XY{X: x, Y: pt.Forecast}
		lower[i] = plotter.XY{X: x, Y: pt.Lower}
		upper[i] = plotter.XY{X: x, Y: pt.Upper}
	}

	forecastLine, err := plotter.NewLine(projected)
	if err != nil {
		return err
	}
	forecastLine.Color = colorForecast
	forecastLine.Width = vg.Points(1.5)
	forecastLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	lowerLine, err := plotter.NewLine(lower)
	if err != nil {
		return err
	}
	upperLine, err := plotter.NewLine(upper)
	if err != nil {
		return err
	}
	for _, l := range []*plotter.Line{lowerLine, upperLine} {
		l.Color = colorBound
		l.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	}

	p.Add(historyLine, forecastLine, lowerLine, upperLine)
	p.Legend.Add("Historical", historyLine)
	p.Legend.Add("Forecast", forecastLine)
	p.Legend.Add("95% interval", lowerLine)

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

func newTimePlot(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.Add(plotter.NewGrid())
	return p
}

func renderBars(title, yLabel string, labels []string, values plotter.Values, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(25))
	if err != nil {
		return err
	}
	bars.Color = colorBar
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}
