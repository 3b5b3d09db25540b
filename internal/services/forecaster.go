package services

import (
	"math"
	"time"

	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/trend"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/config"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/utils"
)

// Forecaster projects the daily cost series forward with Holt's
// additive-trend exponential smoothing. Smoothing weights are chosen by grid
// search over the in-sample sum of squared errors, and the 95% prediction
// interval comes from the residual spread of the fitted model.
type Forecaster struct {
	cfg    *config.ForecastConfig
	logger *logrus.Logger
}

// NewForecaster creates a forecaster.
func NewForecaster(cfg *config.ForecastConfig, logger *logrus.Logger) *Forecaster {
	return &Forecaster{cfg: cfg, logger: logger}
}

type holtModel struct {
	alpha     float64
	beta      float64
	level     float64
	trend     float64
	sse       float64
	residuals []float64
}

// Forecast fits the smoother to the daily series and projects it over the
// configured horizon. At least two observations are required to seed the
// trend component.
func (f *Forecaster) Forecast(dates []time.Time, values []float64) (*models.ForecastResult, error) {
	if len(dates) != len(values) {
		return nil, utils.NewLengthMismatchError("values", len(dates), len(values))
	}
	if len(values) < 2 {
		return nil, utils.NewValidationErrorf("need at least 2 observations to forecast, got %d", len(values))
	}

	model := fitHolt(values)

	sigma := math.Sqrt(stat.PopVariance(model.residuals, nil))
	margin := 1.96 * sigma

	lastDate := dates[len(dates)-1]
	points := make([]models.ForecastPoint, f.cfg.HorizonDays)
	for h := 1; h <= f.cfg.HorizonDays; h++ {
		projected := model.level + float64(h)*model.trend
		points[h-1] = models.ForecastPoint{
			Date:     lastDate.AddDate(0, 0, h),
			Forecast: round2(projected),
			Lower:    round2(projected - margin),
			Upper:    round2(projected + margin),
		}
	}

	result := &models.ForecastResult{
		Points:      points,
		Alpha:       model.alpha,
		Beta:        model.beta,
		SSE:         round2(model.sse),
		HorizonDays: f.cfg.HorizonDays,
	}

	recent := values
	if len(recent) > 30 {
		recent = recent[len(recent)-30:]
	}
	result.CurrentDailyAvg = round2(stat.Mean(recent, nil))

	forecastValues := make([]float64, len(points))
	for i, p := range points {
		forecastValues[i] = p.Forecast
	}
	result.ForecastDailyAvg = round2(stat.Mean(forecastValues, nil))
	if result.CurrentDailyAvg != 0 {
		result.ProjectedChange = round2((result.ForecastDailyAvg - result.CurrentDailyAvg) / result.CurrentDailyAvg * 100)
	}

	f.logger.WithFields(logrus.Fields{
		"alpha":            result.Alpha,
		"beta":             result.Beta,
		"horizon_days":     result.HorizonDays,
		"current_avg":      result.CurrentDailyAvg,
		"forecast_avg":     result.ForecastDailyAvg,
		"projected_change": result.ProjectedChange,
	}).Info("Cost forecast generated")

	return result, nil
}

// fitHolt grid-searches the smoothing weights and returns the model with the
// lowest in-sample SSE.
func fitHolt(values []float64) *holtModel {
	var best *holtModel
	for alpha := 0.05; alpha < 1; alpha += 0.05 {
		for beta := 0.05; beta < 1; beta += 0.05 {
			m := runHolt(values, alpha, beta)
			if best == nil || m.sse < best.sse {
				best = m
			}
		}
	}
	return best
}

func runHolt(values []float64, alpha, beta float64) *holtModel {
	level := values[0]
	trendComp := values[1] - values[0]
	m := &holtModel{alpha: alpha, beta: beta, residuals: make([]float64, 0, len(values)-1)}

	for _, y := range values[1:] {
		fitted := level + trendComp
		residual := y - fitted
		m.sse += residual * residual
		m.residuals = append(m.residuals, residual)

		prevLevel := level
		level = alpha*y + (1-alpha)*(level+trendComp)
		trendComp = beta*(level-prevLevel) + (1-beta)*trendComp
	}

	m.level = level
	m.trend = trendComp
	return m
}

// SMABaseline returns the simple moving average of the series over the
// configured period. The output is shorter than the input by period-1
// observations, aligned to the end of the series.
func (f *Forecaster) SMABaseline(values []float64) []float64 {
	if len(values) < f.cfg.SMAPeriod {
		return nil
	}
	sma := trend.NewSmaWithPeriod[float64](f.cfg.SMAPeriod)
	return helper.ChanToSlice(sma.Compute(helper.SliceToChan(values)))
}

// Holdout performs the chronological train/test split used to demonstrate
// the metric battery: the test window's actuals against a trailing moving
// average computed from the training window.
func (f *Forecaster) Holdout(values []float64) (actual, predicted []float64, err error) {
	if len(values) < f.cfg.SMAPeriod*2 {
		return nil, nil, utils.NewValidationErrorf("need at least %d observations for a holdout evaluation, got %d", f.cfg.SMAPeriod*2, len(values))
	}

	splitIdx := int(float64(len(values)) * f.cfg.TrainSplit)
	train := values[:splitIdx]
	test := values[splitIdx:]

	smoothed := f.SMABaseline(train)
	if len(smoothed) == 0 {
		return nil, nil, utils.NewValidationError("training window shorter than the smoothing period")
	}

	n := len(test)
	if len(smoothed) < n {
		n = len(smoothed)
	}
	return test[:n], smoothed[len(smoothed)-n:], nil
}
