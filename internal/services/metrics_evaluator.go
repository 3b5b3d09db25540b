package services

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/utils"
)

// MetricsEvaluator computes a battery of forecast-accuracy statistics over a
// pair of equal-length cost series, optionally with a 95% prediction
// interval for coverage computation.
//
// The evaluator is pure: it holds only its input slices, has no
// configuration, and every method is a deterministic function of those
// inputs. Ratio metrics that can lose their denominator report a comma-ok
// false instead of returning NaN or Inf.
type MetricsEvaluator struct {
	actual    []float64
	predicted []float64
	lower     []float64
	upper     []float64
}

// NewMetricsEvaluator creates an evaluator over an actual/predicted pair.
// Mismatched lengths fail fast with a validation error; empty series are
// accepted and yield zero or undefined metrics.
func NewMetricsEvaluator(actual, predicted []float64) (*MetricsEvaluator, error) {
	if len(predicted) != len(actual) {
		return nil, utils.NewLengthMismatchError("predicted", len(actual), len(predicted))
	}
	return &MetricsEvaluator{actual: actual, predicted: predicted}, nil
}

// NewMetricsEvaluatorWithInterval additionally attaches lower/upper
// prediction-interval bounds, enabling PICP.
func NewMetricsEvaluatorWithInterval(actual, predicted, lower, upper []float64) (*MetricsEvaluator, error) {
	e, err := NewMetricsEvaluator(actual, predicted)
	if err != nil {
		return nil, err
	}
	if len(lower) != len(actual) {
		return nil, utils.NewLengthMismatchError("lower bound", len(actual), len(lower))
	}
	if len(upper) != len(actual) {
		return nil, utils.NewLengthMismatchError("upper bound", len(actual), len(upper))
	}
	e.lower = lower
	e.upper = upper
	return e, nil
}

// MAPE returns the mean absolute percentage error. Entries with a zero
// actual are excluded; if that excludes everything the metric is undefined.
func (e *MetricsEvaluator) MAPE() (float64, bool) {
	var sum float64
	var n int
	for i, a := range e.actual {
		if a == 0 {
			continue
		}
		sum += math.Abs((a - e.predicted[i]) / a)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return round2(sum / float64(n) * 100), true
}

// SMAPE returns the symmetric MAPE, which stays bounded when the actual
// series passes through zero. Entries with a zero denominator are excluded.
func (e *MetricsEvaluator) SMAPE() (float64, bool) {
	var sum float64
	var n int
	for i, a := range e.actual {
		denom := (math.Abs(a) + math.Abs(e.predicted[i])) / 2
		if denom == 0 {
			continue
		}
		sum += math.Abs(a-e.predicted[i]) / denom
		n++
	}
	if n == 0 {
		return 0, false
	}
	return round2(sum / float64(n) * 100), true
}

// WAPE returns the weighted absolute percentage error, undefined when the
// actual series sums to zero in absolute terms.
func (e *MetricsEvaluator) WAPE() (float64, bool) {
	var num, denom float64
	for i, a := range e.actual {
		num += math.Abs(a - e.predicted[i])
		denom += math.Abs(a)
	}
	if denom == 0 {
		return 0, false
	}
	return round2(num / denom * 100), true
}

// MAE returns the mean absolute error in the series' currency unit.
func (e *MetricsEvaluator) MAE() float64 {
	if len(e.actual) == 0 {
		return 0
	}
	var sum float64
	for i, a := range e.actual {
		sum += math.Abs(a - e.predicted[i])
	}
	return round2(sum / float64(len(e.actual)))
}

// RMSE returns the root mean squared error, which penalizes large misses.
func (e *MetricsEvaluator) RMSE() float64 {
	if len(e.actual) == 0 {
		return 0
	}
	var sum float64
	for i, a := range e.actual {
		d := a - e.predicted[i]
		sum += d * d
	}
	return round2(math.Sqrt(sum / float64(len(e.actual))))
}

// MdAPE returns the median absolute percentage error, robust to outliers.
// Entries with a zero actual are excluded.
func (e *MetricsEvaluator) MdAPE() (float64, bool) {
	apes := make([]float64, 0, len(e.actual))
	for i, a := range e.actual {
		if a == 0 {
			continue
		}
		apes = append(apes, math.Abs((a-e.predicted[i])/a)*100)
	}
	if len(apes) == 0 {
		return 0, false
	}
	sort.Float64s(apes)
	mid := len(apes) / 2
	if len(apes)%2 == 1 {
		return round2(apes[mid]), true
	}
	return round2((apes[mid-1] + apes[mid]) / 2), true
}

// R2 returns the coefficient of determination. It may be negative for
// forecasts worse than the mean; it is undefined for a constant actual
// series (zero total sum of squares).
func (e *MetricsEvaluator) R2() (float64, bool) {
	if len(e.actual) == 0 {
		return 0, false
	}
	mean := stat.Mean(e.actual, nil)
	var ssRes, ssTot float64
	for i, a := range e.actual {
		r := a - e.predicted[i]
		t := a - mean
		ssRes += r * r
		ssTot += t * t
	}
	if ssTot == 0 {
		return 0, false
	}
	return round3(1 - ssRes/ssTot), true
}

// Bias returns the signed mean error; positive means over-forecasting.
func (e *MetricsEvaluator) Bias() float64 {
	if len(e.actual) == 0 {
		return 0
	}
	var sum float64
	for i, a := range e.actual {
		sum += e.predicted[i] - a
	}
	return round2(sum / float64(len(e.actual)))
}

// BiasPercent returns bias relative to the mean actual, or 0 when the mean
// actual is zero.
func (e *MetricsEvaluator) BiasPercent() float64 {
	if len(e.actual) == 0 {
		return 0
	}
	meanActual := stat.Mean(e.actual, nil)
	if meanActual == 0 {
		return 0
	}
	var sum float64
	for i, a := range e.actual {
		sum += e.predicted[i] - a
	}
	bias := sum / float64(len(e.actual))
	return round2(bias / meanActual * 100)
}

// PICP returns the prediction interval coverage probability: the percentage
// of actuals lying inside [lower, upper]. Undefined without interval bounds.
func (e *MetricsEvaluator) PICP() (float64, bool) {
	if e.lower == nil || e.upper == nil || len(e.actual) == 0 {
		return 0, false
	}
	var inside int
	for i, a := range e.actual {
		if a >= e.lower[i] && a <= e.upper[i] {
			inside++
		}
	}
	return round2(float64(inside) / float64(len(e.actual)) * 100), true
}

// MASE scales the model's MAE by the mean absolute value of a naive
// forecast's errors. Undefined when the naive MAE is zero.
func (e *MetricsEvaluator) MASE(naiveErrors []float64) (float64, bool) {
	if len(e.actual) == 0 || len(naiveErrors) == 0 {
		return 0, false
	}
	var maeModel float64
	for i, a := range e.actual {
		maeModel += math.Abs(a - e.predicted[i])
	}
	maeModel /= float64(len(e.actual))

	var maeNaive float64
	for _, v := range naiveErrors {
		maeNaive += math.Abs(v)
	}
	maeNaive /= float64(len(naiveErrors))
	if maeNaive == 0 {
		return 0, false
	}
	return round3(maeModel / maeNaive), true
}

// NaiveErrors derives the one-step naive forecast errors from the actual
// series, i.e. the successive differences. Suitable as the MASE baseline.
func (e *MetricsEvaluator) NaiveErrors() []float64 {
	if len(e.actual) < 2 {
		return nil
	}
	errs := make([]float64, len(e.actual)-1)
	for i := 1; i < len(e.actual); i++ {
		errs[i-1] = e.actual[i] - e.actual[i-1]
	}
	return errs
}

// Metric name keys used by AllForecastMetrics and the report sinks.
const (
	MetricMAPE  = "MAPE (%)"
	MetricSMAPE = "sMAPE (%)"
	MetricWAPE  = "WAPE (%)"
	MetricMAE   = "MAE (INR)"
	MetricRMSE  = "RMSE (INR)"
	MetricMdAPE = "MdAPE (%)"
	MetricR2    = "R² Score"
	MetricBias  = "Bias (INR)"
	MetricBiasP = "Bias (%)"
	MetricPICP  = "PICP (%)"
)

// AllForecastMetrics returns the full battery as an ordered list of named
// values. Metrics without a defined result keep their slot with
// Defined=false so the reporting layer can render them consistently.
func (e *MetricsEvaluator) AllForecastMetrics() []models.MetricValue {
	out := make([]models.MetricValue, 0, 10)

	appendOk := func(name string, v float64, ok bool) {
		out = append(out, models.MetricValue{Name: name, Value: v, Defined: ok})
	}

	v, ok := e.MAPE()
	appendOk(MetricMAPE, v, ok)
	v, ok = e.SMAPE()
	appendOk(MetricSMAPE, v, ok)
	v, ok = e.WAPE()
	appendOk(MetricWAPE, v, ok)
	appendOk(MetricMAE, e.MAE(), true)
	appendOk(MetricRMSE, e.RMSE(), true)
	v, ok = e.MdAPE()
	appendOk(MetricMdAPE, v, ok)
	v, ok = e.R2()
	appendOk(MetricR2, v, ok)
	appendOk(MetricBias, e.Bias(), true)
	appendOk(MetricBiasP, e.BiasPercent(), true)
	v, ok = e.PICP()
	appendOk(MetricPICP, v, ok)

	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
