package models

import "time"

// ForecastPoint is a single forecasted observation with its 95% prediction
// interval. The three values are always populated together.
type ForecastPoint struct {
	Date     time.Time `json:"date"`
	Forecast float64   `json:"forecast"`
	Lower    float64   `json:"lower"`
	Upper    float64   `json:"upper"`
}

// ForecastResult holds the fitted-model output over a forecast horizon
// together with the insight figures the reports surface.
type ForecastResult struct {
	Points           []ForecastPoint `json:"points"`
	Alpha            float64         `json:"alpha"`
	Beta             float64         `json:"beta"`
	SSE              float64         `json:"sse"`
	CurrentDailyAvg  float64         `json:"current_daily_avg"`
	ForecastDailyAvg float64         `json:"forecast_daily_avg"`
	ProjectedChange  float64         `json:"projected_change_pct"`
	HorizonDays      int             `json:"horizon_days"`
}
