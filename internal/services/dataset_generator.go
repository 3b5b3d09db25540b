package services

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/config"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/utils"
)

// serviceProfile drives per-service cost and utilization behavior in the
// synthetic dataset.
type serviceProfile struct {
	baseCost float64
	utilMin  float64
	utilMax  float64
	hasRI    bool
}

var serviceProfiles = map[string]serviceProfile{
	"EC2":    {baseCost: 150, utilMin: 40, utilMax: 95, hasRI: true},
	"RDS":    {baseCost: 120, utilMin: 50, utilMax: 90, hasRI: true},
	"S3":     {baseCost: 50, hasRI: false}, // no CPU metric
	"Lambda": {baseCost: 30, hasRI: false}, // serverless, no CPU metric
	"ECS":    {baseCost: 80, utilMin: 60, utilMax: 95, hasRI: false},
}

var regionMultipliers = map[string]float64{
	"us-east-1":  1.0,
	"us-west-2":  1.05,
	"ap-south-1": 0.95,
}

var (
	generatorServices  = []string{"EC2", "RDS", "S3", "Lambda", "ECS"}
	generatorRegions   = []string{"us-east-1", "us-west-2", "ap-south-1"}
	ownerTeams         = []string{"Engineering", "DataScience", "DevOps", "Marketing", "Product"}
	environments       = []string{"Production", "Staging", "Development", "Testing"}
	environmentWeights = []float64{0.5, 0.2, 0.2, 0.1}
)

// DatasetGenerator produces a synthetic AWS billing dataset with FinOps
// attributes: a downward cost trend from optimization work, annual
// seasonality, improving tag compliance and RI/SP coverage, rightsizing and
// storage opportunities, and per-service budget variance.
//
// All randomness flows through the injected *rand.Rand so a fixed seed
// reproduces the dataset exactly.
type DatasetGenerator struct {
	cfg    *config.GeneratorConfig
	rng    *rand.Rand
	logger *logrus.Logger
}

// NewDatasetGenerator creates a generator seeded from the configuration.
func NewDatasetGenerator(cfg *config.GeneratorConfig, logger *logrus.Logger) *DatasetGenerator {
	return &DatasetGenerator{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		logger: logger,
	}
}

// Generate builds the configured number of billing records, sampled on
// distinct days across the configured date range and sorted by date.
func (g *DatasetGenerator) Generate() ([]models.BillingRecord, error) {
	start, err := time.Parse("2006-01-02", g.cfg.StartDate)
	if err != nil {
		return nil, utils.NewValidationErrorf("invalid start date %q: %v", g.cfg.StartDate, err)
	}
	end, err := time.Parse("2006-01-02", g.cfg.EndDate)
	if err != nil {
		return nil, utils.NewValidationErrorf("invalid end date %q: %v", g.cfg.EndDate, err)
	}
	if !end.After(start) {
		return nil, utils.NewValidationError("end date must be after start date")
	}

	totalDays := int(end.Sub(start).Hours() / 24)
	if g.cfg.Records > totalDays+1 {
		return nil, utils.NewValidationErrorf("cannot sample %d distinct days from a %d-day range", g.cfg.Records, totalDays+1)
	}

	dates := g.sampleDates(start, totalDays, g.cfg.Records)

	records := make([]models.BillingRecord, 0, len(dates))
	for _, date := range dates {
		records = append(records, g.generateRecord(date, start, totalDays))
	}

	g.logger.WithFields(logrus.Fields{
		"records":    len(records),
		"start_date": g.cfg.StartDate,
		"end_date":   g.cfg.EndDate,
		"seed":       g.cfg.Seed,
	}).Info("Generated synthetic billing dataset")

	return records, nil
}

// sampleDates picks n distinct day offsets without replacement and returns
// them in chronological order.
func (g *DatasetGenerator) sampleDates(start time.Time, totalDays, n int) []time.Time {
	offsets := g.rng.Perm(totalDays + 1)[:n]
	sort.Ints(offsets)
	dates := make([]time.Time, n)
	for i, off := range offsets {
		dates[i] = start.AddDate(0, 0, off)
	}
	return dates
}

func (g *DatasetGenerator) generateRecord(date, start time.Time, totalDays int) models.BillingRecord {
	service := generatorServices[g.rng.Intn(len(generatorServices))]
	region := generatorRegions[g.rng.Intn(len(generatorRegions))]
	profile := serviceProfiles[service]

	daysSinceStart := int(date.Sub(start).Hours() / 24)
	progress := float64(daysSinceStart) / float64(totalDays)

	// 40% cost reduction across the period as optimization lands.
	trendFactor := 1.0 - 0.4*progress

	// Q4 peaks, Q2 troughs.
	dayOfYear := float64(date.YearDay())
	seasonalFactor := 1.0 + 0.3*math.Sin(2*math.Pi*(dayOfYear-80)/365.25)

	regionMultiplier := regionMultipliers[region]

	noise := g.rng.NormFloat64() * profile.baseCost * 0.15
	costUSD := math.Max(10, profile.baseCost*trendFactor*seasonalFactor*regionMultiplier+noise)
	costINR := costUSD * g.cfg.ExchangeRate

	// CPU utilization improves over time where the service reports one.
	var cpuUtilization float64
	if profile.utilMax > 0 {
		base := profile.utilMin + g.rng.Float64()*(profile.utilMax-profile.utilMin)
		cpuUtilization = math.Min(profile.utilMax, base+15*progress)
	}

	var idleCostINR float64
	if cpuUtilization > 0 {
		idleCostINR = costINR * (1 - cpuUtilization/100)
	} else {
		// S3 and Lambda carry an assumed 20% unused-capacity waste.
		idleCostINR = costINR * 0.20
	}

	// Tag compliance drifts from 65% to 95% over the period.
	hasRequiredTags := g.rng.Float64() < 0.65+0.30*progress

	// RI/SP coverage drifts from 50% to 75% where commitments apply.
	var coveredByRISP bool
	var riUtilization float64
	if profile.hasRI {
		coveredByRISP = g.rng.Float64() < 0.50+0.25*progress
	}
	if coveredByRISP {
		riUtilization = 85 + g.rng.Float64()*13
	}

	rightsizing := models.RightsizingOptimal
	var potentialSavings float64
	switch {
	case cpuUtilization > 0 && cpuUtilization < 40:
		rightsizing = models.RightsizingDownsize
		potentialSavings = costINR * 0.40
	case cpuUtilization > 90:
		rightsizing = models.RightsizingUpsize
	}

	storageClass := "N/A"
	if service == "S3" {
		storageClass = []string{"Standard", "IA", "Glacier"}[g.rng.Intn(3)]
		if storageClass == "Standard" {
			potentialSavings = costINR * 0.30
		} else {
			potentialSavings = 0
		}
	}

	requestsPerDay := g.requestsPerDay(service)
	var unitCostINR float64
	if requestsPerDay > 0 {
		// Per 1000 requests.
		unitCostINR = costINR / float64(requestsPerDay) * 1000
	}

	dailyBudget := g.cfg.Budgets[service] / 30
	budgetVarianceINR := costINR - dailyBudget
	var budgetVariancePct float64
	if dailyBudget > 0 {
		budgetVariancePct = budgetVarianceINR / dailyBudget * 100
	}

	expectedINR := profile.baseCost * trendFactor * seasonalFactor * regionMultiplier * g.cfg.ExchangeRate
	isAnomaly := costINR > expectedINR*1.30

	usageHours := 1 + g.rng.Float64()*23

	return models.BillingRecord{
		Date:                   date,
		Service:                service,
		Region:                 region,
		UsageHours:             round2(usageHours),
		CPUUtilization:         round2(cpuUtilization),
		CostUSD:                decimal.NewFromFloat(round2(costUSD)),
		CostINR:                decimal.NewFromFloat(round2(costINR)),
		IdleCostINR:            decimal.NewFromFloat(round2(idleCostINR)),
		HasRequiredTags:        hasRequiredTags,
		CoveredByRISP:          coveredByRISP,
		RISPUtilization:        round2(riUtilization),
		RightsizingOpportunity: rightsizing,
		PotentialSavingsINR:    decimal.NewFromFloat(round2(potentialSavings)),
		StorageClass:           storageClass,
		OwnerTeam:              ownerTeams[g.rng.Intn(len(ownerTeams))],
		Environment:            g.weightedEnvironment(),
		RequestsPerDay:         requestsPerDay,
		UnitCostINR:            decimal.NewFromFloat(round2(unitCostINR)),
		DailyBudgetINR:         decimal.NewFromFloat(round2(dailyBudget)),
		BudgetVarianceINR:      decimal.NewFromFloat(round2(budgetVarianceINR)),
		BudgetVariancePct:      round2(budgetVariancePct),
		IsAnomaly:              isAnomaly,
	}
}

func (g *DatasetGenerator) requestsPerDay(service string) int {
	uniform := func(lo, hi float64) int {
		return int(lo + g.rng.Float64()*(hi-lo))
	}
	switch service {
	case "EC2", "Lambda", "ECS":
		return uniform(50000, 200000)
	case "RDS":
		return uniform(100000, 500000)
	case "S3":
		return uniform(10000, 100000)
	default:
		return 0
	}
}

func (g *DatasetGenerator) weightedEnvironment() string {
	r := g.rng.Float64()
	var cum float64
	for i, w := range environmentWeights {
		cum += w
		if r < cum {
			return environments[i]
		}
	}
	return environments[len(environments)-1]
}
