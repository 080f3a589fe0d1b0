package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClassAssumption holds the annualized expected return and volatility for
// one asset class, expressed as decimal fractions (0.10 = 10%/yr). These
// are tuning inputs, not values derived from live data.
type ClassAssumption struct {
	Return     float64 `json:"return"`
	Volatility float64 `json:"volatility"`
}

type SimulationConfig struct {
	Iterations     int    `json:"iterations"`
	HorizonPeriods int    `json:"horizonPeriods"`
	Seed           uint64 `json:"seed"`

	// RiskFreeRate is in the same percentage units as portfolio return.
	RiskFreeRate float64 `json:"riskFreeRate"`

	Assumptions map[AssetClass]ClassAssumption `json:"assumptions"`

	// RateSensitivity maps each class to its response per percentage
	// point of rate change. Negative means higher rates hurt.
	RateSensitivity map[AssetClass]float64 `json:"rateSensitivity"`

	// MonthlyVolatility is the stdev of the noise term in the rate
	// scenario projection, in the same pre-division units as
	// portfolio impact.
	MonthlyVolatility float64 `json:"monthlyVolatility"`
}

func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		Iterations:     1000,
		HorizonPeriods: 252,
		Seed:           42,
		RiskFreeRate:   3.0,
		Assumptions: map[AssetClass]ClassAssumption{
			AssetClassEquity:      {Return: 0.10, Volatility: 0.16},
			AssetClassFixedIncome: {Return: 0.04, Volatility: 0.05},
			AssetClassCrypto:      {Return: 0.15, Volatility: 0.60},
			AssetClassCash:        {Return: 0.02, Volatility: 0.01},
		},
		RateSensitivity: map[AssetClass]float64{
			AssetClassEquity:      -0.5,
			AssetClassFixedIncome: -2.0,
			AssetClassCrypto:      -1.0,
			AssetClassCash:        1.0,
		},
		MonthlyVolatility: 0.02,
	}
}

type SimulationStats struct {
	MeanFinalValue    float64 `json:"meanFinalValue"`
	MedianFinalValue  float64 `json:"medianFinalValue"`
	StdevFinalValue   float64 `json:"stdFinalValue"`
	Percentile5       float64 `json:"percentile5"`
	Percentile95      float64 `json:"percentile95"`
	ProbabilityOfLoss float64 `json:"probabilityOfLoss"`
	ExpectedReturn    float64 `json:"expectedReturn"`
	InitialValue      float64 `json:"initialValue"`
}

type SimulationRun struct {
	RunID          uuid.UUID       `json:"runID"`
	Iterations     int             `json:"iterations"`
	HorizonPeriods int             `json:"horizonPeriods"`
	Seed           uint64          `json:"seed"`
	Trajectories   [][]float64     `json:"-"`
	FinalValues    []float64       `json:"-"`
	Stats          SimulationStats `json:"statistics"`
}

type ScenarioResult struct {
	Key             string    `json:"key"`
	Name            string    `json:"name"`
	RateChange      float64   `json:"rateChange"`
	PortfolioImpact float64   `json:"portfolioImpact"`
	MonthlyValues   []float64 `json:"monthlyValues"`
	FinalValue      float64   `json:"finalValue"`
	TotalReturn     float64   `json:"totalReturn"`
}

type RiskReport struct {
	VaR95                    float64 `json:"var95"`
	VaR99                    float64 `json:"var99"`
	VaR95Percent             float64 `json:"var95Percent"`
	VaR99Percent             float64 `json:"var99Percent"`
	ExpectedShortfall        float64 `json:"expectedShortfall"`
	ExpectedShortfallPercent float64 `json:"expectedShortfallPercent"`

	// MaxDrawdownEstimate is measured over a bounded sample of
	// trajectories, so it is a lower bound on the true ensemble
	// figure, not the expected drawdown.
	MaxDrawdownEstimate float64 `json:"maxDrawdownEstimate"`

	Volatility float64 `json:"portfolioVolatility"`
	Sharpe     float64 `json:"sharpeRatio"`
}

type RebalanceDirection string

const (
	RebalanceIncrease RebalanceDirection = "increase"
	RebalanceDecrease RebalanceDirection = "decrease"
)

type RebalanceAction struct {
	Class      AssetClass         `json:"assetClass"`
	Direction  RebalanceDirection `json:"action"`
	CurrentPct float64            `json:"currentAllocation"`
	TargetPct  float64            `json:"targetAllocation"`
	Difference float64            `json:"difference"`
}

type RebalancePlan struct {
	PlanID            uuid.UUID              `json:"planID"`
	RebalancingNeeded bool                   `json:"rebalancingNeeded"`
	Actions           []RebalanceAction      `json:"actions"`
	Current           map[AssetClass]float64 `json:"currentAllocation"`
	Target            map[AssetClass]float64 `json:"targetAllocation"`
	CreatedAt         time.Time              `json:"createdAt"`
}
