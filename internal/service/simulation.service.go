package service

import (
	"context"
	"fmt"
	"math"
	"portfolioadvisor/internal/calculator"
	"portfolioadvisor/internal/domain"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const periodsPerYear = 252

// SimulationService projects the portfolio's value distribution. Both
// sub-algorithms run over a snapshot of the store, never its live state.
type SimulationService interface {
	RunMonteCarlo(ctx context.Context, iterations, horizonPeriods int, seed uint64) (*domain.SimulationRun, error)
	RateScenarios(ctx context.Context, seed uint64) (map[string]domain.ScenarioResult, error)
}

type simulationServiceHandler struct {
	portfolioService PortfolioService
	config           domain.SimulationConfig
}

func NewSimulationService(portfolioService PortfolioService, config domain.SimulationConfig) (SimulationService, error) {
	for _, class := range domain.AllAssetClasses {
		if _, ok := config.Assumptions[class]; !ok {
			return nil, fmt.Errorf("%w: no return/volatility assumption for asset class %s", domain.ErrConfiguration, class)
		}
		if _, ok := config.RateSensitivity[class]; !ok {
			return nil, fmt.Errorf("%w: no rate sensitivity for asset class %s", domain.ErrConfiguration, class)
		}
	}
	if config.MonthlyVolatility < 0 {
		return nil, fmt.Errorf("%w: monthly volatility must be >= 0, got %f", domain.ErrConfiguration, config.MonthlyVolatility)
	}

	return &simulationServiceHandler{
		portfolioService: portfolioService,
		config:           config,
	}, nil
}

// portfolioParameters folds the per-class assumptions into a single
// expected return and volatility, weighting by current allocation.
// Volatility sums squared weighted class terms, which assumes class
// returns are independent - no cross-asset covariance. That is a known
// modeling simplification.
func (h *simulationServiceHandler) portfolioParameters() (mu float64, sigma float64) {
	weights := h.portfolioService.AllocationByClass()

	// Accumulate in the fixed class order: float summation order must
	// not depend on map iteration, or the same seed stops being
	// bit-reproducible.
	sumSquares := 0.0
	for _, class := range domain.AllAssetClasses {
		weight := weights[class] / 100
		assumption := h.config.Assumptions[class]
		mu += weight * assumption.Return
		sumSquares += math.Pow(weight*assumption.Volatility, 2)
	}

	return mu, math.Sqrt(sumSquares)
}

// RunMonteCarlo draws `iterations` independent paths of length
// `horizonPeriods` and aggregates the final values. Runs are fanned out
// across cores; each run owns a generator seeded from the top-level seed
// and its run index, so sequential and parallel execution produce
// identical output for a given seed.
func (h *simulationServiceHandler) RunMonteCarlo(ctx context.Context, iterations, horizonPeriods int, seed uint64) (*domain.SimulationRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if iterations < 0 {
		return nil, fmt.Errorf("%w: iterations must be >= 0, got %d", domain.ErrInvalidInput, iterations)
	}
	if horizonPeriods < 1 {
		return nil, fmt.Errorf("%w: horizon must be >= 1 period, got %d", domain.ErrInvalidInput, horizonPeriods)
	}

	metrics, err := h.portfolioService.Metrics()
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio state: %w", err)
	}
	initialValue := metrics.TotalValue.InexactFloat64()

	run := &domain.SimulationRun{
		RunID:          uuid.New(),
		Iterations:     iterations,
		HorizonPeriods: horizonPeriods,
		Seed:           seed,
		Stats:          domain.SimulationStats{InitialValue: initialValue},
	}

	// A zero-iteration request is degenerate, not an error: the run
	// comes back with an empty ensemble and zeroed statistics.
	if iterations == 0 {
		return run, nil
	}

	mu, sigma := h.portfolioParameters()
	periodMu := mu / periodsPerYear
	periodSigma := sigma / math.Sqrt(periodsPerYear)

	trajectories := make([][]float64, iterations)
	finalValues := make([]float64, iterations)

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > iterations {
		numWorkers = iterations
	}

	runIndexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range runIndexes {
				dist := distuv.Normal{
					Mu:    periodMu,
					Sigma: periodSigma,
					Src:   rand.NewSource(seed + uint64(i)),
				}

				trajectory := make([]float64, horizonPeriods+1)
				trajectory[0] = initialValue
				for period := 1; period <= horizonPeriods; period++ {
					trajectory[period] = trajectory[period-1] * (1 + dist.Rand())
				}

				trajectories[i] = trajectory
				finalValues[i] = trajectory[horizonPeriods]
			}
		}()
	}
	for i := 0; i < iterations; i++ {
		runIndexes <- i
	}
	close(runIndexes)
	wg.Wait()

	summary, err := summarize(finalValues, initialValue)
	if err != nil {
		return nil, err
	}

	run.Trajectories = trajectories
	run.FinalValues = finalValues
	run.Stats = *summary

	return run, nil
}

func summarize(finalValues []float64, initialValue float64) (*domain.SimulationStats, error) {
	mean, err := stats.Mean(finalValues)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize simulation: %w", err)
	}
	median, err := stats.Median(finalValues)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize simulation: %w", err)
	}
	stdev, err := stats.StandardDeviation(finalValues)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize simulation: %w", err)
	}
	p5, err := calculator.Percentile(finalValues, 5)
	if err != nil {
		return nil, err
	}
	p95, err := calculator.Percentile(finalValues, 95)
	if err != nil {
		return nil, err
	}

	losses := 0
	for _, value := range finalValues {
		if value < initialValue {
			losses++
		}
	}

	return &domain.SimulationStats{
		MeanFinalValue:    mean,
		MedianFinalValue:  median,
		StdevFinalValue:   stdev,
		Percentile5:       p5,
		Percentile95:      p95,
		ProbabilityOfLoss: float64(losses) / float64(len(finalValues)),
		ExpectedReturn:    (mean - initialValue) / initialValue,
		InitialValue:      initialValue,
	}, nil
}

type rateScenario struct {
	key        string
	name       string
	rateChange float64
}

// Fixed scenario set: parallel rate shocks in percentage points.
var rateScenarioSet = []rateScenario{
	{key: "rate_cut", name: "Rate Cut (-2%)", rateChange: -2.0},
	{key: "current", name: "Current Rates", rateChange: 0.0},
	{key: "rate_hike", name: "Rate Hike (+2%)", rateChange: 2.0},
}

// RateScenarios projects 12 monthly portfolio values under each discrete
// rate shock. The shock phases in linearly over the year with a noise
// term drawn from a seeded normal source per scenario.
func (h *simulationServiceHandler) RateScenarios(ctx context.Context, seed uint64) (map[string]domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	metrics, err := h.portfolioService.Metrics()
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio state: %w", err)
	}
	initialValue := metrics.TotalValue.InexactFloat64()
	weights := h.portfolioService.AllocationByClass()

	results := map[string]domain.ScenarioResult{}
	for i, scenario := range rateScenarioSet {
		portfolioImpact := 0.0
		for _, class := range domain.AllAssetClasses {
			portfolioImpact += scenario.rateChange * h.config.RateSensitivity[class] * weights[class] / 100
		}

		noise := distuv.Normal{
			Mu:    0,
			Sigma: h.config.MonthlyVolatility,
			Src:   rand.NewSource(seed + uint64(i)),
		}

		monthlyValues := make([]float64, 0, 12)
		value := initialValue
		for month := 1; month <= 12; month++ {
			monthlyReturn := (portfolioImpact*float64(month)/12 + noise.Rand()) / 100
			value = value * (1 + monthlyReturn)
			monthlyValues = append(monthlyValues, value)
		}

		finalValue := monthlyValues[len(monthlyValues)-1]
		results[scenario.key] = domain.ScenarioResult{
			Key:             scenario.key,
			Name:            scenario.name,
			RateChange:      scenario.rateChange,
			PortfolioImpact: portfolioImpact,
			MonthlyValues:   monthlyValues,
			FinalValue:      finalValue,
			TotalReturn:     (finalValue - initialValue) / initialValue * 100,
		}
	}

	return results, nil
}
