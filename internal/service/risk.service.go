package service

import (
	"context"
	"fmt"
	"portfolioadvisor/internal/calculator"
	"portfolioadvisor/internal/domain"

	"github.com/montanaflynn/stats"
)

const (
	// One-month horizon at a high iteration count gives the tail
	// enough samples for the 99% boundary.
	varIterations     = 10_000
	varHorizonPeriods = 21

	// Drawdown is tracked over a bounded sample of trajectories, so
	// the reported figure is a lower bound on the ensemble maximum.
	drawdownSampleSize = 100
)

// RiskService derives tail-risk statistics from a short-horizon Monte
// Carlo run over the current portfolio.
type RiskService interface {
	Analyze(ctx context.Context) (*domain.RiskReport, error)
}

type riskServiceHandler struct {
	portfolioService  PortfolioService
	simulationService SimulationService
	config            domain.SimulationConfig
}

func NewRiskService(portfolioService PortfolioService, simulationService SimulationService, config domain.SimulationConfig) RiskService {
	return &riskServiceHandler{
		portfolioService:  portfolioService,
		simulationService: simulationService,
		config:            config,
	}
}

func (h *riskServiceHandler) Analyze(ctx context.Context) (*domain.RiskReport, error) {
	run, err := h.simulationService.RunMonteCarlo(ctx, varIterations, varHorizonPeriods, h.config.Seed)
	if err != nil {
		return nil, fmt.Errorf("risk analysis simulation failed: %w", err)
	}

	initialValue := run.Stats.InitialValue

	p5, err := calculator.Percentile(run.FinalValues, 5)
	if err != nil {
		return nil, err
	}
	p1, err := calculator.Percentile(run.FinalValues, 1)
	if err != nil {
		return nil, err
	}

	var95 := initialValue - p5
	var99 := initialValue - p1

	// Expected shortfall: mean loss conditional on breaching the 95%
	// VaR boundary.
	tail := []float64{}
	for _, value := range run.FinalValues {
		if value <= p5 {
			tail = append(tail, value)
		}
	}
	expectedShortfall := var95
	if len(tail) > 0 {
		tailMean, err := stats.Mean(tail)
		if err != nil {
			return nil, fmt.Errorf("failed to compute expected shortfall: %w", err)
		}
		expectedShortfall = initialValue - tailMean
	}

	sample := run.Trajectories
	if len(sample) > drawdownSampleSize {
		sample = sample[:drawdownSampleSize]
	}
	maxDrawdown := maxDrawdownOverSample(sample)

	metrics, err := h.portfolioService.Metrics()
	if err != nil {
		return nil, fmt.Errorf("failed to compute portfolio metrics: %w", err)
	}

	return &domain.RiskReport{
		VaR95:                    var95,
		VaR99:                    var99,
		VaR95Percent:             var95 / initialValue * 100,
		VaR99Percent:             var99 / initialValue * 100,
		ExpectedShortfall:        expectedShortfall,
		ExpectedShortfallPercent: expectedShortfall / initialValue * 100,
		MaxDrawdownEstimate:      maxDrawdown * 100,
		Volatility:               metrics.Volatility,
		Sharpe:                   metrics.Sharpe,
	}, nil
}

func maxDrawdownOverSample(trajectories [][]float64) float64 {
	maxDrawdown := 0.0
	for _, trajectory := range trajectories {
		if len(trajectory) == 0 {
			continue
		}
		peak := trajectory[0]
		for _, value := range trajectory {
			if value > peak {
				peak = value
			}
			drawdown := (peak - value) / peak
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}
	return maxDrawdown
}
