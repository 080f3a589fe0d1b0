package service

import (
	"context"
	"errors"
	"portfolioadvisor/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newTestSimulationService(t *testing.T, config domain.SimulationConfig) SimulationService {
	t.Helper()
	portfolioService := newTestPortfolioService(t)
	svc, err := NewSimulationService(portfolioService, config)
	require.NoError(t, err)
	return svc
}

func TestNewSimulationService(t *testing.T) {
	t.Run("rejects a missing class assumption", func(t *testing.T) {
		config := domain.DefaultSimulationConfig()
		delete(config.Assumptions, domain.AssetClassCrypto)

		_, err := NewSimulationService(newTestPortfolioService(t), config)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrConfiguration))
	})

	t.Run("rejects a missing rate sensitivity", func(t *testing.T) {
		config := domain.DefaultSimulationConfig()
		delete(config.RateSensitivity, domain.AssetClassCash)

		_, err := NewSimulationService(newTestPortfolioService(t), config)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrConfiguration))
	})
}

func TestRunMonteCarlo(t *testing.T) {
	ctx := context.Background()
	config := domain.DefaultSimulationConfig()

	t.Run("bit-reproducible for a fixed seed", func(t *testing.T) {
		svc := newTestSimulationService(t, config)

		first, err := svc.RunMonteCarlo(ctx, 200, 50, 42)
		require.NoError(t, err)
		second, err := svc.RunMonteCarlo(ctx, 200, 50, 42)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(first.FinalValues, second.FinalValues))
		require.Equal(t, "", cmp.Diff(first.Stats, second.Stats))
	})

	t.Run("repeated runs agree after a rebalance", func(t *testing.T) {
		portfolioService := newTestPortfolioService(t)
		require.NoError(t, portfolioService.ApplyRebalance(map[domain.AssetClass]float64{
			domain.AssetClassEquity:      60,
			domain.AssetClassFixedIncome: 30,
			domain.AssetClassCrypto:      5,
			domain.AssetClassCash:        5,
		}))
		svc, err := NewSimulationService(portfolioService, config)
		require.NoError(t, err)

		baseline, err := svc.RunMonteCarlo(ctx, 20, 10, 42)
		require.NoError(t, err)
		for i := 0; i < 25; i++ {
			again, err := svc.RunMonteCarlo(ctx, 20, 10, 42)
			require.NoError(t, err)
			require.Equal(t, "", cmp.Diff(baseline.FinalValues, again.FinalValues))
			require.Equal(t, "", cmp.Diff(baseline.Stats, again.Stats))
		}
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		svc := newTestSimulationService(t, config)

		first, err := svc.RunMonteCarlo(ctx, 50, 20, 1)
		require.NoError(t, err)
		second, err := svc.RunMonteCarlo(ctx, 50, 20, 2)
		require.NoError(t, err)

		require.NotEqual(t, first.FinalValues, second.FinalValues)
	})

	t.Run("summary statistics are internally consistent", func(t *testing.T) {
		svc := newTestSimulationService(t, config)

		run, err := svc.RunMonteCarlo(ctx, 1000, 252, 7)
		require.NoError(t, err)

		stats := run.Stats
		require.GreaterOrEqual(t, stats.ProbabilityOfLoss, 0.0)
		require.LessOrEqual(t, stats.ProbabilityOfLoss, 1.0)
		require.LessOrEqual(t, stats.Percentile5, stats.MedianFinalValue)
		require.LessOrEqual(t, stats.MedianFinalValue, stats.Percentile95)
		require.InDelta(t, (stats.MeanFinalValue-stats.InitialValue)/stats.InitialValue, stats.ExpectedReturn, 1e-9)
	})

	t.Run("trajectories start at the initial value with horizon+1 points", func(t *testing.T) {
		svc := newTestSimulationService(t, config)

		run, err := svc.RunMonteCarlo(ctx, 10, 21, 3)
		require.NoError(t, err)

		require.Len(t, run.Trajectories, 10)
		for _, trajectory := range run.Trajectories {
			require.Len(t, trajectory, 22)
			require.Equal(t, run.Stats.InitialValue, trajectory[0])
		}
	})

	t.Run("zero iterations is a degenerate run, not an error", func(t *testing.T) {
		svc := newTestSimulationService(t, config)

		run, err := svc.RunMonteCarlo(ctx, 0, 21, 3)
		require.NoError(t, err)

		require.Empty(t, run.FinalValues)
		require.Equal(t, 0.0, run.Stats.ProbabilityOfLoss)
		require.Greater(t, run.Stats.InitialValue, 0.0)
	})

	t.Run("rejects negative iterations", func(t *testing.T) {
		svc := newTestSimulationService(t, config)

		_, err := svc.RunMonteCarlo(ctx, -1, 21, 3)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("rejects a zero-length horizon", func(t *testing.T) {
		svc := newTestSimulationService(t, config)

		_, err := svc.RunMonteCarlo(ctx, 10, 0, 3)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}

func TestRateScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("scenario key set is fixed", func(t *testing.T) {
		svc := newTestSimulationService(t, domain.DefaultSimulationConfig())

		scenarios, err := svc.RateScenarios(ctx, 42)
		require.NoError(t, err)

		require.Len(t, scenarios, 3)
		for _, key := range []string{"rate_cut", "current", "rate_hike"} {
			_, ok := scenarios[key]
			require.True(t, ok, "missing scenario %s", key)
		}
	})

	t.Run("impacts follow the sensitivity table", func(t *testing.T) {
		// Seed portfolio weights: equity 70, fixed income 15,
		// crypto 5, cash 10. A +2 hike gives
		// 2*(-0.5*0.7 + -2.0*0.15 + -1.0*0.05 + 1.0*0.10) = -1.2.
		svc := newTestSimulationService(t, domain.DefaultSimulationConfig())

		scenarios, err := svc.RateScenarios(ctx, 42)
		require.NoError(t, err)

		require.InDelta(t, -1.2, scenarios["rate_hike"].PortfolioImpact, 1e-9)
		require.InDelta(t, 1.2, scenarios["rate_cut"].PortfolioImpact, 1e-9)
		require.InDelta(t, 0, scenarios["current"].PortfolioImpact, 1e-9)
	})

	t.Run("current scenario is flat without noise", func(t *testing.T) {
		config := domain.DefaultSimulationConfig()
		config.MonthlyVolatility = 0
		svc := newTestSimulationService(t, config)

		scenarios, err := svc.RateScenarios(ctx, 42)
		require.NoError(t, err)

		current := scenarios["current"]
		require.Len(t, current.MonthlyValues, 12)
		for _, value := range current.MonthlyValues {
			require.InDelta(t, current.FinalValue, value, 1e-6)
		}
		require.InDelta(t, 0, current.TotalReturn, 1e-9)
	})

	t.Run("reproducible for a fixed seed", func(t *testing.T) {
		svc := newTestSimulationService(t, domain.DefaultSimulationConfig())

		first, err := svc.RateScenarios(ctx, 9)
		require.NoError(t, err)
		second, err := svc.RateScenarios(ctx, 9)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(first, second))
	})

	t.Run("impact is stable across repeated calls after a rebalance", func(t *testing.T) {
		portfolioService := newTestPortfolioService(t)
		require.NoError(t, portfolioService.ApplyRebalance(map[domain.AssetClass]float64{
			domain.AssetClassEquity:      60,
			domain.AssetClassFixedIncome: 30,
			domain.AssetClassCrypto:      5,
			domain.AssetClassCash:        5,
		}))
		svc, err := NewSimulationService(portfolioService, domain.DefaultSimulationConfig())
		require.NoError(t, err)

		// -2*(-0.5*0.6 + -2.0*0.3 + -1.0*0.05 + 1.0*0.05) = 1.8.
		baseline, err := svc.RateScenarios(ctx, 42)
		require.NoError(t, err)
		require.InDelta(t, 1.8, baseline["rate_cut"].PortfolioImpact, 1e-9)

		for i := 0; i < 100; i++ {
			again, err := svc.RateScenarios(ctx, 42)
			require.NoError(t, err)
			require.Equal(t, "", cmp.Diff(baseline, again))
		}
	})
}
