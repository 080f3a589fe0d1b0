package calculator

import (
	"fmt"
	"math"
	"portfolioadvisor/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// AllocationTolerance is the floating slack allowed when asserting that
// allocations sum to 100.
const AllocationTolerance = 1e-6

// ValidateHoldings enforces the construction invariants: every class and
// region key is known and allocations sum to 100. Violations are
// configuration errors, never renormalized away.
func ValidateHoldings(assets []domain.Asset) error {
	if len(assets) == 0 {
		return fmt.Errorf("%w: portfolio requires at least one holding", domain.ErrConfiguration)
	}

	sum := 0.0
	for _, asset := range assets {
		if !asset.Class.Valid() {
			return fmt.Errorf("%w: unknown asset class %q on %s", domain.ErrConfiguration, asset.Class, asset.Symbol)
		}
		if !asset.Region.Valid() {
			return fmt.Errorf("%w: unknown region %q on %s", domain.ErrConfiguration, asset.Region, asset.Symbol)
		}
		sum += asset.Allocation
	}

	if math.Abs(sum-100) > AllocationTolerance {
		return fmt.Errorf("%w: allocations must sum to 100, got %f", domain.ErrConfiguration, sum)
	}

	return nil
}

// ComputeMetrics derives the portfolio's period return, annualized
// volatility and Sharpe ratio from the current holdings. Pure function of
// the asset list; reordering assets does not change the result.
func ComputeMetrics(assets []domain.Asset, riskFreeRate float64) (*domain.PortfolioMetrics, error) {
	changes := make([]float64, 0, len(assets))
	totalValue := decimal.Zero
	portfolioReturn := 0.0

	for _, asset := range assets {
		changes = append(changes, asset.ChangePercent)
		totalValue = totalValue.Add(asset.Value)
		portfolioReturn += asset.ChangePercent * asset.Allocation / 100
	}

	volatility := 0.0
	if len(changes) > 0 {
		stdev, err := stats.StandardDeviation(changes)
		if err != nil {
			return nil, fmt.Errorf("failed to compute volatility: %w", err)
		}
		volatility = stdev * math.Sqrt(252)
	}

	// Sharpe is undefined at zero volatility; fall back to 0 rather
	// than dividing through.
	sharpe := 0.0
	if volatility > 0 {
		sharpe = (portfolioReturn*252 - riskFreeRate) / volatility
	}

	return &domain.PortfolioMetrics{
		Return:     portfolioReturn,
		Volatility: volatility,
		Sharpe:     sharpe,
		TotalValue: totalValue,
		AssetCount: len(assets),
	}, nil
}
