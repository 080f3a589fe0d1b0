package calculator

import (
	"errors"
	"portfolioadvisor/internal/domain"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testAssets() []domain.Asset {
	return []domain.Asset{
		{Symbol: "VTI", Name: "Total Market ETF", Class: domain.AssetClassEquity, Region: domain.RegionUS, Allocation: 60, Value: decimal.NewFromInt(60_000), Price: decimal.NewFromInt(220), ChangePercent: 1.0},
		{Symbol: "BND", Name: "Total Bond ETF", Class: domain.AssetClassFixedIncome, Region: domain.RegionUS, Allocation: 30, Value: decimal.NewFromInt(30_000), Price: decimal.NewFromInt(72), ChangePercent: -0.3},
		{Symbol: "CASH", Name: "Cash", Class: domain.AssetClassCash, Region: domain.RegionUS, Allocation: 10, Value: decimal.NewFromInt(10_000), Price: decimal.NewFromInt(1), ChangePercent: 0.0},
	}
}

func TestComputeMetrics(t *testing.T) {
	t.Run("weighted return matches hand-computed value", func(t *testing.T) {
		metrics, err := ComputeMetrics(testAssets(), 3.0)
		require.NoError(t, err)

		// 0.6*1 + 0.3*(-0.3) + 0.1*0
		require.InDelta(t, 0.51, metrics.Return, 1e-9)
		require.Equal(t, 3, metrics.AssetCount)
		require.True(t, metrics.TotalValue.Equal(decimal.NewFromInt(100_000)))
	})

	t.Run("invariant under reordering the asset list", func(t *testing.T) {
		assets := testAssets()
		forward, err := ComputeMetrics(assets, 3.0)
		require.NoError(t, err)

		reversed := []domain.Asset{assets[2], assets[0], assets[1]}
		backward, err := ComputeMetrics(reversed, 3.0)
		require.NoError(t, err)

		require.InDelta(t, forward.Return, backward.Return, 1e-9)
		require.InDelta(t, forward.Volatility, backward.Volatility, 1e-9)
		require.InDelta(t, forward.Sharpe, backward.Sharpe, 1e-9)
		require.True(t, forward.TotalValue.Equal(backward.TotalValue))
	})

	t.Run("zero volatility falls back to sharpe 0", func(t *testing.T) {
		assets := []domain.Asset{
			{Symbol: "CASH", Class: domain.AssetClassCash, Region: domain.RegionUS, Allocation: 100, Value: decimal.NewFromInt(1000), ChangePercent: 0},
		}

		metrics, err := ComputeMetrics(assets, 3.0)
		require.NoError(t, err)

		require.Equal(t, 0.0, metrics.Volatility)
		require.Equal(t, 0.0, metrics.Sharpe)
	})
}

func TestValidateHoldings(t *testing.T) {
	t.Run("accepts allocations summing to 100", func(t *testing.T) {
		require.NoError(t, ValidateHoldings(testAssets()))
	})

	t.Run("rejects allocations not summing to 100", func(t *testing.T) {
		assets := testAssets()
		assets[0].Allocation = 50

		err := ValidateHoldings(assets)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrConfiguration))
	})

	t.Run("rejects unknown asset class", func(t *testing.T) {
		assets := testAssets()
		assets[1].Class = "commodities"

		err := ValidateHoldings(assets)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrConfiguration))
	})

	t.Run("rejects unknown region", func(t *testing.T) {
		assets := testAssets()
		assets[1].Region = "antarctica"

		err := ValidateHoldings(assets)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrConfiguration))
	})

	t.Run("rejects empty portfolio", func(t *testing.T) {
		err := ValidateHoldings(nil)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrConfiguration))
	})
}
