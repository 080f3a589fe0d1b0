package service

import (
	"fmt"
	"math"
	"portfolioadvisor/internal/calculator"
	"portfolioadvisor/internal/domain"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioService owns the portfolio and its assets. Everything it hands
// out is a value copy; collaborators never see live state. Mutation goes
// through ApplyRebalance only, which swaps the full allocation set
// atomically.
type PortfolioService interface {
	Snapshot() (*domain.PortfolioSnapshot, error)
	AllocationByClass() map[domain.AssetClass]float64
	AllocationByRegion() map[domain.Region]float64
	Metrics() (*domain.PortfolioMetrics, error)
	PlanRebalance(target map[domain.AssetClass]float64) (*domain.RebalancePlan, error)
	ApplyRebalance(target map[domain.AssetClass]float64) error
}

type portfolioServiceHandler struct {
	mu           sync.RWMutex
	portfolio    domain.Portfolio
	riskFreeRate float64
}

func NewPortfolioService(assets []domain.Asset, riskProfile string, riskFreeRate float64) (PortfolioService, error) {
	if err := calculator.ValidateHoldings(assets); err != nil {
		return nil, err
	}

	totalValue := decimal.Zero
	for _, asset := range assets {
		totalValue = totalValue.Add(asset.Value)
	}

	owned := make([]domain.Asset, len(assets))
	copy(owned, assets)

	return &portfolioServiceHandler{
		portfolio: domain.Portfolio{
			TotalValue:  totalValue,
			Assets:      owned,
			RiskProfile: riskProfile,
			LastUpdated: time.Now().UTC(),
		},
		riskFreeRate: riskFreeRate,
	}, nil
}

func (h *portfolioServiceHandler) AllocationByClass() map[domain.AssetClass]float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.allocationByClassLocked()
}

// allocationByClassLocked assumes h.mu is held.
func (h *portfolioServiceHandler) allocationByClassLocked() map[domain.AssetClass]float64 {
	allocation := map[domain.AssetClass]float64{}
	for _, class := range domain.AllAssetClasses {
		allocation[class] = 0
	}
	for _, asset := range h.portfolio.Assets {
		allocation[asset.Class] += asset.Allocation
	}
	return allocation
}

func (h *portfolioServiceHandler) AllocationByRegion() map[domain.Region]float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.allocationByRegionLocked()
}

// allocationByRegionLocked assumes h.mu is held.
func (h *portfolioServiceHandler) allocationByRegionLocked() map[domain.Region]float64 {
	allocation := map[domain.Region]float64{}
	for _, region := range domain.AllRegions {
		allocation[region] = 0
	}
	for _, asset := range h.portfolio.Assets {
		allocation[asset.Region] += asset.Allocation
	}
	return allocation
}

func (h *portfolioServiceHandler) Metrics() (*domain.PortfolioMetrics, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return calculator.ComputeMetrics(h.portfolio.Assets, h.riskFreeRate)
}

// Snapshot composes assets, metrics, and allocation breakdowns under a
// single read lock so a concurrent rebalance can never tear the view.
func (h *portfolioServiceHandler) Snapshot() (*domain.PortfolioSnapshot, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	metrics, err := calculator.ComputeMetrics(h.portfolio.Assets, h.riskFreeRate)
	if err != nil {
		return nil, fmt.Errorf("failed to compute metrics for snapshot: %w", err)
	}

	byClass := h.allocationByClassLocked()
	byRegion := h.allocationByRegionLocked()
	portfolio := h.portfolio.DeepCopy()
	return &domain.PortfolioSnapshot{
		TotalValue:         portfolio.TotalValue,
		Assets:             portfolio.Assets,
		RiskProfile:        portfolio.RiskProfile,
		LastUpdated:        portfolio.LastUpdated,
		Metrics:            *metrics,
		AllocationByClass:  byClass,
		AllocationByRegion: byRegion,
	}, nil
}

func (h *portfolioServiceHandler) PlanRebalance(target map[domain.AssetClass]float64) (*domain.RebalancePlan, error) {
	return calculator.PlanRebalance(h.AllocationByClass(), target)
}

// ApplyRebalance replaces per-asset allocations so each class matches the
// target, scaling holdings within a class proportionally. The whole set
// is recomputed and swapped in one step; the confirmation gate lives with
// the caller.
func (h *portfolioServiceHandler) ApplyRebalance(target map[domain.AssetClass]float64) error {
	sum := 0.0
	for class, pct := range target {
		if !class.Valid() {
			return fmt.Errorf("%w: unknown asset class %q in target allocation", domain.ErrInvalidInput, class)
		}
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%w: target allocation for %s must be within [0, 100], got %f", domain.ErrInvalidInput, class, pct)
		}
		sum += pct
	}
	if math.Abs(sum-100) > calculator.AllocationTolerance {
		return fmt.Errorf("%w: target allocations must sum to 100, got %f", domain.ErrInvalidInput, sum)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	current := h.allocationByClassLocked()
	for class, pct := range target {
		if pct > 0 && current[class] == 0 {
			return fmt.Errorf("%w: no holdings in class %s to rebalance into", domain.ErrInvalidInput, class)
		}
	}

	rebalanced := make([]domain.Asset, len(h.portfolio.Assets))
	copy(rebalanced, h.portfolio.Assets)
	for i, asset := range rebalanced {
		targetPct, ok := target[asset.Class]
		if !ok {
			targetPct = current[asset.Class]
		}
		scaled := 0.0
		if current[asset.Class] > 0 {
			scaled = asset.Allocation * targetPct / current[asset.Class]
		}
		rebalanced[i].Allocation = scaled
		rebalanced[i].Value = h.portfolio.TotalValue.
			Mul(decimal.NewFromFloat(scaled)).
			Div(decimal.NewFromInt(100))
	}

	if err := calculator.ValidateHoldings(rebalanced); err != nil {
		return fmt.Errorf("rebalance produced invalid holdings: %w", err)
	}

	h.portfolio.Assets = rebalanced
	h.portfolio.LastUpdated = time.Now().UTC()

	return nil
}
