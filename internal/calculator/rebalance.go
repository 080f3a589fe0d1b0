package calculator

import (
	"fmt"
	"math"
	"portfolioadvisor/internal/domain"
	"time"

	"github.com/google/uuid"
)

// rebalanceThreshold is the actionability floor in percentage points.
// Differences at or below it are noise, not trades. Strictly greater
// than, so a diff of exactly 1.0 is excluded.
const rebalanceThreshold = 1.0

// PlanRebalance diffs the current allocation against the target and
// returns the actions needed to close the gap. It operates on allocation
// percentages only - translating deltas into trade sizes belongs to an
// execution collaborator.
func PlanRebalance(current, target map[domain.AssetClass]float64) (*domain.RebalancePlan, error) {
	if err := validateTargetAllocation(target); err != nil {
		return nil, err
	}

	actions := []domain.RebalanceAction{}
	for _, class := range domain.AllAssetClasses {
		targetPct, ok := target[class]
		if !ok {
			continue
		}
		currentPct := current[class]
		difference := targetPct - currentPct
		if math.Abs(difference) <= rebalanceThreshold {
			continue
		}

		direction := domain.RebalanceIncrease
		if difference < 0 {
			direction = domain.RebalanceDecrease
		}
		actions = append(actions, domain.RebalanceAction{
			Class:      class,
			Direction:  direction,
			CurrentPct: currentPct,
			TargetPct:  targetPct,
			Difference: difference,
		})
	}

	return &domain.RebalancePlan{
		PlanID:            uuid.New(),
		RebalancingNeeded: len(actions) > 0,
		Actions:           actions,
		Current:           current,
		Target:            target,
		CreatedAt:         time.Now().UTC(),
	}, nil
}

func validateTargetAllocation(target map[domain.AssetClass]float64) error {
	if len(target) == 0 {
		return fmt.Errorf("%w: target allocation is empty", domain.ErrInvalidInput)
	}
	for class, pct := range target {
		if !class.Valid() {
			return fmt.Errorf("%w: unknown asset class %q in target allocation", domain.ErrInvalidInput, class)
		}
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%w: target allocation for %s must be within [0, 100], got %f", domain.ErrInvalidInput, class, pct)
		}
	}
	return nil
}
