package repository

import (
	"fmt"
	"math"
	"portfolioadvisor/internal/calculator"
	"portfolioadvisor/internal/domain"
	"regexp"
	"strconv"
	"strings"
)

var allocationLinePattern = regexp.MustCompile(`(?i)(equity|equities|stocks?|fixed[ _-]?income|bonds?|crypto(?:currency)?|cash)\s*[:=-]?\s*(\d+(?:\.\d+)?)\s*%`)

var classSynonyms = map[string]domain.AssetClass{
	"equity":         domain.AssetClassEquity,
	"equities":       domain.AssetClassEquity,
	"stock":          domain.AssetClassEquity,
	"stocks":         domain.AssetClassEquity,
	"fixed income":   domain.AssetClassFixedIncome,
	"fixed_income":   domain.AssetClassFixedIncome,
	"fixed-income":   domain.AssetClassFixedIncome,
	"bond":           domain.AssetClassFixedIncome,
	"bonds":          domain.AssetClassFixedIncome,
	"crypto":         domain.AssetClassCrypto,
	"cryptocurrency": domain.AssetClassCrypto,
	"cash":           domain.AssetClassCash,
}

// ParseTargetAllocation extracts a structured allocation map from
// model-generated text like "equities: 60%, bonds: 30%, cash: 10%". It is
// a best-effort adapter: anything ambiguous or incomplete is an error,
// never a silently patched map. The engine itself only accepts structured
// maps - this is the one place free text gets converted.
func ParseTargetAllocation(text string) (map[domain.AssetClass]float64, error) {
	matches := allocationLinePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no allocation percentages found in text", domain.ErrInvalidInput)
	}

	target := map[domain.AssetClass]float64{}
	for _, match := range matches {
		class, ok := classSynonyms[strings.ToLower(match[1])]
		if !ok {
			return nil, fmt.Errorf("%w: unrecognized asset class %q", domain.ErrInvalidInput, match[1])
		}
		pct, err := strconv.ParseFloat(match[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: unparseable percentage %q for %s", domain.ErrInvalidInput, match[2], class)
		}
		if _, seen := target[class]; seen {
			return nil, fmt.Errorf("%w: asset class %s appears more than once", domain.ErrInvalidInput, class)
		}
		target[class] = pct
	}

	sum := 0.0
	for _, pct := range target {
		sum += pct
	}
	if math.Abs(sum-100) > calculator.AllocationTolerance {
		return nil, fmt.Errorf("%w: parsed allocations sum to %f, want 100", domain.ErrInvalidInput, sum)
	}

	return target, nil
}
