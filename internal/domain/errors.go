package domain

import "errors"

// ErrConfiguration marks malformed construction-time state: allocations
// that don't sum to 100, unknown class/region keys, a risk-profile table
// with gapped or overlapping ranges. Never silently corrected.
var ErrConfiguration = errors.New("configuration error")

// ErrInvalidInput marks bad caller-supplied data: unknown question ids,
// negative or >100 target allocations. The affected computation does not
// proceed.
var ErrInvalidInput = errors.New("invalid input")
