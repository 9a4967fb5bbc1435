// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocation

import "errors"

var (
	ErrInvalidIdentifier  = errors.New("invalid identifier")
	ErrRebalanceExhausted = errors.New("rebalance exhausted")
	ErrInertCandidate     = errors.New("candidate slot is unused")
	ErrInvalidDataset     = errors.New("invalid state dataset")
)
