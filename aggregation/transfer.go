// SPDX-License-Identifier: MIT

// Package aggregation - piecewise constant transfer.
//
// Restriction sums the fine entries of each aggregate; prolongation
// broadcasts the coarse value of each aggregate, scaled by a damping factor.
// Restriction is the transpose of undamped prolongation.

package aggregation

import (
	"fmt"

	"github.com/katalvlaran/paamg/linop"
)

// Restrict overwrites coarse with coarse[agg(i)] = Σ fine[i] over the
// non-excluded rows owned by this process.
// Errors: ErrSizeMismatch.
func Restrict(agg *AggregatesMap, coarse, fine []float64, pinfo linop.ParallelInformation) error {
	if err := checkTransferSizes("Restrict", agg, coarse, fine); err != nil {
		return err
	}
	if pinfo == nil {
		pinfo = linop.SequentialInformation{}
	}
	clear(coarse)
	for i, id := range agg.ids {
		if id >= 0 && pinfo.Owner(i) {
			coarse[id] += fine[i]
		}
	}

	return nil
}

// Prolongate adds damp·coarse[agg(i)] to fine[i] for every non-excluded row.
// Excluded rows are left untouched.
// Errors: ErrSizeMismatch.
func Prolongate(agg *AggregatesMap, coarse, fine []float64, damp float64) error {
	if err := checkTransferSizes("Prolongate", agg, coarse, fine); err != nil {
		return err
	}
	for i, id := range agg.ids {
		if id >= 0 {
			fine[i] += damp * coarse[id]
		}
	}

	return nil
}

func checkTransferSizes(method string, agg *AggregatesMap, coarse, fine []float64) error {
	if agg == nil {
		return aggErrorf(method, "nil map", ErrNilInput)
	}
	if len(fine) != agg.Len() || len(coarse) != agg.NumAggregates() {
		return aggErrorf(method,
			fmt.Sprintf("fine %d/%d, coarse %d/%d", len(fine), agg.Len(), len(coarse), agg.NumAggregates()),
			ErrSizeMismatch)
	}

	return nil
}
