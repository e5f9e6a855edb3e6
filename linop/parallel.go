// SPDX-License-Identifier: MIT

package linop

// Category classifies the communication pattern of a ParallelInformation.
type Category int

const (
	// Sequential means every index is owned by the single process.
	Sequential Category = iota
	// Overlapping means some indices are copies owned elsewhere.
	Overlapping
)

func (c Category) String() string {
	switch c {
	case Sequential:
		return "sequential"
	case Overlapping:
		return "overlapping"
	default:
		return "unknown"
	}
}

// ParallelInformation describes index ownership across processes.
type ParallelInformation interface {
	// Owner reports whether index i is owned by this process.
	Owner(i int) bool
	Category() Category
}

// SequentialInformation is the trivial ParallelInformation: everything is owned.
type SequentialInformation struct{}

var _ ParallelInformation = SequentialInformation{}

func (SequentialInformation) Owner(int) bool     { return true }
func (SequentialInformation) Category() Category { return Sequential }

// OverlapPredicate returns a predicate that is true for indices not owned by
// this process. A nil info is treated as sequential.
func OverlapPredicate(info ParallelInformation) func(i int) bool {
	if info == nil {
		info = SequentialInformation{}
	}
	return func(i int) bool { return !info.Owner(i) }
}

// OwnerMask is a ParallelInformation backed by an ownership mask;
// out-of-range indices are reported as owned. Useful for exercising the
// overlap code paths without a communication layer.
type OwnerMask []bool

func (m OwnerMask) Owner(i int) bool {
	if i < 0 || i >= len(m) {
		return true
	}
	return m[i]
}

func (m OwnerMask) Category() Category {
	for _, owned := range m {
		if !owned {
			return Overlapping
		}
	}
	return Sequential
}
