// SPDX-License-Identifier: MIT

package amg

import (
	"fmt"

	"github.com/katalvlaran/paamg/aggregation"
	"github.com/katalvlaran/paamg/galerkin"
	"github.com/katalvlaran/paamg/graph"
	"github.com/katalvlaran/paamg/linop"
	"github.com/katalvlaran/paamg/sparse"
)

// LevelTransferPolicy builds the coarse level system of a fine operator and
// moves vectors between the two levels.
//
// CreateCoarseLevelSystem must succeed exactly once before any other call;
// transfers on a policy without a coarse system panic with ErrNoCoarseSystem.
type LevelTransferPolicy interface {
	CreateCoarseLevelSystem(fine linop.Operator) error
	// MoveToCoarseLevel restricts fineRhs into the coarse rhs and zeroes
	// the coarse lhs.
	MoveToCoarseLevel(fineRhs []float64)
	// MoveToFineLevel adds the prolongated coarse lhs to fineLhs.
	MoveToFineLevel(fineLhs []float64)
	CoarseLevelOperator() linop.Operator
	// CoarseLevelRhs and CoarseLevelLhs expose the owned buffers; the
	// coarse solver writes its solution into the lhs.
	CoarseLevelRhs() []float64
	CoarseLevelLhs() []float64
}

// AggregationLevelTransferPolicy coarsens by aggregation: the coarse
// operator is the Galerkin product of the aggregate map, restriction sums
// per aggregate and prolongation broadcasts with damping.
type AggregationLevelTransferPolicy struct {
	crit  aggregation.Criterion
	pinfo linop.ParallelInformation

	damp    float64
	agg     *aggregation.AggregatesMap
	stats   aggregation.Stats
	product galerkin.Product
	coarse  *linop.MatrixOperator
	rhs     []float64
	lhs     []float64
	fineN   int
}

var _ LevelTransferPolicy = (*AggregationLevelTransferPolicy)(nil)

// NewAggregationLevelTransferPolicy returns a policy that aggregates with
// crit. A nil pinfo means sequential.
func NewAggregationLevelTransferPolicy(crit aggregation.Criterion, pinfo linop.ParallelInformation) *AggregationLevelTransferPolicy {
	if pinfo == nil {
		pinfo = linop.SequentialInformation{}
	}

	return &AggregationLevelTransferPolicy{crit: crit, pinfo: pinfo}
}

// CreateCoarseLevelSystem aggregates the fine matrix, renumbers the
// aggregates densely and assembles the coarse operator.
// Errors: ErrNilArgument, ErrCoarseSystemExists, aggregation.ErrNoAggregates
// and the wrapped errors of the graph, aggregation and galerkin packages.
func (p *AggregationLevelTransferPolicy) CreateCoarseLevelSystem(fine linop.Operator) error {
	const method = "AggregationLevelTransferPolicy.CreateCoarseLevelSystem"
	if fine == nil || p.crit == nil {
		return fmt.Errorf("%s: %w", method, ErrNilArgument)
	}
	if p.coarse != nil {
		return fmt.Errorf("%s: %w", method, ErrCoarseSystemExists)
	}
	a := fine.Matrix()
	p.damp = p.crit.ProlongationDampingFactor()

	g, err := graph.NewMatrixGraph(a)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	pg := graph.NewPropertiesGraph(g)

	agg, stats, err := aggregation.Build(a, pg, p.crit)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	n, err := aggregation.Renumber(agg, pg, p.pinfo)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	overlap := linop.OverlapPredicate(p.pinfo)
	ac, err := p.product.Build(a, p.pinfo, agg, n, overlap)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if err = p.product.Calculate(a, agg, ac, p.pinfo, overlap); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	op, err := linop.NewMatrixOperator(ac)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	p.agg, p.stats, p.fineN = agg, stats, a.N()
	p.lhs = make([]float64, ac.M())
	p.rhs = make([]float64, ac.N())
	p.coarse = op

	return nil
}

func (p *AggregationLevelTransferPolicy) mustHaveSystem(method string) {
	if p.coarse == nil {
		panic(fmt.Errorf("AggregationLevelTransferPolicy.%s: %w", method, ErrNoCoarseSystem))
	}
}

// MoveToCoarseLevel computes rhs[agg] = Σ fineRhs[i] over the rows of each
// aggregate and zeroes the coarse lhs.
func (p *AggregationLevelTransferPolicy) MoveToCoarseLevel(fineRhs []float64) {
	p.mustHaveSystem("MoveToCoarseLevel")
	if err := aggregation.Restrict(p.agg, p.rhs, fineRhs, p.pinfo); err != nil {
		panic(fmt.Errorf("AggregationLevelTransferPolicy.MoveToCoarseLevel: %w", err))
	}
	sparse.Zero(p.lhs)
}

// MoveToFineLevel adds damping·lhs[agg(i)] to fineLhs[i]; excluded rows are untouched.
func (p *AggregationLevelTransferPolicy) MoveToFineLevel(fineLhs []float64) {
	p.mustHaveSystem("MoveToFineLevel")
	if err := aggregation.Prolongate(p.agg, p.lhs, fineLhs, p.damp); err != nil {
		panic(fmt.Errorf("AggregationLevelTransferPolicy.MoveToFineLevel: %w", err))
	}
}

// CoarseLevelOperator returns the coarse operator, or nil before
// CreateCoarseLevelSystem.
func (p *AggregationLevelTransferPolicy) CoarseLevelOperator() linop.Operator {
	if p.coarse == nil {
		return nil
	}
	return p.coarse
}

func (p *AggregationLevelTransferPolicy) CoarseLevelRhs() []float64 { return p.rhs }
func (p *AggregationLevelTransferPolicy) CoarseLevelLhs() []float64 { return p.lhs }

// Stats returns the aggregation counts of the coarse system.
func (p *AggregationLevelTransferPolicy) Stats() aggregation.Stats { return p.stats }

// AggregatesMap returns the renumbered aggregate map.
func (p *AggregationLevelTransferPolicy) AggregatesMap() *aggregation.AggregatesMap { return p.agg }

// DampingFactor returns the prolongation damping fixed at construction.
func (p *AggregationLevelTransferPolicy) DampingFactor() float64 { return p.damp }

// CoarseningRate returns fine rows / coarse rows, 0 before construction.
func (p *AggregationLevelTransferPolicy) CoarseningRate() float64 {
	if p.coarse == nil || len(p.rhs) == 0 {
		return 0
	}
	return float64(p.fineN) / float64(len(p.rhs))
}
