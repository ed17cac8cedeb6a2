package anneal

// Recycle selects whether the driver attempts to transplant sub-cycles
// from expensive tours into cheaper ones after the tour-building phase.
type Recycle int

const (
	// RecycleNo disables sub-cycle transplanting.
	RecycleNo Recycle = iota
	// RecycleExpensiveToCheap moves sub-cycles from the costlier tour of
	// each pair of tours into the cheaper one.
	RecycleExpensiveToCheap
)

// Clearing selects which traversals count as "slow" when costing a tour.
type Clearing int

const (
	// ClearingOnlyAllocated counts an edge as slow only when it belongs
	// to the solving vehicle's own allocation.
	ClearingOnlyAllocated Clearing = iota
	// ClearingAll counts any snowy edge as slow until some vehicle
	// earlier in this iteration's order has already traversed it.
	ClearingAll
)

// Reorder selects the per-iteration vehicle evaluation order strategy.
type Reorder int

const (
	// ReorderNo keeps the previous iteration's order.
	ReorderNo Reorder = iota
	// ReorderSwap2Random swaps two randomly chosen order slots.
	ReorderSwap2Random
	// ReorderRandomReorder fully reshuffles the order.
	ReorderRandomReorder
	// ReorderSwap2MostLeast finds the vehicles with the longest and
	// shortest last-accepted tours and swaps the order slots whose
	// positions equal those two vehicle ids (the ids are used directly as
	// positions, so once the order is permuted the swapped slots need not
	// hold those vehicles).
	ReorderSwap2MostLeast
)

// Realloc selects a post-hoc allocation-rebalancing strategy. Only
// ReallocNo is wired; the other variants are accepted no-ops (see
// DESIGN.md).
type Realloc int

const (
	// ReallocNo performs no reallocation.
	ReallocNo Realloc = iota
	// ReallocSwap2Random is an accepted no-op.
	ReallocSwap2Random
	// ReallocMostToLeast is an accepted no-op.
	ReallocMostToLeast
)

// Annealing holds the simulated-annealing schedule.
type Annealing struct {
	MainIterations      uint64
	FTIterations        uint64
	StartingTemperature float64
	CoolingFactor       float64
}

// Params is the complete configuration record for a Driver, mirroring
// the shape of tsp.Options: one struct, built via DefaultParams and
// Option functions.
type Params struct {
	Recycle   Recycle
	Clearing  Clearing
	Reorder   Reorder
	Realloc   Realloc
	Annealing Annealing

	// Slowdown multiplies the weight of a snowy edge that counts as
	// active under the current clearing policy. Conventionally > 1.
	Slowdown float64
	// WeightTotal and WeightMax combine per-vehicle cost into the
	// aggregate objective: WeightTotal*sum(cost) + WeightMax*max(cost).
	WeightTotal float64
	WeightMax   float64

	// Seed initializes the deterministic RNG. Identical Params and
	// inputs reproduce identical output.
	Seed int64
}

// DefaultParams returns a conservative configuration: no recycling, the
// "only allocated" clearing policy, no reordering, no reallocation, and
// a short annealing schedule.
func DefaultParams() Params {
	return Params{
		Recycle:  RecycleNo,
		Clearing: ClearingOnlyAllocated,
		Reorder:  ReorderNo,
		Realloc:  ReallocNo,
		Annealing: Annealing{
			MainIterations:      100,
			FTIterations:        10,
			StartingTemperature: 10,
			CoolingFactor:       0.95,
		},
		Slowdown:    2,
		WeightTotal: 1,
		WeightMax:   0,
		Seed:        0,
	}
}

// Option mutates a Params record during construction.
type Option func(*Params)

// New builds a Params record from DefaultParams with opts applied in
// order.
func New(opts ...Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithRecycle sets the recycle policy.
func WithRecycle(r Recycle) Option { return func(p *Params) { p.Recycle = r } }

// WithClearing sets the clearing policy.
func WithClearing(c Clearing) Option { return func(p *Params) { p.Clearing = c } }

// WithReorder sets the reorder strategy.
func WithReorder(r Reorder) Option { return func(p *Params) { p.Reorder = r } }

// WithRealloc sets the reallocation strategy.
func WithRealloc(r Realloc) Option { return func(p *Params) { p.Realloc = r } }

// WithAnnealing sets the full annealing schedule.
func WithAnnealing(a Annealing) Option { return func(p *Params) { p.Annealing = a } }

// WithSlowdown sets the snowy-edge weight multiplier.
func WithSlowdown(slowdown float64) Option { return func(p *Params) { p.Slowdown = slowdown } }

// WithWeights sets the aggregate objective's total/max coefficients.
func WithWeights(total, max float64) Option {
	return func(p *Params) { p.WeightTotal = total; p.WeightMax = max }
}

// WithSeed sets the deterministic RNG seed.
func WithSeed(seed int64) Option { return func(p *Params) { p.Seed = seed } }
