package fibonacci

const (
	// MaxFibUint64 = 93 because F(93) is the largest Fibonacci number that
	// fits in a uint64; F(94) exceeds 2^64. Calculations up to this index
	// take the cheap iterative fast path in the Calculator decorator.
	MaxFibUint64 = 93

	// GrowthFactor is log2(phi), where phi ≈ 1.618 (golden ratio).
	// Used to estimate the bit length of F(n): bits(F(n)) ≈ n * GrowthFactor.
	GrowthFactor = 0.69424

	// checkInterval is the number of loop iterations between context
	// cancellation checks in the linear-time cores.
	checkInterval = 1024
)
