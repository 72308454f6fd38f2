package fibonacci

import (
	"context"
	"math/big"

	"github.com/awij3301/fibonnaci/internal/progress"
)

// Iterative computes F(n) by maintaining the last two values of the
// sequence and advancing n times. Linear time, constant auxiliary space.
// It is the authoritative reference implementation: every other strategy
// must agree with it.
type Iterative struct{}

// Name returns the display name of the iterative strategy.
func (Iterative) Name() string { return "Iterative (O(n), O(1) space)" }

// CalculateCore computes F(n) iteratively. The context is checked every
// checkInterval iterations so that very large indices remain cancellable.
func (Iterative) CalculateCore(ctx context.Context, report progress.Callback, n int, _ Options) (*big.Int, error) {
	if err := validateIndex("n", n); err != nil {
		return nil, err
	}
	if n < 2 {
		return big.NewInt(int64(n)), nil
	}

	a := big.NewInt(0)
	b := big.NewInt(1)
	for i := 2; i <= n; i++ {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			report(float64(i) / float64(n))
		}
		a.Add(a, b)
		a, b = b, a
	}
	return b, nil
}
