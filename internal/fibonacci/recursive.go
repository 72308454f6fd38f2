package fibonacci

import (
	"context"
	"math/big"

	"github.com/awij3301/fibonnaci/internal/progress"
)

// NaiveRecursive computes F(n) by the direct recursive definition
// F(n) = F(n-1) + F(n-2). Exponential time; it exists for pedagogical and
// cross-validation purposes only and makes no performance guarantee.
type NaiveRecursive struct{}

// Name returns the display name of the naive recursive strategy.
func (NaiveRecursive) Name() string { return "Naive Recursive (O(2^n))" }

// CalculateCore computes F(n) by plain recursion. The context is checked at
// every level, so even a hopelessly large n aborts promptly on cancellation
// or timeout. No intermediate progress is reported: the recursion tree gives
// no cheap measure of completed work.
func (NaiveRecursive) CalculateCore(ctx context.Context, report progress.Callback, n int, _ Options) (*big.Int, error) {
	if err := validateIndex("n", n); err != nil {
		return nil, err
	}
	result, err := fibRecurse(ctx, n)
	if err != nil {
		return nil, err
	}
	report(1.0)
	return result, nil
}

// fibRecurse is the textbook recursion. Recursion depth is at most n.
func fibRecurse(ctx context.Context, n int) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n < 2 {
		return big.NewInt(int64(n)), nil
	}
	left, err := fibRecurse(ctx, n-1)
	if err != nil {
		return nil, err
	}
	right, err := fibRecurse(ctx, n-2)
	if err != nil {
		return nil, err
	}
	return left.Add(left, right), nil
}
