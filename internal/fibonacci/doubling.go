package fibonacci

import (
	"context"
	"math/big"
	"math/bits"

	"github.com/awij3301/fibonnaci/internal/progress"
)

// FastDoubling computes F(n) in O(log n) big-integer multiplications using
// the doubling identities:
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k)^2 + F(k+1)^2
//
// It processes the bits of n from most to least significant, maintaining
// the pair (F(k), F(k+1)).
type FastDoubling struct{}

// Name returns the display name of the fast doubling strategy.
func (FastDoubling) Name() string { return "Fast Doubling (O(log n))" }

// CalculateCore computes F(n) by fast doubling. Progress is reported per
// processed bit, which gives a smooth ramp even though the cost of each
// step grows with the operand size.
func (FastDoubling) CalculateCore(ctx context.Context, report progress.Callback, n int, _ Options) (*big.Int, error) {
	if err := validateIndex("n", n); err != nil {
		return nil, err
	}
	if n < 2 {
		return big.NewInt(int64(n)), nil
	}

	// a = F(k), b = F(k+1), starting at k = 0.
	a := big.NewInt(0)
	b := big.NewInt(1)

	// Temporaries reused across iterations.
	t1 := new(big.Int)
	t2 := new(big.Int)

	totalBits := bits.Len(uint(n))
	for i := totalBits - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// t1 = F(2k) = a * (2b - a)
		t1.Lsh(b, 1)
		t1.Sub(t1, a)
		t1.Mul(a, t1)

		// t2 = F(2k+1) = a^2 + b^2
		t2.Mul(a, a)
		t2.Add(t2, new(big.Int).Mul(b, b))

		if uint(n)&(1<<uint(i)) != 0 {
			// k' = 2k+1: (F(2k+1), F(2k+2)) = (t2, t1+t2)
			a.Set(t2)
			b.Add(t1, t2)
		} else {
			// k' = 2k: (F(2k), F(2k+1)) = (t1, t2)
			a.Set(t1)
			b.Set(t2)
		}

		report(float64(totalBits-i) / float64(totalBits))
	}
	return a, nil
}
