package fibonacci

import (
	"math/big"

	apperrors "github.com/awij3301/fibonnaci/internal/errors"
)

// Generator is an explicit state-holding iterator over the Fibonacci
// sequence. It yields F(0), F(1), ... one value at a time without
// materializing the whole sequence, is bounded by the count given at
// construction, and is consumed in a single forward pass (not restartable).
//
// A Generator is not safe for concurrent use; each consumer should own its
// own instance.
type Generator struct {
	a, b      *big.Int
	remaining int
}

// NewGenerator creates a generator that yields the first count Fibonacci
// values. A negative count is rejected immediately, before any value is
// produced.
func NewGenerator(count int) (*Generator, error) {
	if count < 0 {
		return nil, apperrors.NewInvalidArgument("count", count)
	}
	return &Generator{
		a:         big.NewInt(0),
		b:         big.NewInt(1),
		remaining: count,
	}, nil
}

// Next returns the next value of the sequence and true, or nil and false
// once the generator is exhausted. The returned value is owned by the
// caller and may be mutated freely.
func (g *Generator) Next() (*big.Int, bool) {
	if g.remaining == 0 {
		return nil, false
	}
	g.remaining--
	value := new(big.Int).Set(g.a)
	g.a.Add(g.a, g.b)
	g.a, g.b = g.b, g.a
	return value, true
}

// Remaining returns how many values the generator will still yield.
func (g *Generator) Remaining() int { return g.remaining }

// Sequence returns the first count Fibonacci values in order, starting at
// F(0). It returns an empty slice for count = 0 and an InvalidArgumentError
// for negative counts. Sequence(count)[i] equals F(i) as computed by the
// iterative strategy for every valid i.
func Sequence(count int) ([]*big.Int, error) {
	gen, err := NewGenerator(count)
	if err != nil {
		return nil, err
	}
	values := make([]*big.Int, 0, count)
	for {
		v, ok := gen.Next()
		if !ok {
			return values, nil
		}
		values = append(values, v)
	}
}
