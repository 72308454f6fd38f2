package fibonacci

import (
	"context"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/awij3301/fibonnaci/internal/progress"
)

// propF computes F(n) with the given core, failing the property on error.
func propF(core coreCalculator, n int) (*big.Int, error) {
	return core.CalculateCore(context.Background(), progress.Noop, n, Options{})
}

// TestRecurrenceRelation_PropertyBased verifies the fundamental recurrence:
//
//	F(n) = F(n-1) + F(n-2)  for n >= 2
//
// This is the defining property of the Fibonacci sequence.
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, core := range []coreCalculator{Iterative{}, NewMemoized(NewMemoCache()), FastDoubling{}} {
		properties.Property(core.Name()+" satisfies recurrence F(n) = F(n-1) + F(n-2)", prop.ForAll(
			func(n int) bool {
				fn, err := propF(core, n)
				if err != nil {
					return false
				}
				fn1, err := propF(core, n-1)
				if err != nil {
					return false
				}
				fn2, err := propF(core, n-2)
				if err != nil {
					return false
				}
				sum := new(big.Int).Add(fn1, fn2)
				return fn.Cmp(sum) == 0
			},
			gen.IntRange(2, 2000),
		))
	}

	properties.TestingRun(t)
}

// TestCassinisIdentity_PropertyBased verifies Cassini's Identity:
//
//	F(n-1) * F(n+1) - F(n)² = (-1)ⁿ  for n > 0
//
// A strong correctness check that catches off-by-one and aliasing bugs.
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	core := FastDoubling{}
	properties.Property("fast doubling satisfies Cassini's Identity", prop.ForAll(
		func(n int) bool {
			fnMinus1, err := propF(core, n-1)
			if err != nil {
				return false
			}
			fn, err := propF(core, n)
			if err != nil {
				return false
			}
			fnPlus1, err := propF(core, n+1)
			if err != nil {
				return false
			}

			// Left side: F(n-1) * F(n+1) - F(n)²
			leftSide := new(big.Int).Mul(fnMinus1, fnPlus1)
			leftSide.Sub(leftSide, new(big.Int).Mul(fn, fn))

			// Right side: (-1)ⁿ
			rightSide := big.NewInt(1)
			if n%2 != 0 {
				rightSide.Neg(rightSide)
			}
			return leftSide.Cmp(rightSide) == 0
		},
		gen.IntRange(1, 2000),
	))

	properties.TestingRun(t)
}

// TestStrategyAgreement_PropertyBased verifies that the linear and
// logarithmic strategies agree for random indices. The naive recursion is
// checked on a small range where its exponential cost stays tolerable.
func TestStrategyAgreement_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	reference := Iterative{}

	properties.Property("memoized and doubling agree with iterative", prop.ForAll(
		func(n int) bool {
			want, err := propF(reference, n)
			if err != nil {
				return false
			}
			for _, core := range []coreCalculator{NewMemoized(NewMemoCache()), FastDoubling{}} {
				got, err := propF(core, n)
				if err != nil || got.Cmp(want) != 0 {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 3000),
	))

	properties.Property("naive recursion agrees with iterative", prop.ForAll(
		func(n int) bool {
			want, err := propF(reference, n)
			if err != nil {
				return false
			}
			got, err := propF(NaiveRecursive{}, n)
			if err != nil {
				return false
			}
			return got.Cmp(want) == 0
		},
		gen.IntRange(0, 25),
	))

	properties.TestingRun(t)
}

// TestMembership_PropertyBased verifies that the closed-form membership
// test accepts exactly the values the generator produces.
func TestMembership_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	core := Iterative{}
	properties.Property("every F(n) passes the membership test", prop.ForAll(
		func(n int) bool {
			fn, err := propF(core, n)
			if err != nil {
				return false
			}
			return IsFibonacci(fn)
		},
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
