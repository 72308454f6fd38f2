package fibonacci

import (
	"context"
	"math/big"
	"testing"
	"time"

	apperrors "github.com/awij3301/fibonnaci/internal/errors"
	"github.com/awij3301/fibonnaci/internal/progress"
)

// calcCore computes F(n) directly on a core, bypassing the decorator's
// small-n fast path.
func calcCore(t *testing.T, core coreCalculator, n int) *big.Int {
	t.Helper()
	result, err := core.CalculateCore(context.Background(), progress.Noop, n, Options{})
	if err != nil {
		t.Fatalf("%s: CalculateCore(%d) failed: %v", core.Name(), n, err)
	}
	return result
}

// allCores returns one instance of every core strategy.
func allCores() []coreCalculator {
	return []coreCalculator{
		NaiveRecursive{},
		Iterative{},
		NewMemoized(NewMemoCache()),
		FastDoubling{},
	}
}

// fib93 is F(93), the largest Fibonacci number fitting in a uint64.
const fib93 = "12200160415121876738"

func TestKnownValues(t *testing.T) {
	known := map[int]string{
		0:  "0",
		1:  "1",
		2:  "1",
		10: "55",
		20: "6765",
		93: fib93,
	}
	for _, core := range allCores() {
		t.Run(core.Name(), func(t *testing.T) {
			for n, want := range known {
				if got := calcCore(t, core, n); got.String() != want {
					t.Errorf("F(%d) = %s, want %s", n, got, want)
				}
			}
		})
	}
}

func TestStrategiesAgree(t *testing.T) {
	// The iterative core is the authoritative reference; every other
	// strategy must agree with it on [0, 30].
	reference := Iterative{}
	for _, core := range allCores() {
		t.Run(core.Name(), func(t *testing.T) {
			for n := 0; n <= 30; n++ {
				want := calcCore(t, reference, n)
				got := calcCore(t, core, n)
				if got.Cmp(want) != 0 {
					t.Errorf("F(%d) = %s, want %s", n, got, want)
				}
			}
		})
	}
}

func TestNegativeIndexRejected(t *testing.T) {
	for _, core := range allCores() {
		t.Run(core.Name(), func(t *testing.T) {
			for _, n := range []int{-1, -42} {
				_, err := core.CalculateCore(context.Background(), progress.Noop, n, Options{})
				if !apperrors.IsInvalidArgument(err) {
					t.Errorf("CalculateCore(%d) error = %v, want InvalidArgumentError", n, err)
				}
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	// Repeated calls with the same n always return the same value; no
	// hidden mutable state may affect results.
	memoized := NewMemoized(NewMemoCache())
	for _, core := range []coreCalculator{memoized, Iterative{}, FastDoubling{}} {
		t.Run(core.Name(), func(t *testing.T) {
			first := calcCore(t, core, 200)
			// Mutating a returned value must not corrupt later results.
			calcCore(t, core, 200).SetInt64(-1)
			second := calcCore(t, core, 200)
			if first.Cmp(second) != 0 {
				t.Errorf("repeated F(200) differ: %s vs %s", first, second)
			}
		})
	}
}

func TestCalculatorDecorator(t *testing.T) {
	t.Run("validates negative n before reaching the core", func(t *testing.T) {
		calc := NewCalculator(NaiveRecursive{})
		_, err := calc.Calculate(context.Background(), nil, 0, -3, Options{})
		if !apperrors.IsInvalidArgument(err) {
			t.Errorf("error = %v, want InvalidArgumentError", err)
		}
	})

	t.Run("small n takes the fast path", func(t *testing.T) {
		// Even the exponential strategy answers instantly for n <= 93.
		calc := NewCalculator(NaiveRecursive{})
		result, err := calc.Calculate(context.Background(), nil, 0, 93, Options{})
		if err != nil {
			t.Fatalf("Calculate(93) failed: %v", err)
		}
		if result.String() != fib93 {
			t.Errorf("F(93) = %s, want %s", result, fib93)
		}
	})

	t.Run("reports terminal progress", func(t *testing.T) {
		calc := NewCalculator(Iterative{})
		progressChan := make(chan progress.Update, 64)
		if _, err := calc.Calculate(context.Background(), progressChan, 3, 10, Options{}); err != nil {
			t.Fatalf("Calculate failed: %v", err)
		}
		close(progressChan)

		var last progress.Update
		seen := false
		for update := range progressChan {
			last = update
			seen = true
		}
		if !seen {
			t.Fatal("no progress updates received")
		}
		if last.Value != 1.0 || last.CalculatorIndex != 3 {
			t.Errorf("final update = %+v, want value 1.0 on index 3", last)
		}
	})

	t.Run("nil core panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("NewCalculator(nil) should panic")
			}
		}()
		NewCalculator(nil)
	})
}

func TestContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, core := range allCores() {
		t.Run(core.Name(), func(t *testing.T) {
			// 100000 keeps even the linear strategies busy long enough to
			// notice the pre-canceled context; the recursive core checks on
			// every level so any n > 1 suffices there.
			_, err := core.CalculateCore(ctx, progress.Noop, 100000, Options{})
			if !apperrors.IsContextError(err) {
				t.Errorf("error = %v, want context error", err)
			}
		})
	}
}

func TestContextTimeout(t *testing.T) {
	// The naive recursion must abort once the deadline passes rather than
	// grinding through its exponential tree.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NaiveRecursive{}.CalculateCore(ctx, progress.Noop, 200, Options{})
	if !apperrors.IsContextError(err) {
		t.Errorf("error = %v, want context deadline error", err)
	}
}

func TestCalculateSmall(t *testing.T) {
	want := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}
	for n, w := range want {
		if got := calculateSmall(n); got.Int64() != w {
			t.Errorf("calculateSmall(%d) = %s, want %d", n, got, w)
		}
	}
}
