package fibonacci

import (
	"context"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	apperrors "github.com/awij3301/fibonnaci/internal/errors"
	"github.com/awij3301/fibonnaci/internal/progress"
)

// Options carries per-call configuration for a calculation.
type Options struct {
	// Memo is the cache used by the memoized strategy. When nil, the
	// strategy falls back to the cache owned by its instance (or a fresh
	// per-call cache if it owns none). Other strategies ignore it.
	Memo *MemoCache
}

// Calculator defines the public interface for a Fibonacci calculator.
// It is the primary abstraction used by the application's orchestration
// layer to interact with different calculation algorithms.
type Calculator interface {
	// Calculate computes the n-th Fibonacci number. It is safe for
	// concurrent use and supports cancellation through the provided
	// context. Progress updates are sent asynchronously to progressChan
	// (which may be nil).
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - progressChan: The channel for sending progress updates, or nil.
	//   - calcIndex: A unique index for the calculator instance.
	//   - n: The 0-based index of the Fibonacci number to calculate.
	//   - opts: Configuration options for the calculation.
	//
	// Returns:
	//   - *big.Int: The calculated Fibonacci number.
	//   - error: An InvalidArgumentError if n < 0, or a context error.
	Calculate(ctx context.Context, progressChan chan<- progress.Update, calcIndex int, n int, opts Options) (*big.Int, error)

	// Name returns the display name of the calculation algorithm.
	Name() string
}

// coreCalculator is the internal interface for a pure calculation algorithm.
// Cores assume progress reporting through a plain callback and carry no
// cross-cutting concerns.
type coreCalculator interface {
	CalculateCore(ctx context.Context, report progress.Callback, n int, opts Options) (*big.Int, error)
	Name() string
}

// FibCalculator implements Calculator by wrapping a coreCalculator with
// cross-cutting concerns: input validation, the small-n fast path, progress
// adaptation, tracing, metrics, and completion logging.
type FibCalculator struct {
	core coreCalculator
}

// NewCalculator constructs a FibCalculator around the given core algorithm.
// It panics if core is nil.
func NewCalculator(core coreCalculator) Calculator {
	if core == nil {
		panic("fibonacci: the coreCalculator implementation cannot be nil")
	}
	return &FibCalculator{core: core}
}

// Name returns the name of the wrapped core algorithm.
func (c *FibCalculator) Name() string {
	return c.core.Name()
}

// Calculate validates the input, dispatches small indices to the iterative
// fast path, and delegates everything else to the wrapped core. Metrics and
// a trace span are recorded for every call, including failures.
func (c *FibCalculator) Calculate(ctx context.Context, progressChan chan<- progress.Update, calcIndex int, n int, opts Options) (result *big.Int, err error) {
	tracer := otel.Tracer("fibonacci")
	ctx, span := tracer.Start(ctx, "Calculate")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		algoName := c.core.Name()
		calculationsTotal.WithLabelValues(algoName, status).Inc()
		calculationDuration.WithLabelValues(algoName).Observe(duration)

		log.Debug().
			Str("algo", algoName).
			Int("n", n).
			Float64("duration", duration).
			Str("status", status).
			Msg("calculation completed")
	}()

	if n < 0 {
		return nil, apperrors.NewInvalidArgument("n", n)
	}

	report := progress.ChannelCallback(progressChan, calcIndex)

	if n <= MaxFibUint64 {
		report(1.0)
		return calculateSmall(n), nil
	}

	result, err = c.core.CalculateCore(ctx, report, n, opts)
	if err == nil && result != nil {
		report(1.0)
	}
	return result, err
}

// calculateSmall returns F(n) for n <= MaxFibUint64 using uint64 iteration.
func calculateSmall(n int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	var a, b uint64 = 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return new(big.Int).SetUint64(b)
}

// validateIndex rejects negative indices with the engine's single domain
// error kind. Cores call it so that direct core usage (tests, benchmarks)
// gets the same contract as the decorated path.
func validateIndex(param string, n int) error {
	if n < 0 {
		return apperrors.NewInvalidArgument(param, n)
	}
	return nil
}
