package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/awij3301/fibonnaci/internal/progress"
)

// ProgressReporter defines the interface for displaying calculation
// progress. It decouples the orchestration layer from the presentation
// layer: implementations handle the visual representation (spinner,
// progress bar) while orchestration focuses on coordinating calculations.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It is called in a separate goroutine and runs until progressChan is
	// closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from calculators.
	//   - numCalculators: The number of concurrent calculators being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numCalculators int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.Update, numCalculators int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Used for quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting calculation results.
// It decouples the orchestration layer from presentation concerns, allowing
// different output formats without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []CalculationResult, out io.Writer)

	// PresentResult displays the final calculation result.
	PresentResult(result CalculationResult, n int, verbose, showValue bool, out io.Writer)

	// HandleError reports a calculation error and returns an exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}
