package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/awij3301/fibonnaci/internal/cli"
	apperrors "github.com/awij3301/fibonnaci/internal/errors"
	"github.com/awij3301/fibonnaci/internal/logging"
	"github.com/awij3301/fibonnaci/internal/metrics"
	"github.com/awij3301/fibonnaci/internal/orchestration"
)

// runCalculate orchestrates the execution of the CLI calculation command.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	// Lifecycle: timeout + signals
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)
	if len(calculatorsToRun) == 0 {
		a.Logger.Error("no calculator for algorithm", nil, logging.String("algo", a.Config.Algo))
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(calculatorsToRun, out)
	}

	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	results := orchestration.ExecuteCalculations(ctx, calculatorsToRun, a.Config, progressReporter, progressOut)

	if a.Config.Quiet {
		if best := findBestResult(results); best != nil {
			cli.DisplayQuietResult(out, best.Result)
			return apperrors.ExitSuccess
		}
		err := firstError(results)
		if err == nil {
			return apperrors.ExitErrorGeneric
		}
		return cli.CLIResultPresenter{}.HandleError(err, a.Config.Timeout, a.ErrWriter)
	}

	exitCode := orchestration.AnalyzeComparisonResults(results, a.Config, cli.CLIResultPresenter{}, out)

	if a.Config.Verbose && exitCode == apperrors.ExitSuccess {
		cli.DisplayMemoryStats(metrics.Snapshot(), out)
	}
	return exitCode
}

// findBestResult returns the fastest successful result, or nil when every
// calculation failed.
func findBestResult(results []orchestration.CalculationResult) *orchestration.CalculationResult {
	var best *orchestration.CalculationResult
	for i := range results {
		if results[i].Err == nil {
			if best == nil || results[i].Duration < best.Duration {
				best = &results[i]
			}
		}
	}
	return best
}

// firstError returns the first non-nil error among the results.
func firstError(results []orchestration.CalculationResult) error {
	for i := range results {
		if results[i].Err != nil {
			return results[i].Err
		}
	}
	return nil
}
