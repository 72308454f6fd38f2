package app

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os/signal"
	"syscall"

	"github.com/awij3301/fibonnaci/internal/chart"
	"github.com/awij3301/fibonnaci/internal/cli"
	apperrors "github.com/awij3301/fibonnaci/internal/errors"
	"github.com/awij3301/fibonnaci/internal/fibonacci"
	"github.com/awij3301/fibonnaci/internal/logging"
	"github.com/awij3301/fibonnaci/internal/tui"
)

const (
	// sequenceChartWidth and sequenceChartRows size the chart printed by
	// the -chart flag in sequence mode.
	sequenceChartWidth = 60
	sequenceChartRows  = 8
)

// runSequence prints the first Count Fibonacci values, optionally followed
// by a growth chart.
func (a *Application) runSequence(out io.Writer) int {
	values, err := fibonacci.Sequence(a.Config.Count)
	if err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, 0, a.ErrWriter)
	}

	if a.Config.Quiet {
		cli.DisplayQuietSequence(values, out)
		return apperrors.ExitSuccess
	}

	cli.DisplaySequence(values, a.Config.Verbose, out)

	if a.Config.Chart && len(values) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, chart.RenderGrowthChart(values, sequenceChartWidth, sequenceChartRows))
	}
	return apperrors.ExitSuccess
}

// runCheck tests whether the -check argument is a Fibonacci number.
// The exit code doubles as the verdict so scripts can branch on it:
// success for members, the generic error code otherwise.
func (a *Application) runCheck(out io.Writer) int {
	candidate, ok := new(big.Int).SetString(a.Config.Check, 10)
	if !ok {
		fmt.Fprintf(a.ErrWriter, "Error: -check expects a decimal integer, got %q\n", a.Config.Check)
		return apperrors.ExitErrorConfig
	}

	isMember := fibonacci.IsFibonacci(candidate)
	a.Logger.Debug("membership test",
		logging.String("candidate", a.Config.Check),
		logging.Bool("member", isMember))

	if a.Config.Quiet {
		fmt.Fprintln(out, isMember)
	} else {
		cli.DisplayMembershipReport(candidate, isMember, out)
	}

	if isMember {
		return apperrors.ExitSuccess
	}
	return apperrors.ExitErrorGeneric
}

// runTUI launches the interactive sequence explorer. No timeout applies:
// the session lasts until the user quits or a signal arrives.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	count := a.Config.Count
	if count < 0 {
		count = tui.DefaultTermCount
	}
	return tui.Run(ctx, count)
}
