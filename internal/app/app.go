// Package app wires configuration, the calculation engine, and the
// presentation layers into the runnable application. It owns mode dispatch:
// single calculation, sequence listing, membership check, and the
// interactive explorer.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/awij3301/fibonnaci/internal/config"
	"github.com/awij3301/fibonnaci/internal/fibonacci"
	"github.com/awij3301/fibonnaci/internal/logging"
	"github.com/awij3301/fibonnaci/internal/ui"
)

// Application represents the fibseq application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.CalculatorFactory
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "app")
	}

	availableAlgos := app.Factory.List()

	programName := "fibseq"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	a.Logger.Debug("configuration resolved",
		logging.Int("n", a.Config.N),
		logging.String("algo", a.Config.Algo),
		logging.Int("count", a.Config.Count),
		logging.Bool("tui", a.Config.TUI))

	if a.Config.Check != "" {
		return a.runCheck(out)
	}
	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	// Count uses -1 as the "not requested" sentinel; any other value,
	// including invalid negatives, is handed to the sequence mode so the
	// engine can reject it.
	if a.Config.Count != -1 {
		return a.runSequence(out)
	}
	return a.runCalculate(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
