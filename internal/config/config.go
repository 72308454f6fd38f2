// Package config handles command-line and environment configuration for the
// application. Priority: CLI flags > environment variables > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"time"

	apperrors "github.com/awij3301/fibonnaci/internal/errors"
	"github.com/awij3301/fibonnaci/internal/fibonacci"
)

// EnvPrefix is the prefix of all environment variables read by this package.
const EnvPrefix = "FIBSEQ_"

// Default values applied before flags and environment overrides.
const (
	DefaultN       = 100
	DefaultAlgo    = "doubling"
	DefaultTimeout = 1 * time.Minute
)

// AlgoAll selects every registered algorithm for the comparison mode.
const AlgoAll = "all"

// AppConfig holds the complete, resolved application configuration.
type AppConfig struct {
	// N is the Fibonacci index to calculate in single-value mode.
	N int
	// Algo selects the calculation strategy, or "all" for comparison mode.
	Algo string
	// Count is the sequence length in sequence mode; negative means the
	// mode is not requested.
	Count int
	// Check holds the decimal integer to run the membership test on;
	// empty means the mode is not requested.
	Check string
	// Chart enables terminal charts in sequence mode.
	Chart bool
	// TUI launches the interactive explorer.
	TUI bool
	// Timeout bounds every calculation.
	Timeout time.Duration
	// Verbose enables detailed output (memory stats, timings).
	Verbose bool
	// Quiet suppresses progress display.
	Quiet bool
	// ShowValue prints the full value regardless of its digit count.
	ShowValue bool
	// NoColor disables ANSI colors.
	NoColor bool
}

// ToCalculationOptions derives the engine options from the configuration.
func (c AppConfig) ToCalculationOptions() fibonacci.Options {
	return fibonacci.Options{}
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags not explicitly set, and validates the
// result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: The writer for usage and parse errors.
//   - availableAlgos: The registered algorithm names, for validation.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{
		N:       DefaultN,
		Algo:    DefaultAlgo,
		Count:   -1,
		Timeout: DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.N, "n", cfg.N, "index of the Fibonacci number to calculate")
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo,
		fmt.Sprintf("calculation algorithm %v, or %q to compare all", availableAlgos, AlgoAll))
	fs.IntVar(&cfg.Count, "count", cfg.Count, "print the first `count` Fibonacci values instead of a single one")
	fs.StringVar(&cfg.Check, "check", cfg.Check, "test whether the given integer is a Fibonacci number")
	fs.BoolVar(&cfg.Chart, "chart", cfg.Chart, "render a terminal chart of the sequence (with -count)")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "launch the interactive explorer")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "global timeout for the calculation")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose output")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "suppress progress display")
	fs.BoolVar(&cfg.ShowValue, "c", cfg.ShowValue, "print the full value, however large")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate rejects configurations the application cannot act on. Negative
// index and count values deliberately pass through: the engine surfaces
// them as InvalidArgument so that validation lives in one place.
func validate(cfg AppConfig, availableAlgos []string) error {
	if cfg.Algo != AlgoAll && !slices.Contains(availableAlgos, cfg.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q (valid: %v or %q)", cfg.Algo, availableAlgos, AlgoAll)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.TUI && cfg.Quiet {
		return apperrors.NewConfigError("-tui and -q are mutually exclusive")
	}
	return nil
}
