package orchestration

import (
	"context"
	"errors"
	"io"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/awij3301/fibonnaci/internal/config"
	apperrors "github.com/awij3301/fibonnaci/internal/errors"
	"github.com/awij3301/fibonnaci/internal/fibonacci"
	"github.com/awij3301/fibonnaci/internal/progress"
)

// fakeCalculator returns a fixed result (or error) and reports a single
// terminal progress update, mimicking the decorator's contract.
type fakeCalculator struct {
	name   string
	result *big.Int
	err    error
	delay  time.Duration
}

func (f *fakeCalculator) Calculate(ctx context.Context, progressChan chan<- progress.Update, calcIndex int, n int, opts fibonacci.Options) (*big.Int, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if progressChan != nil {
		select {
		case progressChan <- progress.Update{CalculatorIndex: calcIndex, Value: 1.0}:
		default:
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return new(big.Int).Set(f.result), nil
}

func (f *fakeCalculator) Name() string { return f.name }

// recordingPresenter captures presenter calls for assertions.
type recordingPresenter struct {
	tableCalls  int
	resultCalls int
	lastResult  CalculationResult
	errorCode   int
}

func (p *recordingPresenter) PresentComparisonTable(results []CalculationResult, out io.Writer) {
	p.tableCalls++
}

func (p *recordingPresenter) PresentResult(result CalculationResult, n int, verbose, showValue bool, out io.Writer) {
	p.resultCalls++
	p.lastResult = result
}

func (p *recordingPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return p.errorCode
}

func TestExecuteCalculations_CollectsAllResults(t *testing.T) {
	calculators := []fibonacci.Calculator{
		&fakeCalculator{name: "a", result: big.NewInt(55)},
		&fakeCalculator{name: "b", result: big.NewInt(55)},
		&fakeCalculator{name: "c", result: big.NewInt(55)},
	}
	cfg := config.AppConfig{N: 10}

	results := ExecuteCalculations(context.Background(), calculators, cfg, NullProgressReporter{}, io.Discard)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, res := range results {
		if res.Err != nil {
			t.Errorf("result %d: unexpected error %v", i, res.Err)
		}
		if res.Result == nil || res.Result.Cmp(big.NewInt(55)) != 0 {
			t.Errorf("result %d: got %v, want 55", i, res.Result)
		}
		if res.Name != calculators[i].Name() {
			t.Errorf("result %d: name %q, want %q", i, res.Name, calculators[i].Name())
		}
	}
}

func TestExecuteCalculations_PartialFailure(t *testing.T) {
	wantErr := errors.New("boom")
	calculators := []fibonacci.Calculator{
		&fakeCalculator{name: "good", result: big.NewInt(13)},
		&fakeCalculator{name: "bad", err: wantErr},
	}
	cfg := config.AppConfig{N: 7}

	results := ExecuteCalculations(context.Background(), calculators, cfg, NullProgressReporter{}, io.Discard)

	if results[0].Err != nil {
		t.Errorf("good calculator failed: %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, wantErr) {
		t.Errorf("bad calculator error = %v, want %v", results[1].Err, wantErr)
	}
}

func TestExecuteCalculations_ReporterReceivesUpdates(t *testing.T) {
	var mu sync.Mutex
	received := 0
	reporter := ProgressReporterFunc(func(wg *sync.WaitGroup, progressChan <-chan progress.Update, numCalculators int, out io.Writer) {
		defer wg.Done()
		for range progressChan {
			mu.Lock()
			received++
			mu.Unlock()
		}
	})

	calculators := []fibonacci.Calculator{
		&fakeCalculator{name: "a", result: big.NewInt(1)},
		&fakeCalculator{name: "b", result: big.NewInt(1)},
	}
	ExecuteCalculations(context.Background(), calculators, config.AppConfig{N: 2}, reporter, io.Discard)

	mu.Lock()
	defer mu.Unlock()
	if received != 2 {
		t.Errorf("reporter received %d updates, want 2", received)
	}
}

func TestAnalyzeComparisonResults_Consistent(t *testing.T) {
	results := []CalculationResult{
		{Name: "slow", Result: big.NewInt(55), Duration: 20 * time.Millisecond},
		{Name: "fast", Result: big.NewInt(55), Duration: time.Millisecond},
	}
	presenter := &recordingPresenter{}
	var buf strings.Builder

	code := AnalyzeComparisonResults(results, config.AppConfig{N: 10}, presenter, &buf)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if presenter.tableCalls != 1 {
		t.Errorf("table presented %d times, want 1", presenter.tableCalls)
	}
	if presenter.lastResult.Name != "fast" {
		t.Errorf("presented result from %q, want fastest (%q)", presenter.lastResult.Name, "fast")
	}
	if !strings.Contains(buf.String(), "Success") {
		t.Errorf("output missing success status: %q", buf.String())
	}
}

func TestAnalyzeComparisonResults_Mismatch(t *testing.T) {
	results := []CalculationResult{
		{Name: "a", Result: big.NewInt(55), Duration: time.Millisecond},
		{Name: "b", Result: big.NewInt(56), Duration: 2 * time.Millisecond},
	}
	presenter := &recordingPresenter{}
	var buf strings.Builder

	code := AnalyzeComparisonResults(results, config.AppConfig{N: 10}, presenter, &buf)

	if code != apperrors.ExitErrorMismatch {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
	if presenter.resultCalls != 0 {
		t.Error("no result should be presented on mismatch")
	}
	if !strings.Contains(buf.String(), "inconsistency") {
		t.Errorf("output missing mismatch notice: %q", buf.String())
	}
}

func TestAnalyzeComparisonResults_AllFailed(t *testing.T) {
	results := []CalculationResult{
		{Name: "a", Err: errors.New("a failed")},
		{Name: "b", Err: errors.New("b failed")},
	}
	presenter := &recordingPresenter{errorCode: apperrors.ExitErrorGeneric}
	var buf strings.Builder

	code := AnalyzeComparisonResults(results, config.AppConfig{N: 10}, presenter, &buf)

	if code != apperrors.ExitErrorGeneric {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if !strings.Contains(buf.String(), "Failure") {
		t.Errorf("output missing failure status: %q", buf.String())
	}
}

func TestAnalyzeComparisonResults_FailuresSortLast(t *testing.T) {
	results := []CalculationResult{
		{Name: "failed", Err: errors.New("nope"), Duration: time.Nanosecond},
		{Name: "ok", Result: big.NewInt(5), Duration: time.Hour},
	}
	presenter := &recordingPresenter{}

	code := AnalyzeComparisonResults(results, config.AppConfig{N: 5}, presenter, io.Discard)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want success", code)
	}
	if presenter.lastResult.Name != "ok" {
		t.Errorf("presented %q, want the successful result", presenter.lastResult.Name)
	}
}

func TestGetCalculatorsToRun(t *testing.T) {
	factory := fibonacci.NewDefaultFactory()

	all := GetCalculatorsToRun(config.AlgoAll, factory)
	if len(all) != len(factory.List()) {
		t.Errorf("all: got %d calculators, want %d", len(all), len(factory.List()))
	}

	single := GetCalculatorsToRun("iterative", factory)
	if len(single) != 1 {
		t.Fatalf("single: got %d calculators, want 1", len(single))
	}

	none := GetCalculatorsToRun("unknown", factory)
	if none != nil {
		t.Errorf("unknown algorithm should yield nil, got %v", none)
	}
}
