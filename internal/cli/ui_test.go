package cli

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/awij3301/fibonnaci/internal/progress"
	"github.com/awij3301/fibonnaci/internal/ui"
)

// useNoColorTheme switches to the colorless theme for deterministic output
// and restores the previous theme when the test ends.
func useNoColorTheme(t *testing.T) {
	t.Helper()
	prev := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(prev) })
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		length   int
		filled   int
	}{
		{"empty", 0.0, 10, 0},
		{"half", 0.5, 10, 5},
		{"full", 1.0, 10, 10},
		{"over", 1.5, 10, 10},
		{"negative", -0.5, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := progressBar(tt.progress, tt.length)
			if got := strings.Count(bar, "█"); got != tt.filled {
				t.Errorf("filled cells = %d, want %d", got, tt.filled)
			}
			if got := strings.Count(bar, "░"); got != tt.length-tt.filled {
				t.Errorf("empty cells = %d, want %d", got, tt.length-tt.filled)
			}
		})
	}
}

func TestProgressState(t *testing.T) {
	ps := NewProgressState(4)
	ps.Update(0, 1.0)
	ps.Update(1, 0.5)
	ps.Update(2, 0.5)
	// Index 3 stays at zero; out-of-range updates are ignored.
	ps.Update(17, 1.0)
	ps.Update(-1, 1.0)

	if got := ps.CalculateAverage(); got != 0.5 {
		t.Errorf("CalculateAverage() = %v, want 0.5", got)
	}
}

func TestProgressState_Empty(t *testing.T) {
	ps := NewProgressState(0)
	if got := ps.CalculateAverage(); got != 0.0 {
		t.Errorf("CalculateAverage() = %v, want 0.0 for zero calculators", got)
	}
}

func TestFormatETA(t *testing.T) {
	tests := []struct {
		eta  time.Duration
		want string
	}{
		{0, "calculating..."},
		{500 * time.Millisecond, "< 1s"},
		{30 * time.Second, "30s"},
		{2*time.Minute + 30*time.Second, "2m30s"},
		{5 * time.Minute, "5m"},
		{time.Hour + 15*time.Minute, "1h15m"},
		{2 * time.Hour, "2h"},
	}
	for _, tt := range tests {
		if got := FormatETA(tt.eta); got != tt.want {
			t.Errorf("FormatETA(%v) = %q, want %q", tt.eta, got, tt.want)
		}
	}
}

func TestFormatProgressBarWithETA(t *testing.T) {
	s := FormatProgressBarWithETA(0.45, 2*time.Minute+30*time.Second, 8)
	if !strings.Contains(s, "45.00%") {
		t.Errorf("missing percentage: %q", s)
	}
	if !strings.Contains(s, "ETA: 2m30s") {
		t.Errorf("missing ETA: %q", s)
	}
}

// fakeSpinner records lifecycle calls so DisplayProgress can be tested
// without a terminal.
type fakeSpinner struct {
	mu      sync.Mutex
	started bool
	stopped bool
	suffix  string
}

func (f *fakeSpinner) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = true
}

func (f *fakeSpinner) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeSpinner) UpdateSuffix(suffix string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suffix = suffix
}

func TestDisplayProgress(t *testing.T) {
	fake := &fakeSpinner{}
	origNewSpinner := newSpinner
	newSpinner = func(options ...spinner.Option) Spinner { return fake }
	t.Cleanup(func() { newSpinner = origNewSpinner })

	progressChan := make(chan progress.Update, 4)
	var wg sync.WaitGroup
	wg.Add(1)
	var buf strings.Builder

	go DisplayProgress(&wg, progressChan, 2, &buf)

	progressChan <- progress.Update{CalculatorIndex: 0, Value: 0.5}
	progressChan <- progress.Update{CalculatorIndex: 1, Value: 1.0}
	close(progressChan)
	wg.Wait()

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if !fake.started {
		t.Error("spinner was never started")
	}
	if !fake.stopped {
		t.Error("spinner was never stopped")
	}
	if !strings.Contains(buf.String(), "100.00%") {
		t.Errorf("final output missing 100%% line: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Avg progress") {
		t.Errorf("multi-calculator label missing: %q", buf.String())
	}
}

func TestDisplayProgress_NoCalculators(t *testing.T) {
	progressChan := make(chan progress.Update, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	var buf strings.Builder

	progressChan <- progress.Update{CalculatorIndex: 0, Value: 0.5}
	close(progressChan)
	DisplayProgress(&wg, progressChan, 0, &buf)

	if buf.Len() != 0 {
		t.Errorf("expected no output for zero calculators, got %q", buf.String())
	}
}
