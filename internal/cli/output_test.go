package cli

import (
	"context"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/awij3301/fibonnaci/internal/fibonacci"
	"github.com/awij3301/fibonnaci/internal/progress"
)

func TestDisplayResult_Small(t *testing.T) {
	useNoColorTheme(t)
	var buf strings.Builder

	DisplayResult(big.NewInt(6765), 20, 3*time.Millisecond, false, true, &buf)

	out := buf.String()
	if !strings.Contains(out, "F(20) = 6,765") {
		t.Errorf("output missing formatted value: %q", out)
	}
	if !strings.Contains(out, "3ms") {
		t.Errorf("output missing duration: %q", out)
	}
	if strings.Contains(out, "truncated") {
		t.Errorf("small value should not be truncated: %q", out)
	}
}

func TestDisplayResult_TruncatesLargeValues(t *testing.T) {
	useNoColorTheme(t)
	var buf strings.Builder

	// F(500) has 105 digits, above the truncation limit.
	result, err := fibonacci.Iterative{}.CalculateCore(context.Background(), progress.Noop, 500, fibonacci.Options{})
	if err != nil {
		t.Fatalf("CalculateCore failed: %v", err)
	}
	DisplayResult(result, 500, time.Millisecond, false, true, &buf)

	out := buf.String()
	if !strings.Contains(out, "(truncated)") {
		t.Errorf("large value should be truncated: %q", out)
	}
	if !strings.Contains(out, "...") {
		t.Errorf("truncated output missing ellipsis: %q", out)
	}
	if !strings.Contains(out, "-v") {
		t.Errorf("truncated output missing verbose tip: %q", out)
	}
}

func TestDisplayResult_VerboseShowsFullValue(t *testing.T) {
	useNoColorTheme(t)
	var buf strings.Builder

	result, _ := fibonacci.Iterative{}.CalculateCore(context.Background(), progress.Noop, 500, fibonacci.Options{})
	DisplayResult(result, 500, time.Millisecond, true, true, &buf)

	out := buf.String()
	if strings.Contains(out, "(truncated)") {
		t.Errorf("verbose output should not truncate: %q", out)
	}
}

func TestDisplayResult_ValueHiddenByDefault(t *testing.T) {
	useNoColorTheme(t)
	var buf strings.Builder

	DisplayResult(big.NewInt(55), 10, time.Millisecond, false, false, &buf)

	out := buf.String()
	if strings.Contains(out, "Calculated value") {
		t.Errorf("value section should be hidden without showValue: %q", out)
	}
	if !strings.Contains(out, "binary size") {
		t.Errorf("metadata should still be shown: %q", out)
	}
}

func TestDisplayQuietResult(t *testing.T) {
	var buf strings.Builder
	DisplayQuietResult(&buf, big.NewInt(6765))
	if buf.String() != "6765\n" {
		t.Errorf("quiet output = %q, want %q", buf.String(), "6765\n")
	}
}

func TestDisplaySequence(t *testing.T) {
	useNoColorTheme(t)
	var buf strings.Builder

	values, err := fibonacci.Sequence(6)
	if err != nil {
		t.Fatalf("Sequence failed: %v", err)
	}
	DisplaySequence(values, false, &buf)

	out := buf.String()
	for _, line := range []string{"F(0) = 0", "F(1) = 1", "F(5) = 5"} {
		if !strings.Contains(out, line) {
			t.Errorf("sequence output missing %q: %q", line, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 6 {
		t.Errorf("sequence output has %d lines, want 6", got)
	}
}

func TestDisplayQuietSequence(t *testing.T) {
	var buf strings.Builder
	values, _ := fibonacci.Sequence(4)
	DisplayQuietSequence(values, &buf)
	if buf.String() != "0\n1\n1\n2\n" {
		t.Errorf("quiet sequence = %q", buf.String())
	}
}

func TestDisplayMembershipReport(t *testing.T) {
	useNoColorTheme(t)
	tests := []struct {
		candidate int64
		isMember  bool
		want      string
	}{
		{6765, true, "6,765 is a Fibonacci number."},
		{6766, false, "6,766 is not a Fibonacci number."},
	}
	for _, tt := range tests {
		var buf strings.Builder
		DisplayMembershipReport(big.NewInt(tt.candidate), tt.isMember, &buf)
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("membership report = %q, want it to contain %q", buf.String(), tt.want)
		}
	}
}
