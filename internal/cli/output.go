// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplaySequence], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatETA], [FormatProgressBarWithETA].

package cli

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/awij3301/fibonnaci/internal/format"
	"github.com/awij3301/fibonnaci/internal/ui"
)

// DisplayResult formats and prints the final calculation result.
// It always shows the calculation time and size metadata; the calculated
// value section appears only when showValue is set. For very large numbers
// the value is truncated unless verbose is true.
//
// Parameters:
//   - result: The calculation result.
//   - n: The index of the Fibonacci number calculated.
//   - duration: The time taken for the calculation.
//   - verbose: If true, prints the full number regardless of size.
//   - showValue: If true, displays the calculated value section.
//   - out: The io.Writer for the output.
func DisplayResult(result *big.Int, n int, duration time.Duration, verbose, showValue bool, out io.Writer) {
	bitLen := result.BitLen()
	fmt.Fprintf(out, "Result binary size: %s%s%s bits.\n",
		ui.ColorCyan(), format.FormatNumberString(fmt.Sprintf("%d", bitLen)), ui.ColorReset())

	fmt.Fprintf(out, "\n%s--- Detailed result analysis ---%s\n", ui.ColorBold(), ui.ColorReset())
	durationStr := format.FormatExecutionDuration(duration)
	if duration == 0 {
		durationStr = "< 1µs"
	}
	fmt.Fprintf(out, "Calculation time      : %s%s%s\n", ui.ColorGreen(), durationStr, ui.ColorReset())

	resultStr := result.String()
	numDigits := len(resultStr)
	fmt.Fprintf(out, "Number of digits      : %s%s%s\n",
		ui.ColorCyan(), format.FormatNumberString(fmt.Sprintf("%d", numDigits)), ui.ColorReset())

	if numDigits > 6 {
		f := new(big.Float).SetInt(result)
		fmt.Fprintf(out, "Scientific notation   : %s%.6e%s\n", ui.ColorCyan(), f, ui.ColorReset())
	}

	if !showValue {
		return
	}

	fmt.Fprintf(out, "\n%s--- Calculated value ---%s\n", ui.ColorBold(), ui.ColorReset())
	switch {
	case verbose:
		fmt.Fprintf(out, "F(%s%d%s) =\n%s%s%s\n",
			ui.ColorPrimary(), n, ui.ColorReset(),
			ui.ColorGreen(), format.FormatNumberString(resultStr), ui.ColorReset())
	case numDigits > TruncationLimit:
		fmt.Fprintf(out, "F(%s%d%s) (truncated) = %s%s...%s%s\n",
			ui.ColorPrimary(), n, ui.ColorReset(),
			ui.ColorGreen(), resultStr[:DisplayEdges], resultStr[numDigits-DisplayEdges:], ui.ColorReset())
		fmt.Fprintf(out, "(Tip: use the %s-v%s option to display the full value)\n",
			ui.ColorYellow(), ui.ColorReset())
	default:
		fmt.Fprintf(out, "F(%s%d%s) = %s%s%s\n",
			ui.ColorPrimary(), n, ui.ColorReset(),
			ui.ColorGreen(), format.FormatNumberString(resultStr), ui.ColorReset())
	}
}

// DisplayQuietResult outputs only the decimal value, one line, suitable for
// scripting.
func DisplayQuietResult(out io.Writer, result *big.Int) {
	fmt.Fprintln(out, result.String())
}

// DisplaySequence prints the first values of the Fibonacci sequence, one
// indexed entry per line. Values longer than TruncationLimit digits are
// truncated unless verbose is set.
func DisplaySequence(values []*big.Int, verbose bool, out io.Writer) {
	for i, v := range values {
		s := v.String()
		if !verbose && len(s) > TruncationLimit {
			s = fmt.Sprintf("%s...%s (%s digits)",
				s[:DisplayEdges], s[len(s)-DisplayEdges:],
				format.FormatNumberString(fmt.Sprintf("%d", len(s))))
		}
		fmt.Fprintf(out, "F(%s%d%s) = %s\n", ui.ColorPrimary(), i, ui.ColorReset(), s)
	}
}

// DisplayQuietSequence prints the sequence values without indices or colors,
// one per line.
func DisplayQuietSequence(values []*big.Int, out io.Writer) {
	for _, v := range values {
		fmt.Fprintln(out, v.String())
	}
}

// DisplayMembershipReport prints the verdict of a Fibonacci membership test.
func DisplayMembershipReport(candidate *big.Int, isMember bool, out io.Writer) {
	if isMember {
		fmt.Fprintf(out, "%s%s is a Fibonacci number.%s\n",
			ui.ColorGreen(), format.FormatNumberString(candidate.String()), ui.ColorReset())
	} else {
		fmt.Fprintf(out, "%s%s is not a Fibonacci number.%s\n",
			ui.ColorYellow(), format.FormatNumberString(candidate.String()), ui.ColorReset())
	}
}
