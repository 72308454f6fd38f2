// Package progress defines the progress reporting primitives shared by the
// calculation engine and the presentation layers.
package progress

// Update carries a single progress notification from a running calculation.
type Update struct {
	// CalculatorIndex identifies which calculator emitted the update when
	// several run concurrently.
	CalculatorIndex int
	// Value is the normalized progress, 0.0 to 1.0.
	Value float64
}

// Callback receives normalized progress values (0.0 to 1.0) from a core
// calculator. Implementations must be cheap: cores may invoke the callback
// from tight loops.
type Callback func(value float64)

// Noop is a Callback that discards all updates.
func Noop(float64) {}

// ChannelCallback returns a Callback that forwards updates for the given
// calculator index to ch without blocking. Updates are dropped when the
// channel is full, which is acceptable for display purposes: a newer update
// always follows.
func ChannelCallback(ch chan<- Update, calcIndex int) Callback {
	if ch == nil {
		return Noop
	}
	return func(value float64) {
		select {
		case ch <- Update{CalculatorIndex: calcIndex, Value: value}:
		default:
		}
	}
}
