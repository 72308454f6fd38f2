// Package fibonacci provides implementations for calculating Fibonacci
// numbers. It exposes a Calculator interface that abstracts the underlying
// algorithm, allowing different strategies (naive recursion, iteration,
// memoized recursion, fast doubling) to be used interchangeably, plus
// sequence generation and a membership test. All values use math/big,
// so results never overflow.
package fibonacci
