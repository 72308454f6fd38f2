// Package orchestration coordinates the execution of one or more Fibonacci
// calculations and the analysis of their results. It owns the application's
// concurrency model: calculators run in parallel, progress flows to a
// reporter, and comparison results are checked for consistency across
// algorithms.
package orchestration
