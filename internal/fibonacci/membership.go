package fibonacci

import "math/big"

// four is a shared immutable constant for the membership test.
var four = big.NewInt(4)

// IsFibonacci reports whether x appears in the Fibonacci sequence.
//
// A non-negative integer x is a Fibonacci number if and only if 5x²+4 or
// 5x²−4 is a perfect square, which makes the test O(1) arithmetic
// operations plus an integer square root. Negative inputs simply return
// false: -1 is not a Fibonacci number, and that is not an error.
func IsFibonacci(x *big.Int) bool {
	if x == nil || x.Sign() < 0 {
		return false
	}

	// candidate = 5x²
	candidate := new(big.Int).Mul(x, x)
	candidate.Mul(candidate, big.NewInt(5))

	plus := new(big.Int).Add(candidate, four)
	if isPerfectSquare(plus) {
		return true
	}
	minus := candidate.Sub(candidate, four)
	return isPerfectSquare(minus)
}

// IsFibonacciInt64 is a convenience wrapper over IsFibonacci for native
// integer inputs.
func IsFibonacciInt64(x int64) bool {
	return IsFibonacci(big.NewInt(x))
}

// isPerfectSquare reports whether v is the square of an integer.
func isPerfectSquare(v *big.Int) bool {
	if v.Sign() < 0 {
		return false
	}
	root := new(big.Int).Sqrt(v)
	root.Mul(root, root)
	return root.Cmp(v) == 0
}
