package nums

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b.
// The result is non-negative and GCD(0, 0) == 0.
// For signed types the result overflows only for GCD(MinInt, 0) and
// GCD(MinInt, MinInt), like any absolute value would.
func GCD[T constraints.Integer](a, b T) T {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
// The result is non-negative.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return abs(a / GCD(a, b) * b)
}

func abs[T constraints.Integer](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
