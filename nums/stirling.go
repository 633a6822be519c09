package nums

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNegative is returned when a Stirling argument is negative.
var ErrNegative = errors.New("nums: negative argument")

// StirlingFirst returns the unsigned Stirling number of the first kind
// c(n, k): the number of permutations of n elements with exactly k cycles.
//
//	c(0, 0) = 1, c(n, 0) = c(0, k) = 0
//	c(n, k) = c(n-1, k-1) + (n-1)·c(n-1, k)
func StirlingFirst(n, k int) (*big.Int, error) {
	return stirling(n, k, func(i, _ int) int64 { return int64(i - 1) })
}

// StirlingSecond returns the Stirling number of the second kind S(n, k):
// the number of ways to partition n elements into k non-empty subsets.
//
//	S(0, 0) = 1, S(n, 0) = S(0, k) = 0
//	S(n, k) = S(n-1, k-1) + k·S(n-1, k)
func StirlingSecond(n, k int) (*big.Int, error) {
	return stirling(n, k, func(_, j int) int64 { return int64(j) })
}

// stirling fills one row of the triangle at a time. factor(i, j) is the
// multiplier of the (i-1, j) term when computing entry (i, j).
func stirling(n, k int, factor func(i, j int) int64) (*big.Int, error) {
	if n < 0 || k < 0 {
		return nil, fmt.Errorf("%w: n=%d, k=%d", ErrNegative, n, k)
	}
	if k > n {
		return new(big.Int), nil
	}

	// row[j] holds the entry for the current i; updated right to left so
	// row[j-1] still holds the previous row's value.
	row := make([]*big.Int, k+1)
	for j := range row {
		row[j] = new(big.Int)
	}
	row[0].SetInt64(1)

	var term big.Int
	for i := 1; i <= n; i++ {
		hi := k
		if i < hi {
			hi = i
		}
		for j := hi; j >= 1; j-- {
			term.Mul(row[j], big.NewInt(factor(i, j)))
			row[j].Add(row[j-1], &term)
		}
		row[0].SetInt64(0)
	}

	return row[k], nil
}
