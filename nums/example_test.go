package nums_test

import (
	"fmt"

	"github.com/katalvlaran/lvlref/nums"
)

// ExampleGCD reduces a fraction.
func ExampleGCD() {
	num, den := 84, -36
	g := nums.GCD(num, den)
	fmt.Println(g, num/g, den/g)
	// Output:
	// 12 7 -3
}

// ExampleStirlingSecond counts ways to split 6 tasks across 3 idle workers.
func ExampleStirlingSecond() {
	s, _ := nums.StirlingSecond(6, 3)
	fmt.Println(s)
	// Output:
	// 90
}

// ExamplePrimes lists primes below 30.
func ExamplePrimes() {
	fmt.Println(nums.Primes(30))
	// Output:
	// [2 3 5 7 11 13 17 19 23 29]
}
