// Package nums collects small number-theory and combinatorics routines:
//
//   - GCD and LCM over any integer type (Euclid's algorithm).
//   - StirlingFirst and StirlingSecond, exact Stirling numbers as *big.Int.
//   - Primes, the sieve of Eratosthenes.
//
// Complexity:
//
//   - GCD:      O(log min(|a|, |b|))
//   - Stirling: O(n·k) time, O(k) space
//   - Primes:   O(n log log n) time, O(n) space
package nums
