package nums

// Primes returns every prime strictly below n in ascending order.
// n < 3 yields an empty slice.
func Primes(n int) []int {
	if n < 3 {
		return []int{}
	}

	composite := make([]bool, n)
	for i := 2; i*i < n; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j < n; j += i {
			composite[j] = true
		}
	}

	out := make([]int, 0, n/2)
	for i := 2; i < n; i++ {
		if !composite[i] {
			out = append(out, i)
		}
	}

	return out
}
