package numtheory

import (
	"math"
	"strconv"
)

// MaxPrime is the largest prime representable as an int. NextPrime has no
// representable result for n >= MaxPrime and its search overflows.
var MaxPrime = func() int {
	if strconv.IntSize == 64 {
		return math.MaxInt - 24
	}
	return math.MaxInt
}()

// divides reports whether d divides n. d is never zero here.
func divides(n, d int) bool {
	return n%d == 0
}

// IsPrime tests n by trial division over divisors of the form 6k±1.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if divides(n, 2) || divides(n, 3) {
		return false
	}
	// step <= n/step is step*step <= n without the overflow.
	for step := 5; step <= n/step; step += 6 {
		if divides(n, step) || divides(n, step+2) {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime strictly greater than n. Like Power it
// does not check for overflow: n must be below MaxPrime.
func NextPrime(n int) int {
	switch {
	case n <= 1:
		return 2
	case n == 2:
		return 3
	}
	// first odd candidate above n
	c := n + 1
	if c%2 == 0 {
		c++
	}
	for !IsPrime(c) {
		c += 2
	}
	return c
}

// Primes returns the primes p with lower < p < upper in ascending order.
// The search stops at MaxPrime.
func Primes(lower, upper int) []int {
	if lower >= MaxPrime {
		return nil
	}
	var res []int
	for p := NextPrime(lower); p < upper; p = NextPrime(p) {
		res = append(res, p)
		if p == MaxPrime {
			break
		}
	}
	return res
}

// Factors returns the prime factorization of n in ascending order.
// For n <= 1 it returns []int{n}, so the product of the result is always n.
func Factors(n int) []int {
	if n <= 1 {
		return []int{n}
	}
	var res []int
	for p := 2; p <= n/p; {
		if divides(n, p) {
			res = append(res, p)
			n /= p
			continue
		}
		// after 2 only odd candidates; composites never divide what is left
		if p == 2 {
			p = 3
		} else {
			p += 2
		}
	}
	if n > 1 {
		res = append(res, n)
	}
	return res
}
