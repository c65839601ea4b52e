package numtheory

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func bruteIsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestIsPrimeMatchesTrialDivision(t *testing.T) {
	for n := -10; n <= 10000; n++ {
		if got, want := IsPrime(n), bruteIsPrime(n); got != want {
			t.Errorf("IsPrime(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestIsPrimeLarge(t *testing.T) {
	assert.True(t, IsPrime(104729))
	assert.True(t, IsPrime(2147483647))
	assert.False(t, IsPrime(2147483647*3))
	assert.False(t, IsPrime(math.MaxInt64))
	assert.False(t, IsPrime(math.MinInt64))
}

func TestNextPrime(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-5, 2},
		{0, 2},
		{1, 2},
		{2, 3},
		{3, 5},
		{4, 5},
		{5, 7},
		{7, 11},
		{8, 11},
		{13, 17},
		{24, 29},
		{89, 97},
		{113, 127},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, NextPrime(test.n), "NextPrime(%d)", test.n)
	}
}

func TestNextPrimeProperties(t *testing.T) {
	for n := 3; n <= 5000; n++ {
		p := NextPrime(n)
		if p <= n || !IsPrime(p) {
			t.Fatalf("NextPrime(%d) = %d", n, p)
		}
		for c := n + 1; c < p; c++ {
			if IsPrime(c) {
				t.Fatalf("NextPrime(%d) = %d skipped %d", n, p, c)
			}
		}
	}
}

func TestPrimes(t *testing.T) {
	tests := []struct {
		lower, upper int
		want         []int
	}{
		{1, 30, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
		{7, 23, []int{11, 13, 17, 19}},
		{10, 11, nil},
		{20, 10, nil},
		{-4, 6, []int{2, 3, 5}},
	}

	for _, test := range tests {
		if diff := cmp.Diff(test.want, Primes(test.lower, test.upper)); diff != "" {
			t.Errorf("Primes(%d, %d) mismatch (-want +got):\n%s", test.lower, test.upper, diff)
		}
	}
}

func TestFactors(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{-6, []int{-6}},
		{0, []int{0}},
		{1, []int{1}},
		{2, []int{2}},
		{12, []int{2, 2, 3}},
		{97, []int{97}},
		{360, []int{2, 2, 2, 3, 3, 5}},
		{1001, []int{7, 11, 13}},
	}

	for _, test := range tests {
		if diff := cmp.Diff(test.want, Factors(test.n)); diff != "" {
			t.Errorf("Factors(%d) mismatch (-want +got):\n%s", test.n, diff)
		}
	}
}

func TestFactorsLargePrimes(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{100003 * 100019, []int{100003, 100019}},
		{1000003 * 1000033, []int{1000003, 1000033}},
		{2 * 2 * 1000003 * 1000033, []int{2, 2, 1000003, 1000033}},
		{2147483647, []int{2147483647}},
		{math.MaxInt64, []int{7, 7, 73, 127, 337, 92737, 649657}},
	}

	for _, test := range tests {
		if diff := cmp.Diff(test.want, Factors(test.n)); diff != "" {
			t.Errorf("Factors(%d) mismatch (-want +got):\n%s", test.n, diff)
		}
	}
}

func TestPrimesStopsAtMaxPrime(t *testing.T) {
	assert.Nil(t, Primes(MaxPrime, math.MaxInt))
	assert.Nil(t, Primes(math.MaxInt-1, math.MaxInt))
}

func TestFactorsProduct(t *testing.T) {
	for n := 1; n <= 2000; n++ {
		prod := 1
		for _, f := range Factors(n) {
			if n > 1 && !IsPrime(f) {
				t.Fatalf("Factors(%d) contains composite %d", n, f)
			}
			prod *= f
		}
		if prod != n {
			t.Fatalf("product of Factors(%d) = %d", n, prod)
		}
	}
}
