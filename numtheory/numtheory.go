// Package numtheory holds small integer helpers: remainder, power and
// trial-division prime utilities. All functions are pure.
package numtheory

import (
	"errors"
	"fmt"
)

// ErrDivideByZero is wrapped by every ArithmeticError.
var ErrDivideByZero = errors.New("integer divide by zero")

// ArithmeticError reports an operation that has no defined integer result.
type ArithmeticError struct {
	Op string
	N  int
	M  int
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s(%d, %d): %s", e.Op, e.N, e.M, ErrDivideByZero)
}

func (e *ArithmeticError) Unwrap() error {
	return ErrDivideByZero
}

// Modulo returns n % m. The sign of the result follows n.
func Modulo(n, m int) (int, error) {
	if m == 0 {
		return 0, &ArithmeticError{Op: "modulo", N: n, M: m}
	}
	return n % m, nil
}

// Power returns n raised to p by repeated multiplication. Overflow wraps;
// a negative p performs no multiplications and yields 1.
func Power(n, p int) int {
	ret := 1
	for i := 0; i < p; i++ {
		ret *= n
	}
	return ret
}
