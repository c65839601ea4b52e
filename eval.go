package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mlowicki/termprime/intseq"
	"github.com/mlowicki/termprime/numtheory"
)

var (
	errNotEnoughArgs = errors.New("not enough arguments")
	errNoNextPrime   = fmt.Errorf("no prime above %d fits in an int", numtheory.MaxPrime)
)

// A Result is one evaluated command.
type Result struct {
	ID     string
	Input  string
	Output string
	// Value is the number shown on the blinkt, Prime whether it is prime.
	Value int
	Prime bool
}

type evalFunc func(args []string) (Result, error)

var evaluators = map[string]evalFunc{
	"next":    evalNext,
	"isprime": evalIsPrime,
	"primes":  evalPrimes,
	"factors": evalFactors,
	"pow":     evalPow,
	"mod":     evalMod,
}

// evaluate runs the command named by tokens[0].
func evaluate(tokens []string) (Result, error) {
	if len(tokens) == 0 {
		return Result{}, errNotEnoughArgs
	}
	fn, ok := evaluators[tokens[0]]
	if !ok {
		return Result{}, errors.New("unknown command: " + tokens[0])
	}
	res, err := fn(tokens[1:])
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", tokens[0], err)
	}
	res.Input = strings.Join(tokens, " ")
	return res, nil
}

func parseInts(args []string, min int) ([]int, error) {
	if len(args) < min {
		return nil, errNotEnoughArgs
	}
	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %w", err)
		}
		nums[i] = n
	}
	return nums, nil
}

func joinSeq(s *intseq.Sequence, sep string) string {
	parts := make([]string, s.Len())
	for i := range parts {
		parts[i] = strconv.Itoa(s.At(i))
	}
	return strings.Join(parts, sep)
}

// next N [COUNT]
func evalNext(args []string) (Result, error) {
	nums, err := parseInts(args, 1)
	if err != nil {
		return Result{}, err
	}
	count := 1
	if len(nums) > 1 {
		count = nums[1]
	}
	if count < 1 {
		return Result{}, fmt.Errorf("invalid count %d", count)
	}
	var s *intseq.Sequence
	p := nums[0]
	for i := 0; i < count; i++ {
		if p >= numtheory.MaxPrime {
			return Result{}, errNoNextPrime
		}
		p = numtheory.NextPrime(p)
		s = intseq.Append(s, p)
	}
	return Result{Output: joinSeq(s, " "), Value: p, Prime: true}, nil
}

// isprime N...
func evalIsPrime(args []string) (Result, error) {
	nums, err := parseInts(args, 1)
	if err != nil {
		return Result{}, err
	}
	lines := make([]string, len(nums))
	for i, n := range nums {
		verdict := "composite"
		if numtheory.IsPrime(n) {
			verdict = "prime"
		}
		lines[i] = fmt.Sprintf("%d: %s", n, verdict)
	}
	last := nums[len(nums)-1]
	return Result{Output: strings.Join(lines, ", "), Value: last, Prime: numtheory.IsPrime(last)}, nil
}

// primes [LOWER] UPPER
func evalPrimes(args []string) (Result, error) {
	nums, err := parseInts(args, 1)
	if err != nil {
		return Result{}, err
	}
	lower, upper := 1, nums[0]
	if len(nums) > 1 {
		lower, upper = nums[0], nums[1]
	}
	s := intseq.New(0)
	for _, p := range numtheory.Primes(lower, upper) {
		s = intseq.Append(s, p)
	}
	res := Result{Output: joinSeq(s, " ")}
	if last, ok := s.Last(); ok {
		res.Value, res.Prime = last, true
	}
	return res, nil
}

// factors N
func evalFactors(args []string) (Result, error) {
	nums, err := parseInts(args, 1)
	if err != nil {
		return Result{}, err
	}
	s := intseq.From(numtheory.Factors(nums[0])...)
	return Result{
		Output: fmt.Sprintf("%d = %s", nums[0], joinSeq(s, " * ")),
		Value:  nums[0],
		Prime:  numtheory.IsPrime(nums[0]),
	}, nil
}

// pow N P
func evalPow(args []string) (Result, error) {
	nums, err := parseInts(args, 2)
	if err != nil {
		return Result{}, err
	}
	if nums[1] < 0 {
		return Result{}, fmt.Errorf("negative exponent %d", nums[1])
	}
	v := numtheory.Power(nums[0], nums[1])
	return Result{Output: strconv.Itoa(v), Value: v, Prime: numtheory.IsPrime(v)}, nil
}

// mod N M
func evalMod(args []string) (Result, error) {
	nums, err := parseInts(args, 2)
	if err != nil {
		return Result{}, err
	}
	v, err := numtheory.Modulo(nums[0], nums[1])
	if err != nil {
		return Result{}, err
	}
	return Result{Output: strconv.Itoa(v), Value: v, Prime: numtheory.IsPrime(v)}, nil
}
