// Package intseq provides an owned, growable sequence of ints whose length is
// tracked explicitly. Appending consumes the old handle.
package intseq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMoved is the panic value for any read through a consumed handle.
var ErrMoved = errors.New("intseq: use of moved sequence")

const minCap = 4

// Sequence is an owning handle. Once passed to Append or Release it must not
// be used again.
type Sequence struct {
	items  []int
	length int
	moved  bool
}

// New returns an empty sequence with room for capacity items.
func New(capacity int) *Sequence {
	if capacity < 0 {
		capacity = 0
	}
	return &Sequence{items: make([]int, capacity)}
}

// From returns a sequence holding a copy of values.
func From(values ...int) *Sequence {
	s := New(len(values))
	copy(s.items, values)
	s.length = len(values)
	return s
}

// Range creates a sequence of numbers from min to max inclusive.
func Range(min, max int) *Sequence {
	n := abs(max-min) + 1
	step := sign(max - min)
	var s *Sequence
	for i := 0; i < n; i++ {
		s = Append(s, min+i*step)
	}
	return s
}

// Append returns a new handle with item added after the elements of s.
// s is consumed; a nil s is treated as empty.
func Append(s *Sequence, item int) *Sequence {
	if s == nil {
		s = New(0)
	}
	s.check()
	items := grow(s.items, s.length, s.length+1)
	items[s.length] = item
	next := &Sequence{items: items, length: s.length + 1}
	s.items = nil
	s.length = 0
	s.moved = true
	return next
}

// grow returns storage with at least desiredCap slots holding the first n
// elements of items. The old storage is dropped when a new one is allocated.
func grow(items []int, n, desiredCap int) []int {
	if len(items) >= desiredCap {
		return items
	}
	newCap := 2 * len(items)
	if newCap < minCap {
		newCap = minCap
	}
	if newCap < desiredCap {
		newCap = desiredCap
	}
	ns := make([]int, newCap)
	copy(ns, items[:n])
	return ns
}

// Valid reports whether s may still be read.
func (s *Sequence) Valid() bool {
	return s != nil && !s.moved
}

// Release drops the storage and invalidates s.
func (s *Sequence) Release() {
	s.check()
	s.items = nil
	s.length = 0
	s.moved = true
}

func (s *Sequence) check() {
	if s.moved {
		panic(ErrMoved)
	}
}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	s.check()
	return s.length
}

// Cap returns the number of allocated slots.
func (s *Sequence) Cap() int {
	s.check()
	return len(s.items)
}

// At returns the element at index i.
func (s *Sequence) At(i int) int {
	s.check()
	if i < 0 || i >= s.length {
		panic(fmt.Sprintf("intseq: index %d out of range [0:%d]", i, s.length))
	}
	return s.items[i]
}

// Last returns the final element and false if s is empty.
func (s *Sequence) Last() (int, bool) {
	s.check()
	if s.length == 0 {
		return 0, false
	}
	return s.items[s.length-1], true
}

// Values returns a copy of the elements.
func (s *Sequence) Values() []int {
	s.check()
	res := make([]int, s.length)
	copy(res, s.items[:s.length])
	return res
}

func (s *Sequence) String() string {
	s.check()
	parts := make([]string, s.length)
	for i, v := range s.items[:s.length] {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
