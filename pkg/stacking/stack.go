package stacking

import "slices"

// Stack is a sequence of ship ids ordered bottom to top.
type Stack []int

// Partition is a set of stacks. The order of stacks carries no meaning;
// the order within each stack does.
type Partition []Stack

// Top returns the topmost id of s. The boolean is false for an empty stack.
func (s Stack) Top() (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// NonIncreasing reports whether every id in s is less than or equal to the
// id directly beneath it.
func (s Stack) NonIncreasing() bool {
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			return false
		}
	}
	return true
}

// Size returns the total number of containers across all stacks.
func (p Partition) Size() int {
	n := 0
	for _, s := range p {
		n += len(s)
	}
	return n
}

// Valid reports whether every stack in p is non-increasing. It returns the
// index of the first offending stack, or -1.
func (p Partition) Valid() (bool, int) {
	for i, s := range p {
		if !s.NonIncreasing() {
			return false, i
		}
	}
	return true, -1
}

// Clone returns a deep copy of p.
func (p Partition) Clone() Partition {
	if p == nil {
		return nil
	}
	out := make(Partition, len(p))
	for i, s := range p {
		out[i] = slices.Clone(s)
	}
	return out
}

// Equal reports whether p and q hold the same stacks in the same order.
func (p Partition) Equal(q Partition) bool {
	return slices.EqualFunc(p, q, func(a, b Stack) bool { return slices.Equal(a, b) })
}

// Ints converts p to a plain nested slice, sharing no memory with p.
func (p Partition) Ints() [][]int {
	out := make([][]int, len(p))
	for i, s := range p {
		out[i] = slices.Clone([]int(s))
	}
	return out
}

// FromInts builds a Partition from a plain nested slice. The stacks are
// copied.
func FromInts(stacks [][]int) Partition {
	out := make(Partition, len(stacks))
	for i, s := range stacks {
		out[i] = slices.Clone(Stack(s))
	}
	return out
}
