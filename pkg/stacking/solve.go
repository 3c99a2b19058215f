package stacking

import "sort"

// Solve partitions arrivals into the minimum number of non-increasing
// stacks.
//
// Arrivals are processed in order. Each id goes onto the eligible stack
// (top >= id) whose top is smallest. Stack tops are pairwise distinct at
// all times, so that stack is unique. If no stack is eligible a new one is
// opened. The tightest-fit rule is what makes the count minimal;
// placing on an arbitrary eligible stack does not.
//
// Solve never fails. An empty sequence yields an empty, non-nil Partition.
// arrivals is not modified.
func Solve(arrivals []int) Partition {
	stacks := Partition{}
	// tops[i] is the top of stacks[i]; tops are pairwise distinct.
	var tops []int

	for _, id := range arrivals {
		dest := -1
		for i, top := range tops {
			if top >= id && (dest < 0 || top <= tops[dest]) {
				dest = i
			}
		}
		if dest < 0 {
			stacks = append(stacks, Stack{})
			tops = append(tops, id)
			dest = len(stacks) - 1
		}
		stacks[dest] = append(stacks[dest], id)
		tops[dest] = id
	}
	return stacks
}

// MinStacks returns the minimum number of non-increasing stacks needed for
// arrivals without constructing them.
//
// The bound is the length of the longest strictly increasing subsequence:
// no two ids of such a subsequence can share a stack, and by Dilworth's
// theorem that many stacks always suffice. It runs in O(n log n).
func MinStacks(arrivals []int) int {
	// tails[k] is the smallest possible last element of a strictly
	// increasing subsequence of length k+1.
	var tails []int
	for _, id := range arrivals {
		k := sort.SearchInts(tails, id)
		if k == len(tails) {
			tails = append(tails, id)
		} else {
			tails[k] = id
		}
	}
	return len(tails)
}
