// Package stacking computes and verifies container stacking plans.
//
// # Overview
//
// Containers arrive one at a time, each labelled with the id of the ship
// that will pick it up. Every container is pushed onto one of several
// stacks, and a stack read bottom to top must be non-increasing: a
// container may only be placed on a container whose ship id is greater or
// equal, so that ships can be loaded in ascending id order by always
// taking from the top.
//
// This package provides the two algorithms a checker for this problem needs:
//
//   - [Solve]: the greedy minimum-stack solution for an arrival sequence
//   - [Feasible]: whether a proposed [Partition] can be produced by pushing
//     the arrivals in order
//
// # Optimality
//
// [Solve] places each id on the eligible stack with the smallest top (the
// tightest fit), opening a new stack only when no top is large enough. The
// resulting stack count equals the length of the longest strictly
// increasing subsequence of the arrivals, which by Dilworth's theorem is
// the minimum number of non-increasing subsequences covering them.
// [MinStacks] computes that bound directly and is useful as an independent
// cross-check.
//
// # Feasibility
//
// A stack's bottom-to-top order is the order in which its containers were
// pushed, so a candidate partition is achievable exactly when its stacks
// interleave back into the arrival sequence. [Feasible] searches for such an
// interleaving. The search reads its inputs through index views and never
// modifies them, and it runs on an explicit work stack rather than
// recursion so that long arrival sequences cannot exhaust the goroutine
// stack.
//
//	arrivals := []int{3, 1, 2}
//	p := stacking.Solve(arrivals)          // [[3 1] [2]]
//	ok := stacking.Feasible(arrivals, p)    // true
//
// Use [Verifier] to disable memoization or [FeasibleContext] to bound the
// search with a deadline.
package stacking
