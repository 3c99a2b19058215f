// Package checker grades a candidate stacking plan against an arrival
// sequence.
//
// A candidate passes through five gates in order, stopping at the first
// that fails:
//
//  1. The reported stack count equals the number of stacks listed.
//  2. That count equals the optimal count from [stacking.Solve].
//  3. The stacks hold exactly as many containers as arrived.
//  4. Every stack is non-increasing bottom to top.
//  5. The stacks can be built by pushing the arrivals in order
//     ([stacking.FeasibleContext]).
//
// The first four are cheap and run in [Validate]. The fifth is the
// expensive search and runs only in [Checker.Check]. Each failing gate
// yields its own [Reason]; a rejected candidate is a [Verdict], never an
// error. Errors from Check mean the case could not be graded at all, for
// example because the search ran past its deadline.
package checker
