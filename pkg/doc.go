// Package pkg holds the libraries behind stackcheck, a grader for the
// container stacking problem.
//
// # Overview
//
// Containers arrive one at a time, each tagged with the id of the ship that
// will load it. They must be stacked so that every stack reads in
// non-increasing id order from bottom to top, using as few stacks as
// possible. stackcheck computes that minimum and decides whether a
// submitted stacking is both optimal and buildable from the arrival order.
//
// The packages are organized as:
//
//  1. [stacking] - Greedy solver and the feasibility search
//  2. [checker] - The gates a candidate must pass, one reason each
//  3. [io] - Line formats for arrivals, candidates and reports
//  4. [pipeline] - Runs a checker over a whole file with caching
//  5. [cache], [store] - Solution cache and run persistence
//  6. [render] - Graphviz drawings of a stacking
//
// # Data flow
//
//	arrivals file + candidates file
//	         ↓
//	    [io] CaseReader
//	         ↓
//	    [pipeline] Runner ── [cache] optimal solutions
//	         ↓
//	    [checker] verdict per case
//	         ↓
//	    [store] Run ── text, JSON or interactive report
//
// # Quick Start
//
//	arrivals := []int{3, 1, 2}
//	p := stacking.Solve(arrivals)                    // [[3 1] [2]]
//	ok := stacking.Feasible(arrivals, p)             // true
//	v := checker.Validate(checker.Case{Arrivals: arrivals, Reported: 2, Candidate: p}, len(p))
//
// [stacking]: github.com/matzehuels/stackcheck/pkg/stacking
// [checker]: github.com/matzehuels/stackcheck/pkg/checker
// [io]: github.com/matzehuels/stackcheck/pkg/io
// [pipeline]: github.com/matzehuels/stackcheck/pkg/pipeline
// [cache]: github.com/matzehuels/stackcheck/pkg/cache
// [store]: github.com/matzehuels/stackcheck/pkg/store
// [render]: github.com/matzehuels/stackcheck/pkg/render
package pkg
