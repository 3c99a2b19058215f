package stacking_test

import (
	"fmt"

	"github.com/matzehuels/stackcheck/pkg/stacking"
)

func ExampleSolve() {
	p := stacking.Solve([]int{3, 1, 2})
	fmt.Println(len(p), "stacks:", p)
	// Output:
	// 2 stacks: [[3 1] [2]]
}

func ExampleSolve_increasing() {
	// Every container needs its own stack.
	fmt.Println(stacking.Solve([]int{1, 2, 3}))
	// Output:
	// [[1] [2] [3]]
}

func ExampleFeasible() {
	arrivals := []int{3, 1, 2}

	fmt.Println(stacking.Feasible(arrivals, stacking.Partition{{3, 1}, {2}}))
	fmt.Println(stacking.Feasible(arrivals, stacking.Partition{{2, 1}, {3}}))
	// Output:
	// true
	// false
}

func ExampleMinStacks() {
	fmt.Println(stacking.MinStacks([]int{4, 1, 2, 5, 3}))
	// Output:
	// 3
}
