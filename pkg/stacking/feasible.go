package stacking

import (
	"context"
	"encoding/binary"
)

// ctxCheckInterval is the number of search steps between context checks.
const ctxCheckInterval = 1024

// Verifier decides whether a candidate partition can be built from an
// arrival sequence. The zero value runs the plain exhaustive search.
type Verifier struct {
	// Memoize records search states that are known to fail, keyed on how
	// many containers have been consumed from each stack. The verdict is
	// identical with and without it; only the running time changes.
	Memoize bool

	// Steps, if non-nil, receives the number of placements tried by the
	// last call.
	Steps *int
}

// Feasible reports whether some order of push operations that respects
// the arrival order produces exactly candidate. It memoizes failed states.
//
// The caller is expected to have checked that every stack is
// non-increasing and that the container counts agree; Feasible only
// answers the interleaving question. Once every arrival has been placed
// the answer is true. Neither argument is modified.
func Feasible(arrivals []int, candidate Partition) bool {
	ok, _ := Verifier{Memoize: true}.FeasibleContext(context.Background(), arrivals, candidate)
	return ok
}

// FeasibleContext is like [Feasible] but stops when ctx is done, returning
// ctx.Err(). A cancelled search carries no verdict.
func FeasibleContext(ctx context.Context, arrivals []int, candidate Partition) (bool, error) {
	return Verifier{Memoize: true}.FeasibleContext(ctx, arrivals, candidate)
}

// Feasible runs the search with v's settings and no deadline.
func (v Verifier) Feasible(arrivals []int, candidate Partition) bool {
	ok, _ := v.FeasibleContext(context.Background(), arrivals, candidate)
	return ok
}

// FeasibleContext runs a depth-first search over the choice of stack for
// each arrival. At depth d the next arrival is arrivals[d]; a stack can
// take it when its oldest unconsumed container carries the same id.
// Backtracking only rewinds per-stack counters, so the inputs are never
// touched.
func (v Verifier) FeasibleContext(ctx context.Context, arrivals []int, candidate Partition) (bool, error) {
	n := len(arrivals)
	steps := 0
	defer func() {
		if v.Steps != nil {
			*v.Steps = steps
		}
	}()

	// consumed[j] counts containers of candidate[j] already matched; the
	// front of stack j is candidate[j][consumed[j]].
	consumed := make([]int, len(candidate))
	// next[d] is the first stack not yet tried at depth d.
	next := make([]int, n+1)
	// chosen[d] is the stack that received arrivals[d] on the current path.
	chosen := make([]int, n)

	var failed map[string]struct{}
	if v.Memoize {
		failed = make(map[string]struct{})
	}
	var key []byte

	depth := 0
	fresh := true
	for {
		if depth == n {
			return true, nil
		}

		steps++
		if steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}

		if fresh && failed != nil {
			key = stateKey(key[:0], consumed)
			if _, ok := failed[string(key)]; ok {
				fresh = false
				if depth == 0 {
					return false, nil
				}
				depth--
				consumed[chosen[depth]]--
				continue
			}
		}

		id := arrivals[depth]
		j := next[depth]
		for ; j < len(candidate); j++ {
			c := consumed[j]
			if c < len(candidate[j]) && candidate[j][c] == id {
				break
			}
		}

		if j < len(candidate) {
			next[depth] = j + 1
			chosen[depth] = j
			consumed[j]++
			depth++
			next[depth] = 0
			fresh = true
			continue
		}

		// Every stack has been tried for this state.
		if failed != nil {
			key = stateKey(key[:0], consumed)
			failed[string(key)] = struct{}{}
		}
		if depth == 0 {
			return false, nil
		}
		depth--
		consumed[chosen[depth]]--
		fresh = false
	}
}

// stateKey encodes the per-stack consumed counts. The depth is their sum,
// so the counts alone identify a search state.
func stateKey(buf []byte, consumed []int) []byte {
	for _, c := range consumed {
		buf = binary.AppendUvarint(buf, uint64(c))
	}
	return buf
}
