package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/stackcheck/pkg/cache"
	"github.com/matzehuels/stackcheck/pkg/checker"
	serrors "github.com/matzehuels/stackcheck/pkg/errors"
	pkgio "github.com/matzehuels/stackcheck/pkg/io"
	"github.com/matzehuels/stackcheck/pkg/observability"
	"github.com/matzehuels/stackcheck/pkg/stacking"
	"github.com/matzehuels/stackcheck/pkg/store"
)

const (
	keyTypeSolution = "solution"

	cacheAttempts   = 2
	cacheRetryDelay = 50 * time.Millisecond
)

// Runner solves and grades cases with caching.
//
// The Runner holds no per-run state. Multiple goroutines can use the same
// Runner concurrently, which the HTTP API relies on.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Checker *checker.Checker
	Store   store.Store // nil disables persistence
	TTL     time.Duration
	Logger  *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// The checker memoizes and uses DefaultTimeout; runs are kept in a
// MemoryStore until Store is replaced.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Checker: checker.New(DefaultTimeout),
		Store:   store.NewMemoryStore(),
		TTL:     cache.DefaultTTL,
		Logger:  logger,
	}
}

// Solve returns an optimal partition of arrivals.
func (r *Runner) Solve(ctx context.Context, arrivals []int) (stacking.Partition, error) {
	p, _, err := r.SolveWithCacheInfo(ctx, arrivals, false)
	return p, err
}

// SolveWithCacheInfo returns an optimal partition of arrivals and whether
// it came from the cache. Cache failures are logged and fall back to
// solving; refresh skips the lookup but still stores the result.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, arrivals []int, refresh bool) (stacking.Partition, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	start := time.Now()
	key := r.Keyer.SolutionKey(arrivals)

	if !refresh {
		if p, ok := r.cachedSolution(ctx, key, len(arrivals)); ok {
			observability.Cache().OnCacheHit(ctx, keyTypeSolution)
			observability.Check().OnSolve(ctx, len(arrivals), len(p), true, time.Since(start))
			return p, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeSolution)
	}

	p := stacking.Solve(arrivals)
	observability.Check().OnSolve(ctx, len(arrivals), len(p), false, time.Since(start))

	if data, err := json.Marshal(p); err == nil {
		err = cache.Retry(ctx, cacheAttempts, cacheRetryDelay, func() error {
			return r.Cache.Set(ctx, key, data, r.TTL)
		})
		if err != nil {
			r.Logger.Debug("cache set failed", "key", key, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeSolution, len(data))
		}
	}
	return p, false, nil
}

// cachedSolution loads a partition and discards entries that do not cover
// n containers.
func (r *Runner) cachedSolution(ctx context.Context, key string, n int) (stacking.Partition, bool) {
	var (
		data []byte
		hit  bool
	)
	err := cache.Retry(ctx, cacheAttempts, cacheRetryDelay, func() error {
		var err error
		data, hit, err = r.Cache.Get(ctx, key)
		return err
	})
	if err != nil {
		r.Logger.Debug("cache get failed", "key", key, "err", err)
		return nil, false
	}
	if !hit {
		return nil, false
	}

	var p stacking.Partition
	if err := json.Unmarshal(data, &p); err != nil || p.Size() != n {
		r.Logger.Debug("discarding cached solution", "key", key)
		return nil, false
	}
	return p, true
}

// Check grades c and returns the verdict together with the optimal
// partition it was measured against. The error is non-nil only when the
// case could not be graded.
func (r *Runner) Check(ctx context.Context, c checker.Case) (checker.Verdict, stacking.Partition, error) {
	return r.check(ctx, c, false)
}

func (r *Runner) check(ctx context.Context, c checker.Case, refresh bool) (checker.Verdict, stacking.Partition, error) {
	optimal, _, err := r.SolveWithCacheInfo(ctx, c.Arrivals, refresh)
	if err != nil {
		return checker.Verdict{}, nil, err
	}

	start := time.Now()
	v, err := r.Checker.Check(ctx, c, len(optimal))
	observability.Check().OnCheck(ctx, string(v.Reason), time.Since(start), err)
	return v, optimal, err
}

// Run grades every case from src and records the result.
//
// Reading stops at the end of input or at the first line that cannot be
// parsed; the latter is recorded in StopReason. A case whose check cannot
// finish is counted as failed and the run continues. The run is saved to
// the store when one is configured, and returned even when saving fails.
func (r *Runner) Run(ctx context.Context, src CaseSource, opts Options) (*store.Run, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults()
	logger := opts.Logger

	run := &store.Run{
		ID:        uuid.NewString(),
		Label:     opts.Label,
		Input:     opts.Input,
		StartedAt: time.Now().UTC(),
		Reasons:   make(map[string]int),
	}

	for {
		if err := ctx.Err(); err != nil {
			run.Duration = time.Since(run.StartedAt)
			return run, err
		}

		c, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if !serrors.Is(err, serrors.ErrCodeInvalidInput) {
				run.Duration = time.Since(run.StartedAt)
				return run, fmt.Errorf("read case: %w", err)
			}
			run.StoppedAt = run.Total() + 1
			run.StopReason = serrors.UserMessage(err)
			logger.Warn("stopped reading input", "line", run.StoppedAt, "reason", run.StopReason)
			break
		}

		res := r.runCase(ctx, c, opts)
		run.Cases = append(run.Cases, res)
		switch {
		case res.Error != "":
			run.Failed++
		case res.Reason == string(checker.ReasonAccepted):
			run.Accepted++
		default:
			run.Rejected++
		}
		if res.Reason != "" {
			run.Reasons[res.Reason]++
		}

		logger.Debug("checked case", "line", res.Line, "reason", res.Reason, "duration", res.Duration)
		if opts.Progress != nil {
			opts.Progress(res)
		}
	}

	run.Duration = time.Since(run.StartedAt)
	logger.Info("checked cases",
		"total", run.Total(),
		"accepted", run.Accepted,
		"rejected", run.Rejected,
		"failed", run.Failed,
		"duration", run.Duration)

	if r.Store != nil {
		if err := r.Store.Save(ctx, run); err != nil {
			return run, serrors.Wrap(serrors.ErrCodeStorage, err, "save run %s", run.ID)
		}
		logger.Debug("saved run", "id", run.ID)
	}
	return run, nil
}

func (r *Runner) runCase(ctx context.Context, c *pkgio.Case, opts Options) store.CaseResult {
	start := time.Now()
	res := store.CaseResult{
		Line:   c.Line,
		Input:  c.Input,
		Output: c.Output,
	}

	if opts.MaxContainers > 0 && len(c.Arrivals) > opts.MaxContainers {
		err := serrors.New(serrors.ErrCodeInvalidInput, "too many containers: %d (max %d)", len(c.Arrivals), opts.MaxContainers)
		return failCase(res, err, start)
	}

	v, optimal, err := r.check(ctx, c.Case, opts.Refresh)
	if optimal != nil {
		res.Optimal = pkgio.FormatPartition(optimal)
	}
	if err != nil {
		return failCase(res, err, start)
	}

	res.Reason = string(v.Reason)
	res.Message = v.Message()
	res.Duration = time.Since(start)
	return res
}

func failCase(res store.CaseResult, err error, start time.Time) store.CaseResult {
	res.Error = string(serrors.CodeOf(err))
	res.Message = "Failed: " + serrors.UserMessage(err)
	res.Duration = time.Since(start)
	return res
}

// Close releases resources held by the runner.
func (r *Runner) Close(ctx context.Context) error {
	var errs []error
	if r.Cache != nil {
		errs = append(errs, r.Cache.Close())
	}
	if r.Store != nil {
		errs = append(errs, r.Store.Close(ctx))
	}
	return errors.Join(errs...)
}
