package api

import (
	"net/http"

	"github.com/matzehuels/stackcheck/pkg/buildinfo"
	"github.com/matzehuels/stackcheck/pkg/checker"
	serrors "github.com/matzehuels/stackcheck/pkg/errors"
	"github.com/matzehuels/stackcheck/pkg/httputil"
	"github.com/matzehuels/stackcheck/pkg/stacking"
)

// SolveRequest is the body of POST /v1/solve.
type SolveRequest struct {
	Arrivals []int `json:"arrivals"`
}

// SolveResponse is an optimal partition.
type SolveResponse struct {
	Stacks stacking.Partition `json:"stacks"`
	Count  int                `json:"count"`
}

// CheckRequest is the body of POST /v1/check. Reported defaults to the
// number of stacks.
type CheckRequest struct {
	Arrivals []int   `json:"arrivals"`
	Reported *int    `json:"reported,omitempty"`
	Stacks   [][]int `json:"stacks"`
}

// CheckResponse is the verdict for a candidate.
type CheckResponse struct {
	Accepted bool               `json:"accepted"`
	Reason   checker.Reason     `json:"reason"`
	Message  string             `json:"message"`
	Verdict  checker.Verdict    `json:"verdict"`
	Optimal  stacking.Partition `json:"optimal"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.write(w, r, http.StatusOK, HealthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := serrors.ValidateArrivals(req.Arrivals, s.opts.MaxContainers); err != nil {
		s.fail(w, r, err)
		return
	}

	ctx, cancel := s.withTimeout(r.Context())
	defer cancel()

	p, err := s.runner.Solve(ctx, req.Arrivals)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.write(w, r, http.StatusOK, SolveResponse{Stacks: p, Count: len(p)})
}

func (s *Server) check(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := serrors.ValidateArrivals(req.Arrivals, s.opts.MaxContainers); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := serrors.ValidateStacks(req.Stacks); err != nil {
		s.fail(w, r, err)
		return
	}

	c := checker.Case{
		Arrivals:  req.Arrivals,
		Reported:  len(req.Stacks),
		Candidate: stacking.FromInts(req.Stacks),
	}
	if req.Reported != nil {
		c.Reported = *req.Reported
	}

	ctx, cancel := s.withTimeout(r.Context())
	defer cancel()

	v, optimal, err := s.runner.Check(ctx, c)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.write(w, r, http.StatusOK, CheckResponse{
		Accepted: v.Accepted(),
		Reason:   v.Reason,
		Message:  v.Message(),
		Verdict:  v,
		Optimal:  optimal,
	})
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := httputil.WriteJSON(w, status, v); err != nil {
		s.logger.Warn("encode response failed", "id", RequestID(r.Context()), "path", r.URL.Path, "err", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := httputil.WriteError(w, err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "path", r.URL.Path, "status", status, "err", err)
	}
}
