// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/katalvlaran/algoviz/algo"
	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/registry"
	"github.com/katalvlaran/algoviz/render"
)

type nodeDTO struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type edgeDTO struct {
	ID     int     `json:"id"`
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

type graphDTO struct {
	Nodes []nodeDTO `json:"nodes"`
	Edges []edgeDTO `json:"edges"`
}

type resultDTO struct {
	engine.Result
	Error string `json:"error,omitempty"`
}

type stateDTO struct {
	State      engine.State `json:"state"`
	RunID      string       `json:"runId,omitempty"`
	Variant    string       `json:"variant,omitempty"`
	Size       string       `json:"size,omitempty"`
	LastResult *resultDTO   `json:"lastResult,omitempty"`
}

type variantDTO struct {
	Name         string        `json:"name"`
	Class        string        `json:"class"`
	DefaultDelay time.Duration `json:"defaultDelay"`
	Aliases      []string      `json:"aliases,omitempty"`
}

type endpointsRequest struct {
	Source *int `json:"source" validate:"required,gte=0"`
	Target *int `json:"target" validate:"required,gte=0"`
}

type errorDTO struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) graph(w http.ResponseWriter, r *http.Request) {
	g := s.ctl.Graph()
	if g == nil {
		s.fail(w, r, algo.ErrPrecondition)
		return
	}

	out := graphDTO{}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, nodeDTO{ID: n.ID, X: n.X, Y: n.Y})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edgeDTO{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) trace(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.ctl.Snapshot())
}

func (s *Server) frame(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, render.Capture(s.ctl))
}

func (s *Server) state(w http.ResponseWriter, _ *http.Request) {
	out := stateDTO{State: s.ctl.State(), RunID: s.ctl.RunID()}
	if e, ok := s.ctl.Selected(); ok {
		out.Variant = e.Name
	}
	if g := s.ctl.Graph(); g != nil {
		out.Size = builder.Size(g.NodeCount()).String()
	}
	if res, ok := s.ctl.LastResult(); ok {
		out.LastResult = &resultDTO{Result: res}
		if res.Err != nil {
			out.LastResult.Error = res.Err.Error()
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) variants(w http.ResponseWriter, _ *http.Request) {
	all := registry.All()
	out := make([]variantDTO, len(all))
	for i, e := range all {
		out[i] = variantDTO{Name: e.Name, Class: e.Class.String(), DefaultDelay: e.DefaultDelay, Aliases: e.Aliases}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) selectVariant(w http.ResponseWriter, r *http.Request) {
	if err := s.ctl.SelectVariant(chi.URLParam(r, "name")); err != nil {
		s.fail(w, r, err)
		return
	}
	s.state(w, r)
}

func (s *Server) endpoints(w http.ResponseWriter, r *http.Request) {
	var req endpointsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10)).Decode(&req); err != nil {
		s.badRequest(w, r, "malformed JSON body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.badRequest(w, r, "source and target must be non-negative node ids")
		return
	}
	if err := s.ctl.SetEndpoints(*req.Source, *req.Target); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.ctl.Snapshot())
}

func (s *Server) size(w http.ResponseWriter, r *http.Request) {
	size, err := builder.ParseSize(chi.URLParam(r, "size"))
	if err != nil {
		s.badRequest(w, r, err.Error())
		return
	}
	if err = s.ctl.SetSize(size); err != nil {
		s.fail(w, r, err)
		return
	}
	s.regenerate(w, r)
}

func (s *Server) regenerate(w http.ResponseWriter, r *http.Request) {
	if err := s.ctl.Regenerate(); err != nil {
		s.fail(w, r, err)
		return
	}
	s.graph(w, r)
}

func (s *Server) start(w http.ResponseWriter, r *http.Request) {
	if err := s.ctl.Start(); err != nil {
		s.fail(w, r, err)
		return
	}
	s.state(w, r)
}

func (s *Server) pause(w http.ResponseWriter, r *http.Request) {
	s.ctl.Pause()
	s.state(w, r)
}

func (s *Server) resume(w http.ResponseWriter, r *http.Request) {
	s.ctl.Resume()
	s.state(w, r)
}

func (s *Server) stop(w http.ResponseWriter, r *http.Request) {
	s.ctl.Stop()
	s.state(w, r)
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, registry.ErrUnknownVariant):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrAlreadyRunning):
		return http.StatusConflict
	case errors.Is(err, algo.ErrPrecondition):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.log.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			zap.Error(err),
		)
	}
	writeJSON(w, code, errorDTO{Error: err.Error(), RequestID: chimiddleware.GetReqID(r.Context())})
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	writeJSON(w, http.StatusBadRequest, errorDTO{Error: msg, RequestID: chimiddleware.GetReqID(r.Context())})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
