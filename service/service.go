// kaidoku.go - a Sudoku constraint-satisfaction solver and service.
// Copyright (C) 2024-2025 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

// Package service exposes the solver over HTTP.  The API is
// deliberately small: a client posts a grid and a budget, the
// server runs one solve, and the response carries the outcome,
// the solved values, and the leading search decisions.  Solves
// share nothing with each other, so the service needs no
// sessions and keeps no state between requests.
package service

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/ancientHacker/kaidoku.go/puzzle"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Defaults applied by New when the corresponding Config field is
// zero.
const (
	DefaultListen = ":8080"
	DefaultBudget = 10 * time.Second
	MaxBudget     = time.Minute
)

// Config carries the server settings.  MaxBudget caps whatever
// budget clients ask for, so one request can't pin a worker for
// an arbitrary time.
type Config struct {
	Listen        string
	DefaultBudget time.Duration
	MaxBudget     time.Duration
}

// A Server owns the HTTP listener and the routing table.  Create
// one with New, then Start it; Shutdown stops it gracefully.
type Server struct {
	cfg    Config
	logger logrus.FieldLogger
	router chi.Router
	http   *http.Server
}

// New builds a Server from a Config, filling in defaults for any
// zero field.  The logger is required: the service logs one line
// per solve with the request id, outcome, and search size.
func New(cfg Config, logger logrus.FieldLogger) *Server {
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	if cfg.DefaultBudget <= 0 {
		cfg.DefaultBudget = DefaultBudget
	}
	if cfg.MaxBudget <= 0 {
		cfg.MaxBudget = MaxBudget
	}
	s := &Server{cfg: cfg, logger: logger}
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Get("/samples", s.handleSamples)
		r.Get("/samples/{name}", s.handleSample)
	})
	s.router = r
	s.http = &http.Server{Addr: cfg.Listen, Handler: r}
	return s
}

// Handler returns the server's routing table, mostly so tests
// can drive it without a listener.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening and serving in the background.  It
// returns once the listener is up; serve errors after that are
// logged, not returned.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return err
	}
	s.logger.WithField("listen", s.cfg.Listen).Info("solve api listening")
	go func() {
		if err := s.http.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.WithError(err).Error("solve api serve error")
		}
	}()
	return nil
}

// Shutdown stops the server, letting in-flight requests finish
// until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

/*

Request and response bodies

*/

// A SolveRequest is the body of POST /api/solve.  The grid can
// be given either as 81 values in reading order or as a string
// in any form puzzle.ParseGrid accepts; exactly one of the two
// must be present.  The budget is an optional duration string
// such as "10s"; it defaults to the server's default budget and
// is capped at the server's maximum.
type SolveRequest struct {
	Values []int  `json:"values,omitempty"`
	Grid   string `json:"grid,omitempty"`
	Budget string `json:"budget,omitempty"`
}

// A SolveResponse reports one solve.  Values is present only on
// a solved outcome.
type SolveResponse struct {
	RequestID   string              `json:"requestId"`
	Outcome     puzzle.Outcome      `json:"outcome"`
	Values      []int               `json:"values,omitempty"`
	Assignments []puzzle.Assignment `json:"assignments,omitempty"`
	Nodes       int                 `json:"nodes"`
	Elapsed     string              `json:"elapsed"`
}

// An ErrorResponse carries a client error.  When the failure has
// a structured puzzle.Error behind it, that is included so
// clients can do better than string matching.
type ErrorResponse struct {
	RequestID string        `json:"requestId,omitempty"`
	Message   string        `json:"message"`
	Detail    *puzzle.Error `json:"detail,omitempty"`
}

/*

Handlers

*/

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, render.M{"status": "ok"})
}

func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(puzzle.Samples))
	for _, sample := range puzzle.Samples {
		names = append(names, sample.Name)
	}
	render.JSON(w, r, render.M{"samples": names})
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	sample, ok := puzzle.SampleByName(name)
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Message: "no sample named " + name})
		return
	}
	render.JSON(w, r, render.M{"name": sample.Name, "values": sample.Grid.Values()})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	log := s.logger.WithField("request", id)

	var req SolveRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.writeError(w, r, id, "can't decode request body: "+err.Error(), nil)
		return
	}

	grid, err := s.requestGrid(req)
	if err != nil {
		s.writeError(w, r, id, err.Error(), err)
		return
	}
	budget, err := s.requestBudget(req)
	if err != nil {
		s.writeError(w, r, id, err.Error(), nil)
		return
	}

	res, err := puzzle.Solve(grid, budget)
	if err != nil {
		s.writeError(w, r, id, err.Error(), err)
		return
	}
	log.WithFields(logrus.Fields{
		"outcome": res.Outcome.String(),
		"nodes":   res.Nodes,
		"elapsed": res.Elapsed,
	}).Info("solve finished")

	resp := SolveResponse{
		RequestID:   id,
		Outcome:     res.Outcome,
		Assignments: res.Assignments,
		Nodes:       res.Nodes,
		Elapsed:     res.Elapsed.String(),
	}
	if res.Outcome == puzzle.Solved {
		resp.Values = res.Values.Values()
	}
	render.JSON(w, r, resp)
}

// requestGrid extracts the grid from a request, whichever form
// it came in.
func (s *Server) requestGrid(req SolveRequest) (puzzle.Grid, error) {
	switch {
	case len(req.Values) > 0 && req.Grid != "":
		return puzzle.Grid{}, errors.New("give either values or grid, not both")
	case len(req.Values) > 0:
		return puzzle.GridFromValues(req.Values)
	case req.Grid != "":
		return puzzle.ParseGrid(req.Grid)
	default:
		return puzzle.Grid{}, errors.New("no grid in request")
	}
}

// requestBudget extracts and clamps the solve budget.
func (s *Server) requestBudget(req SolveRequest) (time.Duration, error) {
	if req.Budget == "" {
		return s.cfg.DefaultBudget, nil
	}
	budget, err := time.ParseDuration(req.Budget)
	if err != nil {
		return 0, errors.New("can't parse budget: " + err.Error())
	}
	if budget < 0 {
		return 0, errors.New("budget must not be negative")
	}
	if budget > s.cfg.MaxBudget {
		budget = s.cfg.MaxBudget
	}
	return budget, nil
}

// writeError sends a 400 with a message and, when the underlying
// error is a structured puzzle.Error, its taxonomy.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, id, msg string, err error) {
	resp := ErrorResponse{RequestID: id, Message: msg}
	var puzErr puzzle.Error
	if errors.As(err, &puzErr) {
		resp.Detail = &puzErr
	}
	s.logger.WithField("request", id).WithField("error", msg).Warn("bad solve request")
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, resp)
}
