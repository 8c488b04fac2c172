package service

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ancientHacker/kaidoku.go/puzzle"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *Server {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(Config{}, logger)
}

func postSolve(t *testing.T, s *Server, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestSolveEndpoint(t *testing.T) {
	s := testServer()
	sample, ok := puzzle.SampleByName("reference-1")
	require.True(t, ok)

	rec := postSolve(t, s, SolveRequest{Values: sample.Grid.Values(), Budget: "10s"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.Len(t, resp.Values, puzzle.CellCount)
	assert.Len(t, resp.Assignments, puzzle.MaxRecordedAssignments)
	assert.Greater(t, resp.Nodes, 0)

	solved, err := puzzle.GridFromValues(resp.Values)
	require.NoError(t, err)
	for r := 0; r < puzzle.SideLen; r++ {
		for c := 0; c < puzzle.SideLen; c++ {
			if sample.Grid[r][c] != 0 {
				assert.Equal(t, sample.Grid[r][c], solved[r][c], "given at (%d,%d)", r, c)
			}
			assert.InDelta(t, 5, solved[r][c], 4, "cell (%d,%d) out of range", r, c)
		}
	}
}

func TestSolveEndpointGridString(t *testing.T) {
	s := testServer()
	rec := postSolve(t, s, SolveRequest{
		Grid: "..1..2... ..5..6.3. 46...5... ...1.4... 6..8..143" +
			" ....9.5.8 8...49.5. 1..32.... ..9...3..",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "solved", outcomeString(t, rec.Body.Bytes()))
	assert.Len(t, resp.Values, puzzle.CellCount)
}

// outcomeString pulls the raw outcome field, to pin down the
// wire encoding rather than the Go type.
func outcomeString(t *testing.T, body []byte) string {
	t.Helper()
	var raw struct {
		Outcome string `json:"outcome"`
	}
	require.NoError(t, json.Unmarshal(body, &raw))
	return raw.Outcome
}

func TestSolveEndpointTimeout(t *testing.T) {
	s := testServer()
	sample, ok := puzzle.SampleByName("five-star")
	require.True(t, ok)
	rec := postSolve(t, s, SolveRequest{Values: sample.Grid.Values(), Budget: "0s"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "timeout", outcomeString(t, rec.Body.Bytes()))
	var resp SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Values, "timeout response should carry no solution")
}

func TestSolveEndpointBadRequests(t *testing.T) {
	s := testServer()
	cases := []struct {
		name string
		body interface{}
	}{
		{"empty", SolveRequest{}},
		{"both forms", SolveRequest{Values: make([]int, 81), Grid: "..."}},
		{"wrong count", SolveRequest{Values: []int{1, 2, 3}}},
		{"bad cell", SolveRequest{Values: append([]int{12}, make([]int, 80)...)}},
		{"bad budget", SolveRequest{Values: make([]int, 81), Budget: "fast"}},
		{"negative budget", SolveRequest{Values: make([]int, 81), Budget: "-5s"}},
		{"bad rune", SolveRequest{Grid: "not a grid at all"}},
	}
	for _, tc := range cases {
		rec := postSolve(t, s, tc.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "%s: %s", tc.name, rec.Body.String())
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), tc.name)
		assert.NotEmpty(t, resp.Message, tc.name)
	}
}

func TestSolveEndpointBudgetCap(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s := New(Config{MaxBudget: 50 * time.Millisecond}, logger)
	sample, ok := puzzle.SampleByName("reference-1")
	require.True(t, ok)
	// the cap applies even when the client asks for more
	start := time.Now()
	rec := postSolve(t, s, SolveRequest{Values: sample.Grid.Values(), Budget: "1h"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestSamplesEndpoints(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/api/samples", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Samples []string `json:"samples"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Samples, len(puzzle.Samples))

	req = httptest.NewRequest(http.MethodGet, "/api/samples/reference-2", nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var one struct {
		Name   string `json:"name"`
		Values []int  `json:"values"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &one))
	assert.Equal(t, "reference-2", one.Name)
	assert.Len(t, one.Values, puzzle.CellCount)

	req = httptest.NewRequest(http.MethodGet, "/api/samples/bogus", nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
