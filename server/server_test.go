// SPDX-License-Identifier: MIT

package server_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/render"
	"github.com/katalvlaran/algoviz/server"
	"github.com/katalvlaran/algoviz/session"
	"github.com/katalvlaran/algoviz/trace"
)

func setup(t *testing.T, delay time.Duration) (*session.Session, *metrics.Collector, http.Handler) {
	t.Helper()

	m := metrics.NewCollector("algoviz")
	s := session.New(session.Options{Seed: 3, StepDelay: delay, Metrics: m})
	t.Cleanup(s.Stop)

	return s, m, server.New(s, server.Options{Metrics: m}).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func TestHealthAndVariants(t *testing.T) {
	_, _, h := setup(t, 0)

	require.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", "").Code)

	rec := do(t, h, http.MethodGet, "/variants", "")
	require.Equal(t, http.StatusOK, rec.Code)
	vs := decode[[]map[string]any](t, rec)
	require.Len(t, vs, 9)
	assert.Equal(t, "Breadth-First Search", vs[0]["name"])
}

func TestErrorMapping(t *testing.T) {
	_, _, h := setup(t, 0)

	assert.Equal(t, http.StatusUnprocessableEntity, do(t, h, http.MethodGet, "/graph", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/select/Quantum-Walk", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/size/huge", "").Code)

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/select/bfs", "").Code)
	rec := do(t, h, http.MethodPost, "/start", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "precondition")
}

func TestEndpointsValidation(t *testing.T) {
	_, _, h := setup(t, 0)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/size/small", "").Code)

	cases := map[string]int{
		`{"source":0,"target":9}`:  http.StatusOK,
		`{"source":-1,"target":9}`: http.StatusBadRequest,
		`{"source":0}`:             http.StatusBadRequest,
		`not json`:                 http.StatusBadRequest,
		`{"source":0,"target":99}`: http.StatusUnprocessableEntity,
	}
	for body, want := range cases {
		assert.Equal(t, want, do(t, h, http.MethodPost, "/endpoints", body).Code, body)
	}

	snap := decode[trace.Snapshot](t, do(t, h, http.MethodGet, "/trace", ""))
	assert.Equal(t, 0, snap.Source)
	assert.Equal(t, 9, snap.Target)
}

func TestRunOverHTTP(t *testing.T) {
	s, _, h := setup(t, time.Nanosecond)

	rec := do(t, h, http.MethodPost, "/size/small", "")
	require.Equal(t, http.StatusOK, rec.Code)
	g := decode[struct {
		Nodes []map[string]any `json:"nodes"`
		Edges []map[string]any `json:"edges"`
	}](t, rec)
	require.Len(t, g.Nodes, 10)
	require.NotEmpty(t, g.Edges)

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/select/dijkstra", "").Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/endpoints", `{"source":0,"target":9}`).Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/start", "").Code)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Wait(ctx))

	f := decode[render.Frame](t, do(t, h, http.MethodGet, "/frame", ""))
	require.NotEmpty(t, f.Path)
	assert.Equal(t, 0, f.Path[0])
	assert.Equal(t, 9, f.Path[len(f.Path)-1])

	st := decode[map[string]any](t, do(t, h, http.MethodGet, "/state", ""))
	assert.Equal(t, "idle", st["state"])
	assert.Equal(t, "Dijkstra", st["variant"])
	last, ok := st["lastResult"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "completed", last["outcome"])
}

func TestStartConflict(t *testing.T) {
	s, _, h := setup(t, 50*time.Millisecond)

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/select/prim", "").Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/regenerate", "").Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/start", "").Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/select/kruskal", "").Code)

	assert.Equal(t, http.StatusConflict, do(t, h, http.MethodPost, "/start", "").Code)
	assert.Equal(t, http.StatusConflict, do(t, h, http.MethodPost, "/regenerate", "").Code)
	assert.Equal(t, http.StatusConflict, do(t, h, http.MethodPost, "/size/large", "").Code)
	assert.Equal(t, builder.Small, s.Size())

	st := decode[map[string]any](t, do(t, h, http.MethodPost, "/stop", ""))
	assert.Equal(t, "idle", st["state"])
}

func TestMetricsEndpoint(t *testing.T) {
	_, _, h := setup(t, 0)
	do(t, h, http.MethodPost, "/select/bfs", "")

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `algoviz_http_requests_total{method="POST",route="/select/{name}",status="200"} 1`)
}

func TestStream(t *testing.T) {
	s, _, h := setup(t, 0)
	require.NoError(t, s.Regenerate())

	ts := httptest.NewServer(h)
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/stream", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f render.Frame
	require.NoError(t, conn.ReadJSON(&f))
	assert.Equal(t, 10, f.Nodes)
	assert.Equal(t, "idle", f.State.String())
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	s := session.New(session.Options{Seed: 1})
	srv := server.New(s, server.Options{})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln, time.Second) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return")
	}
}
