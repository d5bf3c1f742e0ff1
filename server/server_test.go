package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/geo"
	"github.com/katalvlaran/metroroute/itinerary"
	"github.com/katalvlaran/metroroute/planner"
	"github.com/katalvlaran/metroroute/server"
	"github.com/katalvlaran/metroroute/transit"
)

func newServer(t *testing.T) *server.Server {
	t.Helper()
	ds := transit.Dataset{Lines: []transit.LineSpec{
		{Name: "L1", Color: "#f00", Stops: []transit.StopSpec{
			{Station: "A", Pos: geo.Point{0, 0}},
			{Station: "B", Pos: geo.Point{100, 0}},
			{Station: "C", Pos: geo.Point{200, 0}},
		}},
		{Name: "L2", Color: "#00f", Stops: []transit.StopSpec{
			{Station: "D", Pos: geo.Point{100, -100}},
			{Station: "B", Pos: geo.Point{100, 0}},
			{Station: "E", Pos: geo.Point{100, 100}},
		}},
		{Name: "L3", Stops: []transit.StopSpec{
			{Station: "X", Pos: geo.Point{5000, 0}},
		}},
	}}
	net, err := transit.Build(ds, transit.DefaultParams())
	require.NoError(t, err)
	p, err := planner.New(net)
	require.NoError(t, err)

	return server.New(p, server.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error
}

func TestRouteOK(t *testing.T) {
	s := newServer(t)

	for _, tc := range []struct{ path, body string }{
		{"/ruta", `{"inicio": "A", "fin": "E"}`},
		{"/api/route", `{"origin": "A", "destination": "E"}`},
	} {
		rec := post(t, s, tc.path, tc.body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		require.NotEmpty(t, rec.Header().Get(server.HeaderRequestID))

		var it itinerary.Itinerary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &it))
		require.Equal(t, 9.0, it.TotalMinutes)
		require.Len(t, it.Steps, 3)
		require.Equal(t, []string{"board at A (line L1)", "transfer at B to line L2", "alight at E"}, it.Instructions)
	}
}

func TestRouteWithPosition(t *testing.T) {
	rec := post(t, newServer(t), "/api/route", `{"origin": "A", "destination": "C", "originPos": [0, 10]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var it itinerary.Itinerary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &it))
	require.Equal(t, 6.0, it.TotalMinutes)
}

func TestRouteErrors(t *testing.T) {
	s := newServer(t)

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"missing destination", `{"inicio": "A"}`, http.StatusBadRequest},
		{"blank origin", `{"origin": "  ", "destination": "E"}`, http.StatusBadRequest},
		{"bad json", `{"origin": `, http.StatusBadRequest},
		{"unknown station", `{"origin": "A", "destination": "Z"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, s, "/ruta", tc.body)
			require.Equal(t, tc.status, rec.Code)
			require.NotEmpty(t, errorOf(t, rec))
		})
	}

	require.Contains(t, errorOf(t, post(t, s, "/ruta", `{"origin": "A", "destination": "Z"}`)), `"Z"`)
}

func TestRouteToIsland(t *testing.T) {
	rec := post(t, newServer(t), "/api/route", `{"origin": "A", "destination": "X"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var it itinerary.Itinerary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &it))
	require.Equal(t, itinerary.ModeTransit, it.Mode)
	require.Equal(t, 966.0, it.TotalMinutes)
	require.Equal(t, itinerary.KindWalk, it.Steps[len(it.Steps)-1].Kind)
}

func TestRouteAbandonedRequest(t *testing.T) {
	var logs bytes.Buffer
	ds := transit.Dataset{Lines: []transit.LineSpec{
		{Name: "L1", Stops: []transit.StopSpec{
			{Station: "A", Pos: geo.Point{0, 0}},
			{Station: "B", Pos: geo.Point{100, 0}},
		}},
	}}
	net, err := transit.Build(ds, transit.DefaultParams())
	require.NoError(t, err)
	p, err := planner.New(net)
	require.NoError(t, err)
	s := server.New(p, server.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	expired, cancelExpired := context.WithDeadline(context.Background(), time.Unix(0, 0))
	defer cancelExpired()

	for _, tc := range []struct {
		ctx    context.Context
		status int
	}{
		{canceled, server.StatusClientClosedRequest},
		{expired, http.StatusServiceUnavailable},
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/route",
			bytes.NewBufferString(`{"origin": "A", "destination": "B"}`)).WithContext(tc.ctx)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		require.Equal(t, tc.status, rec.Code, rec.Body.String())
		require.NotEmpty(t, errorOf(t, rec))
	}
	require.NotContains(t, logs.String(), "planning failed")
	require.NotContains(t, logs.String(), "level=ERROR")
}

func TestRequestIDEcho(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	newServer(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "abc-123", rec.Header().Get(server.HeaderRequestID))
}

func TestStationsAndLines(t *testing.T) {
	s := newServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stations", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var stations []transit.Station
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stations))
	require.Len(t, stations, 6)
	require.Equal(t, "A", stations[0].Name)
	require.Equal(t, []string{"L1", "L2"}, stations[1].Lines)

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lines", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var lines []transit.Line
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lines))
	require.Len(t, lines, 3)
	require.Equal(t, []string{"D", "B", "E"}, lines[1].Stations)
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status  string        `json:"status"`
		Network transit.Stats `json:"network"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body.Status)
	require.Equal(t, 6, body.Network.Stations)
	require.Equal(t, 2, body.Network.Components)
}

func TestMethodAndPath(t *testing.T) {
	s := newServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ruta", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
