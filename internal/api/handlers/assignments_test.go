package handlers

import (
	"context"
	"driver-assignment-service/internal/adapters/memory"
	"driver-assignment-service/internal/api/dto"
	"driver-assignment-service/internal/ports"
	"driver-assignment-service/internal/services"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeRunner struct {
	res   *services.RunResult
	err   error
	calls int
}

func (f *fakeRunner) Run(ctx context.Context) (*services.RunResult, error) {
	f.calls++
	return f.res, f.err
}

func okResult() *services.RunResult {
	return &services.RunResult{
		RunID: "run-1",
		Report: &services.Report{
			Rows: []ports.AssignmentRow{
				{OrderID: "1", RouteID: "R1", ValueRs: 250, AdjustedTimeMin: 45, TrafficLevel: "High", AssignedTo: "D1"},
			},
			Drivers: []services.DriverSummary{
				{Name: "D1", ShiftHours: 8, AssignedHours: 0.75},
			},
			Unassigned: []services.UnassignedOrder{},
		},
	}
}

func TestIndexRunsAndLinksDownload(t *testing.T) {
	runner := &fakeRunner{res: okResult()}
	h := &AssignmentHandler{Runner: runner, Store: &memory.ArtifactStore{}}

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `href="/download"`) {
		t.Fatalf("body missing download link: %q", rec.Body.String())
	}
	if runner.calls != 1 {
		t.Fatalf("runner calls = %d, want 1", runner.calls)
	}
}

func TestIndexErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "unknown route",
			err:        fmt.Errorf("run assignment: %w", &services.UnknownRouteError{OrderID: "2", RouteID: "R99"}),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `Error: unknown route reference: order "2" references route "R99"`,
		},
		{
			name:       "io failure",
			err:        fmt.Errorf("%w: load drivers: disk", services.ErrSourceIO),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Error: internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := &AssignmentHandler{Runner: &fakeRunner{err: tc.err}, Store: &memory.ArtifactStore{}}

			rec := httptest.NewRecorder()
			h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if rec.Body.String() != tc.wantBody {
				t.Fatalf("body = %q, want %q", rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestIndexMethodNotAllowed(t *testing.T) {
	runner := &fakeRunner{res: okResult()}
	h := &AssignmentHandler{Runner: runner, Store: &memory.ArtifactStore{}}

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodDelete, "/", nil))

	if rec.Code != http.StatusMethodNotAllowed || rec.Header().Get("Allow") != http.MethodGet {
		t.Fatalf("status = %d allow = %q", rec.Code, rec.Header().Get("Allow"))
	}
	if runner.calls != 0 {
		t.Fatal("runner must not be called")
	}
}

func TestDownload(t *testing.T) {
	store := &memory.ArtifactStore{}
	h := &AssignmentHandler{Runner: &fakeRunner{}, Store: store}

	rec := httptest.NewRecorder()
	h.Download(rec, httptest.NewRequest(http.MethodGet, "/download", nil))
	if rec.Code != http.StatusNotFound || rec.Body.String() != "File not found." {
		t.Fatalf("empty store: status = %d body = %q", rec.Code, rec.Body.String())
	}

	csv := "order_id,route_id,value_rs,adjusted_time_min,traffic_level,assigned_to\n1,R1,250,45,High,D1\n"
	if err := store.Save(context.Background(), []byte(csv)); err != nil {
		t.Fatal(err)
	}

	rec = httptest.NewRecorder()
	h.Download(rec, httptest.NewRequest(http.MethodGet, "/download", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "assignments.csv") {
		t.Fatalf("Content-Disposition = %q", cd)
	}
	if rec.Body.String() != csv {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

type brokenStore struct{}

func (brokenStore) Save(ctx context.Context, data []byte) error { return errors.New("down") }
func (brokenStore) Latest(ctx context.Context) ([]byte, error) { return nil, errors.New("down") }

func TestDownloadStoreFailure(t *testing.T) {
	h := &AssignmentHandler{Runner: &fakeRunner{}, Store: brokenStore{}}

	rec := httptest.NewRecorder()
	h.Download(rec, httptest.NewRequest(http.MethodGet, "/download", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestCreateReturnsReport(t *testing.T) {
	h := &AssignmentHandler{Runner: &fakeRunner{res: okResult()}, Store: &memory.ArtifactStore{}}

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/v1/assignments", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.RunResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.RunID != "run-1" || len(res.Rows) != 1 || res.Rows[0].AssignedTo != "D1" {
		t.Fatalf("response = %+v", res)
	}
	if len(res.Drivers) != 1 || res.Drivers[0].AssignedHours != 0.75 {
		t.Fatalf("drivers = %+v", res.Drivers)
	}
	if res.Unassigned == nil || !strings.HasSuffix(res.Summary, "All orders assigned.\n") {
		t.Fatalf("unassigned = %v summary = %q", res.Unassigned, res.Summary)
	}
}

func TestCreateUnknownRoute(t *testing.T) {
	err := &services.UnknownRouteError{OrderID: "2", RouteID: "R99"}
	h := &AssignmentHandler{Runner: &fakeRunner{err: err}, Store: &memory.ArtifactStore{}}

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/v1/assignments", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(body["error"], "R99") {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestCreateMethodNotAllowed(t *testing.T) {
	h := &AssignmentHandler{Runner: &fakeRunner{res: okResult()}, Store: &memory.ArtifactStore{}}

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodGet, "/v1/assignments", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("status = %d body = %q", rec.Code, rec.Body.String())
	}
}
