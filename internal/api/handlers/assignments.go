package handlers

import (
	"context"
	"driver-assignment-service/internal/api/dto"
	"driver-assignment-service/internal/ports"
	"driver-assignment-service/internal/services"
	"errors"
	"log"
	"net/http"
	"strconv"
)

// Runner executes one complete assignment run.
type Runner interface {
	Run(ctx context.Context) (*services.RunResult, error)
}

// AssignmentHandler triggers runs and serves the artifact of the latest one.
// The runner's sink is expected to write into Store.
type AssignmentHandler struct {
	Runner Runner
	Store  ports.ArtifactStore
}

const indexPage = `<h2>CSV assignment completed successfully!</h2>
<p><a href="/download">Download assignments.csv</a></p>
`

// Index runs the pipeline and returns a confirmation page linking to the CSV.
func (h *AssignmentHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeText(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if _, err := h.Runner.Run(r.Context()); err != nil {
		status, msg := runFailure(r, err)
		writeText(w, status, "Error: "+msg)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(indexPage))
}

// Download serves the latest assignments CSV as an attachment.
func (h *AssignmentHandler) Download(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeText(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	data, err := h.Store.Latest(r.Context())
	if errors.Is(err, ports.ErrNoArtifact) {
		writeText(w, http.StatusNotFound, "File not found.")
		return
	}
	if err != nil {
		log.Printf("download artifact failed: %v", err)
		writeText(w, http.StatusInternalServerError, "Error: internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="assignments.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Create runs the pipeline and returns the full report as JSON.
func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res, err := h.Runner.Run(r.Context())
	if err != nil {
		status, msg := runFailure(r, err)
		writeError(w, r, status, msg)
		return
	}

	writeJSON(w, r, http.StatusOK, toRunResponse(res))
}

// runFailure maps a run error to its HTTP status and a client-safe message.
func runFailure(r *http.Request, err error) (int, string) {
	var ure *services.UnknownRouteError
	if errors.As(err, &ure) {
		return http.StatusUnprocessableEntity, ure.Error()
	}

	log.Printf("assignment run failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	return http.StatusInternalServerError, "internal server error"
}

func toRunResponse(res *services.RunResult) dto.RunResponse {
	rep := res.Report
	out := dto.RunResponse{
		RunID:      res.RunID,
		Rows:       make([]dto.AssignmentRowResponse, 0, len(rep.Rows)),
		Drivers:    make([]dto.DriverSummaryResponse, 0, len(rep.Drivers)),
		Unassigned: make([]dto.UnassignedOrderResponse, 0, len(rep.Unassigned)),
		Summary:    rep.Summary(),
	}

	for _, row := range rep.Rows {
		out.Rows = append(out.Rows, dto.AssignmentRowResponse{
			OrderID:         row.OrderID,
			RouteID:         row.RouteID,
			ValueRs:         row.ValueRs,
			AdjustedTimeMin: row.AdjustedTimeMin,
			TrafficLevel:    row.TrafficLevel,
			AssignedTo:      row.AssignedTo,
		})
	}

	for _, d := range rep.Drivers {
		assignments := make([]dto.DriverAssignmentResponse, 0, len(d.Assignments))
		for _, a := range d.Assignments {
			assignments = append(assignments, dto.DriverAssignmentResponse{
				OrderID:         a.OrderID,
				RouteID:         a.RouteID,
				AdjustedTimeMin: a.AdjustedTimeMin,
				ValueRs:         a.ValueRs,
			})
		}
		out.Drivers = append(out.Drivers, dto.DriverSummaryResponse{
			Name:          d.Name,
			ShiftHours:    d.ShiftHours,
			PastWeekAvg:   d.PastWeekAvg,
			AssignedHours: d.AssignedHours,
			Assignments:   assignments,
		})
	}

	for _, u := range rep.Unassigned {
		out.Unassigned = append(out.Unassigned, dto.UnassignedOrderResponse{
			OrderID:         u.OrderID,
			RouteID:         u.RouteID,
			AdjustedTimeMin: u.AdjustedTimeMin,
		})
	}

	return out
}
