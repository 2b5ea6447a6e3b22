package dto

import "github.com/jsamuelsen11/todo-list-service/internal/ports"

// Readiness statuses reported by GET /health/ready.
const (
	ReadinessReady    = "ready"
	ReadinessDegraded = "degraded"
	ReadinessNotReady = "not_ready"
)

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Status     string              `json:"status"`
	Components []ComponentResponse `json:"components"`
}

// ComponentResponse is one checked component, such as the todo backend.
type ComponentResponse struct {
	Name   string `json:"name"`
	State  string `json:"state"`
	Detail string `json:"detail,omitempty"`
}

// NewReadinessResponse folds component results into a readiness body. Any
// down component makes the service not ready; otherwise a degraded one
// (the todo backend's breaker half-open) makes it degraded but still ready
// for traffic.
func NewReadinessResponse(results []ports.ComponentHealth) ReadinessResponse {
	resp := ReadinessResponse{
		Status:     ReadinessReady,
		Components: make([]ComponentResponse, 0, len(results)),
	}
	for _, c := range results {
		resp.Components = append(resp.Components, ComponentResponse{
			Name:   c.Name,
			State:  string(c.State),
			Detail: c.Detail,
		})
		switch {
		case c.State == ports.HealthDown:
			resp.Status = ReadinessNotReady
		case c.State == ports.HealthDegraded && resp.Status == ReadinessReady:
			resp.Status = ReadinessDegraded
		}
	}
	return resp
}
