// Package api holds the wire envelopes shared by every handler group, so
// swagger renders one error shape across arenas, classes, enrollments,
// payments and tournaments.
package api

type ErrorResponse struct {
	Error string `json:"error" example:"class is full"`
}

type MessageResponse struct {
	Message string `json:"message" example:"enrollment cancelled"`
}

// HealthResponse reports liveness; status flips to degraded when the
// database ping fails.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
