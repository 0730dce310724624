// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports the liveness of the API and its database.
type HealthController struct {
	dbHealthChecker func() bool
}

// HealthResponse is the payload returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// Check handles GET /health requests. A reachable database reports "ok";
// otherwise the endpoint answers 503 so load balancers stop routing here.
func (h *HealthController) Check(c *gin.Context) {
	dbUp := h.dbHealthChecker != nil && h.dbHealthChecker()

	response := HealthResponse{
		Status:    "ok",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	code := http.StatusOK

	if !dbUp {
		response.Status = "degraded"
		response.Database = "disconnected"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, response)
}
