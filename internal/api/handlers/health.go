package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scenarios-conductor/internal/urban"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	urbanClient urban.Client
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(urbanClient urban.Client) *HealthHandler {
	return &HealthHandler{
		urbanClient: urbanClient,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the worker, including reachability of
// the Urban API and its reported version.
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  make(map[string]string),
	}

	if h.urbanClient.IsAlive(c.Request.Context()) {
		response.Services["urban_api"] = "healthy"
		if version, err := h.urbanClient.GetVersion(c.Request.Context()); err == nil {
			response.Services["urban_api_version"] = version
		}
	} else {
		response.Status = "unhealthy"
		response.Services["urban_api"] = "unreachable"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Live returns the liveness status of the worker process itself.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
