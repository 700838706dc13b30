package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ServiceName identifies this service in health responses.
const ServiceName = "linq-acmecrm-integration"

// SystemHandler serves the unauthenticated informational endpoints
type SystemHandler struct {
	version  string
	port     string
	docsPath string
	now      func() time.Time
}

// NewSystemHandler creates a new SystemHandler. docsPath is empty when the
// Swagger UI is disabled.
func NewSystemHandler(version, port, docsPath string) *SystemHandler {
	return &SystemHandler{
		version:  version,
		port:     port,
		docsPath: docsPath,
		now:      time.Now,
	}
}

// InfoResponse describes the API
// @name HandlerInfoResponse
type InfoResponse struct {
	Message     string `json:"message" example:"Linq-AcmeCRM Integration API"`
	Version     string `json:"version" example:"1.0.0"`
	Docs        string `json:"docs,omitempty" example:"/swagger/index.html"`
	Description string `json:"description" example:"Service for integrating Linq with AcmeCRM"`
}

// HealthResponse is the liveness payload
// @name HandlerHealthResponse
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Service   string `json:"service" example:"linq-acmecrm-integration"`
	Timestamp string `json:"timestamp" example:"2025-07-25T16:38:00Z"`
	Port      string `json:"port" example:"8200"`
}

// Info godoc
// @ID           getApiInfo
// @Summary      API information
// @Tags         system
// @Produce      json
// @Success      200 {object} InfoResponse
// @Router       / [get]
func (h *SystemHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Message:     "Linq-AcmeCRM Integration API",
		Version:     h.version,
		Docs:        h.docsPath,
		Description: "Service for integrating Linq with AcmeCRM",
	})
}

// Health godoc
// @ID           getHealth
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Timestamp: h.now().UTC().Format("2006-01-02T15:04:05Z"),
		Port:      h.port,
	})
}
