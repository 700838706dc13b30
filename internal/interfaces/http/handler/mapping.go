package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linq/acme-integration/internal/application/integration"
)

// MappingHandler exposes the field mapping descriptor
type MappingHandler struct {
	service *integration.ContactService
}

// NewMappingHandler creates a new MappingHandler
func NewMappingHandler(service *integration.ContactService) *MappingHandler {
	return &MappingHandler{service: service}
}

// Schema godoc
// @ID           getMappingSchema
// @Summary      Field mapping schema
// @Description  Forward and reverse field name tables between Linq and AcmeCRM
// @Tags         mapping
// @Produce      json
// @Success      200 {object} contact.MappingSchema
// @Router       /mapping/schema [get]
func (h *MappingHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.MappingSchema())
}
