package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linq/acme-integration/internal/application/integration"
	"github.com/linq/acme-integration/internal/domain/contact"
	"github.com/linq/acme-integration/internal/interfaces/http/dto"
	"github.com/linq/acme-integration/internal/interfaces/http/middleware"
)

// ContactHandler serves the contact endpoints
type ContactHandler struct {
	BaseHandler
	service *integration.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service *integration.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// UpdateStatusRequest is the body of PATCH /contacts/{id}/status
// @Description Request body for changing a contact's CRM status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,max=50" example:"inactive"`
}

// Create godoc
// @ID           createContact
// @Summary      Create a contact in AcmeCRM
// @Description  Maps a Linq contact to the AcmeCRM schema and stores it
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        request body     contact.LinqContact true "Contact in Linq format"
// @Success      200     {object} integration.CreateResult
// @Failure      400     {object} ErrorResponse
// @Failure      401     {object} ErrorResponse
// @Failure      500     {object} ErrorResponse
// @Security     BearerAuth
// @Router       /contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var req contact.LinqContact
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	result, err := h.service.CreateContact(c.Request.Context(), middleware.GetUser(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// List godoc
// @ID           listContacts
// @Summary      List contacts
// @Description  Returns every stored contact in Linq format, in creation order
// @Tags         contacts
// @Produce      json
// @Success      200 {array}  contact.LinqContact
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.service.ListContacts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// Get godoc
// @ID           getContactById
// @Summary      Get a contact
// @Description  Returns one stored contact in Linq format with its CRM metadata
// @Tags         contacts
// @Produce      json
// @Param        id  path     string true "AcmeCRM contact ID" example(acme_a1b2c3d4)
// @Success      200 {object} integration.ContactView
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /contacts/{id} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	view, err := h.service.GetContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateStatus godoc
// @ID           updateContactStatus
// @Summary      Change a contact's status
// @Description  Sets the free-form CRM status; "active" counts as active, anything else as inactive
// @Tags         contacts
// @Accept       json
// @Param        id      path string              true "AcmeCRM contact ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /contacts/{id}/status [patch]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete godoc
// @ID           deleteContact
// @Summary      Delete a contact
// @Description  Removes a stored contact. Its ID is never issued again.
// @Tags         contacts
// @Param        id path string true "AcmeCRM contact ID"
// @Success      204
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Stats godoc
// @ID           getContactStats
// @Summary      Contact statistics
// @Description  Total, active and inactive contact counts in AcmeCRM
// @Tags         contacts
// @Produce      json
// @Success      200 {object} integration.StatsResult
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /contacts/stats [get]
func (h *ContactHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats(c.Request.Context(), middleware.GetUser(c)))
}

// bindError reports a body that could not be decoded or failed binding rules.
func (h *ContactHandler) bindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeBodyTooLarge, "Request body exceeds maximum allowed size")
	case middleware.ValidationDetails(err) != nil:
		middleware.HandleValidationError(c, err)
	default:
		h.BadRequest(c, dto.ErrCodeInvalidJSON, "Request body must be a JSON object")
	}
}
