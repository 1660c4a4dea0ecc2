package handlers

import (
	"errors"
	"net/http"

	request "lmnts_studio/internal/adapter/http/dto/request"
	response "lmnts_studio/internal/adapter/http/dto/response"
	"lmnts_studio/internal/domain/entities"
	"lmnts_studio/internal/usecase"
	"lmnts_studio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAdminPayload = pkg.NewDomainErrorSimple("INVALID_ADMIN_INPUT", "Invalid admin payload", http.StatusBadRequest)
)

// AdminHandler exposes the operator's listing over submitted leads.
type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// ListSubmissions returns the filtered listing.
//
// @Summary      List submissions
// @Tags         admin
// @Produce      json
// @Param        status  query     string  false  "status filter, 'all' or empty for everything"
// @Param        search  query     string  false  "substring over contact name, email, company"
// @Success      200     {array}   response.AdminSubmissionResponse
// @Failure      500     {object}  pkg.HTTPError
// @Router       /admin/submissions [get]
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	subs, err := h.usecase.List(c.Request.Context(), c.Query("status"), c.Query("search"))
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjectSubmissions(subs))
}

// GetStats returns the dashboard header aggregates.
//
// @Summary      Submission statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  usecase.AdminStats
// @Failure      500  {object}  pkg.HTTPError
// @Router       /admin/submissions/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UpdateStatus applies the optimistic status change.
//
// @Summary      Update a submission's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "submission id"
// @Param        payload  body      request.StatusUpdateRequest  true  "new status"
// @Success      200      {object}  response.AdminSubmissionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /admin/submissions/{id}/status [patch]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.ProjectStatus(payload.Status))
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjectSubmission(updated))
}

// GenerateInvoice asks the automation workflow to draft a deposit invoice.
//
// @Summary      Generate a deposit invoice
// @Tags         admin
// @Produce      json
// @Param        id   path  string  true  "submission id"
// @Success      202
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /admin/submissions/{id}/invoice [post]
func (h *AdminHandler) GenerateInvoice(c *gin.Context) {
	if err := h.usecase.GenerateInvoice(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusAccepted)
}

// SendMessage relays an operator message to the client.
//
// @Summary      Send a message to a client
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path  string                      true  "submission id"
// @Param        payload  body  request.SendMessageRequest  true  "message text"
// @Success      202
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /admin/submissions/{id}/message [post]
func (h *AdminHandler) SendMessage(c *gin.Context) {
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SendMessage(c.Request.Context(), c.Param("id"), payload.Message); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusAccepted)
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_ID", "Invalid submission id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotifierUnavailable):
		return pkg.NewDomainErrorSimple("NOTIFICATIONS_UNAVAILABLE", "Automation notifications are not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewInternalError(err)
	}
}
