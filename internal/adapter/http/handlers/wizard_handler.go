package handlers

import (
	"errors"
	"io"
	"net/http"

	request "lmnts_studio/internal/adapter/http/dto/request"
	response "lmnts_studio/internal/adapter/http/dto/response"
	"lmnts_studio/internal/usecase"
	"lmnts_studio/internal/wizard"
	"lmnts_studio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)
)

// WizardHandler drives funnel sessions over HTTP. Every endpoint answers with
// the full session snapshot so the UI re-renders from one shape.
type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

// StartWizard opens a new funnel session.
//
// @Summary      Start a wizard session
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        payload  body      request.WizardStartRequest  true  "flow, plan and service type"
// @Success      201      {object}  response.WizardResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /wizard [post]
func (h *WizardHandler) StartWizard(c *gin.Context) {
	// An empty body starts the default unified flow.
	var payload request.WizardStartRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.Start(c.Request.Context(), payload.ResolveFlow(), payload.Plan, payload.ServiceType)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWizardView(view))
}

// GetWizard returns the current session snapshot.
//
// @Summary      Get a wizard session
// @Tags         wizard
// @Produce      json
// @Param        id   path      string  true  "session id"
// @Success      200  {object}  response.WizardResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /wizard/{id} [get]
func (h *WizardHandler) GetWizard(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardView(view))
}

// UpdateWizard merges a partial form patch into the session.
//
// @Summary      Update wizard form fields
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "session id"
// @Param        payload  body      request.WizardUpdateRequest  true  "partial form patch"
// @Success      200      {object}  response.WizardResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /wizard/{id} [patch]
func (h *WizardHandler) UpdateWizard(c *gin.Context) {
	var payload request.WizardUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.Update(c.Request.Context(), c.Param("id"), toFormPatch(payload))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardView(view))
}

// NextStep advances the session when the validation gate approves.
//
// @Summary      Advance to the next step
// @Tags         wizard
// @Produce      json
// @Param        id   path      string  true  "session id"
// @Success      200  {object}  response.WizardResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /wizard/{id}/next [post]
func (h *WizardHandler) NextStep(c *gin.Context) {
	view, err := h.usecase.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardView(view))
}

// PrevStep steps backwards without losing entered values.
//
// @Summary      Go back one step
// @Tags         wizard
// @Produce      json
// @Param        id   path      string  true  "session id"
// @Success      200  {object}  response.WizardResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /wizard/{id}/back [post]
func (h *WizardHandler) PrevStep(c *gin.Context) {
	view, err := h.usecase.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardView(view))
}

// SelectUpsell records the review-step package choice.
//
// @Summary      Select or skip the upsell offer
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "session id"
// @Param        payload  body      request.UpsellSelectRequest  true  "package id, empty to skip"
// @Success      200      {object}  response.WizardResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /wizard/{id}/upsell [post]
func (h *WizardHandler) SelectUpsell(c *gin.Context) {
	var payload request.UpsellSelectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.SelectUpsell(c.Request.Context(), c.Param("id"), payload.PackageID)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardView(view))
}

// SubmitWizard runs the submission pipeline for a review-step session.
//
// @Summary      Submit the completed wizard
// @Tags         wizard
// @Produce      json
// @Param        id   path      string  true  "session id"
// @Success      201  {object}  response.SubmissionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /wizard/{id}/submit [post]
func (h *WizardHandler) SubmitWizard(c *gin.Context) {
	res, err := h.usecase.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSubmissionResult(res))
}

func toFormPatch(r request.WizardUpdateRequest) usecase.FormPatch {
	return usecase.FormPatch{
		ServiceID:         r.ServiceID,
		ProjectName:       r.ProjectName,
		Timeline:          r.Timeline,
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		Company:           r.Company,
		Website:           r.Website,
		Description:       r.Description,
		EventType:         r.EventType,
		ExpectedAttendees: r.ExpectedAttendees,
		Budget:            r.Budget,
		Requirements:      r.Requirements,
		Challenges:        r.Challenges,
	}
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, wizard.ErrUnknownFlow):
		return pkg.NewDomainErrorSimple("UNKNOWN_FLOW", "Unknown wizard flow", http.StatusBadRequest)
	case errors.Is(err, wizard.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, wizard.ErrStepIncomplete):
		return pkg.NewDomainErrorSimple("STEP_INCOMPLETE", "Current step is incomplete", http.StatusUnprocessableEntity)
	case errors.Is(err, wizard.ErrAtFirstStep):
		return pkg.NewDomainErrorSimple("AT_FIRST_STEP", "Already at the first step", http.StatusUnprocessableEntity)
	case errors.Is(err, wizard.ErrNotAtReview):
		return pkg.NewDomainErrorSimple("NOT_AT_REVIEW", "Action is only allowed from the review step", http.StatusUnprocessableEntity)
	case errors.Is(err, wizard.ErrSubmitting):
		return pkg.NewDomainErrorSimple("SUBMIT_IN_PROGRESS", "Submission already in progress", http.StatusConflict)
	case errors.Is(err, wizard.ErrAlreadyComplete):
		return pkg.NewDomainErrorSimple("ALREADY_COMPLETE", "Wizard already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownUpsellPackage):
		return pkg.NewDomainErrorSimple("UNKNOWN_UPSELL", "Unknown upsell package", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownService):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE", "Unknown service id", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingContact):
		return pkg.NewDomainErrorSimple("MISSING_CONTACT", "Contact name and email are required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrBackupFailed):
		return pkg.NewDomainErrorSimple("BACKUP_FAILED", "Submission could not be stored, please retry", http.StatusServiceUnavailable)
	default:
		return pkg.NewInternalError(err)
	}
}
