package handlers

import (
	request "corpculture/internal/adapter/http/dto/request"
	response "corpculture/internal/adapter/http/dto/response"
	"corpculture/internal/domain/entities"
	"corpculture/internal/usecase"
	"corpculture/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
)

// DraftHandler serves the editing sessions behind the back-office document
// forms, submission included.
type DraftHandler struct {
	drafts      usecase.IDraftUseCase
	submissions usecase.ISubmissionUseCase
}

func NewDraftHandler(drafts usecase.IDraftUseCase, submissions usecase.ISubmissionUseCase) *DraftHandler {
	return &DraftHandler{drafts: drafts, submissions: submissions}
}

// CreateDraft opens a session. With remote_id set the session starts in edit
// mode, pre-filled from the upstream document.
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	var payload request.DraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	var (
		draft entities.Draft
		err   error
	)
	if remoteID := payload.ResolveRemoteID(); remoteID != "" {
		draft, err = h.drafts.Hydrate(c.Request.Context(), payload.ResolveKind(), remoteID)
	} else {
		draft, err = h.drafts.Create(c.Request.Context(), payload.ResolveKind())
	}
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDraft(draft))
}

func (h *DraftHandler) GetDraft(c *gin.Context) {
	draft, err := h.drafts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *DraftHandler) SetHeaderField(c *gin.Context) {
	var payload request.HeaderFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.drafts.SetHeaderField(c.Request.Context(), c.Param("id"), payload.Field, payload.Value)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *DraftHandler) AddLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.drafts.AddLineItem(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *DraftHandler) UpdateLineItem(c *gin.Context) {
	var payload request.LineItemUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.drafts.UpdateLineItem(c.Request.Context(), c.Param("id"), c.Param("rowID"), payload.ToUpdate())
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *DraftHandler) RemoveLineItem(c *gin.Context) {
	draft, err := h.drafts.RemoveLineItem(c.Request.Context(), c.Param("id"), c.Param("rowID"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *DraftHandler) AddGroup(c *gin.Context) {
	var payload request.GroupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.drafts.AddGroup(c.Request.Context(), c.Param("id"), payload.ResolveName())
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *DraftHandler) RemoveGroup(c *gin.Context) {
	draft, err := h.drafts.RemoveGroup(c.Request.Context(), c.Param("id"), c.Param("groupID"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(draft))
}

// ResetDraft clears the form back to its pristine state, keeping the session.
func (h *DraftHandler) ResetDraft(c *gin.Context) {
	draft, err := h.drafts.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.drafts.Discard(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitDraft validates the session and pushes it upstream. On success the
// session is gone and the upstream document comes back in the response, with
// 201 for a newly created document and 200 for an edit-mode update.
func (h *DraftHandler) SubmitDraft(c *gin.Context) {
	result, err := h.submissions.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if result.Updated {
		status = http.StatusOK
	}
	c.JSON(status, response.FromSubmission(result.Document))
}

func mapDraftError(err error) *pkg.AppError {
	var remoteErr *entities.RemoteError
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftID),
		errors.Is(err, usecase.ErrInvalidDocumentKind),
		errors.Is(err, usecase.ErrInvalidRemoteID),
		errors.Is(err, usecase.ErrInvalidHeaderField),
		errors.Is(err, entities.ErrUnknownHeaderField),
		errors.Is(err, entities.ErrGroupName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrLineItemReference),
		errors.Is(err, entities.ErrLineItemQuantity),
		errors.Is(err, entities.ErrLineItemRate),
		errors.Is(err, entities.ErrLineItemTaxRate):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrRowNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrGroupNotFound):
		return pkg.NewDomainErrorSimple("GROUP_NOT_FOUND", "Group not found", http.StatusNotFound)
	case errors.As(err, &remoteErr):
		return remoteAppError(remoteErr)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapSubmissionError(err error) *pkg.AppError {
	var remoteErr *entities.RemoteError
	switch {
	case errors.Is(err, usecase.ErrDraftEmpty),
		errors.Is(err, usecase.ErrMissingCompany),
		errors.Is(err, usecase.ErrMissingVendor),
		errors.Is(err, usecase.ErrInvalidRows):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_SUBMITTABLE", err.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &remoteErr):
		return remoteAppError(remoteErr)
	default:
		return mapDraftError(err)
	}
}

// remoteAppError surfaces the upstream message so the operator sees what the
// corpculture API actually said.
func remoteAppError(remoteErr *entities.RemoteError) *pkg.AppError {
	return pkg.NewDomainError("REMOTE_ERROR", remoteErr.Error(), remoteErr, http.StatusBadGateway)
}
