package handlers

import (
	response "corpculture/internal/adapter/http/dto/response"
	"corpculture/internal/domain/entities"
	"corpculture/internal/usecase"
	"corpculture/pkg"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ListingHandler serves the admin list views and the scoped dropdowns that
// feed the document forms.
type ListingHandler struct {
	usecase usecase.IListingUseCase
}

func NewListingHandler(uc usecase.IListingUseCase) *ListingHandler {
	return &ListingHandler{usecase: uc}
}

// ListDocuments returns one page of an upstream collection, refined by the
// query parameter across the default searchable fields.
func (h *ListingHandler) ListDocuments(c *gin.Context) {
	page := parseIntParam(c.Query("page"), 0)
	pageSize := parseIntParam(c.Query("page_size"), entities.DefaultPageSize)

	var fields []string
	if raw := strings.TrimSpace(c.Query("fields")); raw != "" {
		for _, field := range strings.Split(raw, ",") {
			if field = strings.TrimSpace(field); field != "" {
				fields = append(fields, field)
			}
		}
	}

	result, err := h.usecase.ListDocuments(c.Request.Context(), c.Param("resource"), c.Query("query"), page, pageSize, fields)
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPage(result))
}

// ScopedOptions returns dropdown entries for a resource, optionally narrowed
// to one company. A failed upstream lookup degrades to an empty list.
func (h *ListingHandler) ScopedOptions(c *gin.Context) {
	options, degraded := h.usecase.ScopedOptions(c.Request.Context(), c.Param("resource"), c.Query("company"))
	c.JSON(http.StatusOK, response.FromOptions(options, degraded))
}

func mapListingError(err error) *pkg.AppError {
	var remoteErr *entities.RemoteError
	switch {
	case errors.Is(err, usecase.ErrInvalidResource):
		return pkg.NewDomainErrorSimple("INVALID_RESOURCE", "Invalid resource", http.StatusBadRequest)
	case errors.As(err, &remoteErr):
		return remoteAppError(remoteErr)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func parseIntParam(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
