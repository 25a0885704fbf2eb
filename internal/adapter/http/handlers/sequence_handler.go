package handlers

import (
	response "corpculture/internal/adapter/http/dto/response"
	"corpculture/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SequenceHandler previews the next document number for a resource.
type SequenceHandler struct {
	usecase usecase.ISequenceUseCase
}

func NewSequenceHandler(uc usecase.ISequenceUseCase) *SequenceHandler {
	return &SequenceHandler{usecase: uc}
}

func (h *SequenceHandler) NextDocumentNumber(c *gin.Context) {
	number, err := h.usecase.NextDocumentNumber(c.Request.Context(), c.Param("resource"))
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SequenceResponse{Number: number})
}
