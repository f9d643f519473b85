// Package handlers implements the HTTP endpoint handlers.  Every response
// uses the common.APIResponse envelope; failure codes map to HTTP statuses
// through ErrorCode.HTTPStatus.
package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peptilab/peptigraph/internal/application/conversion"
	"github.com/peptilab/peptigraph/internal/interfaces/http/middleware"
	"github.com/peptilab/peptigraph/pkg/errors"
	"github.com/peptilab/peptigraph/pkg/types/common"
)

// ConvertHandler exposes the conversion service.
type ConvertHandler struct {
	svc *conversion.Service
}

// NewConvertHandler constructs a ConvertHandler.
func NewConvertHandler(svc *conversion.Service) *ConvertHandler {
	return &ConvertHandler{svc: svc}
}

// Convert handles POST /api/v1/convert.
func (h *ConvertHandler) Convert(c *gin.Context) {
	var in conversion.ConvertInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "malformed request body"))
		return
	}

	res, err := h.svc.Convert(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, res)
}

// Residues handles GET /api/v1/residues.
func (h *ConvertHandler) Residues(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"residues": h.svc.Residues(c.Request.Context())})
}

func respond(c *gin.Context, status int, data interface{}) {
	env := common.OK(data)
	env.RequestID = middleware.GetRequestID(c)
	c.JSON(status, env)
}

func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	detail := ""
	message := err.Error()
	var ae *errors.AppError
	if stderrors.As(err, &ae) {
		message = ae.Message
		detail = ae.Detail
	}
	env := common.Fail(code.String(), message, detail)
	env.RequestID = middleware.GetRequestID(c)
	c.JSON(code.HTTPStatus(), env)
}
