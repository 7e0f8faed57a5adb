package handlers

import (
	"net/http"
	"strconv"

	"placement_backend/internal/validator"
	"placement_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the pieces every handler needs: binding plus
// validation, error rendering and path-parameter parsing.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{validator: validator.New()}
}

// BindAndValidateJSON binds the JSON body into req and runs validation.
// Returns false after writing the error response.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, req)
}

// BindAndValidateForm binds form fields (urlencoded or multipart) into req
// and runs validation.
func (h *BaseHandler) BindAndValidateForm(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form data"))
		return false
	}
	return h.validate(c, req)
}

func (h *BaseHandler) validate(c *gin.Context, req interface{}) bool {
	if err := h.validator.Validate(req); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// ParseIDParam reads a positive integer path parameter. Returns false after
// writing the error response.
func (h *BaseHandler) ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid "+name+" parameter"))
		return 0, false
	}
	return uint(id), true
}

// HandleServiceError renders a service-layer error.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// OK writes a 200 JSON response.
func (h *BaseHandler) OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// Created writes a 201 JSON response.
func (h *BaseHandler) Created(c *gin.Context, body interface{}) {
	c.JSON(http.StatusCreated, body)
}
