package handler

import (
	"errors"
	"net/http"
	"strconv"

	"orderdesk/internal/apierror"
	"orderdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// pathID parses a positive int64 path parameter. Writes the 400 response
// itself on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid "+name))
		return 0, false
	}
	return id, true
}

// respondServiceError maps service sentinel errors to HTTP statuses.
// Unknown errors become a logged 500 without leaking internals.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrLineItemNotFound),
		errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
	}
}
