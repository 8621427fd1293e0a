package api

import (
	"errors"
	"net/http"

	"salon-dashboard/internal/handler/httperr"
	"salon-dashboard/internal/pkg/errs"
	"salon-dashboard/internal/usecase/grid"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps the cross-layer error categories to HTTP statuses.
// Uncategorized errors are reported as 500 without leaking their message.
func abortWithUsecaseError(c *gin.Context, err error, msg string) {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msg, nil)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, msg, nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

var errDateOrAction = errors.New("date or action required")

func promptErrorMessage(err error) string {
	switch {
	case errs.Is(err, grid.ErrNoOpenPrompt):
		return "No appointment prompt is open"
	case errs.Is(err, grid.ErrInvalidPromptForm):
		return "Invalid appointment form"
	default:
		return "Internal server error"
	}
}
