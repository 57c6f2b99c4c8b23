package httperr

import (
	"errors"
	"net/http"

	"appointment-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target  error
	status  int
	message string
}

// Order matters: the first sentinel err is marked with wins.
var mappings = []mapping{
	{errs.ErrUnauthorized, http.StatusForbidden, "Not allowed for this business"},
	{errs.ErrInvalidRange, http.StatusBadRequest, "Invalid date range"},
	{errs.ErrInvalidWindow, http.StatusBadRequest, "Invalid time window"},
	{errs.ErrInvalidInput, http.StatusBadRequest, "Invalid request"},
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
	{errs.ErrConflict, http.StatusConflict, errs.ErrConflict.Error()},
	{errs.ErrInvalidTransition, http.StatusConflict, "Invalid status transition"},
	{errs.ErrDuplicateBlock, http.StatusConflict, "Availability block already exists"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Request is currently being processed"},
	{errs.ErrDuplicateRequest, http.StatusConflict, "Idempotency key reused with different parameters"},
}

// AbortWithUsecaseError picks the status from the sentinel err is marked with. Unmarked errors are 500.
func AbortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
