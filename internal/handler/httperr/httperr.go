// Package httperr carries handler failures to the error middleware as public gin errors.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const messageInternal = "Internal server error"

// Response is the JSON error envelope shared by every endpoint.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	return resp
}

func Internal() Response {
	return NewResponse(http.StatusInternalServerError, messageInternal, nil)
}

// AbortWithError writes the envelope and keeps err on the context for the error
// middleware to log. err must be non-nil.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Lookup returns the most recent envelope recorded on the context with the gin
// error carrying it, or nil when no handler aborted through AbortWithError.
func Lookup(c *gin.Context) (Response, *gin.Error) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		ge := c.Errors[i]
		if !ge.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := ge.Meta.(Response); ok {
			return resp, ge
		}
	}
	return Response{}, nil
}
