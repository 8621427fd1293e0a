package middleware

import (
	"log/slog"
	"net/http"

	"salon-dashboard/internal/handler/httperr"
	"salon-dashboard/internal/pkg/errs"
	"salon-dashboard/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const stackDepth = 12

// ErrorHandler logs the error behind every envelope and fills in a response for
// handlers that failed without writing one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		resp, cause := httperr.Lookup(c)
		if cause != nil {
			metrics.IncAPIError(resp.Status, c.FullPath())
			attrs := []any{
				slog.Int("status", resp.Status),
				slog.String("path", c.Request.URL.Path),
				slog.String("request_id", GetRequestID(c)),
				slog.String("error", cause.Error()),
			}
			if resp.Status >= http.StatusInternalServerError {
				attrs = append(attrs, slog.Any("stack", errs.ExtractStackLines(cause.Err, stackDepth)))
				slog.Error(resp.Error.Message, attrs...)
			} else {
				slog.Debug(resp.Error.Message, attrs...)
			}
		}

		if c.Writer.Written() {
			return
		}
		if cause != nil {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Internal())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				metrics.IncPanicRecovered()
				slog.Error("recovered from panic",
					slog.Any("panic", r),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", GetRequestID(c)),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
			}
		}()
		c.Next()
	}
}
