package middleware

import (
	"log/slog"
	"net/http"

	"lending-ledger/internal/handler/httperr"
	"lending-ledger/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error when a handler recorded one
// without writing a body. Internal errors are logged with their cause and
// answered with a generic message.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ge := range c.Errors {
			if resp, ok := ge.Meta.(httperr.Response); ok && resp.Status >= http.StatusInternalServerError {
				logger.Error("request failed",
					"request_id", GetRequestID(c),
					"route", c.FullPath(),
					"error", ge.Err.Error(),
					"stack", errs.ExtractStackLines(ge.Err, 12))
			}
		}

		if c.Writer.Written() {
			return
		}
		if last := c.Errors.ByType(gin.ErrorTypePublic).Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		writeInternal(c)
	}
}

// Recovery turns a panic into a 500 with the standard error envelope.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("recovered from panic",
					"panic", r,
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path)
				writeInternal(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

// NotFound answers unknown routes in the same envelope as handler errors.
func NotFound(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusNotFound, nil, "Not found", nil)
}

func writeInternal(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	c.JSON(resp.Status, resp)
}
