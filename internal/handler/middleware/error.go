package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"table-reservation/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const internalErrorPage = "Erreur interne du serveur. Veuillez réessayer plus tard."

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		writeInternalError(c)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				writeInternalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

// writeInternalError answers JSON for API routes and plain text for pages.
func writeInternalError(c *gin.Context) {
	if isAPIRequest(c) {
		resp := httperr.Response{Status: http.StatusInternalServerError}
		resp.Error.Message = "Internal server error"
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.String(http.StatusInternalServerError, internalErrorPage)
}

func isAPIRequest(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}
