//go:build unit

package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"table-reservation/internal/handler/httperr"
	"table-reservation/internal/handler/middleware"
	"table-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.ErrorHandler())
	return r
}

func serve(r *gin.Engine, req *http.Request) *nethttptest.ResponseRecorder {
	w := nethttptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecovery_PageGetsPlainText(t *testing.T) {
	r := newEngine()
	r.GET("/reservation", func(c *gin.Context) { panic("boom") })

	w := serve(r, nethttptest.NewRequest(http.MethodGet, "/reservation", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Erreur interne du serveur")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRecovery_APIGetsJSON(t *testing.T) {
	r := newEngine()
	r.GET("/api/availability", func(c *gin.Context) { panic("boom") })

	w := serve(r, nethttptest.NewRequest(http.MethodGet, "/api/availability", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error.Message)
}

func TestErrorHandler(t *testing.T) {
	t.Run("aborted request keeps its response", func(t *testing.T) {
		r := newEngine()
		r.GET("/api/reservations/:code", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusNotFound, errors.New("missing"), "Reservation not found", nil)
		})

		w := serve(r, nethttptest.NewRequest(http.MethodGet, "/api/reservations/RES-AAAAAAAA", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Reservation not found")
	})

	t.Run("handler that writes nothing becomes an internal error", func(t *testing.T) {
		r := newEngine()
		r.GET("/silent", func(c *gin.Context) {})

		w := serve(r, nethttptest.NewRequest(http.MethodGet, "/silent", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("recorded error does not replace the written page", func(t *testing.T) {
		r := newEngine()
		r.GET("/reservation", func(c *gin.Context) {
			httperr.RecordError(c, errors.New("store down"))
			c.String(http.StatusOK, "ok")
		})

		w := serve(r, nethttptest.NewRequest(http.MethodGet, "/reservation", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})
}

func TestLimitBody(t *testing.T) {
	r := newEngine()
	r.POST("/reservation", middleware.LimitBody(32), func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too large")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	small := serve(r, nethttptest.NewRequest(http.MethodPost, "/reservation", strings.NewReader("nom=Jean")))
	assert.Equal(t, http.StatusOK, small.Code)

	big := serve(r, nethttptest.NewRequest(http.MethodPost, "/reservation", strings.NewReader(strings.Repeat("x", 64))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, big.Code)
}

func TestGetRequestID(t *testing.T) {
	r := newEngine()
	var seen string
	r.GET("/health", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.String(http.StatusOK, "ok")
	})

	w := serve(r, nethttptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
}
