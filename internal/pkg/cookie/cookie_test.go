//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"table-reservation/internal/pkg/config"
	"table-reservation/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCookie(t *testing.T) (*cookie.ConfirmationCookie, config.SessionConfig) {
	t.Helper()
	cfg := config.NewTestConfig().Session
	cc, err := cookie.NewConfirmationCookie(cfg, 5*time.Minute)
	require.NoError(t, err)
	return cc, cfg
}

func TestConfirmationCookie_RoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cc, cfg := newCookie(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/reservation", nil)
	require.NoError(t, cc.Set(c, "token-123"))

	res := w.Result()
	defer res.Body.Close()
	cookies := res.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cfg.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotContains(t, cookies[0].Value, "token-123")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/confirmation", nil)
	c2.Request.AddCookie(cookies[0])

	token, ok := cc.Read(c2)
	assert.True(t, ok)
	assert.Equal(t, "token-123", token)
}

func TestConfirmationCookie_RejectsTampered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cc, cfg := newCookie(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/confirmation", nil)
	c.Request.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: "forged"})

	_, ok := cc.Read(c)
	assert.False(t, ok)
}

func TestConfirmationCookie_Clear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cc, cfg := newCookie(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/confirmation", nil)
	cc.Clear(c)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cfg.CookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestNewConfirmationCookie_BadKeys(t *testing.T) {
	cfg := config.NewTestConfig().Session
	cfg.BlockKey = "c2hvcnQ=" // "short"

	_, err := cookie.NewConfirmationCookie(cfg, time.Minute)

	assert.Error(t, err)
}
