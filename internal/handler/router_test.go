//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"table-reservation/internal/handler"
	"table-reservation/internal/handler/api"
	"table-reservation/internal/handler/middleware"
	"table-reservation/internal/handler/web"
	"table-reservation/internal/pkg/clock"
	"table-reservation/internal/pkg/config"
	"table-reservation/internal/pkg/cookie"
	"table-reservation/internal/usecase/queries"
	"table-reservation/tests/common/httptest"
	commandsmock "table-reservation/tests/mock/commands"
	queriesmock "table-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	engine      *gin.Engine
	cfg         config.Config
	mockQueries *queriesmock.MockReservationQueries
}

func newRouter(t *testing.T) routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	ctrl := gomock.NewController(t)
	mockCommands := commandsmock.NewMockReservationCommands(ctrl)
	mockConfirm := queriesmock.NewMockConfirmationQueries(ctrl)
	mockQueries := queriesmock.NewMockReservationQueries(ctrl)

	cc, err := cookie.NewConfirmationCookie(cfg.Session, time.Minute)
	require.NoError(t, err)

	clk := clock.NewMockClock(time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC))
	pages := web.NewReservationHandler(mockCommands, mockConfirm, cc, cfg.Restaurant, clk,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	engine := gin.New()
	handler.NewRouter(engine, cfg, middleware.NewLogger(cfg.Log), pages, api.NewReservationHandler(mockQueries))

	return routerFixture{engine: engine, cfg: cfg, mockQueries: mockQueries}
}

func TestRouter_RootRedirectsToForm(t *testing.T) {
	f := newRouter(t)

	w := httptest.Get(t, f.engine, "/")

	httptest.AssertRedirect(t, w, "/reservation")
}

func TestRouter_Health(t *testing.T) {
	f := newRouter(t)

	w := httptest.Get(t, f.engine, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRouter_FormIsServed(t *testing.T) {
	f := newRouter(t)

	w := httptest.Get(t, f.engine, "/reservation")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="personnes"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_OversizedFormIsRejected(t *testing.T) {
	f := newRouter(t)

	form := url.Values{"nom": {strings.Repeat("a", 32<<10)}}
	w := httptest.PostForm(t, f.engine, "/reservation", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Formulaire invalide")
}

func TestRouter_APIAllowsConfiguredOrigin(t *testing.T) {
	f := newRouter(t)
	f.mockQueries.EXPECT().GetByCode(gomock.Any(), "RES-ABCD1234").Return(&queries.ReservationView{
		Code:      "RES-ABCD1234",
		Date:      "2026-10-17",
		Time:      "19:00",
		PartySize: 2,
		Status:    "confirmed",
	}, nil)

	req := nethttptest.NewRequest(http.MethodGet, "/api/reservations/RES-ABCD1234", nil)
	req.Header.Set("Origin", f.cfg.CORS.AllowOrigins[0])
	w := nethttptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, f.cfg.CORS.AllowOrigins[0], w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_PagesHaveNoCORSHeaders(t *testing.T) {
	f := newRouter(t)

	req := nethttptest.NewRequest(http.MethodGet, "/reservation", nil)
	req.Header.Set("Origin", f.cfg.CORS.AllowOrigins[0])
	w := nethttptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
