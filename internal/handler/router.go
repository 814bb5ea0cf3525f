package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"table-reservation/internal/handler/api"
	"table-reservation/internal/handler/middleware"
	"table-reservation/internal/handler/web"
	"table-reservation/internal/pkg/config"
)

const maxFormBytes = 16 << 10

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, pages *web.ReservationHandler, reservationAPI *api.ReservationHandler) {
	engine.SetHTMLTemplate(web.Templates)
	setupMiddleware(engine, logger)
	setupRoutes(engine, cfg, pages, reservationAPI)
}

func setupMiddleware(engine *gin.Engine, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, pages *web.ReservationHandler, reservationAPI *api.ReservationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/reservation")
	})
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/reservation", Handler: pages.ShowForm},
		{Method: http.MethodPost, Path: "/reservation", Handler: pages.Submit, Mw: []gin.HandlerFunc{middleware.LimitBody(maxFormBytes)}},
		{Method: http.MethodGet, Path: "/confirmation", Handler: pages.ShowConfirmation},
	})

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.NewCORSMiddleware(cfg.CORS))
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: reservationAPI.CheckAvailability},
			{Method: http.MethodGet, Path: "/reservations/:code", Handler: reservationAPI.GetByCode},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
