package server

import (
	"log/slog"
	"net/http"

	"github.com/dhis2-sre/pick-a-date/internal/handler"
	"github.com/dhis2-sre/pick-a-date/internal/metric"
	"github.com/dhis2-sre/pick-a-date/internal/middleware"
	"github.com/dhis2-sre/pick-a-date/internal/tracing"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	redocMiddleware "github.com/go-openapi/runtime/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// GetEngine returns a Gin engine with the middlewares and routes shared by all packages. Given no
// allowed origins requests from any origin are allowed.
func GetEngine(logger *slog.Logger, basePath string, allowedOrigins ...string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	corsConfig.AddAllowHeaders("authorization")
	corsConfig.AddExposeHeaders("X-Correlation-ID")
	r.Use(cors.New(corsConfig))

	r.Use(middleware.CorrelationID())
	r.Use(otelgin.Middleware(tracing.ServiceName))
	r.Use(metric.RequestDuration())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.ErrorHandler())

	router := r.Group(basePath)

	redoc(router, basePath)

	router.GET("/health", health)
	router.GET("/metrics", metric.Handler())

	return r
}

func health(c *gin.Context) {
	// swagger:route GET /health health
	//
	// Service health status
	//
	// responses:
	//   200: Response
	handler.Respond(c, http.StatusOK, gin.H{"status": "up"}, "")
}

func redoc(router *gin.RouterGroup, basePath string) {
	router.StaticFile("/swagger.yaml", "./swagger/swagger.yaml")

	redocOpts := redocMiddleware.RedocOpts{
		BasePath: basePath,
		SpecURL:  "./swagger.yaml",
	}
	router.GET("/docs", func(c *gin.Context) {
		redocHandler := redocMiddleware.Redoc(redocOpts, nil)
		redocHandler.ServeHTTP(c.Writer, c.Request)
	})
}
