package handlers

import (
	"time"

	"sqlgen/config"
	_ "sqlgen/docs" // Swagger docs
	"sqlgen/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires middleware and routes onto a fresh gin engine.
func NewRouter(cfg config.Config, h *Handlers) *gin.Engine {
	r := gin.New()

	r.Use(h.Recovery())
	r.Use(observability.TraceMiddleware())
	r.Use(observability.LoggingMiddleware(h.logger))
	r.Use(observability.MetricsMiddleware())
	r.Use(cors.New(corsConfig(cfg.CORS)))

	r.GET("/", h.GenerateHandler)
	r.GET("/health", h.HealthHandler)
	r.GET("/api/dialects", h.DialectsHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Trace-ID"},
		ExposeHeaders: []string{"X-Trace-ID"},
		MaxAge:        24 * time.Hour,
	}
	if len(cfg.AllowOrigins) == 0 || (len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowOrigins
	}
	return c
}
