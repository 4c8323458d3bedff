package bootstrap

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpapi "github.com/kerigansolutions/kma-portfolio/internal/api/http"
	"github.com/kerigansolutions/kma-portfolio/internal/api/http/middleware"
	portfoliohttp "github.com/kerigansolutions/kma-portfolio/internal/portfolio/http"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Namespace      string
	AllowedOrigins []string
	DB             httpapi.Pinger
	Listing        portfoliohttp.Lister
	Log            *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Log))
	r.Use(middleware.MetricsMiddleware())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/" + strings.Trim(dep.Namespace, "/") + "/v1")
	portfoliohttp.New(dep.Listing, dep.Log).Register(api)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Accept", "Content-Type", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
