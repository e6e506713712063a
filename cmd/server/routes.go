package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/biblemind/internal/config"
	"github.com/Nixie-Tech-LLC/biblemind/internal/http/api"
	readingsapi "github.com/Nixie-Tech-LLC/biblemind/internal/http/api/readings/endpoints"
	systemapi "github.com/Nixie-Tech-LLC/biblemind/internal/http/api/system/endpoints"
	"github.com/Nixie-Tech-LLC/biblemind/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/biblemind/internal/metrics"
	"github.com/Nixie-Tech-LLC/biblemind/internal/reading"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, service *reading.Service, m *metrics.Metrics) {
	r.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
			http.MethodHead,
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			middleware.APIKeyHeader,
			middleware.RequestIDHeader,
		},
		ExposeHeaders: []string{
			"Content-Length",
			middleware.RequestIDHeader,
		},
		AllowCredentials: true,
	}))

	if cfg.RateLimit.RPS > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	api.MountGroup(r, api.GroupConfig{
		Prefix: "",
	},
		systemapi.SystemModule(m),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "",
		Auth:   true,
		APIKey: cfg.APIKey,
	},
		readingsapi.ReadingsModule(service, m),
	)
}
