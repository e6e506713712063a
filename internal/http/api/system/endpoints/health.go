package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/biblemind/internal/http/api"
	"github.com/Nixie-Tech-LLC/biblemind/internal/metrics"
)

// SystemModule mounts the public health and metrics endpoints.
func SystemModule(m *metrics.Metrics) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.Group.GET("/healthz", api.ResolveEndpoint(health))
		c.Group.GET("/metrics", gin.WrapH(m.Handler()))
	})
}

func health(*gin.Context) (any, *api.Error) {
	return gin.H{"status": "ok"}, nil
}
