package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/realtyhub/export-api/internal/container"
	handlers "github.com/realtyhub/export-api/internal/interface/http"
	"github.com/realtyhub/export-api/internal/interface/middleware"
)

// ExportModule wires the read-only export endpoints:
// GET /api/v1/export/offices
// GET /api/v1/export/offices/:officeId/properties/:propertyId
// GET /api/v1/export/offices/:officeId/brokers/:brokerId/properties
type ExportModule struct {
	Handler *handlers.ExportHandler
}

func NewExportModule(h *handlers.ExportHandler) *ExportModule {
	return &ExportModule{Handler: h}
}

func (m *ExportModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	limiter := middleware.RateLimit(container.GetRedis(), cfg.ExportRateLimit, time.Minute,
		middleware.KeyByIP(), middleware.AllowPrivateIP())

	export := rg.Group("/export")
	export.Use(limiter)
	{
		export.GET("/offices", m.Handler.GetAllOffices)
		export.GET("/offices/:officeId/properties/:propertyId", m.Handler.GetPropertyByID)
		export.GET("/offices/:officeId/brokers/:brokerId/properties", m.Handler.GetPropertiesForBroker)
	}
}
