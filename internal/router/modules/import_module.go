package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/realtyhub/export-api/internal/container"
	handlers "github.com/realtyhub/export-api/internal/interface/http"
	"github.com/realtyhub/export-api/internal/interface/middleware"
)

// ImportModule wires the broker mutation endpoints. Writes get a tighter
// per-IP-and-path limit than the export reads.
type ImportModule struct {
	Handler *handlers.ImportHandler
}

func NewImportModule(h *handlers.ImportHandler) *ImportModule {
	return &ImportModule{Handler: h}
}

func (m *ImportModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	limiter := middleware.RateLimit(container.GetRedis(), cfg.ImportRateLimit, time.Minute,
		middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	brokers := rg.Group("/export/brokers")
	brokers.Use(limiter)
	{
		brokers.POST("", m.Handler.CreateBroker)
		brokers.PUT("/:brokerId", m.Handler.UpdateBroker)
		brokers.DELETE("/:brokerId", m.Handler.DeleteBroker)
	}
}
