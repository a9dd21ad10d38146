// Package procurement provides the procurement browsing bounded context.
// This file defines the module that encapsulates all procurement setup.
package procurement

import (
	apphttp "secop_portal_backend/internal/http"
	"secop_portal_backend/internal/procurement/client"
	"secop_portal_backend/internal/procurement/handler"
	"secop_portal_backend/internal/procurement/service"
	"secop_portal_backend/platform/config"
	"secop_portal_backend/platform/logger"
	"secop_portal_backend/platform/validator"
)

// Module is the procurement bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the procurement module.
func NewModule(cfg config.SocrataConfig, val *validator.Validator, log *logger.Logger) *Module {
	apiClient := client.New(cfg.GetDatasetURL(), cfg.GetAppToken(), log)
	svc := service.New(apiClient, cfg, log)
	h := handler.New(svc, val)

	return &Module{handler: h}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "procurement"
}

// RegisterRoutes mounts the procurement routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/procurements")
	group.GET("", m.handler.HandleSearch)
	group.GET("/export", ctx.ExportRateLimiter.RateLimit(), m.handler.HandleExport)
}

var _ apphttp.Module = (*Module)(nil)
