// Package handler exposes the procurement browse and export endpoints.
package handler

import (
	"fmt"
	"net/http"

	"secop_portal_backend/internal/procurement/exporter"
	"secop_portal_backend/internal/procurement/service"
	"secop_portal_backend/internal/procurement/transport"
	"secop_portal_backend/platform/httpkit"
	"secop_portal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// searchParams mirrors transport.SearchRequest for binding plus the web
// layer's input caps. Filter semantics stay permissive; the caps only stop
// absurdly long query strings from reaching the compiler.
type searchParams struct {
	Codigos string `form:"codigos" validate:"omitempty,max=2000"`
	Estado  string `form:"estado" validate:"omitempty,max=500"`
	Texto   string `form:"texto" validate:"omitempty,max=500"`
	Orden   string `form:"orden,default=recientes"`
	Page    int    `form:"page,default=1"`
	Limit   int    `form:"limit,default=20"`
}

// Handler handles procurement search and export requests.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new procurement handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// HandleSearch serves GET /api/v1/procurements.
func (h *Handler) HandleSearch(c *gin.Context) {
	req, ok := h.bindParams(c)
	if !ok {
		return
	}

	resp, err := h.svc.Search(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// HandleExport serves GET /api/v1/procurements/export and streams the
// workbook for one page.
func (h *Handler) HandleExport(c *gin.Context) {
	req, ok := h.bindParams(c)
	if !ok {
		return
	}
	req.Normalize()

	notices, err := h.svc.FetchForExport(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	buf, err := exporter.Build(req.Page, notices)
	if httpkit.HandleError(c, err) {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exporter.Filename(req.Page)))
	c.Data(http.StatusOK, exporter.ContentType, buf.Bytes())
}

func (h *Handler) bindParams(c *gin.Context) (transport.SearchRequest, bool) {
	var params searchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return transport.SearchRequest{}, false
	}
	if err := h.val.Struct(params); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return transport.SearchRequest{}, false
	}

	return transport.SearchRequest{
		Codigos: params.Codigos,
		Estado:  params.Estado,
		Texto:   params.Texto,
		Orden:   params.Orden,
		Page:    params.Page,
		Limit:   params.Limit,
	}, true
}
