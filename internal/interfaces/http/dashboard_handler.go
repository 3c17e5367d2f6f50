package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventario-hogar/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Dashboard del tenant
// @Description  Artículos filtrados, categorías, totales por categoría, patrimonio neto, alertas y resumen del libro.
// @Description  Los totales y alertas usan todo el inventario; search y category solo filtran la lista.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Texto contenido en el nombre"
// @Param        category  query  string  false  "Categoría exacta; All o vacío = todas"
// @Success      200       {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	tenantID, ok := requireTenant(c)
	if !ok {
		return nil
	}
	summary, err := h.uc.GetSummary(c.UserContext(), tenantID, c.Query("search"), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
