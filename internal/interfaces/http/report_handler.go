package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-hogar/internal/application/inventory"
	"github.com/jhoicas/inventario-hogar/internal/application/notification"
)

// ReportHandler reporte PDF y vista previa de la alerta de stock bajo.
type ReportHandler struct {
	reportUC  *inventory.ReportUseCase
	previewUC *notification.PreviewUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reportUC *inventory.ReportUseCase, previewUC *notification.PreviewUseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, previewUC: previewUC}
}

// InventoryPDF godoc
// @Summary      Reporte de inventario (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	tenantID, ok := requireTenant(c)
	if !ok {
		return nil
	}
	pdf, err := h.reportUC.InventoryReport(c.UserContext(), tenantID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(pdf)
}

// LowStockPreview godoc
// @Summary      Vista previa de la alerta de stock bajo
// @Description  Devuelve el correo que el job enviaría al tenant, sin enviarlo.
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LowStockPreviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/low-stock/preview [post]
func (h *ReportHandler) LowStockPreview(c *fiber.Ctx) error {
	tenantID, ok := requireTenant(c)
	if !ok {
		return nil
	}
	out, err := h.previewUC.Preview(c.UserContext(), tenantID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
