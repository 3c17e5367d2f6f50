package http

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-hogar/internal/application/dto"
	"github.com/jhoicas/inventario-hogar/internal/application/inventory"
	"github.com/jhoicas/inventario-hogar/internal/application/usecase"
)

// ItemHandler maneja las peticiones HTTP de artículos (protegido).
type ItemHandler struct {
	uc       *usecase.ItemUseCase
	importUC *inventory.ImportUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, importUC *inventory.ImportUseCase) *ItemHandler {
	return &ItemHandler{uc: uc, importUC: importUC}
}

// List godoc
// @Summary      Listar artículos
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Texto contenido en el nombre (sin distinguir mayúsculas)"
// @Param        category  query  string  false  "Categoría exacta; All o vacío = todas"
// @Success      200       {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	tenantID, ok := requireTenant(c)
	if !ok {
		return nil
	}
	out, err := h.uc.List(c.UserContext(), tenantID, c.Query("search"), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	tenantID, ok := requireTenant(c)
	if !ok {
		return nil
	}
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), tenantID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	tenantID, ok := requireTenant(c)
	if !ok {
		return nil
	}
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "artículo no encontrado")
	}
	out, err := h.uc.GetByID(c.UserContext(), tenantID, id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "artículo no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	tenantID, ok := requireTenant(c)
	if !ok {
		return nil
	}
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "artículo no encontrado")
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), tenantID, id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "artículo no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         items
// @Security     Bearer
// @Param        id   path  string  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	tenantID, ok := requireTenant(c)
	if !ok {
		return nil
	}
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "artículo no encontrado")
	}
	if err := h.uc.Delete(c.UserContext(), tenantID, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Use godoc
// @Summary      Consumir una unidad
// @Description  Resta 1 solo si la cantidad actual sigue siendo expected_quantity; si cambió responde 409.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.UseItemRequest  true  "Cantidad que vio el cliente"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/use [post]
func (h *ItemHandler) Use(c *fiber.Ctx) error {
	tenantID, ok := requireTenant(c)
	if !ok {
		return nil
	}
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "artículo no encontrado")
	}
	var in dto.UseItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.ExpectedQuantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "expected_quantity es requerido"})
	}
	out, err := h.uc.UseOne(c.UserContext(), tenantID, id, *in.ExpectedQuantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Bulk godoc
// @Summary      Alta masiva (JSON)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.CreateItemRequest  true  "Artículos"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items/bulk [post]
func (h *ItemHandler) Bulk(c *fiber.Ctx) error {
	tenantID, ok := requireTenant(c)
	if !ok {
		return nil
	}
	var rows []dto.CreateItemRequest
	if err := c.BodyParser(&rows); err != nil {
		return badBody(c)
	}
	out, err := h.importUC.ImportRows(c.UserContext(), tenantID, rows)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar CSV
// @Description  Cuerpo text/csv o multipart con el campo file. Columnas: name, category, quantity, unit, pricePerUnit, lowStockLimit.
// @Tags         items
// @Security     Bearer
// @Accept       text/csv
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  false  "Archivo CSV"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items/import [post]
func (h *ItemHandler) Import(c *fiber.Ctx) error {
	tenantID, ok := requireTenant(c)
	if !ok {
		return nil
	}

	var (
		out *dto.ImportResult
		err error
	)
	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		fh, ferr := c.FormFile("file")
		if ferr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo file requerido"})
		}
		f, ferr := fh.Open()
		if ferr != nil {
			return respondError(c, ferr)
		}
		defer f.Close()
		out, err = h.importUC.ImportCSV(c.UserContext(), tenantID, f)
	} else {
		out, err = h.importUC.ImportCSV(c.UserContext(), tenantID, bytes.NewReader(c.Body()))
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sample godoc
// @Summary      CSV de ejemplo
// @Tags         items
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/items/import/sample [get]
func (h *ItemHandler) Sample(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario-ejemplo.csv"`)
	return c.SendString(inventory.SampleCSV())
}
