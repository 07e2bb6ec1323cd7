package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pesaje-api/internal/application/dto"
	"github.com/jhoicas/Pesaje-api/internal/application/report"
	"github.com/jhoicas/Pesaje-api/internal/application/usecase"
)

// SupplierHandler catálogo de proveedores y vistas por proveedor.
type SupplierHandler struct {
	catalog *usecase.CatalogUseCase
	records *usecase.RecordUseCase
	ticket  *report.TicketUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(catalog *usecase.CatalogUseCase, records *usecase.RecordUseCase, ticket *report.TicketUseCase) *SupplierHandler {
	return &SupplierHandler{catalog: catalog, records: records, ticket: ticket}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}   dto.SupplierResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, err := h.catalog.ListSuppliers(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         suppliers
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id, ok := supplierIDParam(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.catalog.GetSupplier(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Records godoc
// @Summary      Listado crudo de registros del proveedor
// @Tags         suppliers
// @Produce      json
// @Param        id      path   int  true   "ID del proveedor"
// @Param        limit   query  int  false  "Límite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.RecordListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/records [get]
func (h *SupplierHandler) Records(c *fiber.Ctx) error {
	id, ok := supplierIDParam(c)
	if !ok {
		return invalidID(c)
	}
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.records.ListRecords(c.UserContext(), id, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Progress godoc
// @Summary      Avance de la entrega según el almacén
// @Tags         suppliers
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.ProgressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/progress [get]
func (h *SupplierHandler) Progress(c *fiber.Ctx) error {
	id, ok := supplierIDParam(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.records.Progress(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Ticket godoc
// @Summary      Ticket de entrega en PDF
// @Tags         suppliers
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/ticket [get]
func (h *SupplierHandler) Ticket(c *fiber.Ctx) error {
	id, ok := supplierIDParam(c)
	if !ok {
		return invalidID(c)
	}
	pdf, filename, err := h.ticket.DownloadTicket(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
