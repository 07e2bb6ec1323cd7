package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pesaje-api/internal/application/report"
	"github.com/jhoicas/Pesaje-api/internal/application/usecase"
	"github.com/jhoicas/Pesaje-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog *usecase.CatalogUseCase
	Records *usecase.RecordUseCase
	Ticket  *report.TicketUseCase
	Logger  *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api", RequestLogger(log.Component("http")))

	// Catálogo y vistas por proveedor
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.Catalog, deps.Records, deps.Ticket)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Get("/:id/records", supplierHandler.Records)
	suppliers.Get("/:id/progress", supplierHandler.Progress)
	suppliers.Get("/:id/ticket", supplierHandler.Ticket)

	// Log de registros (solo agregado)
	recordHandler := NewRecordHandler(deps.Records, log.Component("records"))
	api.Post("/records", recordHandler.Append)
}
