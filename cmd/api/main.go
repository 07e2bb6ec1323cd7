package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"

	"github.com/jhoicas/Pesaje-api/docs"
	"github.com/jhoicas/Pesaje-api/internal/application/report"
	"github.com/jhoicas/Pesaje-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Pesaje-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Pesaje-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Pesaje-api/internal/interfaces/http"
	"github.com/jhoicas/Pesaje-api/pkg/config"
	"github.com/jhoicas/Pesaje-api/pkg/logger"
)

// @title        Pesaje API
// @version      1.0
// @description  Almacén de registros de pesaje por proveedor: catálogo, log de registros, avance y ticket.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("abrir almacén de registros")
	}
	defer st.Close()

	catalogUC := usecase.NewCatalogUseCase(st.Suppliers)
	recordUC := usecase.NewRecordUseCase(st.Records, st.Suppliers)
	ticketUC := report.NewTicketUseCase(st.Suppliers, st.Records, infrapdf.NewMarotoTicketGenerator())

	// Siembra única del catálogo: cualquier fallo impide arrancar.
	inserted, err := storage.Seed(ctx, cfg, catalogUC)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar catálogo")
	}
	log.Info().Int("inserted", inserted).Msg("catálogo de proveedores listo")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pesaje API",
	}))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog: catalogUC,
		Records: recordUC,
		Ticket:  ticketUC,
		Logger:  log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
