package fiber

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	swaggoFiber "github.com/swaggo/fiber-swagger"

	_ "github.com/aebalz/ubermensch-tracker/docs"
	"github.com/aebalz/ubermensch-tracker/internal/config"
	"github.com/aebalz/ubermensch-tracker/internal/handler"
	"github.com/aebalz/ubermensch-tracker/internal/middleware"
)

// trackerRoutes is the CRUD, CSV and table surface shared by every tracker handler.
type trackerRoutes interface {
	ListFiber(*fiber.Ctx) error
	GetFiber(*fiber.Ctx) error
	CreateFiber(*fiber.Ctx) error
	UpdateFiber(*fiber.Ctx) error
	DeleteFiber(*fiber.Ctx) error
	ImportFiber(*fiber.Ctx) error
	ExportFiber(*fiber.Ctx) error
	TableFiber(*fiber.Ctx) error
}

// NewFiberServer creates and configures a new Fiber application. limiter may be nil.
func NewFiberServer(cfg *config.AppConfig, h *handler.Handlers, log zerolog.Logger, limiter *middleware.RateLimiter) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
		UnescapePath: true,
		ErrorHandler: customErrorHandler(log),
	})

	app.Use(middleware.FiberRecover(log))
	app.Use(middleware.FiberRequestID())
	app.Use(middleware.FiberLogger(log))
	app.Use(middleware.FiberCORS(cfg.CorsAllowedOrigins))
	app.Use(middleware.MetricsMiddlewareFiber())

	app.Get("/swagger/*", swaggoFiber.WrapHandler)
	app.Get("/metrics", middleware.MetricsHandlerFiber())
	app.Get("/health", h.Health.CheckHealthFiber)

	api := app.Group("/api/v1")
	if limiter != nil {
		api.Use(limiter.Fiber())
	}
	RegisterRoutes(api, h)
	return app
}

// RegisterRoutes mounts the tracker API on r. Static segments are registered before :id routes.
func RegisterRoutes(r fiber.Router, h *handler.Handlers) {
	supplements := r.Group("/supplements")
	collectionRoutes(supplements, h.Supplements)
	supplements.Get("/low-stock", h.Supplements.LowStockFiber)
	itemRoutes(supplements, h.Supplements)
	supplements.Post("/:id/taken", h.Supplements.ToggleTakenFiber)
	supplements.Post("/:id/stock", h.Supplements.AdjustStockFiber)

	food := r.Group("/food")
	collectionRoutes(food, h.Food)
	food.Get("/low-stock", h.Food.LowStockFiber)
	itemRoutes(food, h.Food)
	food.Post("/:id/stock", h.Food.AdjustStockFiber)

	recipes := r.Group("/recipes")
	collectionRoutes(recipes, h.Recipes)
	itemRoutes(recipes, h.Recipes)
	recipes.Post("/:id/tags/:tag", h.Recipes.ToggleTagFiber)

	metrics := r.Group("/metrics")
	collectionRoutes(metrics, h.Metrics)
	itemRoutes(metrics, h.Metrics)
	metrics.Get("/:id/progress", h.Metrics.ProgressFiber)

	workouts := r.Group("/workouts")
	collectionRoutes(workouts, h.Workouts)
	itemRoutes(workouts, h.Workouts)
	workouts.Post("/:id/completed", h.Workouts.ToggleCompletedFiber)

	equipment := r.Group("/equipment")
	collectionRoutes(equipment, h.Equipment)
	itemRoutes(equipment, h.Equipment)

	logs := r.Group("/daily-logs")
	logs.Get("/", h.DailyLogs.ListFiber)
	logs.Get("/table", h.DailyLogs.TableFiber)
	logs.Get("/today", h.DailyLogs.TodayFiber)
	logs.Get("/:date", h.DailyLogs.ForDateFiber)
	logs.Put("/:date", h.DailyLogs.SaveFiber)
	logs.Post("/:date/meals", h.DailyLogs.AddMealFiber)
	logs.Post("/:date/:counter", h.DailyLogs.AdjustFiber)

	notes := r.Group("/notes")
	notes.Get("/", h.Notes.ListFiber)
	notes.Post("/", h.Notes.AddFiber)
	notes.Get("/export", h.Notes.ExportTextFiber)
	notes.Get("/table", h.Notes.TableFiber)
	notes.Delete("/:id", h.Notes.DeleteFiber)

	r.Post("/reset", h.Data.ResetFiber)
	r.Get("/export", h.Data.ExportFiber)

	ai := r.Group("/assistant")
	ai.Post("/messages", h.Assistant.AskFiber)
	ai.Get("/conversations/:id", h.Assistant.ConversationFiber)
	ai.Get("/voice", h.Assistant.VoiceFiber)
}

func collectionRoutes(r fiber.Router, t trackerRoutes) {
	r.Get("/", t.ListFiber)
	r.Post("/", t.CreateFiber)
	r.Post("/import", t.ImportFiber)
	r.Get("/export", t.ExportFiber)
	r.Get("/table", t.TableFiber)
}

func itemRoutes(r fiber.Router, t trackerRoutes) {
	r.Get("/:id", t.GetFiber)
	r.Put("/:id", t.UpdateFiber)
	r.Delete("/:id", t.DeleteFiber)
}

// customErrorHandler renders errors as {"error": true, "message": ...}.
func customErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", ctx.Path()).Msg("request failed")
		}
		return ctx.Status(code).JSON(handler.ErrorResponse{Error: true, Message: message})
	}
}

// StartFiberServer starts the Fiber server.
func StartFiberServer(app *fiber.App, cfg *config.AppConfig, log zerolog.Logger) error {
	addr := fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)
	log.Info().Str("addr", addr).Msg("starting Fiber server")
	return app.Listen(addr)
}
