package gin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/aebalz/ubermensch-tracker/docs"
	"github.com/aebalz/ubermensch-tracker/internal/config"
	"github.com/aebalz/ubermensch-tracker/internal/handler"
	"github.com/aebalz/ubermensch-tracker/internal/middleware"
)

type trackerRoutes interface {
	ListGin(*gin.Context)
	GetGin(*gin.Context)
	CreateGin(*gin.Context)
	UpdateGin(*gin.Context)
	DeleteGin(*gin.Context)
	ImportGin(*gin.Context)
	ExportGin(*gin.Context)
	TableGin(*gin.Context)
}

// NewGinServer creates and configures a new Gin engine. limiter may be nil.
func NewGinServer(cfg *config.AppConfig, h *handler.Handlers, log zerolog.Logger, limiter *middleware.RateLimiter) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.GinRequestID())
	router.Use(middleware.GinRecovery(log))
	router.Use(middleware.GinLogger(log))
	router.Use(middleware.GinCORS(cfg.CorsAllowedOrigins))
	router.Use(middleware.MetricsMiddlewareGin())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", middleware.MetricsHandlerGin())
	router.GET("/health", h.Health.CheckHealthGin)

	api := router.Group("/api/v1")
	if limiter != nil {
		api.Use(limiter.Gin())
	}
	RegisterRoutes(api, h)
	return router
}

// RegisterRoutes mounts the tracker API on r.
func RegisterRoutes(r *gin.RouterGroup, h *handler.Handlers) {
	supplements := r.Group("/supplements")
	trackerGroup(supplements, h.Supplements)
	supplements.GET("/low-stock", h.Supplements.LowStockGin)
	supplements.POST("/:id/taken", h.Supplements.ToggleTakenGin)
	supplements.POST("/:id/stock", h.Supplements.AdjustStockGin)

	food := r.Group("/food")
	trackerGroup(food, h.Food)
	food.GET("/low-stock", h.Food.LowStockGin)
	food.POST("/:id/stock", h.Food.AdjustStockGin)

	recipes := r.Group("/recipes")
	trackerGroup(recipes, h.Recipes)
	recipes.POST("/:id/tags/:tag", h.Recipes.ToggleTagGin)

	metrics := r.Group("/metrics")
	trackerGroup(metrics, h.Metrics)
	metrics.GET("/:id/progress", h.Metrics.ProgressGin)

	workouts := r.Group("/workouts")
	trackerGroup(workouts, h.Workouts)
	workouts.POST("/:id/completed", h.Workouts.ToggleCompletedGin)

	trackerGroup(r.Group("/equipment"), h.Equipment)

	logs := r.Group("/daily-logs")
	logs.GET("", h.DailyLogs.ListGin)
	logs.GET("/table", h.DailyLogs.TableGin)
	logs.GET("/today", h.DailyLogs.TodayGin)
	logs.GET("/:date", h.DailyLogs.ForDateGin)
	logs.PUT("/:date", h.DailyLogs.SaveGin)
	logs.POST("/:date/meals", h.DailyLogs.AddMealGin)
	logs.POST("/:date/:counter", h.DailyLogs.AdjustGin)

	notes := r.Group("/notes")
	notes.GET("", h.Notes.ListGin)
	notes.POST("", h.Notes.AddGin)
	notes.GET("/export", h.Notes.ExportTextGin)
	notes.GET("/table", h.Notes.TableGin)
	notes.DELETE("/:id", h.Notes.DeleteGin)

	r.POST("/reset", h.Data.ResetGin)
	r.GET("/export", h.Data.ExportGin)

	ai := r.Group("/assistant")
	ai.POST("/messages", h.Assistant.AskGin)
	ai.GET("/conversations/:id", h.Assistant.ConversationGin)
	ai.GET("/voice", h.Assistant.VoiceGin)
}

func trackerGroup(r *gin.RouterGroup, t trackerRoutes) {
	r.GET("", t.ListGin)
	r.POST("", t.CreateGin)
	r.POST("/import", t.ImportGin)
	r.GET("/export", t.ExportGin)
	r.GET("/table", t.TableGin)
	r.GET("/:id", t.GetGin)
	r.PUT("/:id", t.UpdateGin)
	r.DELETE("/:id", t.DeleteGin)
}

// StartGinServer starts the Gin server in the background.
func StartGinServer(router *gin.Engine, cfg *config.AppConfig, log zerolog.Logger) *http.Server {
	addr := fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	log.Info().Str("addr", addr).Msg("starting Gin server")
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("gin server stopped")
		}
	}()
	return srv
}

// ShutdownGinServer gracefully shuts down the Gin server.
func ShutdownGinServer(srv *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
