package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/aebalz/ubermensch-tracker/internal/service"
)

// DataHandler serves whole-store operations.
type DataHandler struct {
	Services *service.Services
	Log      zerolog.Logger
}

func NewDataHandler(svc *service.Services, log zerolog.Logger) *DataHandler {
	return &DataHandler{Services: svc, Log: log}
}

func (h *DataHandler) reset(ctx context.Context, confirm string) error {
	if err := confirmed(confirm); err != nil {
		return err
	}
	if err := h.Services.Reset(ctx); err != nil {
		return err
	}
	h.Log.Warn().Msg("all tracker data was reset")
	return nil
}

const resetMessage = "All data has been reset."

// @Summary Reset all data
// @Description Clears every collection. Collections with seed data are reseeded on next load.
// @Tags Data
// @Produce json
// @Param confirm query bool true "Must be true"
// @Success 200 {object} MessageResponse
// @Failure 428 {object} ErrorResponse
// @Router /reset [post]
// ResetFiber clears the store for Fiber.
func (h *DataHandler) ResetFiber(c *fiber.Ctx) error {
	if err := h.reset(c.UserContext(), c.Query("confirm")); err != nil {
		return fiberError(err)
	}
	return c.JSON(MessageResponse{Message: resetMessage})
}

// ResetGin clears the store for Gin.
func (h *DataHandler) ResetGin(c *gin.Context) {
	if err := h.reset(c.Request.Context(), c.Query("confirm")); err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: resetMessage})
}

// @Summary Export all data
// @Tags Data
// @Produce json
// @Success 200 {object} service.Snapshot
// @Router /export [get]
// ExportFiber returns every collection as one JSON document for Fiber.
func (h *DataHandler) ExportFiber(c *fiber.Ctx) error {
	snap, err := h.Services.Snapshot(c.UserContext())
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(snap)
}

// ExportGin returns every collection as one JSON document for Gin.
func (h *DataHandler) ExportGin(c *gin.Context) {
	snap, err := h.Services.Snapshot(c.Request.Context())
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
