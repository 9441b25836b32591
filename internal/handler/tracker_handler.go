package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/service"
	"github.com/aebalz/ubermensch-tracker/internal/table"
)

// TrackerHandler serves the CRUD, CSV and table endpoints of one tracker.
type TrackerHandler[T any, PT interface {
	*T
	model.Record
}] struct {
	Svc *service.Tracker[T, PT]
}

// NewTrackerHandler creates a handler over svc.
func NewTrackerHandler[T any, PT interface {
	*T
	model.Record
}](svc *service.Tracker[T, PT]) *TrackerHandler[T, PT] {
	return &TrackerHandler[T, PT]{Svc: svc}
}

func (h *TrackerHandler[T, PT]) table(ctx context.Context, sortKey, rawClicks string) (*table.Table[T], error) {
	clicks, err := parseClicks(sortKey, rawClicks)
	if err != nil {
		return nil, err
	}
	return h.Svc.Table(ctx, sortKey, clicks)
}

func (h *TrackerHandler[T, PT]) list(ctx context.Context, sortKey, rawClicks string) ([]T, error) {
	tbl, err := h.table(ctx, sortKey, rawClicks)
	if err != nil {
		return nil, err
	}
	return tbl.Sorted(), nil
}

func (h *TrackerHandler[T, PT]) create(ctx context.Context, body []byte) (T, error) {
	var item T
	if err := decodeBody(body, &item); err != nil {
		return item, err
	}
	return h.Svc.Create(ctx, item)
}

func (h *TrackerHandler[T, PT]) update(ctx context.Context, id string, body []byte) (T, error) {
	var item T
	if err := decodeBody(body, &item); err != nil {
		return item, err
	}
	return h.Svc.Update(ctx, id, item)
}

func (h *TrackerHandler[T, PT]) delete(ctx context.Context, id, confirm string) error {
	if err := confirmed(confirm); err != nil {
		return err
	}
	return h.Svc.Delete(ctx, id)
}

func (h *TrackerHandler[T, PT]) export(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := h.Svc.ExportCSV(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h *TrackerHandler[T, PT]) attachment() string {
	return fmt.Sprintf("attachment; filename=%q", h.Svc.Codec.Name)
}

// @Summary List records
// @Description List a tracker's records, optionally sorted by replaying header clicks on a column.
// @Tags Trackers
// @Produce json
// @Param tracker path string true "supplements, food, recipes, metrics, workouts or equipment"
// @Param sort query string false "Column key"
// @Param clicks query int false "Header clicks to replay (default 1 when sort is set)"
// @Success 200 {array} object
// @Failure 400 {object} ErrorResponse
// @Router /{tracker} [get]
// ListFiber lists the tracker's records for Fiber.
func (h *TrackerHandler[T, PT]) ListFiber(c *fiber.Ctx) error {
	items, err := h.list(c.UserContext(), c.Query("sort"), c.Query("clicks"))
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(items)
}

// ListGin lists the tracker's records for Gin.
func (h *TrackerHandler[T, PT]) ListGin(c *gin.Context) {
	items, err := h.list(c.Request.Context(), c.Query("sort"), c.Query("clicks"))
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get a record
// @Tags Trackers
// @Produce json
// @Param tracker path string true "Tracker"
// @Param id path string true "Record ID"
// @Success 200 {object} object
// @Failure 404 {object} ErrorResponse
// @Router /{tracker}/{id} [get]
// GetFiber returns one record for Fiber.
func (h *TrackerHandler[T, PT]) GetFiber(c *fiber.Ctx) error {
	item, err := h.Svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(item)
}

// GetGin returns one record for Gin.
func (h *TrackerHandler[T, PT]) GetGin(c *gin.Context) {
	item, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Create a record
// @Description The record gets a fresh ID and the form defaults for fields left empty.
// @Tags Trackers
// @Accept json
// @Produce json
// @Param tracker path string true "Tracker"
// @Success 201 {object} object
// @Failure 400 {object} ErrorResponse
// @Router /{tracker} [post]
// CreateFiber creates a record for Fiber.
func (h *TrackerHandler[T, PT]) CreateFiber(c *fiber.Ctx) error {
	item, err := h.create(c.UserContext(), c.Body())
	if err != nil {
		return fiberError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// CreateGin creates a record for Gin.
func (h *TrackerHandler[T, PT]) CreateGin(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		ginError(c, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	item, err := h.create(c.Request.Context(), body)
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary Replace a record
// @Description The stored ID is kept whatever the body says.
// @Tags Trackers
// @Accept json
// @Produce json
// @Param tracker path string true "Tracker"
// @Param id path string true "Record ID"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /{tracker}/{id} [put]
// UpdateFiber replaces a record for Fiber.
func (h *TrackerHandler[T, PT]) UpdateFiber(c *fiber.Ctx) error {
	item, err := h.update(c.UserContext(), c.Params("id"), c.Body())
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(item)
}

// UpdateGin replaces a record for Gin.
func (h *TrackerHandler[T, PT]) UpdateGin(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		ginError(c, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	item, err := h.update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Delete a record
// @Tags Trackers
// @Param tracker path string true "Tracker"
// @Param id path string true "Record ID"
// @Param confirm query bool true "Must be true"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 428 {object} ErrorResponse
// @Router /{tracker}/{id} [delete]
// DeleteFiber deletes a record for Fiber.
func (h *TrackerHandler[T, PT]) DeleteFiber(c *fiber.Ctx) error {
	if err := h.delete(c.UserContext(), c.Params("id"), c.Query("confirm")); err != nil {
		return fiberError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteGin deletes a record for Gin.
func (h *TrackerHandler[T, PT]) DeleteGin(c *gin.Context) {
	if err := h.delete(c.Request.Context(), c.Param("id"), c.Query("confirm")); err != nil {
		ginError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Import records from CSV
// @Description Rows are appended with fresh IDs. Any bad row rejects the whole file.
// @Tags Trackers
// @Accept text/csv
// @Produce json
// @Param tracker path string true "Tracker"
// @Success 200 {object} ImportResult
// @Failure 400 {object} ErrorResponse
// @Router /{tracker}/import [post]
// ImportFiber imports a CSV body for Fiber.
func (h *TrackerHandler[T, PT]) ImportFiber(c *fiber.Ctx) error {
	n, err := h.Svc.ImportCSV(c.UserContext(), bytes.NewReader(c.Body()))
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(ImportResult{Imported: n})
}

// ImportGin imports a CSV body for Gin.
func (h *TrackerHandler[T, PT]) ImportGin(c *gin.Context) {
	n, err := h.Svc.ImportCSV(c.Request.Context(), c.Request.Body)
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, ImportResult{Imported: n})
}

// @Summary Export records as CSV
// @Tags Trackers
// @Produce text/csv
// @Param tracker path string true "Tracker"
// @Success 200 {string} string
// @Router /{tracker}/export [get]
// ExportFiber downloads the tracker as CSV for Fiber.
func (h *TrackerHandler[T, PT]) ExportFiber(c *fiber.Ctx) error {
	data, err := h.export(c.UserContext())
	if err != nil {
		return fiberError(err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, h.attachment())
	return c.Send(data)
}

// ExportGin downloads the tracker as CSV for Gin.
func (h *TrackerHandler[T, PT]) ExportGin(c *gin.Context) {
	data, err := h.export(c.Request.Context())
	if err != nil {
		ginError(c, err)
		return
	}
	c.Header("Content-Disposition", h.attachment())
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// @Summary Rendered table
// @Description Headers, cell text and sort state as the table would display them.
// @Tags Trackers
// @Produce json
// @Param tracker path string true "Tracker"
// @Param sort query string false "Column key"
// @Param clicks query int false "Header clicks to replay"
// @Success 200 {object} table.View
// @Failure 400 {object} ErrorResponse
// @Router /{tracker}/table [get]
// TableFiber renders the table view for Fiber.
func (h *TrackerHandler[T, PT]) TableFiber(c *fiber.Ctx) error {
	tbl, err := h.table(c.UserContext(), c.Query("sort"), c.Query("clicks"))
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(tbl.Render())
}

// TableGin renders the table view for Gin.
func (h *TrackerHandler[T, PT]) TableGin(c *gin.Context) {
	tbl, err := h.table(c.Request.Context(), c.Query("sort"), c.Query("clicks"))
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, tbl.Render())
}
