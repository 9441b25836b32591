package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/service"
)

// DailyLogHandler serves the per-day journal. Logs are addressed by date, not id.
type DailyLogHandler struct {
	*TrackerHandler[model.DailyLog, *model.DailyLog]
	Logs *service.DailyLogs
}

func NewDailyLogHandler(svc *service.DailyLogs) *DailyLogHandler {
	return &DailyLogHandler{TrackerHandler: NewTrackerHandler(svc.Tracker), Logs: svc}
}

func (h *DailyLogHandler) save(ctx context.Context, date string, body []byte) (model.DailyLog, error) {
	var l model.DailyLog
	if err := decodeBody(body, &l); err != nil {
		return l, err
	}
	l.Date = date
	return h.Logs.Save(ctx, l)
}

func (h *DailyLogHandler) addMeal(ctx context.Context, date string, body []byte) (model.DailyLog, error) {
	var meal model.Meal
	if err := decodeBody(body, &meal); err != nil {
		return model.DailyLog{}, err
	}
	return h.Logs.AddMeal(ctx, date, meal)
}

// counter selects the adjustable daily counter named in the route.
func (h *DailyLogHandler) counter(name string) (func(context.Context, string, int) (model.DailyLog, error), error) {
	switch name {
	case "hydration":
		return h.Logs.AdjustHydration, nil
	case "bowel-movements":
		return h.Logs.AdjustBowelMovements, nil
	}
	return nil, fmt.Errorf("%w: unknown counter %q", ErrBadRequest, name)
}

func (h *DailyLogHandler) adjust(ctx context.Context, date, name, rawDelta string) (model.DailyLog, error) {
	fn, err := h.counter(name)
	if err != nil {
		return model.DailyLog{}, err
	}
	delta, err := parseDelta(rawDelta)
	if err != nil {
		return model.DailyLog{}, err
	}
	return fn(ctx, date, delta)
}

// @Summary Today's log
// @Description Returns the stored log for today or the unsaved default log.
// @Tags DailyLogs
// @Produce json
// @Success 200 {object} model.DailyLog
// @Router /daily-logs/today [get]
// TodayFiber returns today's log for Fiber.
func (h *DailyLogHandler) TodayFiber(c *fiber.Ctx) error {
	l, err := h.Logs.Today(c.UserContext())
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(l)
}

// TodayGin returns today's log for Gin.
func (h *DailyLogHandler) TodayGin(c *gin.Context) {
	l, err := h.Logs.Today(c.Request.Context())
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// @Summary Log for a date
// @Tags DailyLogs
// @Produce json
// @Param date path string true "YYYY-MM-DD"
// @Success 200 {object} model.DailyLog
// @Failure 404 {object} ErrorResponse
// @Router /daily-logs/{date} [get]
// ForDateFiber returns the stored log for a date for Fiber.
func (h *DailyLogHandler) ForDateFiber(c *fiber.Ctx) error {
	l, err := h.Logs.ForDate(c.UserContext(), c.Params("date"))
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(l)
}

// ForDateGin returns the stored log for a date for Gin.
func (h *DailyLogHandler) ForDateGin(c *gin.Context) {
	l, err := h.Logs.ForDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// @Summary Save the log for a date
// @Description Replaces any log stored for the date, keeping its ID.
// @Tags DailyLogs
// @Accept json
// @Produce json
// @Param date path string true "YYYY-MM-DD"
// @Success 200 {object} model.DailyLog
// @Failure 400 {object} ErrorResponse
// @Router /daily-logs/{date} [put]
// SaveFiber stores the log for a date for Fiber.
func (h *DailyLogHandler) SaveFiber(c *fiber.Ctx) error {
	l, err := h.save(c.UserContext(), c.Params("date"), c.Body())
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(l)
}

// SaveGin stores the log for a date for Gin.
func (h *DailyLogHandler) SaveGin(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		ginError(c, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	l, err := h.save(c.Request.Context(), c.Param("date"), body)
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// @Summary Adjust a daily counter
// @Description Adds delta to hydration or bowel-movements. Counters never go below zero.
// @Tags DailyLogs
// @Produce json
// @Param date path string true "YYYY-MM-DD"
// @Param counter path string true "hydration or bowel-movements"
// @Param delta query int true "Amount to add"
// @Success 200 {object} model.DailyLog
// @Failure 400 {object} ErrorResponse
// @Router /daily-logs/{date}/{counter} [post]
// AdjustFiber changes a counter for Fiber.
func (h *DailyLogHandler) AdjustFiber(c *fiber.Ctx) error {
	l, err := h.adjust(c.UserContext(), c.Params("date"), c.Params("counter"), c.Query("delta"))
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(l)
}

// AdjustGin changes a counter for Gin.
func (h *DailyLogHandler) AdjustGin(c *gin.Context) {
	l, err := h.adjust(c.Request.Context(), c.Param("date"), c.Param("counter"), c.Query("delta"))
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// @Summary Add a meal
// @Tags DailyLogs
// @Accept json
// @Produce json
// @Param date path string true "YYYY-MM-DD"
// @Param meal body model.Meal true "Meal"
// @Success 200 {object} model.DailyLog
// @Failure 400 {object} ErrorResponse
// @Router /daily-logs/{date}/meals [post]
// AddMealFiber appends a meal for Fiber.
func (h *DailyLogHandler) AddMealFiber(c *fiber.Ctx) error {
	l, err := h.addMeal(c.UserContext(), c.Params("date"), c.Body())
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(l)
}

// AddMealGin appends a meal for Gin.
func (h *DailyLogHandler) AddMealGin(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		ginError(c, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	l, err := h.addMeal(c.Request.Context(), c.Param("date"), body)
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}
