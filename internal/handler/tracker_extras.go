package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/service"
)

// SupplementHandler adds the check-off and stock endpoints to the supplement CRUD.
type SupplementHandler struct {
	*TrackerHandler[model.Supplement, *model.Supplement]
	Supplements *service.Supplements
}

func NewSupplementHandler(svc *service.Supplements) *SupplementHandler {
	return &SupplementHandler{TrackerHandler: NewTrackerHandler(svc.Tracker), Supplements: svc}
}

// @Summary Toggle taken today
// @Tags Supplements
// @Produce json
// @Param id path string true "Supplement ID"
// @Success 200 {object} model.Supplement
// @Failure 404 {object} ErrorResponse
// @Router /supplements/{id}/taken [post]
// ToggleTakenFiber flips the taken-today flag for Fiber.
func (h *SupplementHandler) ToggleTakenFiber(c *fiber.Ctx) error {
	item, err := h.Supplements.ToggleTaken(c.UserContext(), c.Params("id"))
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(item)
}

// ToggleTakenGin flips the taken-today flag for Gin.
func (h *SupplementHandler) ToggleTakenGin(c *gin.Context) {
	item, err := h.Supplements.ToggleTaken(c.Request.Context(), c.Param("id"))
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Adjust stock
// @Description Adds delta to the current stock. Stock never goes below zero.
// @Tags Supplements
// @Produce json
// @Param id path string true "Supplement ID"
// @Param delta query int true "Units to add (negative to remove)"
// @Success 200 {object} model.Supplement
// @Failure 400 {object} ErrorResponse
// @Router /supplements/{id}/stock [post]
// AdjustStockFiber changes the stock count for Fiber.
func (h *SupplementHandler) AdjustStockFiber(c *fiber.Ctx) error {
	delta, err := parseDelta(c.Query("delta"))
	if err != nil {
		return fiberError(err)
	}
	item, err := h.Supplements.AdjustStock(c.UserContext(), c.Params("id"), delta)
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(item)
}

// AdjustStockGin changes the stock count for Gin.
func (h *SupplementHandler) AdjustStockGin(c *gin.Context) {
	delta, err := parseDelta(c.Query("delta"))
	if err != nil {
		ginError(c, err)
		return
	}
	item, err := h.Supplements.AdjustStock(c.Request.Context(), c.Param("id"), delta)
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Supplements running low
// @Tags Supplements
// @Produce json
// @Success 200 {array} model.Supplement
// @Router /supplements/low-stock [get]
// LowStockFiber lists supplements at or below their threshold for Fiber.
func (h *SupplementHandler) LowStockFiber(c *fiber.Ctx) error {
	items, err := h.Supplements.LowStock(c.UserContext())
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(items)
}

// LowStockGin lists supplements at or below their threshold for Gin.
func (h *SupplementHandler) LowStockGin(c *gin.Context) {
	items, err := h.Supplements.LowStock(c.Request.Context())
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// FoodHandler adds the stock endpoints to the food inventory CRUD.
type FoodHandler struct {
	*TrackerHandler[model.FoodItem, *model.FoodItem]
	Food *service.Food
}

func NewFoodHandler(svc *service.Food) *FoodHandler {
	return &FoodHandler{TrackerHandler: NewTrackerHandler(svc.Tracker), Food: svc}
}

// @Summary Adjust food stock
// @Tags Food
// @Produce json
// @Param id path string true "Food item ID"
// @Param delta query int true "Units to add (negative to remove)"
// @Success 200 {object} model.FoodItem
// @Router /food/{id}/stock [post]
// AdjustStockFiber changes the stock count for Fiber.
func (h *FoodHandler) AdjustStockFiber(c *fiber.Ctx) error {
	delta, err := parseDelta(c.Query("delta"))
	if err != nil {
		return fiberError(err)
	}
	item, err := h.Food.AdjustStock(c.UserContext(), c.Params("id"), delta)
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(item)
}

// AdjustStockGin changes the stock count for Gin.
func (h *FoodHandler) AdjustStockGin(c *gin.Context) {
	delta, err := parseDelta(c.Query("delta"))
	if err != nil {
		ginError(c, err)
		return
	}
	item, err := h.Food.AdjustStock(c.Request.Context(), c.Param("id"), delta)
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// LowStockFiber lists food items at or below their threshold for Fiber.
func (h *FoodHandler) LowStockFiber(c *fiber.Ctx) error {
	items, err := h.Food.LowStock(c.UserContext())
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(items)
}

// LowStockGin lists food items at or below their threshold for Gin.
func (h *FoodHandler) LowStockGin(c *gin.Context) {
	items, err := h.Food.LowStock(c.Request.Context())
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type RecipeHandler struct {
	*TrackerHandler[model.Recipe, *model.Recipe]
	Recipes *service.Recipes
}

func NewRecipeHandler(svc *service.Recipes) *RecipeHandler {
	return &RecipeHandler{TrackerHandler: NewTrackerHandler(svc.Tracker), Recipes: svc}
}

// @Summary Toggle a recipe tag
// @Description Only tags from the recipe tag catalogue are accepted.
// @Tags Recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Param tag path string true "Tag"
// @Success 200 {object} model.Recipe
// @Failure 400 {object} ErrorResponse
// @Router /recipes/{id}/tags/{tag} [post]
// ToggleTagFiber adds or removes a tag for Fiber.
func (h *RecipeHandler) ToggleTagFiber(c *fiber.Ctx) error {
	item, err := h.Recipes.ToggleTag(c.UserContext(), c.Params("id"), c.Params("tag"))
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(item)
}

// ToggleTagGin adds or removes a tag for Gin.
func (h *RecipeHandler) ToggleTagGin(c *gin.Context) {
	item, err := h.Recipes.ToggleTag(c.Request.Context(), c.Param("id"), c.Param("tag"))
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type MetricHandler struct {
	*TrackerHandler[model.HealthMetric, *model.HealthMetric]
	Metrics *service.Metrics
}

func NewMetricHandler(svc *service.Metrics) *MetricHandler {
	return &MetricHandler{TrackerHandler: NewTrackerHandler(svc.Tracker), Metrics: svc}
}

// @Summary Metric progress
// @Description Value relative to target in percent. Non-numeric values give 0.
// @Tags Metrics
// @Produce json
// @Param id path string true "Metric ID"
// @Success 200 {object} service.Progress
// @Failure 404 {object} ErrorResponse
// @Router /metrics/{id}/progress [get]
// ProgressFiber reports progress toward the target for Fiber.
func (h *MetricHandler) ProgressFiber(c *fiber.Ctx) error {
	p, err := h.Metrics.Progress(c.UserContext(), c.Params("id"))
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(p)
}

// ProgressGin reports progress toward the target for Gin.
func (h *MetricHandler) ProgressGin(c *gin.Context) {
	p, err := h.Metrics.Progress(c.Request.Context(), c.Param("id"))
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type WorkoutHandler struct {
	*TrackerHandler[model.WorkoutPlan, *model.WorkoutPlan]
	Workouts *service.Workouts
}

func NewWorkoutHandler(svc *service.Workouts) *WorkoutHandler {
	return &WorkoutHandler{TrackerHandler: NewTrackerHandler(svc.Tracker), Workouts: svc}
}

// @Summary Toggle workout completion
// @Tags Workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} model.WorkoutPlan
// @Router /workouts/{id}/completed [post]
// ToggleCompletedFiber flips the completed flag for Fiber.
func (h *WorkoutHandler) ToggleCompletedFiber(c *fiber.Ctx) error {
	item, err := h.Workouts.ToggleCompleted(c.UserContext(), c.Params("id"))
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(item)
}

// ToggleCompletedGin flips the completed flag for Gin.
func (h *WorkoutHandler) ToggleCompletedGin(c *gin.Context) {
	item, err := h.Workouts.ToggleCompleted(c.Request.Context(), c.Param("id"))
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
