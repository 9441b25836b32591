package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/aebalz/ubermensch-tracker/internal/store"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	Store store.Store
	Now   func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{Store: s, Now: time.Now}
}

// HealthCheckResponse defines the structure for the health check response.
type HealthCheckResponse struct {
	ServerStatus string `json:"server_status"`
	StoreStatus  string `json:"store_status"`
	Timestamp    string `json:"timestamp"`
}

func (h *HealthHandler) check(ctx context.Context) (int, HealthCheckResponse) {
	response := HealthCheckResponse{
		ServerStatus: "OK",
		Timestamp:    h.Now().UTC().Format(time.RFC3339),
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		response.StoreStatus = "Error: " + err.Error()
		return http.StatusServiceUnavailable, response
	}
	response.StoreStatus = "OK"
	return http.StatusOK, response
}

// @Summary API Health Check
// @Description Check the health of the API and the backing store.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthCheckResponse "Successfully checked health"
// @Failure 503 {object} HealthCheckResponse "Service unavailable if the store ping fails"
// @Router /health [get]
// CheckHealthFiber is the health check endpoint handler for Fiber.
func (h *HealthHandler) CheckHealthFiber(c *fiber.Ctx) error {
	status, response := h.check(c.UserContext())
	return c.Status(status).JSON(response)
}

// CheckHealthGin is the health check endpoint handler for Gin.
func (h *HealthHandler) CheckHealthGin(c *gin.Context) {
	status, response := h.check(c.Request.Context())
	c.JSON(status, response)
}
