package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/aebalz/ubermensch-tracker/internal/assistant"
	"github.com/aebalz/ubermensch-tracker/internal/csvio"
	"github.com/aebalz/ubermensch-tracker/internal/service"
)

var (
	// ErrConfirmationRequired is returned by destructive endpoints called without confirm=true.
	ErrConfirmationRequired = errors.New("this action requires confirm=true")
	// ErrBadRequest marks malformed request input.
	ErrBadRequest = errors.New("bad request")
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// StatusFor maps a domain error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, assistant.ErrConversationNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrValidation), errors.Is(err, csvio.ErrImport),
		errors.Is(err, assistant.ErrEmptyMessage), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrConfirmationRequired):
		return http.StatusPreconditionRequired
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// fiberError converts err into a *fiber.Error for the app's error handler.
func fiberError(err error) error {
	status := StatusFor(err)
	return fiber.NewError(status, messageFor(err, status))
}

// ginError writes err as a JSON error reply and aborts the chain.
func ginError(c *gin.Context, err error) {
	status := StatusFor(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: true, Message: messageFor(err, status)})
}
