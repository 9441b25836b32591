package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/service"
)

// NoteRequest is the body of POST /notes.
type NoteRequest struct {
	Content  string     `json:"content"`
	RemindAt *time.Time `json:"remindAt,omitempty"`
}

// NoteHandler serves the notes journal.
type NoteHandler struct {
	*TrackerHandler[model.Note, *model.Note]
	Notes *service.Notes
}

func NewNoteHandler(svc *service.Notes) *NoteHandler {
	return &NoteHandler{TrackerHandler: NewTrackerHandler(svc.Tracker), Notes: svc}
}

func (h *NoteHandler) add(ctx context.Context, body []byte) (model.Note, error) {
	var req NoteRequest
	if err := decodeBody(body, &req); err != nil {
		return model.Note{}, err
	}
	return h.Notes.Add(ctx, req.Content, req.RemindAt)
}

func (h *NoteHandler) exportText(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := h.Notes.ExportText(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const notesFilename = `attachment; filename="notes.txt"`

// @Summary Add a note
// @Description Notes are listed newest first. remindAt schedules a one-off reminder.
// @Tags Notes
// @Accept json
// @Produce json
// @Param note body NoteRequest true "Note"
// @Success 201 {object} model.Note
// @Failure 400 {object} ErrorResponse
// @Router /notes [post]
// AddFiber stores a note for Fiber.
func (h *NoteHandler) AddFiber(c *fiber.Ctx) error {
	note, err := h.add(c.UserContext(), c.Body())
	if err != nil {
		return fiberError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

// AddGin stores a note for Gin.
func (h *NoteHandler) AddGin(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		ginError(c, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	note, err := h.add(c.Request.Context(), body)
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// @Summary Export notes as text
// @Tags Notes
// @Produce plain
// @Success 200 {string} string
// @Router /notes/export [get]
// ExportTextFiber downloads every note as plain text for Fiber.
func (h *NoteHandler) ExportTextFiber(c *fiber.Ctx) error {
	data, err := h.exportText(c.UserContext())
	if err != nil {
		return fiberError(err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, notesFilename)
	return c.Send(data)
}

// ExportTextGin downloads every note as plain text for Gin.
func (h *NoteHandler) ExportTextGin(c *gin.Context) {
	data, err := h.exportText(c.Request.Context())
	if err != nil {
		ginError(c, err)
		return
	}
	c.Header("Content-Disposition", notesFilename)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", data)
}
