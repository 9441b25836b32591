package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/aebalz/ubermensch-tracker/internal/assistant"
)

// AskRequest is the body of POST /assistant/messages. An empty conversationId starts a new conversation.
type AskRequest struct {
	ConversationID string `json:"conversationId"`
	Role           string `json:"assistantRole"`
	Message        string `json:"message"`
}

// VoiceResponse points at the external voice chat.
type VoiceResponse struct {
	URL string `json:"url"`
}

type AssistantHandler struct {
	Assistant *assistant.Service
}

func NewAssistantHandler(svc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{Assistant: svc}
}

func (h *AssistantHandler) ask(ctx context.Context, body []byte) (*assistant.Reply, error) {
	var req AskRequest
	if err := decodeBody(body, &req); err != nil {
		return nil, err
	}
	role, err := assistant.ParseRole(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return h.Assistant.Ask(ctx, req.ConversationID, role, req.Message)
}

// @Summary Ask the assistant
// @Description Sends the message with a snapshot of all tracker data. Update proposals in the reply are listed as directives.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body AskRequest true "Question"
// @Success 200 {object} assistant.Reply
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /assistant/messages [post]
// AskFiber forwards a question for Fiber.
func (h *AssistantHandler) AskFiber(c *fiber.Ctx) error {
	reply, err := h.ask(c.UserContext(), c.Body())
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(reply)
}

// AskGin forwards a question for Gin.
func (h *AssistantHandler) AskGin(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		ginError(c, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	reply, err := h.ask(c.Request.Context(), body)
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// @Summary Conversation history
// @Tags Assistant
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} assistant.Conversation
// @Failure 404 {object} ErrorResponse
// @Router /assistant/conversations/{id} [get]
// ConversationFiber returns a conversation for Fiber.
func (h *AssistantHandler) ConversationFiber(c *fiber.Ctx) error {
	conv, err := h.Assistant.Conversation(c.Params("id"))
	if err != nil {
		return fiberError(err)
	}
	return c.JSON(conv)
}

// ConversationGin returns a conversation for Gin.
func (h *AssistantHandler) ConversationGin(c *gin.Context) {
	conv, err := h.Assistant.Conversation(c.Param("id"))
	if err != nil {
		ginError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// VoiceFiber returns the voice chat link for Fiber.
func (h *AssistantHandler) VoiceFiber(c *fiber.Ctx) error {
	return c.JSON(VoiceResponse{URL: h.Assistant.VoiceURL()})
}

// VoiceGin returns the voice chat link for Gin.
func (h *AssistantHandler) VoiceGin(c *gin.Context) {
	c.JSON(http.StatusOK, VoiceResponse{URL: h.Assistant.VoiceURL()})
}
