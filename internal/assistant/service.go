// Package assistant wraps a hosted conversational assistant: every question is sent with a
// snapshot of the tracked data and replies may carry data directives.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/service"
)

var (
	// ErrRunFailed is returned when a run ends failed, cancelled, expired or needing tool output.
	ErrRunFailed = errors.New("assistant run did not complete")
	// ErrRunTimeout is returned when a run is still pending after the poll timeout.
	ErrRunTimeout = errors.New("assistant run timed out")
	// ErrConversationNotFound is returned for unknown conversation ids.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrEmptyMessage is returned when the question is blank.
	ErrEmptyMessage = errors.New("message is empty")

	errRunPending = errors.New("run pending")
)

// FallbackReply is the answer shown when the assistant could not be reached.
const FallbackReply = "I apologize, but I encountered an error. Please try again later."

// Greeting opens every conversation.
const Greeting = "Hello! I'm your health assistant. I can help you track and analyze your health data. Try asking me about your records or to update them."

type Role string

const (
	RoleHealthAdvisor      Role = "Health Advisor"
	RoleFitnessTrainer     Role = "Fitness Trainer"
	RoleNutritionAssistant Role = "Nutrition Assistant"
)

var Roles = []Role{RoleHealthAdvisor, RoleFitnessTrainer, RoleNutritionAssistant}

// ParseRole accepts a role name case-insensitively. An empty name is the health advisor.
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RoleHealthAdvisor, nil
	}
	for _, r := range Roles {
		if strings.EqualFold(string(r), s) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown assistant role %q", s)
}

type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type Conversation struct {
	ID       string    `json:"id"`
	Role     Role      `json:"assistantRole"`
	Messages []Message `json:"messages"`
}

// Reply is the outcome of one question.
type Reply struct {
	ConversationID string      `json:"conversationId"`
	Message        Message     `json:"message"`
	Directives     []Directive `json:"directives,omitempty"`
	// DirectiveError describes a directive that could not be parsed.
	DirectiveError string `json:"directiveError,omitempty"`
	// Fallback is set when the canned error reply was returned.
	Fallback bool `json:"fallback,omitempty"`
}

type Config struct {
	ApplyDirectives bool
	PollInitial     time.Duration
	PollMaxInterval time.Duration
	PollTimeout     time.Duration
	VoiceURL        string
}

type Service struct {
	Client *Client
	Data   *service.Services
	Log    zerolog.Logger
	Now    func() time.Time

	cfg           Config
	mu            sync.Mutex
	conversations map[string]*Conversation
}

func NewService(cfg Config, client *Client, data *service.Services, log zerolog.Logger) *Service {
	if cfg.PollInitial <= 0 {
		cfg.PollInitial = time.Second
	}
	if cfg.PollMaxInterval <= 0 {
		cfg.PollMaxInterval = 10 * time.Second
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 2 * time.Minute
	}
	return &Service{
		Client:        client,
		Data:          data,
		Log:           log,
		Now:           time.Now,
		cfg:           cfg,
		conversations: make(map[string]*Conversation),
	}
}

// VoiceURL is the external voice chat address.
func (s *Service) VoiceURL() string {
	return s.cfg.VoiceURL
}

// Conversation returns a copy of the conversation with id.
func (s *Service) Conversation(id string) (Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[id]
	if !ok {
		return Conversation{}, fmt.Errorf("%w: %q", ErrConversationNotFound, id)
	}
	out := *c
	out.Messages = append([]Message(nil), c.Messages...)
	return out, nil
}

// conversation returns the conversation with id, starting a new one (with the greeting) when id is empty.
func (s *Service) conversation(id string, role Role) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		c := &Conversation{ID: model.NewID(), Role: role}
		c.Messages = append(c.Messages, s.message("assistant", Greeting))
		s.conversations[c.ID] = c
		return c, nil
	}
	c, ok := s.conversations[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConversationNotFound, id)
	}
	c.Role = role
	return c, nil
}

func (s *Service) message(role, content string) Message {
	return Message{ID: model.NewID(), Role: role, Content: content, Timestamp: s.Now()}
}

func (s *Service) record(c *Conversation, m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Messages = append(c.Messages, m)
}

// Ask sends text to the assistant in the given conversation ("" starts a new one).
// Failures talking to the assistant are logged and answered with FallbackReply.
func (s *Service) Ask(ctx context.Context, conversationID string, role Role, text string) (*Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	conv, err := s.conversation(conversationID, role)
	if err != nil {
		return nil, err
	}
	s.record(conv, s.message("user", text))

	reply := &Reply{ConversationID: conv.ID}
	answer, err := s.exchange(ctx, role, text)
	if err != nil {
		s.Log.Error().Err(err).Str("conversation", conv.ID).Msg("error communicating with assistant")
		reply.Message = s.message("assistant", FallbackReply)
		reply.Fallback = true
		s.record(conv, reply.Message)
		return reply, nil
	}

	clean, directives, perr := ParseDirectives(answer)
	if perr != nil {
		s.Log.Warn().Err(perr).Str("conversation", conv.ID).Msg("assistant directive ignored")
		reply.DirectiveError = perr.Error()
	}
	reply.Directives = s.handleDirectives(ctx, directives)
	reply.Message = s.message("assistant", clean)
	s.record(conv, reply.Message)
	return reply, nil
}

func (s *Service) exchange(ctx context.Context, role Role, text string) (string, error) {
	snapshot, err := s.Data.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	thread, err := s.Client.CreateThread(ctx)
	if err != nil {
		return "", fmt.Errorf("create thread: %w", err)
	}
	if _, err := s.Client.AddMessage(ctx, thread.ID, ContextMessage(snapshot, text)); err != nil {
		return "", fmt.Errorf("add message: %w", err)
	}
	run, err := s.Client.CreateRun(ctx, thread.ID, fmt.Sprintf("Act as the user's %s.", role))
	if err != nil {
		return "", fmt.Errorf("create run: %w", err)
	}
	if err := s.wait(ctx, thread.ID, run.ID); err != nil {
		return "", err
	}
	msgs, err := s.Client.ListMessages(ctx, thread.ID, 1)
	if err != nil {
		return "", fmt.Errorf("list messages: %w", err)
	}
	if len(msgs) == 0 || msgs[0].Role != "assistant" {
		return "", errors.New("no assistant message in thread")
	}
	return msgs[0].Text(), nil
}

// wait polls the run with exponential backoff until it reaches a terminal status.
func (s *Service) wait(ctx context.Context, threadID, runID string) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.cfg.PollInitial
	b.MaxInterval = s.cfg.PollMaxInterval
	b.MaxElapsedTime = s.cfg.PollTimeout

	err := backoff.Retry(func() error {
		run, err := s.Client.GetRun(ctx, threadID, runID)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("get run: %w", err))
		}
		switch run.Status {
		case "completed":
			return nil
		case "queued", "in_progress", "cancelling":
			return errRunPending
		default:
			msg := run.Status
			if run.LastError != nil {
				msg += ": " + run.LastError.Message
			}
			return backoff.Permanent(fmt.Errorf("%w: %s", ErrRunFailed, msg))
		}
	}, backoff.WithContext(b, ctx))

	if errors.Is(err, errRunPending) {
		return ErrRunTimeout
	}
	return err
}

// handleDirectives validates every directive and, when enabled, applies it.
func (s *Service) handleDirectives(ctx context.Context, directives []Directive) []Directive {
	for i := range directives {
		d := &directives[i]
		w, err := s.Data.Writer(d.Kind)
		if err != nil {
			d.Error = err.Error()
			continue
		}
		if d.Op == OpAdd {
			if err := w.CheckJSON(d.Payload); err != nil {
				d.Error = err.Error()
				continue
			}
		}
		if !s.cfg.ApplyDirectives {
			continue
		}
		var result any
		switch d.Op {
		case OpUpdate:
			result, err = w.PatchJSON(ctx, d.ID, d.Payload)
		case OpAdd:
			result, err = w.CreateJSON(ctx, d.Payload)
		}
		if err != nil {
			d.Error = err.Error()
			continue
		}
		d.Applied = true
		d.Result = result
		s.Log.Info().Str("op", string(d.Op)).Str("kind", string(d.Kind)).Msg("assistant directive applied")
	}
	return directives
}

// ContextMessage renders the data snapshot followed by the user's message.
func ContextMessage(snap *service.Snapshot, text string) string {
	labels := map[model.Kind]string{
		model.KindDailyLogs:   "Daily Logs",
		model.KindSupplements: "Supplements",
		model.KindEquipment:   "Equipment",
		model.KindRecipes:     "Recipes",
		model.KindFood:        "Food Items",
		model.KindMetrics:     "Health Metrics",
		model.KindWorkouts:    "Workouts",
		model.KindNotes:       "Notes",
	}
	var b strings.Builder
	b.WriteString("Current data state:\n")
	for _, c := range snap.Collections() {
		raw, err := json.Marshal(c.Items)
		if err != nil {
			raw = []byte("[]")
		}
		fmt.Fprintf(&b, "%s: %s\n", labels[c.Kind], raw)
	}
	return fmt.Sprintf("Context: %s\n\nUser message: %s", b.String(), text)
}
