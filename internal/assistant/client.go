package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotConfigured is returned when no API key or assistant id is configured.
var ErrNotConfigured = errors.New("assistant API is not configured")

// APIError is a non-2xx response from the assistants API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.Status, e.Body)
}

type Thread struct {
	ID string `json:"id"`
}

type TextContent struct {
	Value string `json:"value"`
}

type ContentPart struct {
	Type string       `json:"type"`
	Text *TextContent `json:"text,omitempty"`
}

type ThreadMessage struct {
	ID       string        `json:"id"`
	ThreadID string        `json:"thread_id"`
	Role     string        `json:"role"`
	Content  []ContentPart `json:"content"`
}

// Text joins the text parts of the message.
func (m *ThreadMessage) Text() string {
	var parts []string
	for _, c := range m.Content {
		if c.Text != nil {
			parts = append(parts, c.Text.Value)
		}
	}
	return strings.Join(parts, "\n")
}

type RunError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Run struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"thread_id"`
	Status    string    `json:"status"`
	LastError *RunError `json:"last_error,omitempty"`
}

// Client talks to a hosted assistants API (threads, messages and runs).
type Client struct {
	BaseURL     string
	APIKey      string
	AssistantID string
	HTTPClient  *http.Client
}

func NewClient(baseURL, apiKey, assistantID string) *Client {
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		APIKey:      apiKey,
		AssistantID: assistantID,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c.APIKey == "" || c.AssistantID == "" {
		return ErrNotConfigured
	}

	var body io.Reader
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("OpenAI-Beta", "assistants=v2")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Body: string(raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *Client) CreateThread(ctx context.Context) (*Thread, error) {
	var t Thread
	if err := c.do(ctx, http.MethodPost, "/threads", struct{}{}, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// AddMessage posts a user message to the thread.
func (c *Client) AddMessage(ctx context.Context, threadID, content string) (*ThreadMessage, error) {
	var m ThreadMessage
	req := map[string]string{"role": "user", "content": content}
	if err := c.do(ctx, http.MethodPost, "/threads/"+url.PathEscape(threadID)+"/messages", req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateRun starts the configured assistant on the thread. instructions are appended to the assistant's own.
func (c *Client) CreateRun(ctx context.Context, threadID, instructions string) (*Run, error) {
	var r Run
	req := map[string]string{"assistant_id": c.AssistantID}
	if instructions != "" {
		req["additional_instructions"] = instructions
	}
	if err := c.do(ctx, http.MethodPost, "/threads/"+url.PathEscape(threadID)+"/runs", req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) GetRun(ctx context.Context, threadID, runID string) (*Run, error) {
	var r Run
	path := "/threads/" + url.PathEscape(threadID) + "/runs/" + url.PathEscape(runID)
	if err := c.do(ctx, http.MethodGet, path, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListMessages returns up to limit messages of the thread, newest first.
func (c *Client) ListMessages(ctx context.Context, threadID string, limit int) ([]ThreadMessage, error) {
	var page struct {
		Data []ThreadMessage `json:"data"`
	}
	q := url.Values{"order": {"desc"}}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	path := "/threads/" + url.PathEscape(threadID) + "/messages?" + q.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}
