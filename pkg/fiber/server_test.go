package fiber_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/aebalz/ubermensch-tracker/internal/assistant"
	"github.com/aebalz/ubermensch-tracker/internal/config"
	"github.com/aebalz/ubermensch-tracker/internal/handler"
	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/repository"
	"github.com/aebalz/ubermensch-tracker/internal/service"
	"github.com/aebalz/ubermensch-tracker/internal/store/storetest"
	fiberserver "github.com/aebalz/ubermensch-tracker/pkg/fiber"
)

var now = time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	s := storetest.New(t)
	clock := func() time.Time { return now }
	svc := service.New(repository.NewSet(s, clock), service.Options{Now: clock, Location: time.UTC})
	log := zerolog.New(io.Discard)
	ai := assistant.NewService(assistant.Config{VoiceURL: "https://voice.example"}, assistant.NewClient("http://127.0.0.1:1", "", ""), svc, log)
	cfg := &config.AppConfig{AppName: "test", CorsAllowedOrigins: []string{"*"}}
	return fiberserver.NewFiberServer(cfg, handler.New(s, svc, ai, log), log, nil)
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return v
}

func TestHealth(t *testing.T) {
	app := newApp(t)
	resp, data := do(t, app, http.MethodGet, "/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, data)
	}
	if got := decode[handler.HealthCheckResponse](t, data); got.StoreStatus != "OK" {
		t.Errorf("store status = %q", got.StoreStatus)
	}
}

func TestSupplementLifecycle(t *testing.T) {
	app := newApp(t)

	resp, data := do(t, app, http.MethodPost, "/api/v1/supplements", `{"name":"Creatine","currentStock":3,"lowStockThreshold":2}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", resp.StatusCode, data)
	}
	created := decode[model.Supplement](t, data)
	if created.ID == "" || created.Timing != model.TimingBoth {
		t.Fatalf("created = %+v", created)
	}
	item := "/api/v1/supplements/" + created.ID

	resp, data = do(t, app, http.MethodPost, item+"/stock?delta=-2", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stock status = %d, body %s", resp.StatusCode, data)
	}
	if got := model.IntValue(decode[model.Supplement](t, data).CurrentStock); got != 1 {
		t.Errorf("stock = %d, want 1", got)
	}

	_, data = do(t, app, http.MethodGet, "/api/v1/supplements/low-stock", "")
	if low := decode[[]model.Supplement](t, data); len(low) != 1 {
		t.Errorf("low stock = %d items, want 1", len(low))
	}

	resp, _ = do(t, app, http.MethodPost, item+"/stock?delta=lots", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad delta status = %d, want 400", resp.StatusCode)
	}

	_, data = do(t, app, http.MethodPost, item+"/taken", "")
	if !decode[model.Supplement](t, data).TakenToday {
		t.Error("taken flag not toggled")
	}

	resp, data = do(t, app, http.MethodPut, item, `{"id":"other","name":"Creatine HCl","timing":"AM"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, body %s", resp.StatusCode, data)
	}
	if got := decode[model.Supplement](t, data); got.ID != created.ID || got.Name != "Creatine HCl" {
		t.Errorf("updated = %+v", got)
	}

	resp, data = do(t, app, http.MethodPut, item, `{"name":"","timing":"AM"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid update status = %d, body %s", resp.StatusCode, data)
	}

	resp, _ = do(t, app, http.MethodDelete, item, "")
	if resp.StatusCode != http.StatusPreconditionRequired {
		t.Errorf("unconfirmed delete status = %d, want 428", resp.StatusCode)
	}
	resp, _ = do(t, app, http.MethodDelete, item+"?confirm=true", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", resp.StatusCode)
	}

	resp, data = do(t, app, http.MethodGet, item, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", resp.StatusCode)
	}
	if e := decode[handler.ErrorResponse](t, data); !e.Error || e.Message == "" {
		t.Errorf("error body = %s", data)
	}
}

func TestImportExportAndTable(t *testing.T) {
	app := newApp(t)
	csv := "Name,Purpose,Category,Notes,Timing\nZinc,Immunity,Mineral,,pm\nMagnesium,Sleep,Mineral,,AM\n"

	resp, data := do(t, app, http.MethodPost, "/api/v1/supplements/import", csv)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("import status = %d, body %s", resp.StatusCode, data)
	}
	if got := decode[handler.ImportResult](t, data); got.Imported != 2 {
		t.Errorf("imported = %d, want 2", got.Imported)
	}

	resp, _ = do(t, app, http.MethodPost, "/api/v1/supplements/import", "Name,Purpose,Category,Notes,Timing\nIron,Blood,Mineral,,NOON\n")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad import status = %d, want 400", resp.StatusCode)
	}

	resp, data = do(t, app, http.MethodGet, "/api/v1/supplements/export", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export status = %d", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "supplements.csv") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.HasPrefix(string(data), "Name,Purpose") || !strings.Contains(string(data), `"Zinc"`) {
		t.Errorf("export body = %q", data)
	}

	_, data = do(t, app, http.MethodGet, "/api/v1/supplements?sort=name", "")
	list := decode[[]model.Supplement](t, data)
	if len(list) != 2 || list[0].Name != "Magnesium" {
		t.Errorf("sorted list = %+v", list)
	}

	_, data = do(t, app, http.MethodGet, "/api/v1/supplements/table?sort=name&clicks=2", "")
	view := decode[map[string]any](t, data)
	rows, _ := view["rows"].([]any)
	if len(rows) != 2 || rows[0].([]any)[0] != "Zinc" {
		t.Errorf("descending table rows = %v", view["rows"])
	}

	resp, _ = do(t, app, http.MethodGet, "/api/v1/supplements?sort=bogus", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown sort status = %d, want 400", resp.StatusCode)
	}
}

func TestDailyLogs(t *testing.T) {
	app := newApp(t)

	_, data := do(t, app, http.MethodGet, "/api/v1/daily-logs/today", "")
	if got := decode[model.DailyLog](t, data); got.Date != "2026-03-10" || got.ID != "" {
		t.Errorf("today = %+v, want unsaved default", got)
	}

	resp, data := do(t, app, http.MethodPut, "/api/v1/daily-logs/2026-03-10", `{"notes":"slept well"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status = %d, body %s", resp.StatusCode, data)
	}
	first := decode[model.DailyLog](t, data)

	_, data = do(t, app, http.MethodPost, "/api/v1/daily-logs/2026-03-10/hydration?delta=-3", "")
	if got := decode[model.DailyLog](t, data); got.ID != first.ID || model.IntValue(got.Hydration) != 0 {
		t.Errorf("hydration = %+v", got)
	}

	_, data = do(t, app, http.MethodPost, "/api/v1/daily-logs/2026-03-10/meals", `{"description":"Oats"}`)
	if got := decode[model.DailyLog](t, data); len(got.Meals) != 1 || got.Meals[0].Time != "09:15" {
		t.Errorf("meals = %+v", got.Meals)
	}

	resp, _ = do(t, app, http.MethodPost, "/api/v1/daily-logs/2026-03-10/steps?delta=1", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown counter status = %d", resp.StatusCode)
	}
	resp, _ = do(t, app, http.MethodGet, "/api/v1/daily-logs/2026-03-11", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing day status = %d", resp.StatusCode)
	}
	_, data = do(t, app, http.MethodGet, "/api/v1/daily-logs", "")
	if logs := decode[[]model.DailyLog](t, data); len(logs) != 1 {
		t.Errorf("logs = %d, want 1", len(logs))
	}
}

func TestNotesAndReset(t *testing.T) {
	app := newApp(t)

	resp, data := do(t, app, http.MethodPost, "/api/v1/notes", `{"content":"  stretch more  "}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add status = %d, body %s", resp.StatusCode, data)
	}
	resp, data = do(t, app, http.MethodGet, "/api/v1/notes/export", "")
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(string(data), "[3/10/2026, 9:15:00 AM]\nstretch more\n\n") {
		t.Errorf("export = %d %q", resp.StatusCode, data)
	}
	resp, _ = do(t, app, http.MethodPost, "/api/v1/notes", `{"content":"   "}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty note status = %d", resp.StatusCode)
	}

	resp, _ = do(t, app, http.MethodPost, "/api/v1/reset", "")
	if resp.StatusCode != http.StatusPreconditionRequired {
		t.Errorf("unconfirmed reset status = %d", resp.StatusCode)
	}
	resp, _ = do(t, app, http.MethodPost, "/api/v1/reset?confirm=true", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("reset status = %d", resp.StatusCode)
	}

	_, data = do(t, app, http.MethodGet, "/api/v1/export", "")
	snap := decode[service.Snapshot](t, data)
	if len(snap.Supplements) != 0 || len(snap.DailyLogs) != 0 {
		t.Errorf("snapshot after reset = %+v", snap)
	}
}

func TestAssistantEndpoints(t *testing.T) {
	app := newApp(t)

	resp, _ := do(t, app, http.MethodPost, "/api/v1/assistant/messages", `{"message":"  "}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty message status = %d", resp.StatusCode)
	}
	resp, _ = do(t, app, http.MethodPost, "/api/v1/assistant/messages", `{"message":"hi","assistantRole":"Butler"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown role status = %d", resp.StatusCode)
	}

	resp, data := do(t, app, http.MethodPost, "/api/v1/assistant/messages", `{"message":"How am I doing?"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ask status = %d, body %s", resp.StatusCode, data)
	}
	reply := decode[assistant.Reply](t, data)
	if !reply.Fallback || reply.Message.Content != assistant.FallbackReply {
		t.Errorf("reply = %+v, want fallback", reply)
	}

	resp, data = do(t, app, http.MethodGet, "/api/v1/assistant/conversations/"+reply.ConversationID, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("conversation status = %d", resp.StatusCode)
	}
	if conv := decode[assistant.Conversation](t, data); len(conv.Messages) < 2 {
		t.Errorf("conversation messages = %d", len(conv.Messages))
	}
	resp, _ = do(t, app, http.MethodGet, "/api/v1/assistant/conversations/nope", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown conversation status = %d", resp.StatusCode)
	}

	_, data = do(t, app, http.MethodGet, "/api/v1/assistant/voice", "")
	if got := decode[handler.VoiceResponse](t, data); got.URL != "https://voice.example" {
		t.Errorf("voice = %+v", got)
	}
}

func TestPrometheusEndpoint(t *testing.T) {
	app := newApp(t)
	do(t, app, http.MethodGet, "/health", "")
	resp, data := do(t, app, http.MethodGet, "/metrics", "")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(data), "http_requests_total") {
		t.Errorf("metrics = %d, contains counter: %v", resp.StatusCode, strings.Contains(string(data), "http_requests_total"))
	}
}
