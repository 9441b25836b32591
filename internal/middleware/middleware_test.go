package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		route, path, want string
	}{
		{"/api/v1/supplements/:id", "/api/v1/supplements/0190", "/api/v1/supplements/:id"},
		{"", "/wp-admin.php", unmatchedPath},
		{"/*", "/nope", unmatchedPath},
		{"/", "/", "/"},
	}
	for _, tc := range cases {
		if got := normalizePath(tc.route, tc.path); got != tc.want {
			t.Errorf("normalizePath(%q, %q) = %q, want %q", tc.route, tc.path, got, tc.want)
		}
	}
}

func TestRateLimiterFiber(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2)
	app := fiber.New()
	app.Use(limiter.Fiber())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	for i, want := range []int{200, 200, 429} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != want {
			t.Fatalf("request %d: status %d, want %d", i, resp.StatusCode, want)
		}
		if want == 429 && resp.Header.Get("Retry-After") == "" {
			t.Error("missing Retry-After")
		}
	}
}

func TestRateLimiterSweep(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 1)
	limiter.now = func() time.Time { return now }

	limiter.Allow("10.0.0.1")
	now = now.Add(time.Minute)
	limiter.Allow("10.0.0.2")
	now = now.Add(visitorTTL)

	if got := limiter.Sweep(); got != 1 {
		t.Fatalf("Sweep() dropped %d, want 1", got)
	}
	if _, ok := limiter.clients["10.0.0.2"]; !ok {
		t.Error("recent client was dropped")
	}
}

func TestGinRequestIDAndRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinRequestID(), GinRecovery(zerolog.New(io.Discard)), GinLogger(zerolog.New(io.Discard)))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	r.GET("/id", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(w, req)
	if w.Body.String() != "abc" || w.Header().Get(RequestIDHeader) != "abc" {
		t.Fatalf("incoming request id not reused: body %q header %q", w.Body.String(), w.Header().Get(RequestIDHeader))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("panic status = %d, want 500", w.Code)
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("generated request id missing")
	}
}

func TestFiberRecoverAndRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(FiberRecover(zerolog.New(io.Discard)), FiberRequestID(), FiberLogger(zerolog.New(io.Discard)))
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("panic status = %d, want 500", resp.StatusCode)
	}
}
