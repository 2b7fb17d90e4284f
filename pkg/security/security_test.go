package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okRouter(middlewares ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middlewares...)
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return router
}

func TestOriginSet(t *testing.T) {
	set := NewOriginSet([]string{"http://localhost:3000"})

	if !set.Allowed("http://localhost:3000") {
		t.Error("seeded origin should be allowed")
	}
	if set.Allowed("http://evil.example") {
		t.Error("unknown origin should be rejected")
	}

	set.Update([]string{"http://localhost:5173"})
	if set.Allowed("http://localhost:3000") {
		t.Error("origin removed by Update should no longer be allowed")
	}
	if !set.Allowed("http://localhost:5173") {
		t.Error("origin added by Update should be allowed")
	}
}

func TestCORS(t *testing.T) {
	origins := NewOriginSet([]string{"http://localhost:3000"})
	router := okRouter(CORS(origins))

	tests := []struct {
		name            string
		method          string
		origin          string
		wantStatus      int
		wantAllowOrigin string
	}{
		{name: "allowed origin", method: http.MethodGet, origin: "http://localhost:3000", wantStatus: http.StatusOK, wantAllowOrigin: "http://localhost:3000"},
		{name: "denied origin", method: http.MethodGet, origin: "http://evil.example", wantStatus: http.StatusOK, wantAllowOrigin: ""},
		{name: "no origin header", method: http.MethodGet, origin: "", wantStatus: http.StatusOK, wantAllowOrigin: ""},
		{name: "preflight", method: http.MethodOptions, origin: "http://localhost:3000", wantStatus: http.StatusNoContent, wantAllowOrigin: "http://localhost:3000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/ping", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantAllowOrigin)
			}
		})
	}
}

func TestCORSReloadedOrigins(t *testing.T) {
	origins := NewOriginSet(nil)
	router := okRouter(CORS(origins))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatal("origin allowed before it was whitelisted")
	}

	origins.Update([]string{"http://localhost:5173"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Error("origin still rejected after whitelist reload")
	}
}

func TestSecureHeaders(t *testing.T) {
	router := okRouter(Secure())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS set on a plaintext request")
	}
}

func TestRateLimiter(t *testing.T) {
	router := okRouter(RateLimiter(3, time.Minute))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("burst overflow status = %d, want 429", w.Code)
	}
}
