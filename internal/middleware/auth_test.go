package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"

	"verdant-agenda/config"
	"verdant-agenda/internal/model"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fakeValidator struct {
	payload *idtoken.Payload
	err     error
	calls   int
}

func (f *fakeValidator) Validate(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func newAuthTestRouter(t *testing.T, mw Middleware) (*gin.Engine, *model.Scope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen model.Scope
	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		sc, _ := ScopeFromContext(c)
		seen = sc
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestAuthDisabledUsesHeader(t *testing.T) {
	mw, err := New(noopLogger{}, config.AuthConfig{Disabled: true}, config.RateLimitConfig{})
	if err != nil {
		t.Fatal(err)
	}
	r, seen := newAuthTestRouter(t, mw)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-User-ID", "dev-user")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if seen.UserID != "dev-user" {
		t.Errorf("expected scope user dev-user, got %q", seen.UserID)
	}
}

func TestAuthDisabledMissingHeader(t *testing.T) {
	mw, err := New(noopLogger{}, config.AuthConfig{Disabled: true}, config.RateLimitConfig{})
	if err != nil {
		t.Fatal(err)
	}
	r, _ := newAuthTestRouter(t, mw)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthValidToken(t *testing.T) {
	validator := &fakeValidator{payload: &idtoken.Payload{
		Subject: "google-uid",
		Expires: time.Now().Add(time.Hour).Unix(),
		Claims:  map[string]interface{}{"email": "user@example.com"},
	}}

	mw, err := New(noopLogger{}, config.AuthConfig{Audience: "aud"}, config.RateLimitConfig{})
	if err != nil {
		t.Fatal(err)
	}
	mw = mw.WithValidator(validator)
	r, seen := newAuthTestRouter(t, mw)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token-abc")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}

	if seen.UserID != "google-uid" || seen.Email != "user@example.com" {
		t.Errorf("unexpected scope %+v", *seen)
	}
	// Second request must come from the token cache.
	if validator.calls != 1 {
		t.Errorf("expected 1 validator call, got %d", validator.calls)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	validator := &fakeValidator{err: errors.New("bad signature")}

	mw, err := New(noopLogger{}, config.AuthConfig{Audience: "aud"}, config.RateLimitConfig{})
	if err != nil {
		t.Fatal(err)
	}
	mw = mw.WithValidator(validator)
	r, _ := newAuthTestRouter(t, mw)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMissingBearer(t *testing.T) {
	mw, err := New(noopLogger{}, config.AuthConfig{Audience: "aud"}, config.RateLimitConfig{})
	if err != nil {
		t.Fatal(err)
	}
	r, _ := newAuthTestRouter(t, mw)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	mw, err := New(noopLogger{},
		config.AuthConfig{Disabled: true},
		config.RateLimitConfig{SuggestionsPerMinute: 1, Burst: 2})
	if err != nil {
		t.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/suggest", mw.Auth(), mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/suggest", nil)
		req.Header.Set("X-User-ID", "u1")
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third request to be limited, got %v", codes)
	}
}

func TestRateLimitIsPerUser(t *testing.T) {
	mw, err := New(noopLogger{},
		config.AuthConfig{Disabled: true},
		config.RateLimitConfig{SuggestionsPerMinute: 1, Burst: 1})
	if err != nil {
		t.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/suggest", mw.Auth(), mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(user string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/suggest", nil)
		req.Header.Set("X-User-ID", user)
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do("alice"); code != http.StatusOK {
		t.Fatalf("alice first request: expected 200, got %d", code)
	}
	if code := do("alice"); code != http.StatusTooManyRequests {
		t.Fatalf("alice second request: expected 429, got %d", code)
	}
	if code := do("bob"); code != http.StatusOK {
		t.Fatalf("bob should have a separate bucket, got %d", code)
	}
}
