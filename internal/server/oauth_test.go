package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/halcyonlabs/moodsync/internal/shared"
	"golang.org/x/oauth2"
)

func newTestConfig(tokenURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		Endpoint: oauth2.Endpoint{
			AuthURL:  tokenURL + "/authorize",
			TokenURL: tokenURL + "/token",
		},
		RedirectURL: "http://127.0.0.1:3000/callback",
	}
}

func TestOAuthHandler_Callback(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok123","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenServer.Close()

	handler := NewOAuthHandler(newTestConfig(tokenServer.URL), "state123")

	req := httptest.NewRequest(http.MethodGet, "/callback?state=state123&code=auth-code", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	result := <-handler.Result()
	if result.Error() != nil {
		t.Fatalf("unexpected error: %v", result.Error())
	}
	if result.Token == nil || result.Token.AccessToken != "tok123" {
		t.Errorf("unexpected token: %+v", result.Token)
	}
}

func TestOAuthHandler_InvalidState(t *testing.T) {
	handler := NewOAuthHandler(newTestConfig("http://127.0.0.1:0"), "state123")

	req := httptest.NewRequest(http.MethodGet, "/callback?state=wrong&code=auth-code", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	result := <-handler.Result()
	if !errors.Is(result.Error(), shared.ErrAuthFailed) {
		t.Errorf("expected ErrAuthFailed, got %v", result.Error())
	}
}

func TestOAuthHandler_DeniedConsent(t *testing.T) {
	handler := NewOAuthHandler(newTestConfig("http://127.0.0.1:0"), "state123")

	req := httptest.NewRequest(http.MethodGet, "/callback?state=state123&error=access_denied&error_description=User+denied", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	result := <-handler.Result()
	if !errors.Is(result.Error(), shared.ErrAuthFailed) {
		t.Errorf("expected ErrAuthFailed, got %v", result.Error())
	}
}

func TestOAuthHandler_SecondCallbackRejected(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok123","token_type":"Bearer"}`))
	}))
	defer tokenServer.Close()

	handler := NewOAuthHandler(newTestConfig(tokenServer.URL), "state123")

	first := httptest.NewRequest(http.MethodGet, "/callback?state=state123&code=auth-code", nil)
	handler.ServeHTTP(httptest.NewRecorder(), first)

	second := httptest.NewRequest(http.MethodGet, "/callback?state=state123&code=auth-code", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, second)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("replayed callback should be rejected, got %d", rec.Code)
	}
}

func TestBasicRouter_MethodFiltering(t *testing.T) {
	router := NewBasicRouter()
	router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /ping = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /ping = %d, want 405", rec.Code)
	}
}

func TestBasicRouter_MiddlewareOrder(t *testing.T) {
	router := NewBasicRouter()

	var order []string
	mk := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	router.Use(mk("outer"), mk("inner"))
	router.Handle(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("middleware order = %v, want [outer inner]", order)
	}
}
