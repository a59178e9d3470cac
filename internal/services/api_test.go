package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAPIService(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/health" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			io.WriteString(w, `{"status": "ok"}`)
		}))
		defer srv.Close()

		api := NewAPIService(srv.URL, nil)
		resp, err := api.Get(context.Background(), "/health")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}

		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
		if !resp.IsJSON {
			t.Error("response should be detected as JSON")
		}

		data, ok := resp.JSONData.(map[string]any)
		if !ok || data["status"] != "ok" {
			t.Errorf("unexpected JSON data: %v", resp.JSONData)
		}
	})

	t.Run("Post", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Content-Type") != "application/json" {
				t.Errorf("expected JSON content type, got %s", r.Header.Get("Content-Type"))
			}
			body, _ := io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
			w.Write(body)
		}))
		defer srv.Close()

		api := NewAPIService(srv.URL, nil)
		resp, err := api.Post(context.Background(), "/echo", []byte(`{"phone": "1555"}`))
		if err != nil {
			t.Fatalf("post failed: %v", err)
		}

		if resp.StatusCode != http.StatusCreated {
			t.Errorf("expected 201, got %d", resp.StatusCode)
		}
		if string(resp.Body) != `{"phone": "1555"}` {
			t.Errorf("unexpected echo body: %s", resp.Body)
		}
	})

	t.Run("PostJSON", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			w.Write(body)
		}))
		defer srv.Close()

		api := NewAPIService(srv.URL, nil)
		resp, err := api.PostJSON(context.Background(), "/echo", map[string]string{"user": "ada"})
		if err != nil {
			t.Fatalf("post json failed: %v", err)
		}
		if !resp.IsJSON {
			t.Error("echoed payload should be JSON")
		}
	})

	t.Run("non-JSON body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, "plain text")
		}))
		defer srv.Close()

		api := NewAPIService(srv.URL, nil)
		resp, err := api.Get(context.Background(), "/")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if resp.IsJSON {
			t.Error("plain text should not be flagged as JSON")
		}
	})
}
