package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHeaderTokenAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Consul-Token"); got != "secret" {
			t.Errorf("expected X-Consul-Token=secret, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, err := New(Config{
		BaseURL: srv.URL,
		Auth:    HeaderTokenAuth("X-Consul-Token", "secret"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHeaderTokenAuth_DefaultHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "tok" {
			t.Errorf("expected Authorization=tok, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL, Auth: &AuthConfig{Type: AuthHeaderToken, Token: "tok"}})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBearerAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("expected Bearer abc, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL, Auth: BearerAuth("abc")})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCustomAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Signed"); got != "yes" {
			t.Errorf("expected X-Signed=yes, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, _ := New(Config{
		BaseURL: srv.URL,
		Auth: CustomAuth(func(req *http.Request) {
			req.Header.Set("X-Signed", "yes")
		}),
	})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequestAuthOverridesClientAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Consul-Token"); got != "request-token" {
			t.Errorf("expected request-token, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, _ := New(Config{
		BaseURL: srv.URL,
		Auth:    HeaderTokenAuth("X-Consul-Token", "client-token"),
	})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/",
		Auth:   HeaderTokenAuth("X-Consul-Token", "request-token"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNilAuth_NoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Consul-Token"); got != "" {
			t.Errorf("expected no token header, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
