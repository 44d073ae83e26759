package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	c := New(Config{})
	resp, err := c.Get(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Get() status = %d, want 200", resp.StatusCode)
	}
	if string(resp.Body) != "hello" {
		t.Errorf("Get() body = %q, want %q", resp.Body, "hello")
	}
}

func TestGet_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(Config{})
	_, err := c.Get(context.Background(), srv.URL, nil)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Get() error = %v, want *HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("HTTPError.StatusCode = %d, want 404", httpErr.StatusCode)
	}
}

func TestGet_DefaultUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	c := New(Config{})
	if _, err := c.Get(context.Background(), srv.URL, nil); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gotUA != DesktopUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, DesktopUserAgent)
	}
}

func TestPostJSON_HeadersAndBody(t *testing.T) {
	var gotContentType, gotAuth string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
	}))
	defer srv.Close()

	c := New(Config{})
	_, err := c.PostJSON(context.Background(), srv.URL,
		map[string]string{"content": "# hi"},
		map[string]string{"Authorization": "tok123"})
	if err != nil {
		t.Fatalf("PostJSON() error = %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotAuth != "tok123" {
		t.Errorf("Authorization = %q, want tok123", gotAuth)
	}
	if gotBody["content"] != "# hi" {
		t.Errorf("body content = %q, want %q", gotBody["content"], "# hi")
	}
}

func TestGet_ConnectionRefused(t *testing.T) {
	c := New(Config{})
	_, err := c.Get(context.Background(), "http://127.0.0.1:1", nil)
	if err == nil {
		t.Fatal("Get() error = nil, want transport error")
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		t.Errorf("Get() returned *HTTPError for transport failure: %v", err)
	}
}
