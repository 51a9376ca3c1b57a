package diagnosis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewGeminiClient("test-key")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	c.baseURL = srv.URL
	return c
}

func answer(text string) string {
	return `{"candidates": [{"content": {"parts": [{"text": "` + text + `"}]}}]}`
}

func TestDiagnose(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(answer("Leaf blight. Remove affected leaves.")))
	})

	d, err := c.Diagnose(context.Background(), "aGVsbG8=", "image/png", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.Model != "gemini-1.5-flash-latest" {
		t.Fatalf("model = %q, want the primary model", d.Model)
	}
	if !strings.Contains(d.Advice, "Leaf blight") {
		t.Fatalf("advice = %q", d.Advice)
	}
	if want := "/v1beta/models/gemini-1.5-flash-latest:generateContent"; gotPath != want {
		t.Fatalf("path = %q, want %q", gotPath, want)
	}
}

func TestDiagnoseFallsBackToNextModel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// The primary model rejects the request outright; that is not a
		// transient failure, so the chain moves to the next model.
		if strings.Contains(r.URL.Path, "gemini-1.5-flash-latest") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(answer("Powdery mildew. Apply neem oil weekly.")))
	})

	d, err := c.Diagnose(context.Background(), "aGVsbG8=", "image/jpeg", "bn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Model != "gemini-1.5-pro" {
		t.Fatalf("model = %q, want the first fallback model", d.Model)
	}
}

func TestDiagnoseAllModelsFail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	if _, err := c.Diagnose(context.Background(), "aGVsbG8=", "", "en"); err == nil {
		t.Fatal("expected an error when every model fails")
	}
}

func TestDiagnoseRequiresImage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty image")
	})

	if _, err := c.Diagnose(context.Background(), "  ", "image/jpeg", "en"); err == nil {
		t.Fatal("expected an error for an empty image")
	}
}

func TestDoWithRetryRecoversFromTransientFailure(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(answer("ok")))
	})

	d, err := c.Diagnose(context.Background(), "aGVsbG8=", "image/jpeg", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Model != "gemini-1.5-flash-latest" {
		t.Fatalf("model = %q, retries should stay on the primary model", d.Model)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestDoWithRetryHonorsContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := c.Diagnose(ctx, "aGVsbG8=", "image/jpeg", "en"); err == nil {
		t.Fatal("expected an error when the context expires mid-retry")
	}
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	if _, err := NewGeminiClient(""); err == nil {
		t.Fatal("expected an error for an empty api key")
	}
}
