package langfuse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPrompt_FetchesAndCaches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/public/v2/prompts/executive-insights" || r.URL.Query().Get("label") != "production" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"type":"text","prompt":"managed prompt"}`))
	}))
	defer server.Close()

	cache := filepath.Join(t.TempDir(), "prompts", "insights.txt")
	src := PromptSource{
		Config:    Config{BaseURL: server.URL, PublicKey: "pk", SecretKey: "sk"},
		Name:      "executive-insights",
		Label:     "production",
		CachePath: cache,
	}

	if got := LoadPrompt(context.Background(), src, "fallback"); got != "managed prompt" {
		t.Fatalf("LoadPrompt() = %q, want managed prompt", got)
	}
	data, err := os.ReadFile(cache)
	if err != nil || string(data) != "managed prompt" {
		t.Fatalf("cache = %q, %v", data, err)
	}
}

func TestLoadPrompt_ChatPromptUsesSystemMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"type":"chat","prompt":[{"role":"system","content":"be brief"},{"role":"user","content":"{{data}}"}]}`))
	}))
	defer server.Close()

	src := PromptSource{Config: Config{BaseURL: server.URL, PublicKey: "pk", SecretKey: "sk"}, Name: "p"}
	if got := LoadPrompt(context.Background(), src, "fallback"); got != "be brief" {
		t.Fatalf("LoadPrompt() = %q, want system message", got)
	}
}

func TestLoadPrompt_Fallbacks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cache := filepath.Join(t.TempDir(), "insights.txt")
	src := PromptSource{
		Config:    Config{BaseURL: server.URL, PublicKey: "pk", SecretKey: "sk"},
		Name:      "executive-insights",
		CachePath: cache,
	}

	if got := LoadPrompt(context.Background(), src, "built-in"); got != "built-in" {
		t.Errorf("LoadPrompt() without cache = %q, want built-in", got)
	}

	if err := os.WriteFile(cache, []byte("cached"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := LoadPrompt(context.Background(), src, "built-in"); got != "cached" {
		t.Errorf("LoadPrompt() with cache = %q, want cached", got)
	}

	disabled := PromptSource{Name: "executive-insights"}
	if got := LoadPrompt(context.Background(), disabled, "built-in"); got != "built-in" {
		t.Errorf("LoadPrompt() disabled = %q, want built-in", got)
	}
}
