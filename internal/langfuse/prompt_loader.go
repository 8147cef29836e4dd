package langfuse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/blaisecz/wellness-outcomes/internal/logging"
	"github.com/goccy/go-json"
)

// PromptSource names a managed prompt and where to cache it locally.
type PromptSource struct {
	Config
	Name      string
	Label     string
	CachePath string
}

var errDisabled = errors.New("langfuse integration disabled")

// LoadPrompt fetches a managed prompt, caching it at CachePath. When Langfuse
// is unreachable the cached copy is used, and when neither exists fallback is
// returned.
func LoadPrompt(ctx context.Context, src PromptSource, fallback string) string {
	if src.Name != "" {
		prompt, err := fetchPrompt(ctx, src)
		if err == nil {
			if err := writeCache(src.CachePath, prompt); err != nil {
				logging.Warn().Err(err).Msg("failed to cache prompt locally")
			}
			return prompt
		}
		if !errors.Is(err, errDisabled) {
			logging.Warn().Err(err).Str("prompt", src.Name).Msg("prompt fetch failed")
		}
	}

	if src.CachePath != "" {
		if data, err := os.ReadFile(src.CachePath); err == nil && len(data) > 0 {
			return string(data)
		}
	}
	return fallback
}

func fetchPrompt(ctx context.Context, src PromptSource) (string, error) {
	if !src.enabled() {
		return "", errDisabled
	}

	parsed, err := url.Parse(strings.TrimSuffix(src.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(src.Name)
	if src.Label != "" {
		parsed.RawQuery = url.Values{"label": {src.Label}}.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(src.PublicKey, src.SecretKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return "", fmt.Errorf("decode prompt response: %w", err)
	}

	switch promptResp.Type {
	case "", "text":
		var text string
		if err := json.Unmarshal(promptResp.Prompt, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		}
		if err := json.Unmarshal(promptResp.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		// The system message is the only part used as instructions.
		for _, m := range messages {
			if m.Role == "system" {
				return m.Content, nil
			}
		}
		return "", errors.New("chat prompt has no system message")
	default:
		return "", fmt.Errorf("unsupported prompt type %q", promptResp.Type)
	}
}

func writeCache(path, prompt string) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
