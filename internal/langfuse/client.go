// Package langfuse is a small HTTP client for the Langfuse ingestion and
// prompt APIs. Without credentials it is a no-op.
package langfuse

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/blaisecz/wellness-outcomes/internal/logging"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const sendTimeout = 5 * time.Second

// Client is the interface for Langfuse operations.
type Client interface {
	IsEnabled() bool
	// CreateTrace records a trace and returns its ID. The ID is returned even
	// when delivery fails so callers can still reference it.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	// CreateScore attaches a score to an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
}

// TraceInput contains the data for creating a trace.
type TraceInput struct {
	ID       string // generated when empty
	OrgID    string // sent as the trace session so traces group per organization
	Name     string
	Input    any
	Output   any
	Tags     []string
	Metadata map[string]any
}

// ScoreInput contains the data for creating a score.
type ScoreInput struct {
	TraceID string
	Name    string
	Value   float64
	Comment string
}

// Config holds Langfuse client configuration.
type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
}

func (c Config) enabled() bool {
	return c.missing() == ""
}

type client struct {
	cfg  Config
	http *http.Client
	now  func() time.Time
}

// NewClient returns a client for cfg. Missing base URL or keys yield a
// disabled client whose calls succeed without sending anything.
func NewClient(cfg Config) Client {
	if missing := cfg.missing(); missing != "" {
		logging.Info().Str("missing", missing).Msg("langfuse disabled")
	} else {
		logging.Info().Str("base_url", cfg.BaseURL).Str("env", cfg.Environment).Msg("langfuse enabled")
	}
	return &client{
		cfg:  cfg,
		http: &http.Client{Timeout: 10 * time.Second},
		now:  time.Now,
	}
}

func (c Config) missing() string {
	switch {
	case c.BaseURL == "":
		return "LANGFUSE_BASE_URL"
	case c.PublicKey == "":
		return "LANGFUSE_PUBLIC_KEY"
	case c.SecretKey == "":
		return "LANGFUSE_SECRET_KEY"
	}
	return ""
}

func (c *client) IsEnabled() bool {
	return c.cfg.enabled()
}

func (c *client) CreateTrace(ctx context.Context, in TraceInput) (string, error) {
	if !c.IsEnabled() {
		return "", nil
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	meta := make(map[string]any, len(in.Metadata)+1)
	for k, v := range in.Metadata {
		meta[k] = v
	}
	if c.cfg.Environment != "" {
		meta["environment"] = c.cfg.Environment
	}
	if len(meta) == 0 {
		meta = nil
	}

	return id, c.send(ctx, c.event(eventTraceCreate, traceBody{
		ID:        id,
		Name:      in.Name,
		SessionID: in.OrgID,
		Input:     in.Input,
		Output:    in.Output,
		Tags:      in.Tags,
		Metadata:  meta,
	}))
}

func (c *client) CreateScore(ctx context.Context, in ScoreInput) error {
	if !c.IsEnabled() {
		return nil
	}
	return c.send(ctx, c.event(eventScoreCreate, scoreBody{
		ID:      uuid.NewString(),
		TraceID: in.TraceID,
		Name:    in.Name,
		Value:   in.Value,
		Comment: in.Comment,
	}))
}

func (c *client) event(kind string, body any) ingestionEvent {
	return ingestionEvent{
		ID:        uuid.NewString(),
		Type:      kind,
		Timestamp: c.now().UTC().Format(time.RFC3339Nano),
		Body:      body,
	}
}

func (c *client) send(ctx context.Context, event ingestionEvent) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	payload, err := json.Marshal(ingestionBatch{Batch: []ingestionEvent{event}})
	if err != nil {
		return fmt.Errorf("encode %s: %w", event.Type, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimSuffix(c.cfg.BaseURL, "/")+ingestionPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", event.Type, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.PublicKey, c.cfg.SecretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send %s: %w", event.Type, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s rejected: status %d", event.Type, resp.StatusCode)
	}
	return nil
}

const (
	ingestionPath    = "/api/public/ingestion"
	eventTraceCreate = "trace-create"
	eventScoreCreate = "score-create"
)

type ingestionBatch struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID        string         `json:"id"`
	Name      string         `json:"name,omitempty"`
	SessionID string         `json:"sessionId,omitempty"`
	Input     any            `json:"input,omitempty"`
	Output    any            `json:"output,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID      string  `json:"id"`
	TraceID string  `json:"traceId"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Comment string  `json:"comment,omitempty"`
}
