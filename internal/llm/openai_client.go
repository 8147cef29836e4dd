package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/goccy/go-json"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultSystemPrompt is used when no managed prompt is available.
const DefaultSystemPrompt = `You are an analyst writing for HR and finance leaders who sponsor an employee mental-health program.

You receive aggregated, anonymized outcomes for one organization: clinical score changes (PHQ-9 depression, GAD-7 anxiety, WHO-5 well-being), productivity (absenteeism hours, presenteeism percent, hours regained, cost savings), engagement, and ROI. Base every statement only on these numbers.

Rules:
- Never give clinical advice or discuss individuals. The data is population-level only.
- Lower PHQ-9 and GAD-7 scores mean improvement; a higher WHO-5 score means improvement.
- Savings are estimates from hours regained at the average hourly cost, annualized from one quarter. Say so when you cite them.
- If a result is weak or mixed, say that plainly.
- Be concise and concrete.

Respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences on the program's impact for this organization.",
  "observations": ["3-5 observations across clinical, productivity, engagement and ROI results."],
  "recommendations": ["2-4 program-level actions, e.g. on engagement, modality mix or dropout."]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Aggregated program outcomes for %s (%s industry, reporting period %s to %s):

%s

Respond in the required JSON format.`

// InsightsLLM generates an executive narrative from aggregate outcomes.
type InsightsLLM interface {
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model, systemPrompt string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultSystemPrompt
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateInsights calls OpenAI to write the executive narrative.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	org := insightsCtx.Organization
	userPrompt := fmt.Sprintf(userPromptTemplate, org.Name, org.Industry,
		org.ReportingPeriod.Start, org.ReportingPeriod.End, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return ParseInsights(resp.Choices[0].Message.Content)
}

// ParseInsights decodes the model's JSON reply. Markdown code fences are
// tolerated; an empty summary is rejected.
func ParseInsights(content string) (*domain.LLMInsightsOutput, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if output.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	return &output, nil
}
