package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/smartfit/fitness-api/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical fitness coaching assistant.

You receive heuristic fitness estimates for a single user: body composition
(BMI, estimated body fat, category), a per-session calorie burn estimate, an
assigned fitness archetype profile, and a twelve-week weight projection for
their stated goal. You must base your conclusions only on the provided data.

Your goals:
- Describe the user's current standing in clear, neutral language.
- Relate the calorie estimate and projection slope to their stated goal.
- Use the archetype's traits and attribute scores to frame strengths and gaps.
- Give practical, behavioral training and habit suggestions.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Treat every number as a rough heuristic, never a clinical measurement.
- Focus only on training habits and routines (frequency, intensity, duration,
  recovery, consistency).
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing where the user stands relative to their goal.",
  "observations": [
    "3-6 bullet points about the estimates (BMI band, body fat, session burn, projection slope).",
    "At least one item relating the archetype's attribute scores to the user's goal."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about session frequency or duration if the projection barely moves.",
    "Include at least one recovery or consistency suggestion."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's computed fitness estimates.

- "goal" is their stated primary goal.
- "body" holds BMI, estimated body fat percentage and the BMI category.
- "session" holds the calorie estimate for one typical workout.
- "archetype" is the rule-assigned fitness archetype with its traits and
  attribute scores (0-100 each).
- "projection" is the twelve-week weight projection for the stated goal,
  including the sampled weekly series.

JSON:

%s

Based on this data, respond in the required JSON format.`

// CoachLLM is the interface for generating coaching advice using an LLM.
type CoachLLM interface {
	// GenerateAdvice takes the computed context and returns LLM advice.
	GenerateAdvice(ctx context.Context, coachCtx *domain.CoachContext) (*domain.CoachOutput, error)
}

// OpenAIClient implements CoachLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating advice.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateAdvice calls OpenAI to generate coaching advice.
func (c *OpenAIClient) GenerateAdvice(ctx context.Context, coachCtx *domain.CoachContext) (*domain.CoachOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(coachCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.CoachOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
