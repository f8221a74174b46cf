package eligibility

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	domainerrors "blood-link.backend/internal/domain/errors"
)

// eligiblePrompt carries the fixed donation rules. The classifier is asked
// for a bare YES/NO token; anything else counts as not eligible.
const eligiblePrompt = `You are a medical eligibility checker for blood donation.
Rules:
- Hemoglobin must be >= 12.5
- Age between 18 and 65
- No serious medical conditions like HIV, Hepatitis, Cancer, TB, etc.
Based on the following report, respond only with 'YES' (eligible) or 'NO' (not eligible).

Report:
%s`

// Classifier evaluates extracted report text for donation eligibility
type Classifier interface {
	Evaluate(ctx context.Context, reportText string) (bool, error)
}

// OpenAIClassifier calls a chat-completion endpoint with the rule prompt
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

// NewOpenAIClassifier creates a classifier against the configured endpoint
func NewOpenAIClassifier(apiKey, baseURL, model string) *OpenAIClassifier {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClassifier{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Evaluate returns true only when the trimmed, upper-cased reply is exactly
// "YES". A transport or API failure surfaces as ErrClassifierUnavailable; a
// malformed or empty reply is simply not eligible.
func (c *OpenAIClassifier) Evaluate(ctx context.Context, reportText string) (bool, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(eligiblePrompt, reportText),
			},
		},
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", domainerrors.ErrClassifierUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return false, nil
	}

	reply := strings.ToUpper(strings.TrimSpace(resp.Choices[0].Message.Content))
	return reply == "YES", nil
}
