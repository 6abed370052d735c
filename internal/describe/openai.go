package describe

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"invoicegen/internal/logger"
)

const descriptionPrompt = `Write a single short line describing a bespoke software
development service delivered to a client, suitable as the description field on
an invoice. Format: "<service description> - <ProductName> System". Invent a
plausible one-word product name. Reply with the line only, no quotes.`

// OpenAIGenerator asks a chat-completion model for a fresh description
// instead of rotating through the canned list. It falls back to the canned
// generator on any API failure so document generation never blocks on the
// network.
type OpenAIGenerator struct {
	client   *openai.Client
	fallback *CannedGenerator
	log      zerolog.Logger
}

// NewOpenAIGenerator creates a generator backed by the OpenAI API.
func NewOpenAIGenerator(apiKey string) *OpenAIGenerator {
	return &OpenAIGenerator{
		client:   openai.NewClient(apiKey),
		fallback: NewCannedGenerator(nil),
		log:      logger.WithComponent("describe-openai"),
	}
}

// Describe requests a one-line description from the model.
func (g *OpenAIGenerator) Describe(ctx context.Context) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: descriptionPrompt,
			},
		},
		Temperature: 0.7,
		MaxTokens:   60,
	})
	if err != nil {
		g.log.Warn().
			Err(err).
			Msg("Description request failed, using canned description")
		return g.fallback.Describe(ctx)
	}
	if len(resp.Choices) == 0 {
		g.log.Warn().Msg("Empty completion response, using canned description")
		return g.fallback.Describe(ctx)
	}

	line := strings.TrimSpace(resp.Choices[0].Message.Content)
	line = strings.Trim(line, `"`)
	if line == "" {
		return g.fallback.Describe(ctx)
	}

	g.log.Debug().
		Str("description", line).
		Msg("Generated description")

	return line, nil
}
