// Package enhance refines a heuristic description through a Groq-hosted
// chat-completion model. The whole package is optional: without an API key
// no enhancer is constructed, and any transport or parsing failure yields an
// absent enhancement rather than an error.
package enhance

import (
	"context"
	"time"

	"github.com/ddekshina/ProjectProbe/config"
	"github.com/ddekshina/ProjectProbe/domains/describe"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"
)

// Enhancer sends one completion request per analysis.
type Enhancer struct {
	client openai.Client
	l      *zap.Logger
}

// New returns an Enhancer, or nil when no Groq API key is configured. A nil
// Enhancer means the analysis simply carries no AI enhancement.
func New(l *zap.Logger) *Enhancer {
	apiKey := config.Groq.ApiKey()
	if apiKey == "" {
		l.Info("groq api key not configured, ai enhancement disabled")
		return nil
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(config.Groq.BaseURL()),
	)
	return &Enhancer{client: client, l: l}
}

// Enhance builds a prompt from the analysis input, requests a completion and
// parses the numbered sections. Returns nil on any failure.
func (e *Enhancer) Enhance(ctx context.Context, in describe.Input) *describe.Enhancement {
	prompt, variant := buildPrompt(in)

	timeout := time.Duration(config.Groq.TimeoutSeconds()) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(config.Groq.Model()),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(config.Groq.Temperature()),
		MaxTokens:   openai.Int(int64(config.Groq.MaxTokens())),
	})
	if err != nil {
		e.l.Warn("enhancement request failed", zap.Error(err))
		return nil
	}
	if len(resp.Choices) == 0 {
		e.l.Warn("enhancement response has no choices")
		return nil
	}

	enhancement := parseResponse(resp.Choices[0].Message.Content, variant)
	if enhancement == nil {
		e.l.Warn("enhancement response did not match expected structure",
			zap.String("variant", string(variant)))
	}
	return enhancement
}
