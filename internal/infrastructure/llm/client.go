package llm

import (
	"context"
	"log/slog"

	"github.com/bytedance/sonic"
	openai "github.com/sashabaranov/go-openai"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/config"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// classifierPrompt asks the model for a strict JSON verdict on whether a
// question belongs on the kiosk.
const classifierPrompt = `You are a content filter for a school information kiosk. Determine if the user's question is related to:
1. Westmead International School specifically
2. General education topics (courses, schedules, campus, admissions, academics)
3. Student life and school activities

Questions about weather, entertainment, food recipes, general trivia, or non-school topics should be marked as NOT school-related.

Respond with JSON in this exact format: { "isSchoolRelated": true/false, "reason": "brief explanation" }`

// maxAnswerTokens bounds answer length so replies stay speakable on the
// kiosk.
const maxAnswerTokens = 500

// classifierVerdict is the wire shape of the classifier's JSON reply.
type classifierVerdict struct {
	IsSchoolRelated bool   `json:"isSchoolRelated"`
	Reason          string `json:"reason"`
}

// client talks to an OpenAI-compatible chat completion endpoint.
type client struct {
	api    *openai.Client
	model  string
	logger *slog.Logger
}

// NewClient creates an LLMClient against the configured endpoint.
func NewClient(cfg config.LLMConfig, logger *slog.Logger) domain.LLMClient {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = cfg.BaseURL

	return &client{
		api:    openai.NewClientWithConfig(apiCfg),
		model:  cfg.Model,
		logger: logger,
	}
}

// Classify runs the topic filter in JSON mode. An unparsable verdict from a
// successful call is treated as off topic rather than an error, so a
// misbehaving model degrades to the redirect path instead of a failure.
func (c *client) Classify(ctx context.Context, message string) (entity.Verdict, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifierPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return entity.Verdict{}, domain.NewInternalError("classification request failed", err)
	}

	if len(resp.Choices) == 0 {
		return entity.Verdict{OnTopic: false, Rationale: "empty classifier response"}, nil
	}

	var verdict classifierVerdict
	if err := sonic.Unmarshal([]byte(resp.Choices[0].Message.Content), &verdict); err != nil {
		c.logger.Warn("unparsable classifier verdict, treating as off topic",
			"error", err,
		)
		return entity.Verdict{OnTopic: false, Rationale: "unparsable classifier verdict"}, nil
	}

	return entity.Verdict{
		OnTopic:   verdict.IsSchoolRelated,
		Rationale: verdict.Reason,
	}, nil
}

// Generate produces the assistant answer from the assembled briefing plus the
// trailing conversation window. An empty completion returns an empty string,
// the caller substitutes the fallback text.
func (c *client) Generate(ctx context.Context, system string, history []*entity.ChatMessage, message string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, msg := range history {
		role := openai.ChatMessageRoleUser
		if msg.Role == entity.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: maxAnswerTokens,
	})
	if err != nil {
		return "", domain.NewInternalError("generation request failed", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
