package llm

import (
	"context"
	"errors"
	"strings"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	jetai "go.jetify.com/ai"
	jetapi "go.jetify.com/ai/api"
	jetanthropic "go.jetify.com/ai/provider/anthropic"
	jetopenai "go.jetify.com/ai/provider/openai"
	"google.golang.org/genai"
)

const maxOutputTokens = 1024

type providerClient struct{}

func (p *providerClient) Send(ctx context.Context, opts SendOptions) (string, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return "", ErrMissingAPIKey
	}

	switch normalizeProviderType(opts.Provider) {
	case "gemini", "google":
		return sendGemini(ctx, opts)
	case "anthropic":
		return sendViaModel(ctx, buildAnthropicModel(opts), opts)
	default:
		return sendViaModel(ctx, buildOpenAIModel(opts), opts)
	}
}

func normalizeProviderType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	t = strings.ReplaceAll(t, " ", "")
	return t
}

func buildAnthropicModel(opts SendOptions) jetapi.LanguageModel {
	client := anthropicclient.NewClient(
		anthropicoption.WithAPIKey(strings.TrimSpace(opts.APIKey)),
		anthropicoption.WithMaxRetries(0),
	)
	return jetanthropic.NewLanguageModel(strings.TrimSpace(opts.Model), jetanthropic.WithClient(client))
}

func buildOpenAIModel(opts SendOptions) jetapi.LanguageModel {
	client := openaiclient.NewClient(
		openaioption.WithAPIKey(strings.TrimSpace(opts.APIKey)),
		openaioption.WithMaxRetries(0),
	)
	return jetopenai.NewLanguageModel(strings.TrimSpace(opts.Model), jetopenai.WithClient(client))
}

func sendViaModel(ctx context.Context, model jetapi.LanguageModel, opts SendOptions) (string, error) {
	resp, err := jetai.GenerateText(
		ctx,
		buildPromptMessages(opts.SystemPrompt, opts.UserText),
		jetai.WithModel(model),
		jetai.WithMaxOutputTokens(maxOutputTokens),
	)
	if err != nil {
		return "", err
	}
	return extractTextFromResponse(resp)
}

func sendGemini(ctx context.Context, opts SendOptions) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: strings.TrimSpace(opts.APIKey),
	})
	if err != nil {
		return "", err
	}

	cfg := &genai.GenerateContentConfig{}
	if strings.TrimSpace(opts.SystemPrompt) != "" {
		cfg.SystemInstruction = genai.NewContentFromText(opts.SystemPrompt, genai.RoleUser)
	}

	resp, err := client.Models.GenerateContent(ctx, strings.TrimSpace(opts.Model), genai.Text(opts.UserText), cfg)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("empty response from AI")
	}
	return text, nil
}

func buildPromptMessages(systemPrompt, userText string) []jetapi.Message {
	messages := make([]jetapi.Message, 0, 2)
	if strings.TrimSpace(systemPrompt) != "" {
		messages = append(messages, &jetapi.SystemMessage{Content: systemPrompt})
	}
	messages = append(messages, &jetapi.UserMessage{Content: jetapi.ContentFromText(userText)})
	return messages
}

func extractTextFromResponse(resp *jetapi.Response) (string, error) {
	if resp == nil {
		return "", errors.New("empty response from AI")
	}

	var full strings.Builder
	for _, block := range resp.Content {
		textBlock, ok := block.(*jetapi.TextBlock)
		if !ok || textBlock.Text == "" {
			continue
		}
		full.WriteString(textBlock.Text)
	}

	text := full.String()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty response from AI")
	}
	return text, nil
}
