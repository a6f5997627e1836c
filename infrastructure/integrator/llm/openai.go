package llm

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/vfg2006/brief-generator-api/internal/config"
	"github.com/vfg2006/brief-generator-api/internal/domain"
)

// OpenAIProvider usa o SDK oficial da OpenAI.
type OpenAIProvider struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAIProvider(cfg config.OpenAI) *OpenAIProvider {
	client := openai.NewClient(option.WithAPIKey(cfg.APIKey))
	return &OpenAIProvider{
		client: &client,
		model:  openai.ChatModel(cfg.Model),
	}
}

func (p *OpenAIProvider) ExtractMetrics(ctx context.Context, fileBytes []byte, mimeType string) (domain.WeeklyMetricsSet, error) {
	return extractWithChatCompletions(ctx, p.client, p.model, fileBytes, mimeType)
}

func (p *OpenAIProvider) ComposeBrief(ctx context.Context, prompt BriefPrompt) (string, error) {
	return composeWithChatCompletions(ctx, p.client, p.model, prompt)
}

// dataURL embute o arquivo como data URL para o conteúdo de imagem.
func dataURL(fileBytes []byte, mimeType string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(fileBytes))
}

// extractWithChatCompletions é compartilhado entre OpenAI e Azure; os
// dois falam a mesma API de chat completions.
func extractWithChatCompletions(
	ctx context.Context,
	client *openai.Client,
	model openai.ChatModel,
	fileBytes []byte,
	mimeType string,
) (domain.WeeklyMetricsSet, error) {
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(extractionPrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: dataURL(fileBytes, mimeType),
				}),
			}),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: resposta sem choices", ErrExtraction)
	}

	return decodeMetrics(resp.Choices[0].Message.Content)
}

func composeWithChatCompletions(
	ctx context.Context,
	client *openai.Client,
	model openai.ChatModel,
	prompt BriefPrompt,
) (string, error) {
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstructionOrDefault(prompt)),
			openai.UserMessage(buildBriefPrompt(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: resposta sem choices", ErrGeneration)
	}

	return resp.Choices[0].Message.Content, nil
}
