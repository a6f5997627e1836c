package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/vfg2006/brief-generator-api/internal/config"
	"github.com/vfg2006/brief-generator-api/internal/domain"
)

// AzureProvider usa o mesmo SDK da OpenAI apontado para um deployment
// do Azure OpenAI.
type AzureProvider struct {
	client     *openai.Client
	deployment openai.ChatModel
}

func NewAzureProvider(cfg config.Azure) (*AzureProvider, error) {
	if cfg.Endpoint == "" || cfg.Deployment == "" {
		return nil, fmt.Errorf("configuração do Azure OpenAI incompleta: endpoint e deployment são obrigatórios")
	}

	client := openai.NewClient(
		azure.WithEndpoint(cfg.Endpoint, cfg.APIVersion),
		azure.WithAPIKey(cfg.APIKey),
	)

	return &AzureProvider{
		client:     &client,
		deployment: openai.ChatModel(cfg.Deployment),
	}, nil
}

func (p *AzureProvider) ExtractMetrics(ctx context.Context, fileBytes []byte, mimeType string) (domain.WeeklyMetricsSet, error) {
	return extractWithChatCompletions(ctx, p.client, p.deployment, fileBytes, mimeType)
}

func (p *AzureProvider) ComposeBrief(ctx context.Context, prompt BriefPrompt) (string, error) {
	return composeWithChatCompletions(ctx, p.client, p.deployment, prompt)
}
