// Package llm define a fronteira com os provedores de modelos de
// linguagem. O núcleo do sistema só conhece a interface Provider; a
// escolha do provedor concreto é um valor de configuração.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/brief-generator-api/internal/config"
	"github.com/vfg2006/brief-generator-api/internal/domain"
)

var (
	// ErrExtraction indica que um arquivo não pôde ser convertido em um
	// conjunto de métricas (falha do provedor ou resposta fora do
	// formato esperado).
	ErrExtraction = errors.New("falha na extração de métricas")

	// ErrGeneration indica que a composição do brief falhou no provedor.
	ErrGeneration = errors.New("falha na geração do brief")
)

// BriefPrompt reúne os insumos da composição do brief.
type BriefPrompt struct {
	Notes             string
	MetricsJSON       string
	MarketContext     string
	StyleSample       string
	SystemInstruction string
}

// Provider é a capacidade externa consumida pelo núcleo: transformar um
// arquivo em métricas por marca e compor o texto do brief.
type Provider interface {
	ExtractMetrics(ctx context.Context, fileBytes []byte, mimeType string) (domain.WeeklyMetricsSet, error)
	ComposeBrief(ctx context.Context, prompt BriefPrompt) (string, error)
}

// NewProvider instancia o provedor selecionado na configuração.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		return NewGeminiProvider(cfg.Gemini), nil
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI), nil
	case "azure":
		return NewAzureProvider(cfg.Azure)
	default:
		return nil, fmt.Errorf("provedor de LLM desconhecido: %q (esperado gemini, openai ou azure)", cfg.LLM.Provider)
	}
}
