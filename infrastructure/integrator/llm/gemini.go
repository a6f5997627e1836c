package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/vfg2006/brief-generator-api/internal/config"
	"github.com/vfg2006/brief-generator-api/internal/domain"
)

// GeminiProvider fala com a API generativelanguage via REST.
type GeminiProvider struct {
	httpClient *http.Client
	cfg        config.Gemini
}

func NewGeminiProvider(cfg config.Gemini) *GeminiProvider {
	return &GeminiProvider{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		cfg: cfg,
	}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"response_mime_type,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

func (p *GeminiProvider) ExtractMetrics(ctx context.Context, fileBytes []byte, mimeType string) (domain.WeeklyMetricsSet, error) {
	request := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: extractionPrompt},
				{InlineData: &geminiInlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(fileBytes),
				}},
			},
		}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
		},
	}

	content, err := p.generateContent(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	return decodeMetrics(content)
}

func (p *GeminiProvider) ComposeBrief(ctx context.Context, prompt BriefPrompt) (string, error) {
	request := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: buildBriefPrompt(prompt)}},
		}},
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemInstructionOrDefault(prompt)}},
		},
	}

	content, err := p.generateContent(ctx, request)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return content, nil
}

// generateContent executa a chamada generateContent e devolve o texto
// do primeiro candidato.
func (p *GeminiProvider) generateContent(ctx context.Context, request geminiRequest) (string, error) {
	endpoint, err := url.Parse(p.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, fmt.Sprintf("/v1beta/models/%s:generateContent", p.cfg.Model))

	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.cfg.APIKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("resposta sem candidatos")
	}

	return response.Candidates[0].Content.Parts[0].Text, nil
}
