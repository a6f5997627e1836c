package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brief-generator-api/internal/config"
	"github.com/vfg2006/brief-generator-api/internal/domain"
)

func geminiTestServer(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGeminiProvider(config.Gemini{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
	})
}

func TestGeminiExtractMetrics(t *testing.T) {
	provider := geminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "models/gemini-2.5-flash:generateContent")
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var request geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.Len(t, request.Contents, 1)
		require.Len(t, request.Contents[0].Parts, 2)
		assert.Equal(t, "image/png", request.Contents[0].Parts[1].InlineData.MimeType)

		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Parts: []geminiPart{
					{Text: "```json\n{\"SBX\": {\"sales\": \"+5%\", \"margin\": \"+2%\"}}\n```"},
				}}},
			},
		})
	})

	metrics, err := provider.ExtractMetrics(context.Background(), []byte{0x89, 0x50}, "image/png")

	assert.NoError(t, err)
	assert.Equal(t, domain.WeeklyMetricsSet{
		"SBX": {Sales: "+5%", Margin: "+2%"},
	}, metrics)
}

func TestGeminiExtractMetricsErroDoProvedor(t *testing.T) {
	provider := geminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := provider.ExtractMetrics(context.Background(), []byte("dados"), "application/pdf")

	assert.ErrorIs(t, err, ErrExtraction)
}

func TestGeminiComposeBrief(t *testing.T) {
	provider := geminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var request geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		// O prompt do sistema viaja separado do conteúdo
		require.NotNil(t, request.SystemInstruction)
		assert.Contains(t, request.SystemInstruction.Parts[0].Text, "Executive Assistant")
		assert.Contains(t, request.Contents[0].Parts[0].Text, "THE CEO NOTES")

		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Parts: []geminiPart{{Text: "Subject: Weekly CEO Brief - Week 42"}}}},
			},
		})
	})

	brief, err := provider.ComposeBrief(context.Background(), BriefPrompt{
		Notes:       "Great week",
		MetricsJSON: `{"SBX": {"sales": "+5%", "margin": "+2%"}}`,
		StyleSample: "Subject: ...",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Subject: Weekly CEO Brief - Week 42", brief)
}

func TestGeminiComposeBriefSemCandidatos(t *testing.T) {
	provider := geminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	})

	_, err := provider.ComposeBrief(context.Background(), BriefPrompt{})

	assert.ErrorIs(t, err, ErrGeneration)
}
