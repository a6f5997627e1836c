package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vfg2006/brief-generator-api/internal/domain"
)

const defaultSystemInstruction = "You are an Executive Assistant."

// extractionPrompt instrui o modelo a devolver um objeto JSON estrito
// com as variações de venda e margem do vocabulário fixo de marcas.
const extractionPrompt = `
Analyze this image/document. Identify the table with Brand performance.
Extract the 'Sales vs BP %' and 'Margin vs BP %' for these specific brands:
[SBX, H&M, PM, VS, BBW, S.SHACK, AEO, R.CANES, FL, CT, CHIP, ULTA].
Return the result as a strict JSON object.
Format: {"SBX": {"sales": "-6%", "margin": "-4%"}, ...}
`

// buildBriefPrompt monta o prompt de composição combinando dados,
// notas, contexto de mercado e a amostra de estilo a ser imitada.
func buildBriefPrompt(p BriefPrompt) string {
	return fmt.Sprintf(`
Write a weekly brief based on the following context:

1. THE DATA (Use these numbers exactly): %s

2. THE CEO NOTES (Use this for the intro): %s

3. THE MARKET REPORT (Extract 'MENA Highlights' bullets verbatim from here): %s

4. FORMATTING RULE (CRITICAL): You must strictly follow the format, tone, headers, and layout of the SAMPLE TEXT below. Look at how the tables are formatted (plain text, no markdown bolding). Look at how the sections are ordered.

SAMPLE TEXT: %s
`, p.MetricsJSON, p.Notes, p.MarketContext, p.StyleSample)
}

func systemInstructionOrDefault(p BriefPrompt) string {
	if p.SystemInstruction != "" {
		return p.SystemInstruction
	}
	return defaultSystemInstruction
}

// cleanJSONResponse remove cercas de markdown que alguns modelos
// insistem em colocar ao redor do JSON.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// decodeMetrics converte a resposta textual do modelo no conjunto de
// métricas por marca. Resposta fora do formato é erro de extração.
func decodeMetrics(content string) (domain.WeeklyMetricsSet, error) {
	cleaned := cleanJSONResponse(content)

	metrics := domain.WeeklyMetricsSet{}
	if err := json.Unmarshal([]byte(cleaned), &metrics); err != nil {
		return nil, fmt.Errorf("%w: resposta fora do formato esperado: %v", ErrExtraction, err)
	}

	return metrics, nil
}
