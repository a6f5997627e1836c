package briefing

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brief-generator-api/infrastructure/integrator/llm"
	"github.com/vfg2006/brief-generator-api/internal/config"
	"github.com/vfg2006/brief-generator-api/internal/domain"
	"github.com/vfg2006/brief-generator-api/internal/usecases/metricsing"
	"github.com/vfg2006/brief-generator-api/pkg/apiErrors"
	"github.com/vfg2006/brief-generator-api/pkg/eml"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BriefGenerator orquestra o lote semanal: extrai métricas dos arquivos
// enviados, consolida, grava e compõe o brief executivo.
type BriefGenerator interface {
	Generate(ctx context.Context, request *domain.BriefRequest) (*domain.BriefResult, error)
}

type Service struct {
	cfg      *config.Config
	metrics  metricsing.MetricsService
	provider llm.Provider
}

func NewService(cfg *config.Config, metrics metricsing.MetricsService, provider llm.Provider) BriefGenerator {
	return &Service{
		cfg:      cfg,
		metrics:  metrics,
		provider: provider,
	}
}

// Generate processa o lote da semana. Falha de extração em um arquivo
// vira aviso e o lote segue; falha de gravação aborta; falha na
// composição do brief é devolvida ao chamador, mas as métricas já
// gravadas permanecem.
func (s *Service) Generate(ctx context.Context, request *domain.BriefRequest) (*domain.BriefResult, error) {
	if _, err := domain.ParseWeekID(request.WeekID); err != nil {
		return nil, err
	}

	merged := domain.WeeklyMetricsSet{}
	warnings := make([]domain.BriefWarning, 0)

	// A ordem de envio dos arquivos é significativa: em caso de marca
	// repetida, o arquivo mais recente do lote prevalece.
	for _, file := range request.MetricsFiles {
		extracted, err := s.provider.ExtractMetrics(ctx, file.Data, file.MimeType)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"week_id": request.WeekID,
				"file":    file.Name,
			}).WithError(err).Warn("Extração de métricas falhou para o arquivo")

			warnings = append(warnings, domain.BriefWarning{
				Code:     apiErrors.ErrMetricsExtraction,
				FileName: file.Name,
				Reason:   err.Error(),
			})
			continue
		}

		merged.Merge(extracted)
	}

	if err := s.metrics.SaveWeek(request.WeekID, merged); err != nil {
		return nil, err
	}
	normalized := merged.Normalized()

	metricsJSON, err := json.MarshalToString(normalized)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar as métricas consolidadas: %w", err)
	}

	brief, err := s.provider.ComposeBrief(ctx, llm.BriefPrompt{
		Notes:             request.Notes,
		MetricsJSON:       metricsJSON,
		MarketContext:     s.marketContext(request.MarketFiles),
		StyleSample:       request.StyleSample,
		SystemInstruction: s.systemInstruction(request),
	})
	if err != nil {
		// As métricas da semana já estão persistidas; o chamador pode
		// repetir apenas a composição.
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"week_id":  request.WeekID,
		"brands":   len(normalized),
		"warnings": len(warnings),
	}).Info("Brief semanal gerado")

	return &domain.BriefResult{
		WeekID:   request.WeekID,
		Brief:    brief,
		Metrics:  normalized,
		Warnings: warnings,
	}, nil
}

// marketContext concatena o texto dos relatórios de mercado. Mensagens
// .eml são reduzidas à parte textual; os demais arquivos entram como
// texto puro.
func (s *Service) marketContext(files []domain.BriefFile) string {
	if len(files) == 0 {
		return ""
	}

	sections := make([]string, 0, len(files))
	for _, file := range files {
		var text string
		if file.MimeType == "message/rfc822" || strings.HasSuffix(strings.ToLower(file.Name), ".eml") {
			text = eml.ExtractText(file.Data)
		} else {
			text = strings.TrimSpace(string(file.Data))
		}

		sections = append(sections, fmt.Sprintf("--- %s ---\n%s", file.Name, text))
	}

	return strings.Join(sections, "\n\n")
}

func (s *Service) systemInstruction(request *domain.BriefRequest) string {
	if request.SystemInstruction != "" {
		return request.SystemInstruction
	}
	return s.cfg.Briefing.SystemInstruction
}
