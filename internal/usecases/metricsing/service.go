package metricsing

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brief-generator-api/infrastructure/repository"
	"github.com/vfg2006/brief-generator-api/internal/domain"
)

// MetricsService é o contrato estável sobre o qual qualquer camada de
// apresentação opera: gravação idempotente por semana, leitura,
// enumeração de semanas e comparação entre duas semanas.
type MetricsService interface {
	// SaveWeek valida o identificador da semana, aplica o sentinela
	// "N/A" aos campos ausentes e grava uma linha por marca.
	SaveWeek(weekID string, metrics domain.WeeklyMetricsSet) error

	// GetWeek retorna as métricas da semana ordenadas por marca; uma
	// semana desconhecida retorna lista vazia.
	GetWeek(weekID string) ([]*domain.MetricRecord, error)

	// ListWeeks enumera as semanas conhecidas, sem repetição, em ordem
	// decrescente.
	ListWeeks() ([]string, error)

	// CompareWeeks produz o outer join completo das duas semanas por
	// marca. Campos da semana em que a marca não existe ficam nil.
	CompareWeeks(weekA, weekB string) ([]*domain.ComparisonRow, error)
}

type Service struct {
	metricsRepo repository.WeeklyMetricsRepository
}

func NewService(metricsRepo repository.WeeklyMetricsRepository) MetricsService {
	return &Service{
		metricsRepo: metricsRepo,
	}
}

func (s *Service) SaveWeek(weekID string, metrics domain.WeeklyMetricsSet) error {
	if _, err := domain.ParseWeekID(weekID); err != nil {
		return err
	}

	normalized := metrics.Normalized()

	if err := s.metricsRepo.UpsertWeek(weekID, normalized); err != nil {
		return fmt.Errorf("erro ao gravar métricas da semana %s: %w", weekID, err)
	}

	logrus.WithFields(logrus.Fields{
		"week_id": weekID,
		"brands":  len(normalized),
	}).Info("Métricas semanais gravadas")

	return nil
}

func (s *Service) GetWeek(weekID string) ([]*domain.MetricRecord, error) {
	if _, err := domain.ParseWeekID(weekID); err != nil {
		return nil, err
	}

	return s.metricsRepo.GetWeek(weekID)
}

func (s *Service) ListWeeks() ([]string, error) {
	return s.metricsRepo.ListWeeks()
}

func (s *Service) CompareWeeks(weekA, weekB string) ([]*domain.ComparisonRow, error) {
	if _, err := domain.ParseWeekID(weekA); err != nil {
		return nil, err
	}
	if _, err := domain.ParseWeekID(weekB); err != nil {
		return nil, err
	}

	recordsA, err := s.metricsRepo.GetWeek(weekA)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas da semana %s: %w", weekA, err)
	}

	recordsB, err := s.metricsRepo.GetWeek(weekB)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas da semana %s: %w", weekB, err)
	}

	return outerJoin(recordsA, recordsB), nil
}

// outerJoin alinha as duas semanas por marca: toda marca presente em
// qualquer uma das semanas produz exatamente uma linha. Os valores
// permanecem strings opacas; nenhuma interpretação numérica acontece
// aqui.
func outerJoin(recordsA, recordsB []*domain.MetricRecord) []*domain.ComparisonRow {
	rowsByBrand := make(map[string]*domain.ComparisonRow, len(recordsA)+len(recordsB))

	for _, record := range recordsA {
		record := record
		rowsByBrand[record.Brand] = &domain.ComparisonRow{
			Brand:       record.Brand,
			WeekASales:  &record.SalesVar,
			WeekAMargin: &record.MarginVar,
		}
	}

	for _, record := range recordsB {
		record := record
		row, exists := rowsByBrand[record.Brand]
		if !exists {
			row = &domain.ComparisonRow{Brand: record.Brand}
			rowsByBrand[record.Brand] = row
		}
		row.WeekBSales = &record.SalesVar
		row.WeekBMargin = &record.MarginVar
	}

	rows := make([]*domain.ComparisonRow, 0, len(rowsByBrand))
	for _, row := range rowsByBrand {
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Brand < rows[j].Brand
	})

	return rows
}
