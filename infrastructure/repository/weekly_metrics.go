package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/brief-generator-api/infrastructure/database/postgres"
	"github.com/vfg2006/brief-generator-api/internal/domain"
)

const (
	weeklyMetricsTable = "weekly_metrics wm"
)

type WeeklyMetricsRepository interface {
	// UpsertWeek grava ou substitui as métricas de cada marca sob a
	// chave (week_id, brand). A escrita é idempotente: repetir a mesma
	// chamada não altera o estado observável.
	UpsertWeek(weekID string, metrics domain.WeeklyMetricsSet) error
	GetWeek(weekID string) ([]*domain.MetricRecord, error)
	ListWeeks() ([]string, error)
	DeleteWeeksBefore(weekID string) (int64, error)
}

type weeklyMetricsRepository struct {
	conn *postgres.Connection
}

func NewWeeklyMetricsRepository(conn *postgres.Connection) WeeklyMetricsRepository {
	return &weeklyMetricsRepository{
		conn: conn,
	}
}

func (r *weeklyMetricsRepository) UpsertWeek(weekID string, metrics domain.WeeklyMetricsSet) error {
	if len(metrics) == 0 {
		return nil
	}

	// Ordena as marcas para que a escrita seja determinística
	brands := make([]string, 0, len(metrics))
	for brand := range metrics {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, brand := range brands {
			brandMetrics := metrics[brand]
			query, args, err := squirrel.
				Insert("weekly_metrics").
				Columns("week_id", "brand", "sales_var", "margin_var").
				Values(weekID, brand, brandMetrics.Sales, brandMetrics.Margin).
				Suffix(`
					ON CONFLICT (week_id, brand) DO UPDATE SET
						sales_var = EXCLUDED.sales_var,
						margin_var = EXCLUDED.margin_var,
						updated_at = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}
		}

		return nil
	})
}

func (r *weeklyMetricsRepository) GetWeek(weekID string) ([]*domain.MetricRecord, error) {
	query, args, err := squirrel.
		Select("wm.week_id, wm.brand, wm.sales_var, wm.margin_var").
		From(weeklyMetricsTable).
		Where(squirrel.Eq{"wm.week_id": weekID}).
		OrderBy("wm.brand ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	// Semana desconhecida retorna uma lista vazia, não um erro
	records := make([]*domain.MetricRecord, 0)
	for rows.Next() {
		record := &domain.MetricRecord{}
		if err := rows.Scan(&record.WeekID, &record.Brand, &record.SalesVar, &record.MarginVar); err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas semanais: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *weeklyMetricsRepository) ListWeeks() ([]string, error) {
	// A ordenação é lexicográfica sobre o week_id sem zero à esquerda,
	// herdando a anomalia conhecida entre as semanas 1-9 e 10-53.
	query, _, err := squirrel.
		Select("DISTINCT week_id").
		From("weekly_metrics").
		OrderBy("week_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	weeks := make([]string, 0)
	for rows.Next() {
		var weekID string
		if err := rows.Scan(&weekID); err != nil {
			return nil, fmt.Errorf("erro ao escanear week_id: %w", err)
		}
		weeks = append(weeks, weekID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return weeks, nil
}

// DeleteWeeksBefore apaga as métricas das semanas anteriores ao corte.
// O week_id não tem zero à esquerda, então um WHERE textual ordenaria
// "2025-W10" antes de "2025-W9" e apagaria semanas recentes; a seleção
// compara (ano, semana) numericamente e apaga por igualdade exata.
func (r *weeklyMetricsRepository) DeleteWeeksBefore(weekID string) (int64, error) {
	cutoff, err := domain.ParseWeekID(weekID)
	if err != nil {
		return 0, fmt.Errorf("corte de retenção inválido: %w", err)
	}

	weeks, err := r.ListWeeks()
	if err != nil {
		return 0, err
	}

	expired := make([]string, 0, len(weeks))
	for _, candidate := range weeks {
		parsed, err := domain.ParseWeekID(candidate)
		if err != nil {
			// Identificador fora do formato não é tocado
			continue
		}
		if parsed.Before(cutoff) {
			expired = append(expired, candidate)
		}
	}

	if len(expired) == 0 {
		return 0, nil
	}

	query, args, err := squirrel.
		Delete("weekly_metrics").
		Where(squirrel.Eq{"week_id": expired}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
