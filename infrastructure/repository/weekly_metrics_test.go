package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brief-generator-api/infrastructure/database/postgres"
	"github.com/vfg2006/brief-generator-api/internal/domain"
)

func newMockedRepository(t *testing.T) (WeeklyMetricsRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewWeeklyMetricsRepository(&postgres.Connection{DB: db}), mock
}

func TestUpsertWeek(t *testing.T) {
	repo, mock := newMockedRepository(t)

	metrics := domain.WeeklyMetricsSet{
		"SBX": {Sales: "+5%", Margin: "+2%"},
		"FL":  {Sales: "N/A", Margin: "N/A"},
	}

	// As marcas são gravadas em ordem alfabética dentro de uma transação
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO weekly_metrics").
		WithArgs("2025-W42", "FL", "N/A", "N/A").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO weekly_metrics").
		WithArgs("2025-W42", "SBX", "+5%", "+2%").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpsertWeek("2025-W42", metrics)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertWeekVazio(t *testing.T) {
	repo, mock := newMockedRepository(t)

	// Conjunto vazio não abre transação nem executa query alguma
	err := repo.UpsertWeek("2025-W42", domain.WeeklyMetricsSet{})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertWeekErroFazRollback(t *testing.T) {
	repo, mock := newMockedRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO weekly_metrics").
		WithArgs("2025-W42", "SBX", "+5%", "+2%").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.UpsertWeek("2025-W42", domain.WeeklyMetricsSet{
		"SBX": {Sales: "+5%", Margin: "+2%"},
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWeek(t *testing.T) {
	repo, mock := newMockedRepository(t)

	rows := sqlmock.NewRows([]string{"week_id", "brand", "sales_var", "margin_var"}).
		AddRow("2025-W42", "H&M", "-1%", "+0.5%").
		AddRow("2025-W42", "SBX", "+5%", "+2%")

	mock.ExpectQuery("SELECT wm.week_id, wm.brand, wm.sales_var, wm.margin_var FROM weekly_metrics wm").
		WithArgs("2025-W42").
		WillReturnRows(rows)

	records, err := repo.GetWeek("2025-W42")

	assert.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, &domain.MetricRecord{WeekID: "2025-W42", Brand: "H&M", SalesVar: "-1%", MarginVar: "+0.5%"}, records[0])
	assert.Equal(t, &domain.MetricRecord{WeekID: "2025-W42", Brand: "SBX", SalesVar: "+5%", MarginVar: "+2%"}, records[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWeekSemanaDesconhecida(t *testing.T) {
	repo, mock := newMockedRepository(t)

	mock.ExpectQuery("SELECT wm.week_id, wm.brand, wm.sales_var, wm.margin_var FROM weekly_metrics wm").
		WithArgs("2099-W1").
		WillReturnRows(sqlmock.NewRows([]string{"week_id", "brand", "sales_var", "margin_var"}))

	records, err := repo.GetWeek("2099-W1")

	// Semana desconhecida retorna lista vazia, não erro
	assert.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWeeks(t *testing.T) {
	repo, mock := newMockedRepository(t)

	rows := sqlmock.NewRows([]string{"week_id"}).
		AddRow("2025-W3").
		AddRow("2025-W1")

	mock.ExpectQuery("SELECT DISTINCT week_id FROM weekly_metrics ORDER BY week_id DESC").
		WillReturnRows(rows)

	weeks, err := repo.ListWeeks()

	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-W3", "2025-W1"}, weeks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWeeksBefore(t *testing.T) {
	repo, mock := newMockedRepository(t)

	rows := sqlmock.NewRows([]string{"week_id"}).
		AddRow("2025-W42").
		AddRow("2023-W41").
		AddRow("2023-W3")

	mock.ExpectQuery("SELECT DISTINCT week_id FROM weekly_metrics").
		WillReturnRows(rows)
	mock.ExpectExec("DELETE FROM weekly_metrics").
		WithArgs("2023-W41", "2023-W3").
		WillReturnResult(sqlmock.NewResult(0, 7))

	deleted, err := repo.DeleteWeeksBefore("2023-W42")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWeeksBeforeCorteDeUmDigito(t *testing.T) {
	repo, mock := newMockedRepository(t)

	// "2025-W10" e "2025-W53" vêm textualmente antes de "2025-W9", mas
	// são semanas posteriores ao corte e precisam permanecer intactas.
	rows := sqlmock.NewRows([]string{"week_id"}).
		AddRow("2025-W53").
		AddRow("2025-W10").
		AddRow("2025-W8").
		AddRow("2024-W52")

	mock.ExpectQuery("SELECT DISTINCT week_id FROM weekly_metrics").
		WillReturnRows(rows)
	mock.ExpectExec("DELETE FROM weekly_metrics").
		WithArgs("2025-W8", "2024-W52").
		WillReturnResult(sqlmock.NewResult(0, 2))

	deleted, err := repo.DeleteWeeksBefore("2025-W9")

	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWeeksBeforeSemSemanasExpiradas(t *testing.T) {
	repo, mock := newMockedRepository(t)

	rows := sqlmock.NewRows([]string{"week_id"}).
		AddRow("2025-W42").
		AddRow("2025-W41")

	mock.ExpectQuery("SELECT DISTINCT week_id FROM weekly_metrics").
		WillReturnRows(rows)

	// Nenhuma semana anterior ao corte: nenhum DELETE é executado
	deleted, err := repo.DeleteWeeksBefore("2024-W1")

	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWeeksBeforeCorteInvalido(t *testing.T) {
	repo, mock := newMockedRepository(t)

	deleted, err := repo.DeleteWeeksBefore("2025-W07")

	assert.ErrorIs(t, err, domain.ErrInvalidWeekID)
	assert.Equal(t, int64(0), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
