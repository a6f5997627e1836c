package metricsing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brief-generator-api/infrastructure/repository/mocks"
	"github.com/vfg2006/brief-generator-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSaveWeekAplicaSentinela(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeeklyMetricsRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().UpsertWeek("2025-W7", domain.WeeklyMetricsSet{
		"SBX": {Sales: "+5%", Margin: "N/A"},
		"FL":  {Sales: "N/A", Margin: "-2%"},
	}).Return(nil)

	err := service.SaveWeek("2025-W7", domain.WeeklyMetricsSet{
		"SBX": {Sales: "+5%"},
		"FL":  {Margin: "-2%"},
	})

	assert.NoError(t, err)
}

func TestSaveWeekSemanaInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeeklyMetricsRepository(ctrl)
	service := NewService(repo)

	err := service.SaveWeek("2025-W07", domain.WeeklyMetricsSet{
		"SBX": {Sales: "+5%", Margin: "+2%"},
	})

	assert.Error(t, err)
}

func TestSaveWeekErroDoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeeklyMetricsRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().UpsertWeek("2025-W7", gomock.Any()).Return(errors.New("conexão perdida"))

	err := service.SaveWeek("2025-W7", domain.WeeklyMetricsSet{
		"SBX": {Sales: "+5%", Margin: "+2%"},
	})

	assert.ErrorContains(t, err, "erro ao gravar métricas da semana 2025-W7")
}

func TestCompareWeeksOuterJoin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeeklyMetricsRepository(ctrl)
	service := NewService(repo)

	// Semana A conhece {FL, SBX}; semana B conhece {PM, SBX}. O resultado
	// deve cobrir as três marcas, com nil no lado em que a marca falta.
	repo.EXPECT().GetWeek("2025-W6").Return([]*domain.MetricRecord{
		{WeekID: "2025-W6", Brand: "FL", SalesVar: "+1%", MarginVar: "N/A"},
		{WeekID: "2025-W6", Brand: "SBX", SalesVar: "-6%", MarginVar: "-4%"},
	}, nil)
	repo.EXPECT().GetWeek("2025-W7").Return([]*domain.MetricRecord{
		{WeekID: "2025-W7", Brand: "PM", SalesVar: "+3%", MarginVar: "+1%"},
		{WeekID: "2025-W7", Brand: "SBX", SalesVar: "-2%", MarginVar: "N/A"},
	}, nil)

	rows, err := service.CompareWeeks("2025-W6", "2025-W7")

	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "FL", rows[0].Brand)
	require.NotNil(t, rows[0].WeekASales)
	assert.Equal(t, "+1%", *rows[0].WeekASales)
	require.NotNil(t, rows[0].WeekAMargin)
	assert.Equal(t, "N/A", *rows[0].WeekAMargin)
	assert.Nil(t, rows[0].WeekBSales)
	assert.Nil(t, rows[0].WeekBMargin)

	assert.Equal(t, "PM", rows[1].Brand)
	assert.Nil(t, rows[1].WeekASales)
	assert.Nil(t, rows[1].WeekAMargin)
	require.NotNil(t, rows[1].WeekBSales)
	assert.Equal(t, "+3%", *rows[1].WeekBSales)

	assert.Equal(t, "SBX", rows[2].Brand)
	require.NotNil(t, rows[2].WeekASales)
	assert.Equal(t, "-6%", *rows[2].WeekASales)
	require.NotNil(t, rows[2].WeekBSales)
	assert.Equal(t, "-2%", *rows[2].WeekBSales)
}

func TestCompareWeeksSemanasVazias(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeeklyMetricsRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().GetWeek("2024-W52").Return([]*domain.MetricRecord{}, nil)
	repo.EXPECT().GetWeek("2025-W1").Return([]*domain.MetricRecord{}, nil)

	rows, err := service.CompareWeeks("2024-W52", "2025-W1")

	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCompareWeeksMesmaSemana(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeeklyMetricsRepository(ctrl)
	service := NewService(repo)

	records := []*domain.MetricRecord{
		{WeekID: "2025-W7", Brand: "SBX", SalesVar: "+5%", MarginVar: "+2%"},
	}
	repo.EXPECT().GetWeek("2025-W7").Return(records, nil).Times(2)

	rows, err := service.CompareWeeks("2025-W7", "2025-W7")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "+5%", *rows[0].WeekASales)
	assert.Equal(t, "+5%", *rows[0].WeekBSales)
}

func TestCompareWeeksSemanaInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeeklyMetricsRepository(ctrl)
	service := NewService(repo)

	_, err := service.CompareWeeks("2025-W7", "semana-passada")

	assert.Error(t, err)
}

func TestGetWeek(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeeklyMetricsRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().GetWeek("2025-W7").Return([]*domain.MetricRecord{
		{WeekID: "2025-W7", Brand: "SBX", SalesVar: "+5%", MarginVar: "+2%"},
	}, nil)

	records, err := service.GetWeek("2025-W7")

	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestListWeeks(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeeklyMetricsRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().ListWeeks().Return([]string{"2025-W9", "2025-W10", "2025-W8"}, nil)

	weeks, err := service.ListWeeks()

	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-W9", "2025-W10", "2025-W8"}, weeks)
}
