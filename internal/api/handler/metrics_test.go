package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brief-generator-api/internal/api/handler/router"
	"github.com/vfg2006/brief-generator-api/internal/domain"
	"github.com/vfg2006/brief-generator-api/internal/usecases/metricsing"
	"github.com/vfg2006/brief-generator-api/internal/usecases/metricsing/mocks"
	"github.com/vfg2006/brief-generator-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newMetricsRouter(t *testing.T) (router.Router, *mocks.MockMetricsService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockMetricsService(ctrl)

	return router.New(router.WithRoutes(Metrics(service)...)), service
}

// authenticatedRequest injeta claims de usuário no contexto, como o
// middleware de autenticação faria.
func authenticatedRequest(method, target string, body string, roleID int) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	claims := &domain.Claims{UserID: 1, UserRoleID: roleID}
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func TestListWeeksHandler(t *testing.T) {
	rt, service := newMetricsRouter(t)

	service.EXPECT().ListWeeks().Return([]string{"2025-W9", "2025-W10"}, nil)

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, authenticatedRequest(http.MethodGet, "/v1/metrics/weeks", "", middleware.RoleClient))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string][]string
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, []string{"2025-W9", "2025-W10"}, response["weeks"])
}

func TestGetWeekMetricsHandler(t *testing.T) {
	rt, service := newMetricsRouter(t)

	service.EXPECT().GetWeek("2025-W7").Return([]*domain.MetricRecord{
		{WeekID: "2025-W7", Brand: "SBX", SalesVar: "+5%", MarginVar: "+2%"},
	}, nil)

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, authenticatedRequest(http.MethodGet, "/v1/metrics/weeks/2025-W7", "", middleware.RoleClient))

	require.Equal(t, http.StatusOK, recorder.Code)

	var records []*domain.MetricRecord
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, "SBX", records[0].Brand)
}

func TestGetWeekMetricsHandlerSemanaInvalida(t *testing.T) {
	rt, service := newMetricsRouter(t)

	service.EXPECT().GetWeek("2025-W07").
		Return(nil, errorFromParse(t, "2025-W07"))

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, authenticatedRequest(http.MethodGet, "/v1/metrics/weeks/2025-W07", "", middleware.RoleClient))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_003")
}

func errorFromParse(t *testing.T, weekID string) error {
	t.Helper()

	_, err := domain.ParseWeekID(weekID)
	require.Error(t, err)
	return err
}

func TestSaveWeekMetricsHandler(t *testing.T) {
	rt, service := newMetricsRouter(t)

	service.EXPECT().SaveWeek("2025-W7", domain.WeeklyMetricsSet{
		"SBX": {Sales: "+5%", Margin: "+2%"},
	}).Return(nil)

	body := `{"SBX": {"sales": "+5%", "margin": "+2%"}}`
	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, authenticatedRequest(http.MethodPut, "/v1/metrics/weeks/2025-W7", body, middleware.RoleAdmin))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestSaveWeekMetricsHandlerExigePerfilElevado(t *testing.T) {
	rt, _ := newMetricsRouter(t)

	body := `{"SBX": {"sales": "+5%", "margin": "+2%"}}`
	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, authenticatedRequest(http.MethodPut, "/v1/metrics/weeks/2025-W7", body, middleware.RoleClient))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestCompareWeeksHandler(t *testing.T) {
	rt, service := newMetricsRouter(t)

	sales := "+5%"
	service.EXPECT().CompareWeeks("2025-W6", "2025-W7").Return([]*domain.ComparisonRow{
		{Brand: "SBX", WeekBSales: &sales},
	}, nil)

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, authenticatedRequest(http.MethodGet, "/v1/metrics/comparison?week_a=2025-W6&week_b=2025-W7", "", middleware.RoleClient))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		WeekA string                  `json:"week_a"`
		WeekB string                  `json:"week_b"`
		Rows  []*domain.ComparisonRow `json:"rows"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "2025-W6", response.WeekA)
	require.Len(t, response.Rows, 1)
	assert.Nil(t, response.Rows[0].WeekASales)
	require.NotNil(t, response.Rows[0].WeekBSales)
	assert.Equal(t, "+5%", *response.Rows[0].WeekBSales)
}

func TestCompareWeeksHandlerParametrosObrigatorios(t *testing.T) {
	rt, _ := newMetricsRouter(t)

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, authenticatedRequest(http.MethodGet, "/v1/metrics/comparison?week_a=2025-W6", "", middleware.RoleClient))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_002")
}

var _ metricsing.MetricsService = (*mocks.MockMetricsService)(nil)
