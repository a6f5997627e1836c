package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/brief-generator-api/internal/domain"
	"github.com/vfg2006/brief-generator-api/internal/usecases/metricsing"
	"github.com/vfg2006/brief-generator-api/pkg/apiErrors"
	"github.com/vfg2006/brief-generator-api/pkg/log"
)

// ListWeeks retorna as semanas com métricas gravadas
func ListWeeks(service metricsing.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		weeks, err := service.ListWeeks()
		if err != nil {
			logger.WithError(err).Error("metrics: failed to list weeks")
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao listar semanas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string][]string{"weeks": weeks}); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetWeekMetrics retorna as métricas de uma semana específica
func GetWeekMetrics(service metricsing.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		weekID := httprouter.ParamsFromContext(r.Context()).ByName("week_id")
		logger.WithField("week_id", weekID).Info("metrics: fetching week metrics")

		records, err := service.GetWeek(weekID)
		if err != nil {
			if isWeekIDError(err) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidWeekID, err.Error())
				return
			}

			logger.WithField("week_id", weekID).WithError(err).Error("metrics: failed to get week metrics")
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao buscar métricas da semana")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// SaveWeekMetrics grava as métricas de uma semana. A operação é
// idempotente: repetir o mesmo corpo não duplica linhas.
func SaveWeekMetrics(service metricsing.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		weekID := httprouter.ParamsFromContext(r.Context()).ByName("week_id")

		var metrics domain.WeeklyMetricsSet
		if err := json.NewDecoder(r.Body).Decode(&metrics); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidInput, "Formato de requisição inválido")
			return
		}

		if err := service.SaveWeek(weekID, metrics); err != nil {
			if isWeekIDError(err) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidWeekID, err.Error())
				return
			}

			logger.WithField("week_id", weekID).WithError(err).Error("metrics: failed to save week metrics")
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao gravar métricas da semana")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// CompareWeeks compara duas semanas identificadas pelos parâmetros
// week_a e week_b
func CompareWeeks(service metricsing.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		weekA := r.URL.Query().Get("week_a")
		weekB := r.URL.Query().Get("week_b")

		if weekA == "" || weekB == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingField, "Os parâmetros week_a e week_b são obrigatórios")
			return
		}

		logger.WithFields(log.Fields{
			"week_a": weekA,
			"week_b": weekB,
		}).Info("metrics: comparing weeks")

		rows, err := service.CompareWeeks(weekA, weekB)
		if err != nil {
			if isWeekIDError(err) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidWeekID, err.Error())
				return
			}

			logger.WithError(err).Error("metrics: failed to compare weeks")
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao comparar semanas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"week_a": weekA,
			"week_b": weekB,
			"rows":   rows,
		}); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// isWeekIDError identifica erros de validação do identificador de
// semana, que viram 400 em vez de 500.
func isWeekIDError(err error) bool {
	return errors.Is(err, domain.ErrInvalidWeekID)
}
