package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/brief-generator-api/internal/usecases/settings"
	"github.com/vfg2006/brief-generator-api/pkg/apiErrors"
	"github.com/vfg2006/brief-generator-api/pkg/log"
)

// GetSettings retorna todas as preferências persistidas
func GetSettings(service settings.SettingsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		values, err := service.GetAll()
		if err != nil {
			logger.WithError(err).Error("settings: failed to load settings")
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao carregar configurações")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(values); err != nil {
			logger.WithError(err).Error("settings: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// UpdateSettings grava os pares chave/valor recebidos
func UpdateSettings(service settings.SettingsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var values map[string]string
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidInput, "Formato de requisição inválido")
			return
		}

		if len(values) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingField, "Nenhuma configuração informada")
			return
		}

		if err := service.Update(values); err != nil {
			logger.WithError(err).Error("settings: failed to update settings")
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao gravar configurações")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
