package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/vfg2006/brief-generator-api/infrastructure/integrator/llm"
	"github.com/vfg2006/brief-generator-api/internal/domain"
	"github.com/vfg2006/brief-generator-api/internal/usecases/briefing"
	"github.com/vfg2006/brief-generator-api/pkg/apiErrors"
	"github.com/vfg2006/brief-generator-api/pkg/log"
)

// maxBriefUploadBytes limita o tamanho total do formulário multipart.
const maxBriefUploadBytes = 32 << 20

// GenerateBrief recebe o lote semanal via multipart/form-data: campos
// week_id, notes, style_sample e system_instruction, e arquivos em
// metrics_files e market_files.
func GenerateBrief(service briefing.BriefGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := r.ParseMultipartForm(maxBriefUploadBytes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidInput, "Formulário multipart inválido")
			return
		}

		request := &domain.BriefRequest{
			WeekID:            r.FormValue("week_id"),
			Notes:             r.FormValue("notes"),
			StyleSample:       r.FormValue("style_sample"),
			SystemInstruction: r.FormValue("system_instruction"),
		}

		if request.WeekID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingField, "O campo week_id é obrigatório")
			return
		}

		metricsFiles, err := readUploadedFiles(r.MultipartForm.File["metrics_files"])
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidInput, "Erro ao ler arquivos de métricas")
			return
		}
		request.MetricsFiles = metricsFiles

		marketFiles, err := readUploadedFiles(r.MultipartForm.File["market_files"])
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidInput, "Erro ao ler relatórios de mercado")
			return
		}
		request.MarketFiles = marketFiles

		logger.WithFields(log.Fields{
			"week_id":       request.WeekID,
			"metrics_files": len(request.MetricsFiles),
			"market_files":  len(request.MarketFiles),
		}).Info("briefs: generating weekly brief")

		result, err := service.Generate(r.Context(), request)
		if err != nil {
			handleBriefError(w, logger, request.WeekID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("briefs: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func handleBriefError(w http.ResponseWriter, logger log.Logger, weekID string, err error) {
	switch {
	case errors.Is(err, llm.ErrGeneration):
		// As métricas extraídas já foram gravadas; apenas a composição
		// precisa ser repetida.
		logger.WithField("week_id", weekID).WithError(err).Error("briefs: brief composition failed")
		apiErrors.WriteError(w, apiErrors.ErrBriefGeneration, "Erro ao compor o brief; as métricas da semana foram gravadas")

	case isWeekIDError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidWeekID, err.Error())

	default:
		logger.WithField("week_id", weekID).WithError(err).Error("briefs: failed to generate brief")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar o brief semanal")
	}
}

// readUploadedFiles materializa os arquivos enviados no formulário.
func readUploadedFiles(headers []*multipart.FileHeader) ([]domain.BriefFile, error) {
	files := make([]domain.BriefFile, 0, len(headers))

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}

		files = append(files, domain.BriefFile{
			Name:     header.Filename,
			MimeType: header.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	return files, nil
}
