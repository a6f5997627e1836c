package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos pela API. O prefixo identifica a camada de
// origem: AUTH autenticação, VAL validação, EXT extração, GEN geração,
// SRV infraestrutura.
const (
	ErrInvalidCredentials = "AUTH_001"
	ErrExpiredToken       = "AUTH_002"
	ErrInvalidToken       = "AUTH_003"
	ErrMissingToken       = "AUTH_004"
	ErrUserNotFound       = "AUTH_005"
	ErrUserInactive       = "AUTH_006"
	ErrForbidden          = "AUTH_007"
	ErrUserAlreadyExists  = "AUTH_008"

	ErrInvalidInput   = "VAL_001"
	ErrMissingField   = "VAL_002"
	ErrInvalidWeekID  = "VAL_003"

	ErrMetricsExtraction = "EXT_001"
	ErrBriefGeneration   = "GEN_001"

	ErrInternalServer = "SRV_001"
	ErrDatabase       = "SRV_002"
	ErrNotFound       = "SRV_003"
	ErrUnavailable    = "SRV_004"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrExpiredToken:       http.StatusUnauthorized,
	ErrInvalidToken:       http.StatusUnauthorized,
	ErrMissingToken:       http.StatusUnauthorized,
	ErrUserNotFound:       http.StatusNotFound,
	ErrUserInactive:       http.StatusForbidden,
	ErrForbidden:          http.StatusForbidden,
	ErrUserAlreadyExists:  http.StatusConflict,

	ErrInvalidInput:  http.StatusBadRequest,
	ErrMissingField:  http.StatusBadRequest,
	ErrInvalidWeekID: http.StatusBadRequest,

	ErrMetricsExtraction: http.StatusUnprocessableEntity,
	ErrBriefGeneration:   http.StatusBadGateway,

	ErrInternalServer: http.StatusInternalServerError,
	ErrDatabase:       http.StatusInternalServerError,
	ErrNotFound:       http.StatusNotFound,
	ErrUnavailable:    http.StatusServiceUnavailable,
}

// APIError é o corpo padrão de resposta de erro.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

func New(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// HTTPStatus resolve o status HTTP de um código; códigos desconhecidos
// caem em 500.
func HTTPStatus(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError serializa o erro no formato padrão da API.
func WriteError(w http.ResponseWriter, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(HTTPStatus(code))

	_ = json.NewEncoder(w).Encode(map[string]*APIError{
		"error": New(code, message),
	})
}
