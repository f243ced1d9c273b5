package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/valuation-api/internal/usecases/authenticating"
	"github.com/vfg2006/valuation-api/internal/usecases/costing"
	"github.com/vfg2006/valuation-api/internal/usecases/valuating"
	"github.com/vfg2006/valuation-api/pkg/apiErrors"
	"github.com/vfg2006/valuation-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeBody decodifica o corpo JSON e responde VAL_001 em caso de erro
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

// writeUseCaseError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		valuationErr *valuating.ValuationError
		costingErr   *costing.CostingError
		authErr      *authenticating.AuthError
		code         string
		message      string
		details      string
	)

	switch {
	case errors.As(err, &valuationErr):
		code, message, details = valuationErr.Code, valuationErr.Err.Error(), valuationErr.Details
	case errors.As(err, &costingErr):
		code, message, details = costingErr.Code, costingErr.Err.Error(), costingErr.Details
	case errors.As(err, &authErr):
		code, message, details = authErr.Code, authErr.Err.Error(), authErr.Details
	default:
		code = apiErrors.ErrInternalServer
	}

	logger := log.ForContext(r.Context()).WithError(err)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("Erro ao processar requisição")
		// Não expõe detalhes do driver para o cliente
		message, details = "Erro interno no servidor", ""
		if code == apiErrors.ErrDatabaseOperation {
			message = "Erro ao realizar operação no banco de dados"
		}
	} else {
		logger.Warn("Requisição rejeitada")
	}

	var body any
	if details != "" {
		body = details
	}
	apiErrors.WriteError(w, code, message, body)
}
