package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/internal/usecases/valuating"
	"github.com/vfg2006/valuation-api/pkg/log"
)

// GetValuation devolve o resultado do valuation, a projeção de 12 meses e os parâmetros usados
func GetValuation(service valuating.Valuator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger := log.ForContext(r.Context()).WithField("company_id", id)

		report, err := service.GetValuation(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		logger.WithField("metodo_recomendado", report.MetodoRecomendado).Debug("Valuation enviado")
		writeJSON(w, http.StatusOK, report)
	})
}

// UpsertValuation grava os parâmetros de valuation da empresa e devolve o valuation recalculado
func UpsertValuation(service valuating.Valuator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpsertValuationConfigRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.CompanyID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := service.UpsertConfig(r.Context(), &req)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func GetFinancials(service valuating.Valuator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		summary, err := service.GetFinancials(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func GetValuationHistory(service valuating.Valuator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		snapshots, err := service.History(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		if snapshots == nil {
			snapshots = []*domain.ValuationSnapshot{}
		}
		writeJSON(w, http.StatusOK, snapshots)
	})
}
