package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/internal/usecases/costing"
	"github.com/vfg2006/valuation-api/pkg/log"
)

func ListFixedCosts(service costing.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		costs, err := service.ListFixedCosts(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		if costs == nil {
			costs = []*domain.FixedCost{}
		}
		writeJSON(w, http.StatusOK, costs)
	})
}

func AddFixedCost(service costing.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.CreateCostRequest
		if !decodeBody(w, r, &req) {
			return
		}

		cost, err := service.AddFixedCost(r.Context(), id, &req)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"company_id": id,
			"cost_id":    cost.ID,
		}).Info("Custo fixo cadastrado")

		writeJSON(w, http.StatusCreated, cost)
	})
}

func ListVariableCosts(service costing.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		costs, err := service.ListVariableCosts(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		if costs == nil {
			costs = []*domain.VariableCost{}
		}
		writeJSON(w, http.StatusOK, costs)
	})
}

func AddVariableCost(service costing.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.CreateCostRequest
		if !decodeBody(w, r, &req) {
			return
		}

		cost, err := service.AddVariableCost(r.Context(), id, &req)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, cost)
	})
}

// DeleteCost remove um custo fixo ou variável; :kind aceita fixed ou variable
func DeleteCost(service costing.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		companyID := params.ByName("id")
		kind := domain.CostKind(params.ByName("kind"))
		costID := params.ByName("cost_id")

		if err := service.DeleteCost(r.Context(), companyID, kind, costID); err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
