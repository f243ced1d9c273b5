package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/internal/usecases/costing"
	"github.com/vfg2006/valuation-api/pkg/log"
)

func ListProducts(service costing.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		products, err := service.ListProducts(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		if products == nil {
			products = []*domain.Product{}
		}
		writeJSON(w, http.StatusOK, products)
	})
}

func CreateProduct(service costing.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.CreateProductRequest
		if !decodeBody(w, r, &req) {
			return
		}

		product, err := service.CreateProduct(r.Context(), id, &req)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, product)
	})
}

// AddStage inclui uma etapa de produção e devolve o produto com o custo recalculado
func AddStage(service costing.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.StageRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ProductID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, err := service.AddStage(r.Context(), &req)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"product_id":   product.ID,
			"product_cost": product.Cost,
		}).Info("Etapa de produção incluída")

		writeJSON(w, http.StatusCreated, product)
	})
}

func UpdateStage(service costing.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		var req domain.StageRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ProductID = params.ByName("id")
		req.ID = params.ByName("stage_id")

		product, err := service.UpdateStage(r.Context(), &req)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, product)
	})
}

func DeleteStage(service costing.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		product, err := service.DeleteStage(r.Context(), params.ByName("id"), params.ByName("stage_id"))
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, product)
	})
}
