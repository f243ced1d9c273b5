package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/internal/usecases/costing"
	"github.com/vfg2006/valuation-api/internal/usecases/valuating"
	"github.com/vfg2006/valuation-api/pkg/log"
)

func ListCompanies(service costing.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companies, err := service.ListCompanies(r.Context())
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		if companies == nil {
			companies = []*domain.Company{}
		}
		writeJSON(w, http.StatusOK, companies)
	})
}

func CreateCompany(service costing.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateCompanyRequest
		if !decodeBody(w, r, &req) {
			return
		}

		company, err := service.CreateCompany(r.Context(), &req)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, company)
	})
}

func GetCompany(service costing.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		company, err := service.GetCompany(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, company)
	})
}

// ListSectors devolve a tabela de múltiplos de mercado por setor
func ListSectors(service valuating.Valuator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sectors := service.Sectors()
		log.ForContext(r.Context()).WithField("sectors", len(sectors)).Debug("Listando setores")
		writeJSON(w, http.StatusOK, sectors)
	})
}
