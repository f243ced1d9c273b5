package handler

import (
	"net/http"

	"github.com/vfg2006/valuation-api/internal/api/handler/router"
	"github.com/vfg2006/valuation-api/internal/usecases/authenticating"
	"github.com/vfg2006/valuation-api/internal/usecases/costing"
	"github.com/vfg2006/valuation-api/internal/usecases/valuating"
	"github.com/vfg2006/valuation-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/me/password",
			Method:      http.MethodPut,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Companies(catalog costing.Catalog, valuator valuating.Valuator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sectors",
			Method:      http.MethodGet,
			Handler:     ListSectors(valuator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies",
			Method:      http.MethodGet,
			Handler:     ListCompanies(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies",
			Method:      http.MethodPost,
			Handler:     CreateCompany(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/companies/:id",
			Method:      http.MethodGet,
			Handler:     GetCompany(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Costs(catalog costing.Catalog) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/costs/fixed",
			Method:      http.MethodGet,
			Handler:     ListFixedCosts(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/costs/fixed",
			Method:      http.MethodPost,
			Handler:     AddFixedCost(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/companies/:id/costs/variable",
			Method:      http.MethodGet,
			Handler:     ListVariableCosts(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/costs/variable",
			Method:      http.MethodPost,
			Handler:     AddVariableCost(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/companies/:id/costs/:kind/:cost_id",
			Method:      http.MethodDelete,
			Handler:     DeleteCost(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
	}
}

func Products(catalog costing.Catalog) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/products/:id/stages",
			Method:      http.MethodPost,
			Handler:     AddStage(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/products/:id/stages/:stage_id",
			Method:      http.MethodPut,
			Handler:     UpdateStage(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/products/:id/stages/:stage_id",
			Method:      http.MethodDelete,
			Handler:     DeleteStage(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
	}
}

func Valuation(valuator valuating.Valuator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/financials",
			Method:      http.MethodGet,
			Handler:     GetFinancials(valuator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/valuation",
			Method:      http.MethodGet,
			Handler:     GetValuation(valuator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/valuation",
			Method:      http.MethodPost,
			Handler:     UpsertValuation(valuator),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/companies/:id/valuation/history",
			Method:      http.MethodGet,
			Handler:     GetValuationHistory(valuator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
