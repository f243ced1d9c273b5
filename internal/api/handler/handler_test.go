package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/valuation-api/internal/api/handler"
	"github.com/vfg2006/valuation-api/internal/api/handler/router"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/internal/finance"
	"github.com/vfg2006/valuation-api/internal/scheduler"
	"github.com/vfg2006/valuation-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/valuation-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/valuation-api/internal/usecases/costing"
	costingmocks "github.com/vfg2006/valuation-api/internal/usecases/costing/mocks"
	"github.com/vfg2006/valuation-api/internal/usecases/valuating"
	valuatingmocks "github.com/vfg2006/valuation-api/internal/usecases/valuating/mocks"
	"github.com/vfg2006/valuation-api/pkg/apiErrors"
	"github.com/vfg2006/valuation-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newRequest(method, path, body string, roleID int) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	if roleID > 0 {
		claims := &domain.Claims{UserID: 1, UserRoleID: roleID}
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}
	return req
}

func serve(rt http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	rt.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetValuation(t *testing.T) {
	ctrl := gomock.NewController(t)
	valuator := valuatingmocks.NewMockValuator(ctrl)
	rt := router.New(router.WithRoutes(handler.Valuation(valuator)...))

	result := finance.Valuate(20000, 10000, "Tecnologia", 0.12, 0.05, 5)
	report := &domain.ValuationReport{
		ValuationResult: result,
		Projecao:        finance.ProjectTwelveMonths(20000, 10000, finance.AnnualToMonthlyRate(0.05)),
		Config:          domain.ValuationConfig{CompanyID: "CMP001", DiscountRate: 0.12, GrowthRate: 0.05, ProjectionYears: 5},
	}

	valuator.EXPECT().GetValuation(gomock.Any(), "CMP001").Return(report, nil)

	rr := serve(rt, newRequest(http.MethodGet, "/v1/companies/CMP001/valuation", "", middleware.RoleViewer))
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	// A interface consome os campos do resultado no nível raiz
	for _, key := range []string{"dcf", "multiploEbitda", "multiploReceita", "mediaValuation", "metodoRecomendado", "detalhes", "projecao", "config"} {
		assert.Contains(t, body, key)
	}
	assert.Equal(t, "ebitda", body["metodoRecomendado"])
	assert.Len(t, body["projecao"], 12)

	detalhes := body["detalhes"].(map[string]any)
	assert.InDelta(t, 120000.0, detalhes["ebitdaAnual"], 1e-9)
	assert.InDelta(t, 240000.0, detalhes["receitaAnual"], 1e-9)
}

func TestGetValuation_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "empresa inexistente",
			err:            &valuating.ValuationError{Err: valuating.ErrCompanyNotFound, Code: apiErrors.ErrCompanyNotFound, Details: "XXX"},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrCompanyNotFound,
		},
		{
			name:           "erro de banco",
			err:            &valuating.ValuationError{Err: errors.New("pq: conexão perdida"), Code: apiErrors.ErrDatabaseOperation},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrDatabaseOperation,
		},
		{
			name:           "erro desconhecido",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			valuator := valuatingmocks.NewMockValuator(ctrl)
			rt := router.New(router.WithRoutes(handler.Valuation(valuator)...))

			valuator.EXPECT().GetValuation(gomock.Any(), "XXX").Return(nil, tt.err)

			rr := serve(rt, newRequest(http.MethodGet, "/v1/companies/XXX/valuation", "", middleware.RoleAdmin))
			assert.Equal(t, tt.expectedStatus, rr.Code)

			apiErr := decodeError(t, rr)
			assert.Equal(t, tt.expectedCode, apiErr.Code)
			assert.NotContains(t, apiErr.Message, "pq:")
		})
	}
}

func TestUpsertValuation(t *testing.T) {
	ctrl := gomock.NewController(t)
	valuator := valuatingmocks.NewMockValuator(ctrl)
	rt := router.New(router.WithRoutes(handler.Valuation(valuator)...))

	valuator.EXPECT().UpsertConfig(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *domain.UpsertValuationConfigRequest) (*domain.ValuationReport, error) {
			assert.Equal(t, "CMP001", req.CompanyID)
			require.NotNil(t, req.DiscountRate)
			assert.Equal(t, 0.15, *req.DiscountRate)
			assert.Nil(t, req.GrowthRate)
			return &domain.ValuationReport{Config: domain.ValuationConfig{CompanyID: "CMP001", DiscountRate: 0.15}}, nil
		},
	)

	rr := serve(rt, newRequest(http.MethodPost, "/v1/companies/CMP001/valuation", `{"discount_rate": 0.15}`, middleware.RoleAnalyst))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUpsertValuation_ViewerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	valuator := valuatingmocks.NewMockValuator(ctrl)
	rt := router.New(router.WithRoutes(handler.Valuation(valuator)...))

	rr := serve(rt, newRequest(http.MethodPost, "/v1/companies/CMP001/valuation", `{}`, middleware.RoleViewer))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestUpsertValuation_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	valuator := valuatingmocks.NewMockValuator(ctrl)
	rt := router.New(router.WithRoutes(handler.Valuation(valuator)...))

	rr := serve(rt, newRequest(http.MethodPost, "/v1/companies/CMP001/valuation", `{"discount_rate":`, middleware.RoleAdmin))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rr).Code)
}

func TestUpsertValuation_InvalidParameter(t *testing.T) {
	ctrl := gomock.NewController(t)
	valuator := valuatingmocks.NewMockValuator(ctrl)
	rt := router.New(router.WithRoutes(handler.Valuation(valuator)...))

	valuator.EXPECT().UpsertConfig(gomock.Any(), gomock.Any()).Return(nil, &valuating.ValuationError{
		Err:     valuating.ErrInvalidParameter,
		Code:    apiErrors.ErrInvalidParameter,
		Details: "discount_rate deve estar entre 0 (exclusivo) e 1",
	})

	rr := serve(rt, newRequest(http.MethodPost, "/v1/companies/CMP001/valuation", `{"discount_rate": 0}`, middleware.RoleAdmin))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	apiErr := decodeError(t, rr)
	assert.Equal(t, apiErrors.ErrInvalidParameter, apiErr.Code)
	assert.Equal(t, "discount_rate deve estar entre 0 (exclusivo) e 1", apiErr.Details)
}

func TestGetFinancials_NullBreakEven(t *testing.T) {
	ctrl := gomock.NewController(t)
	valuator := valuatingmocks.NewMockValuator(ctrl)
	rt := router.New(router.WithRoutes(handler.Valuation(valuator)...))

	valuator.EXPECT().GetFinancials(gomock.Any(), "CMP001").Return(&domain.FinancialSummary{
		CompanyID:           "CMP001",
		BreakEvenApplicable: false,
	}, nil)

	rr := serve(rt, newRequest(http.MethodGet, "/v1/companies/CMP001/financials", "", middleware.RoleViewer))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"break_even_units":null`)
	assert.Contains(t, rr.Body.String(), `"break_even_applicable":false`)
}

func TestGetValuationHistory_EmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	valuator := valuatingmocks.NewMockValuator(ctrl)
	rt := router.New(router.WithRoutes(handler.Valuation(valuator)...))

	valuator.EXPECT().History(gomock.Any(), "CMP001").Return(nil, nil)

	rr := serve(rt, newRequest(http.MethodGet, "/v1/companies/CMP001/valuation/history", "", middleware.RoleViewer))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListSectors(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := costingmocks.NewMockCatalog(ctrl)
	valuator := valuatingmocks.NewMockValuator(ctrl)
	rt := router.New(router.WithRoutes(handler.Companies(catalog, valuator)...))

	valuator.EXPECT().Sectors().Return(finance.Sectors())

	rr := serve(rt, newRequest(http.MethodGet, "/v1/sectors", "", middleware.RoleViewer))
	require.Equal(t, http.StatusOK, rr.Code)

	var sectors []finance.SectorMultiples
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sectors))
	assert.Len(t, sectors, len(finance.Sectors()))
	assert.Equal(t, finance.DefaultSector, sectors[len(sectors)-1].Sector)
}

func TestCreateCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := costingmocks.NewMockCatalog(ctrl)
	rt := router.New(router.WithRoutes(handler.Companies(catalog, nil)...))

	catalog.EXPECT().CreateCompany(gomock.Any(), &domain.CreateCompanyRequest{Name: "Acme", Sector: "Tecnologia"}).
		Return(&domain.Company{ID: "CMP001", Name: "Acme", Sector: "Tecnologia"}, nil)

	rr := serve(rt, newRequest(http.MethodPost, "/v1/companies", `{"name":"Acme","sector":"Tecnologia"}`, middleware.RoleAnalyst))
	require.Equal(t, http.StatusCreated, rr.Code)

	var company domain.Company
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &company))
	assert.Equal(t, "CMP001", company.ID)
}

func TestGetCompany_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := costingmocks.NewMockCatalog(ctrl)
	rt := router.New(router.WithRoutes(handler.Companies(catalog, nil)...))

	catalog.EXPECT().GetCompany(gomock.Any(), "XXX").
		Return(nil, costing.NewCostingError(costing.ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, "XXX"))

	rr := serve(rt, newRequest(http.MethodGet, "/v1/companies/XXX", "", middleware.RoleViewer))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apiErrors.ErrCompanyNotFound, decodeError(t, rr).Code)
}

func TestDeleteCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := costingmocks.NewMockCatalog(ctrl)
	rt := router.New(router.WithRoutes(handler.Costs(catalog)...))

	catalog.EXPECT().DeleteCost(gomock.Any(), "CMP001", domain.CostKindVariable, "VAR001").Return(nil)

	rr := serve(rt, newRequest(http.MethodDelete, "/v1/companies/CMP001/costs/variable/VAR001", "", middleware.RoleAnalyst))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestAddFixedCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := costingmocks.NewMockCatalog(ctrl)
	rt := router.New(router.WithRoutes(handler.Costs(catalog)...))

	catalog.EXPECT().AddFixedCost(gomock.Any(), "CMP001", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, req *domain.CreateCostRequest) (*domain.FixedCost, error) {
			require.NotNil(t, req.Periodicity)
			assert.Equal(t, finance.PeriodicityAnnual, *req.Periodicity)
			return &domain.FixedCost{ID: "FIX001", Amount: req.Amount, Periodicity: *req.Periodicity}, nil
		},
	)

	rr := serve(rt, newRequest(http.MethodPost, "/v1/companies/CMP001/costs/fixed", `{"name":"Seguro","amount":1200,"periodicity":"anual"}`, middleware.RoleAdmin))
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := costingmocks.NewMockCatalog(ctrl)
	rt := router.New(router.WithRoutes(handler.Products(catalog)...))

	product := &domain.Product{ID: "PRD001", Cost: 45}

	catalog.EXPECT().AddStage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *domain.StageRequest) (*domain.Product, error) {
			assert.Equal(t, "PRD001", req.ProductID)
			assert.Equal(t, "Corte", *req.Name)
			return product, nil
		},
	)
	catalog.EXPECT().UpdateStage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *domain.StageRequest) (*domain.Product, error) {
			assert.Equal(t, "STG001", req.ID)
			assert.Equal(t, "PRD001", req.ProductID)
			return product, nil
		},
	)
	catalog.EXPECT().DeleteStage(gomock.Any(), "PRD001", "STG001").
		Return(nil, costing.NewCostingError(costing.ErrStageNotFound, apiErrors.ErrStageNotFound, "STG001"))

	rr := serve(rt, newRequest(http.MethodPost, "/v1/products/PRD001/stages", `{"name":"Corte","cost":45}`, middleware.RoleAnalyst))
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(rt, newRequest(http.MethodPut, "/v1/products/PRD001/stages/STG001", `{"cost":45}`, middleware.RoleAnalyst))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(rt, newRequest(http.MethodDelete, "/v1/products/PRD001/stages/STG001", "", middleware.RoleAnalyst))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	authenticator := authmocks.NewMockAuthenticator(ctrl)
	rt := router.New(router.WithRoutes(handler.Authentication(authenticator)...))

	authenticator.EXPECT().LoginUser(gomock.Any(), "maria@empresa.com", "Senha123").Return("token-jwt", nil)
	authenticator.EXPECT().LoginUser(gomock.Any(), "maria@empresa.com", "errada").
		Return("", authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 7, "Senha incorreta"))

	rr := serve(rt, newRequest(http.MethodPost, "/v1/login", `{"email":"maria@empresa.com","password":"Senha123"}`, 0))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"token":"token-jwt"}`, rr.Body.String())

	rr = serve(rt, newRequest(http.MethodPost, "/v1/login", `{"email":"maria@empresa.com","password":"errada"}`, 0))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeError(t, rr).Code)
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	authenticator := authmocks.NewMockAuthenticator(ctrl)
	rt := router.New(router.WithRoutes(handler.Authentication(authenticator)...))

	authenticator.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, "Senha123", user.PasswordHash)
			return &domain.User{ID: 3, Name: user.Name, Email: user.Email}, nil
		},
	)

	body := `{"name":"Maria","email":"maria@empresa.com","password":"Senha123"}`
	rr := serve(rt, newRequest(http.MethodPost, "/v1/register", body, 0))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "Senha123")
}

func TestListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	authenticator := authmocks.NewMockAuthenticator(ctrl)
	rt := router.New(router.WithRoutes(handler.Users(authenticator)...))

	authenticator.EXPECT().ListUsers(gomock.Any()).Return([]*domain.User{{ID: 7, Name: "Maria", Email: "maria@empresa.com", RoleID: 3}}, nil)

	rr := serve(rt, newRequest(http.MethodGet, "/v1/users", "", middleware.RoleAdmin))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"active":false`)

	rr = serve(rt, newRequest(http.MethodGet, "/v1/users", "", middleware.RoleAnalyst))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestUpdateUser_ActivatesPendingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	authenticator := authmocks.NewMockAuthenticator(ctrl)
	rt := router.New(router.WithRoutes(handler.Users(authenticator)...))

	authenticator.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *domain.UpdateUserRequest) (*domain.User, error) {
			assert.Equal(t, 7, req.ID)
			require.NotNil(t, req.Active)
			assert.True(t, *req.Active)
			assert.Nil(t, req.RoleID)
			return &domain.User{ID: 7, Name: "Maria", Active: true, RoleID: 3}, nil
		},
	)

	rr := serve(rt, newRequest(http.MethodPut, "/v1/users/7", `{"active":true}`, middleware.RoleAdmin))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"active":true`)
}

func TestUpdateUser_Rejections(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		roleID         int
		expectedStatus int
		expectedCode   string
	}{
		{"analista não administra usuários", "/v1/users/7", `{"active":true}`, middleware.RoleAnalyst, http.StatusForbidden, ""},
		{"ID não numérico", "/v1/users/abc", `{"active":true}`, middleware.RoleAdmin, http.StatusBadRequest, apiErrors.ErrInvalidFormat},
		{"administrador não se desativa", "/v1/users/1", `{"active":false}`, middleware.RoleAdmin, http.StatusForbidden, apiErrors.ErrInsufficientPrivilege},
		{"administrador não se rebaixa", "/v1/users/1", `{"role_id":3}`, middleware.RoleAdmin, http.StatusForbidden, apiErrors.ErrInsufficientPrivilege},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authenticator := authmocks.NewMockAuthenticator(ctrl)
			rt := router.New(router.WithRoutes(handler.Users(authenticator)...))

			rr := serve(rt, newRequest(http.MethodPut, tt.path, tt.body, tt.roleID))
			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rr).Code)
			}
		})
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	authenticator := authmocks.NewMockAuthenticator(ctrl)
	rt := router.New(router.WithRoutes(handler.Users(authenticator)...))

	authenticator.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
		Return(nil, authenticating.NewUserAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, 99, "Usuário não encontrado"))

	rr := serve(rt, newRequest(http.MethodPut, "/v1/users/99", `{"active":true}`, middleware.RoleAdmin))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apiErrors.ErrUserNotFound, decodeError(t, rr).Code)
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	authenticator := authmocks.NewMockAuthenticator(ctrl)
	rt := router.New(router.WithRoutes(handler.Users(authenticator)...))

	authenticator.EXPECT().ChangePassword(gomock.Any(), 1, "Senha123", "NovaSenha9").Return(nil)
	authenticator.EXPECT().ChangePassword(gomock.Any(), 1, "Senha123", "fraca").
		Return(authenticating.NewUserAuthError(authenticating.ErrWeakPassword, apiErrors.ErrInvalidRequest, 1, "a senha deve conter pelo menos 8 caracteres"))

	rr := serve(rt, newRequest(http.MethodPut, "/v1/me/password", `{"current_password":"Senha123","new_password":"NovaSenha9"}`, middleware.RoleViewer))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(rt, newRequest(http.MethodPut, "/v1/me/password", `{"current_password":"Senha123","new_password":"fraca"}`, middleware.RoleViewer))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rr).Code)
}

type stubSnapshotJob struct {
	err    error
	period string
}

func (s *stubSnapshotJob) TriggerManualSync(period string) error {
	s.period = period
	return s.err
}

func (s *stubSnapshotJob) GetStatus() map[string]any {
	return map[string]any{"snapshot_running": s.err != nil}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		roleID         int
		job            *stubSnapshotJob
		expectedStatus int
	}{
		{name: "admin dispara snapshot", path: "/v1/cron/valuation-snapshot/run?period=01-2024", roleID: middleware.RoleAdmin, job: &stubSnapshotJob{}, expectedStatus: http.StatusAccepted},
		{name: "analista não pode", path: "/v1/cron/valuation-snapshot/run", roleID: middleware.RoleAnalyst, job: &stubSnapshotJob{}, expectedStatus: http.StatusForbidden},
		{name: "tipo desconhecido", path: "/v1/cron/meta/run", roleID: middleware.RoleAdmin, job: &stubSnapshotJob{}, expectedStatus: http.StatusBadRequest},
		{name: "job em andamento", path: "/v1/cron/all/run", roleID: middleware.RoleAdmin, job: &stubSnapshotJob{err: scheduler.ErrSnapshotAlreadyRunning}, expectedStatus: http.StatusConflict},
		{name: "período inválido", path: "/v1/cron/all/run?period=2024", roleID: middleware.RoleAdmin, job: &stubSnapshotJob{err: errors.New("período inválido")}, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := router.New(router.WithRoutes(handler.CronJobs(handler.CronJobServices{ValuationSnapshotService: tt.job})...))

			rr := serve(rt, newRequest(http.MethodPost, tt.path, "", tt.roleID))
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestRunCronJob_PassesPeriod(t *testing.T) {
	job := &stubSnapshotJob{}
	rt := router.New(router.WithRoutes(handler.CronJobs(handler.CronJobServices{ValuationSnapshotService: job})...))

	rr := serve(rt, newRequest(http.MethodPost, "/v1/cron/valuation-snapshot/run?period=03-2024", "", middleware.RoleAdmin))
	require.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "03-2024", job.period)

	rr = serve(rt, newRequest(http.MethodGet, "/v1/cron/status", "", middleware.RoleAdmin))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), handler.CronJobTypeValuationSnapshot)
}
