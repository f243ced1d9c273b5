package valuating_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/valuation-api/infrastructure/repository/mocks"
	"github.com/vfg2006/valuation-api/internal/config"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/internal/finance"
	"github.com/vfg2006/valuation-api/internal/usecases/valuating"
	valuatingmocks "github.com/vfg2006/valuation-api/internal/usecases/valuating/mocks"
	"github.com/vfg2006/valuation-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	companyRepo  *mocks.MockCompanyRepository
	costRepo     *mocks.MockCostRepository
	productRepo  *mocks.MockProductRepository
	configRepo   *mocks.MockValuationConfigRepository
	snapshotRepo *mocks.MockValuationSnapshotRepository
	cache        *valuatingmocks.MockReportCache
}

func testConfig() *config.Config {
	return &config.Config{
		Valuation: config.Valuation{
			DefaultDiscountRate:      0.12,
			DefaultGrowthRate:        0.05,
			DefaultProjectionYears:   5,
			EstimatedUnitsPerProduct: 10,
			TerminalPolicy:           "omit",
			TerminalClampSpread:      0.01,
			HonorPreferredMethod:     true,
			WeightDCF:                1,
			WeightEbitda:             1,
			WeightReceita:            1,
		},
	}
}

func setupService(t *testing.T, cfg *config.Config) (*valuating.Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		companyRepo:  mocks.NewMockCompanyRepository(ctrl),
		costRepo:     mocks.NewMockCostRepository(ctrl),
		productRepo:  mocks.NewMockProductRepository(ctrl),
		configRepo:   mocks.NewMockValuationConfigRepository(ctrl),
		snapshotRepo: mocks.NewMockValuationSnapshotRepository(ctrl),
		cache:        valuatingmocks.NewMockReportCache(ctrl),
	}

	service := valuating.NewService(m.companyRepo, m.costRepo, m.productRepo, m.configRepo, m.snapshotRepo, m.cache, cfg)
	return service, m
}

func techCompany() *domain.Company {
	return &domain.Company{ID: "CMP001", Name: "Acme", Sector: "Tecnologia"}
}

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func methodPtr(m finance.Method) *finance.Method { return &m }

func TestGetValuation_EstimatesRevenueFromProducts(t *testing.T) {
	service, m := setupService(t, testConfig())
	ctx := context.Background()

	m.companyRepo.EXPECT().GetByID(ctx, "CMP001").Return(techCompany(), nil)
	m.cache.EXPECT().GetReport(ctx, "CMP001").Return(nil, false, nil)
	m.configRepo.EXPECT().GetByCompany(ctx, "CMP001").Return(nil, nil)
	m.costRepo.EXPECT().ListFixed(ctx, "CMP001").Return([]*domain.FixedCost{
		{ID: "F1", Amount: 10000, Periodicity: finance.PeriodicityMonthly},
	}, nil)
	m.productRepo.EXPECT().ListByCompany(ctx, "CMP001").Return([]*domain.Product{
		{ID: "P1", SalePrice: 1000},
		{ID: "P2", SalePrice: 1000},
	}, nil)
	m.cache.EXPECT().SetReport(ctx, gomock.Any()).Return(nil)

	report, err := service.GetValuation(ctx, "CMP001")
	require.NoError(t, err)

	// 2 produtos * 1000 * 10 unidades = 20000 de receita mensal
	expected := finance.Valuate(20000, 10000, "Tecnologia", 0.12, 0.05, 5)
	assert.Equal(t, expected, report.ValuationResult)
	assert.True(t, report.ReceitaEstimada)
	assert.Equal(t, finance.MethodEbitda, report.MetodoRecomendado)
	assert.Equal(t, 0.12, report.Config.DiscountRate)
	assert.Equal(t, 5, report.Config.ProjectionYears)

	require.Len(t, report.Projecao, finance.ProjectionMonths)
	assert.Equal(t, finance.ProjectTwelveMonths(20000, 10000, 0.05/12), report.Projecao)
}

func TestGetValuation_UsesConfiguredRevenue(t *testing.T) {
	service, m := setupService(t, testConfig())
	ctx := context.Background()

	m.companyRepo.EXPECT().GetByID(ctx, "CMP001").Return(techCompany(), nil)
	m.cache.EXPECT().GetReport(ctx, "CMP001").Return(nil, false, nil)
	m.configRepo.EXPECT().GetByCompany(ctx, "CMP001").Return(&domain.ValuationConfig{
		CompanyID:       "CMP001",
		MonthlyRevenue:  floatPtr(30000),
		DiscountRate:    0.15,
		GrowthRate:      0.03,
		ProjectionYears: 10,
		ManualMultiple:  floatPtr(6),
	}, nil)
	m.costRepo.EXPECT().ListFixed(ctx, "CMP001").Return([]*domain.FixedCost{
		{ID: "F1", Amount: 120000, Periodicity: finance.PeriodicityAnnual},
	}, nil)
	m.productRepo.EXPECT().ListByCompany(gomock.Any(), gomock.Any()).Times(0)
	m.cache.EXPECT().SetReport(ctx, gomock.Any()).Return(nil)

	report, err := service.GetValuation(ctx, "CMP001")
	require.NoError(t, err)

	assert.False(t, report.ReceitaEstimada)
	assert.Equal(t, 30000.0, report.Detalhes.ReceitaMensal)
	assert.Equal(t, 10000.0, report.Detalhes.CustosMensais)
	assert.Equal(t, 10, report.Detalhes.AnosProjecao)
	// Múltiplo manual substitui a média do setor
	assert.InDelta(t, 240000*6, report.MultiploEbitda, 1e-6)
}

func TestGetValuation_CacheHit(t *testing.T) {
	service, m := setupService(t, testConfig())
	ctx := context.Background()

	cached := &domain.ValuationReport{Config: domain.ValuationConfig{CompanyID: "CMP001"}}

	m.companyRepo.EXPECT().GetByID(ctx, "CMP001").Return(techCompany(), nil)
	m.cache.EXPECT().GetReport(ctx, "CMP001").Return(cached, true, nil)

	report, err := service.GetValuation(ctx, "CMP001")
	require.NoError(t, err)
	assert.Same(t, cached, report)
}

func TestGetValuation_CacheErrorStillCalculates(t *testing.T) {
	service, m := setupService(t, testConfig())
	ctx := context.Background()

	m.companyRepo.EXPECT().GetByID(ctx, "CMP001").Return(techCompany(), nil)
	m.cache.EXPECT().GetReport(ctx, "CMP001").Return(nil, false, errors.New("redis fora"))
	m.configRepo.EXPECT().GetByCompany(ctx, "CMP001").Return(nil, nil)
	m.costRepo.EXPECT().ListFixed(ctx, "CMP001").Return(nil, nil)
	m.productRepo.EXPECT().ListByCompany(ctx, "CMP001").Return(nil, nil)
	m.cache.EXPECT().SetReport(ctx, gomock.Any()).Return(errors.New("redis fora"))

	report, err := service.GetValuation(ctx, "CMP001")
	require.NoError(t, err)

	// Sem receita e sem custos todos os métodos degradam para zero
	assert.Equal(t, 0.0, report.MediaValuation)
	assert.Equal(t, finance.MethodDCF, report.MetodoRecomendado)
}

func TestGetValuation_CompanyNotFound(t *testing.T) {
	service, m := setupService(t, testConfig())
	ctx := context.Background()

	m.companyRepo.EXPECT().GetByID(ctx, "XXX").Return(nil, nil)

	_, err := service.GetValuation(ctx, "XXX")
	require.Error(t, err)
	assert.True(t, errors.Is(err, valuating.ErrCompanyNotFound))

	var valuationErr *valuating.ValuationError
	require.True(t, errors.As(err, &valuationErr))
	assert.Equal(t, apiErrors.ErrCompanyNotFound, valuationErr.Code)
	assert.Equal(t, "XXX", valuationErr.CompanyID)
}

func TestGetValuation_DatabaseError(t *testing.T) {
	service, m := setupService(t, testConfig())
	ctx := context.Background()

	m.companyRepo.EXPECT().GetByID(ctx, "CMP001").Return(techCompany(), nil)
	m.cache.EXPECT().GetReport(ctx, "CMP001").Return(nil, false, nil)
	m.configRepo.EXPECT().GetByCompany(ctx, "CMP001").Return(nil, errors.New("conexão perdida"))

	_, err := service.GetValuation(ctx, "CMP001")
	require.Error(t, err)
	assert.True(t, errors.Is(err, valuating.ErrDatabaseOperation))
}

func TestGetValuation_CompoundCosts(t *testing.T) {
	cfg := testConfig()
	cfg.Valuation.CompoundCosts = true
	service, m := setupService(t, cfg)
	ctx := context.Background()

	m.companyRepo.EXPECT().GetByID(ctx, "CMP001").Return(techCompany(), nil)
	m.cache.EXPECT().GetReport(ctx, "CMP001").Return(nil, false, nil)
	m.configRepo.EXPECT().GetByCompany(ctx, "CMP001").Return(&domain.ValuationConfig{
		CompanyID:       "CMP001",
		MonthlyRevenue:  floatPtr(20000),
		DiscountRate:    0.12,
		GrowthRate:      0.12,
		ProjectionYears: 5,
	}, nil)
	m.costRepo.EXPECT().ListFixed(ctx, "CMP001").Return([]*domain.FixedCost{{Amount: 10000}}, nil)
	m.cache.EXPECT().SetReport(ctx, gomock.Any()).Return(nil)

	report, err := service.GetValuation(ctx, "CMP001")
	require.NoError(t, err)

	monthly := finance.AnnualToMonthlyRate(0.12)
	assert.Equal(t, finance.ProjectTwelveMonthsCompounding(20000, 10000, monthly, monthly), report.Projecao)
	assert.Greater(t, report.Projecao[11].Custos, 10000.0)
	// Desconto igual ao crescimento: valor terminal omitido
	assert.True(t, report.Detalhes.ValorTerminalOmitido)
}

func TestUpsertConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request *domain.UpsertValuationConfigRequest
	}{
		{name: "taxa de desconto zero", request: &domain.UpsertValuationConfigRequest{DiscountRate: floatPtr(0)}},
		{name: "taxa de desconto acima de 100%", request: &domain.UpsertValuationConfigRequest{DiscountRate: floatPtr(1.5)}},
		{name: "crescimento abaixo de -100%", request: &domain.UpsertValuationConfigRequest{GrowthRate: floatPtr(-2)}},
		{name: "anos de projeção zero", request: &domain.UpsertValuationConfigRequest{ProjectionYears: intPtr(0)}},
		{name: "receita negativa", request: &domain.UpsertValuationConfigRequest{MonthlyRevenue: floatPtr(-1)}},
		{name: "múltiplo negativo", request: &domain.UpsertValuationConfigRequest{ManualMultiple: floatPtr(-3)}},
		{name: "método desconhecido", request: &domain.UpsertValuationConfigRequest{PreferredMethod: methodPtr("lucro")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := setupService(t, testConfig())
			ctx := context.Background()
			tt.request.CompanyID = "CMP001"

			m.companyRepo.EXPECT().GetByID(ctx, "CMP001").Return(techCompany(), nil)
			m.configRepo.EXPECT().GetByCompany(ctx, "CMP001").Return(nil, nil)
			m.configRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

			_, err := service.UpsertConfig(ctx, tt.request)
			require.Error(t, err)
			assert.True(t, errors.Is(err, valuating.ErrInvalidParameter))

			var valuationErr *valuating.ValuationError
			require.True(t, errors.As(err, &valuationErr))
			assert.Equal(t, apiErrors.ErrInvalidParameter, valuationErr.Code)
		})
	}
}

func TestUpsertConfig_MergesAndRecalculates(t *testing.T) {
	service, m := setupService(t, testConfig())
	ctx := context.Background()

	var saved *domain.ValuationConfig

	m.companyRepo.EXPECT().GetByID(ctx, "CMP001").Return(techCompany(), nil).Times(2)
	gomock.InOrder(
		m.configRepo.EXPECT().GetByCompany(ctx, "CMP001").Return(nil, nil),
		m.configRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, cfg *domain.ValuationConfig) (*domain.ValuationConfig, error) {
				saved = cfg
				return cfg, nil
			},
		),
		m.cache.EXPECT().Invalidate(ctx, "CMP001").Return(nil),
		m.cache.EXPECT().GetReport(ctx, "CMP001").Return(nil, false, nil),
		m.configRepo.EXPECT().GetByCompany(ctx, "CMP001").DoAndReturn(
			func(context.Context, string) (*domain.ValuationConfig, error) {
				return saved, nil
			},
		),
	)
	m.costRepo.EXPECT().ListFixed(ctx, "CMP001").Return([]*domain.FixedCost{{Amount: 5000}}, nil)
	m.cache.EXPECT().SetReport(ctx, gomock.Any()).Return(nil)

	report, err := service.UpsertConfig(ctx, &domain.UpsertValuationConfigRequest{
		CompanyID:       "CMP001",
		MonthlyRevenue:  floatPtr(15000),
		GrowthRate:      floatPtr(0.08),
		PreferredMethod: methodPtr(finance.MethodDCF),
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, 0.12, saved.DiscountRate) // mantido do default
	assert.Equal(t, 0.08, saved.GrowthRate)
	assert.Equal(t, 5, saved.ProjectionYears)
	assert.Equal(t, finance.MethodDCF, saved.PreferredMethod)

	assert.False(t, report.ReceitaEstimada)
	assert.Equal(t, 15000.0, report.Detalhes.ReceitaMensal)
	assert.Equal(t, finance.MethodDCF, report.MetodoRecomendado)
}

func TestUpsertConfig_AcceptsGrowthAboveOneHundredPercent(t *testing.T) {
	service, m := setupService(t, testConfig())
	ctx := context.Background()

	var saved *domain.ValuationConfig

	m.companyRepo.EXPECT().GetByID(ctx, "CMP001").Return(techCompany(), nil).Times(2)
	gomock.InOrder(
		m.configRepo.EXPECT().GetByCompany(ctx, "CMP001").Return(nil, nil),
		m.configRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, cfg *domain.ValuationConfig) (*domain.ValuationConfig, error) {
				saved = cfg
				return cfg, nil
			},
		),
		m.cache.EXPECT().Invalidate(ctx, "CMP001").Return(nil),
		m.cache.EXPECT().GetReport(ctx, "CMP001").Return(nil, false, nil),
		m.configRepo.EXPECT().GetByCompany(ctx, "CMP001").DoAndReturn(
			func(context.Context, string) (*domain.ValuationConfig, error) {
				return saved, nil
			},
		),
	)
	m.costRepo.EXPECT().ListFixed(ctx, "CMP001").Return([]*domain.FixedCost{{Amount: 5000}}, nil)
	m.cache.EXPECT().SetReport(ctx, gomock.Any()).Return(nil)

	report, err := service.UpsertConfig(ctx, &domain.UpsertValuationConfigRequest{
		CompanyID:      "CMP001",
		MonthlyRevenue: floatPtr(15000),
		GrowthRate:     floatPtr(1.5),
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, 1.5, saved.GrowthRate)

	// Crescimento acima do desconto: o valor terminal é omitido pela política padrão
	assert.True(t, report.Detalhes.ValorTerminalOmitido)
	assert.Equal(t, 1.5, report.Detalhes.TaxaCrescimento)
}

func TestGetFinancials(t *testing.T) {
	service, m := setupService(t, testConfig())
	ctx := context.Background()

	m.companyRepo.EXPECT().GetByID(ctx, "CMP001").Return(techCompany(), nil)
	m.costRepo.EXPECT().ListFixed(ctx, "CMP001").Return([]*domain.FixedCost{
		{Amount: 3000, Periodicity: finance.PeriodicityMonthly},
		{Amount: 12000, Periodicity: finance.PeriodicityAnnual},
	}, nil)
	m.costRepo.EXPECT().ListVariable(ctx, "CMP001").Return(nil, nil)
	m.productRepo.EXPECT().ListByCompany(ctx, "CMP001").Return([]*domain.Product{
		{ID: "P1", Name: "Camiseta", SalePrice: 100, ManualCost: 40},
		{ID: "P2", Name: "Moletom", SalePrice: 200, Stages: []*domain.ProductionStage{{Cost: 30}, {Cost: 50}}},
	}, nil)

	summary, err := service.GetFinancials(ctx, "CMP001")
	require.NoError(t, err)

	assert.Equal(t, 4000.0, summary.TotalFixedCostsMonthly)
	assert.Equal(t, 150.0, summary.AverageSalePrice)
	assert.Equal(t, 60.0, summary.AverageVariableCost)

	require.True(t, summary.BreakEvenApplicable)
	assert.Equal(t, 44.44, *summary.BreakEvenUnits)
	assert.Equal(t, int64(45), *summary.BreakEvenUnitsRounded)
	assert.Equal(t, 200.0, summary.AllocatedFixedCostByUnit)

	require.Len(t, summary.Products, 2)
	assert.Equal(t, 40.0, summary.Products[0].Cost)
	assert.Equal(t, 60.0, summary.Products[0].Profit)
	assert.Equal(t, 150.0, summary.Products[0].ProfitPercent)
	assert.Equal(t, 60.0, summary.Products[0].GrossMargin)
	assert.Equal(t, -140.0, summary.Products[0].NetMargin)
	assert.Equal(t, 80.0, summary.Products[1].Cost)
	assert.Equal(t, -40.0, summary.Products[1].NetMargin)
}

func TestGetFinancials_BreakEvenNotApplicable(t *testing.T) {
	service, m := setupService(t, testConfig())
	ctx := context.Background()

	m.companyRepo.EXPECT().GetByID(ctx, "CMP001").Return(techCompany(), nil)
	m.costRepo.EXPECT().ListFixed(ctx, "CMP001").Return([]*domain.FixedCost{{Amount: 1000}}, nil)
	m.costRepo.EXPECT().ListVariable(ctx, "CMP001").Return([]*domain.VariableCost{
		{Amount: 120},
		{Amount: 80},
	}, nil)
	m.productRepo.EXPECT().ListByCompany(ctx, "CMP001").Return([]*domain.Product{
		{ID: "P1", SalePrice: 100, ManualCost: 20},
	}, nil)

	summary, err := service.GetFinancials(ctx, "CMP001")
	require.NoError(t, err)

	// Custo variável médio (100) igual ao preço médio: margem de contribuição zero
	assert.Equal(t, 100.0, summary.AverageVariableCost)
	assert.False(t, summary.BreakEvenApplicable)
	assert.Nil(t, summary.BreakEvenUnits)
	assert.Nil(t, summary.BreakEvenUnitsRounded)
}

func TestTakeSnapshot(t *testing.T) {
	service, m := setupService(t, testConfig())
	ctx := context.Background()

	m.companyRepo.EXPECT().GetByID(ctx, "CMP001").Return(techCompany(), nil)
	m.configRepo.EXPECT().GetByCompany(ctx, "CMP001").Return(&domain.ValuationConfig{
		CompanyID:       "CMP001",
		MonthlyRevenue:  floatPtr(20000),
		DiscountRate:    0.12,
		GrowthRate:      0.05,
		ProjectionYears: 5,
	}, nil)
	m.costRepo.EXPECT().ListFixed(ctx, "CMP001").Return([]*domain.FixedCost{{Amount: 10000}}, nil)
	m.snapshotRepo.EXPECT().SaveOrUpdate(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, snapshot *domain.ValuationSnapshot) error {
			snapshot.CreatedAt = time.Now()
			return nil
		},
	)

	snapshot, err := service.TakeSnapshot(ctx, "CMP001", "01-2024")
	require.NoError(t, err)

	expected := finance.Valuate(20000, 10000, "Tecnologia", 0.12, 0.05, 5)
	assert.Equal(t, "CMP001", snapshot.CompanyID)
	assert.Equal(t, "01-2024", snapshot.Period)
	assert.Equal(t, expected.MediaValuation, snapshot.MediaValuation)
	assert.Equal(t, expected.Detalhes.EbitdaAnual, snapshot.EbitdaAnual)
	assert.Equal(t, finance.MethodEbitda, snapshot.MetodoRecomendado)
}

func TestTakeSnapshot_InvalidPeriod(t *testing.T) {
	service, _ := setupService(t, testConfig())

	_, err := service.TakeSnapshot(context.Background(), "CMP001", "2024-01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, valuating.ErrInvalidParameter))
}

func TestHistory(t *testing.T) {
	service, m := setupService(t, testConfig())
	ctx := context.Background()

	snapshots := []*domain.ValuationSnapshot{
		{CompanyID: "CMP001", Period: "02-2024"},
		{CompanyID: "CMP001", Period: "01-2024"},
	}

	m.companyRepo.EXPECT().GetByID(ctx, "CMP001").Return(techCompany(), nil)
	m.snapshotRepo.EXPECT().ListByCompany(ctx, "CMP001").Return(snapshots, nil)

	history, err := service.History(ctx, "CMP001")
	require.NoError(t, err)
	assert.Equal(t, snapshots, history)
}

func TestNewEngine_ClampPolicy(t *testing.T) {
	cfg := testConfig().Valuation
	cfg.TerminalPolicy = "clamp"

	engine := valuating.NewEngine(cfg)
	result := engine.DCF(100000, 0.05, 0.08, 5)

	assert.False(t, result.TerminalOmitted)
	assert.Greater(t, result.PresentValueTerminal, 0.0)
}
