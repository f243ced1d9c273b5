package valuating

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/valuation-api/infrastructure/repository"
	"github.com/vfg2006/valuation-api/internal/config"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/internal/finance"
	"github.com/vfg2006/valuation-api/pkg/log"
	"github.com/vfg2006/valuation-api/pkg/metrics"
	"github.com/vfg2006/valuation-api/pkg/utils"
)

const (
	maxProjectionYears = 50
	maxManualMultiple  = 100
)

// Origem do cálculo nas métricas
const (
	SourceAPI      = "api"
	SourceSnapshot = "snapshot"
)

type Valuator interface {
	GetValuation(ctx context.Context, companyID string) (*domain.ValuationReport, error)
	UpsertConfig(ctx context.Context, request *domain.UpsertValuationConfigRequest) (*domain.ValuationReport, error)
	GetFinancials(ctx context.Context, companyID string) (*domain.FinancialSummary, error)
	History(ctx context.Context, companyID string) ([]*domain.ValuationSnapshot, error)
	TakeSnapshot(ctx context.Context, companyID, period string) (*domain.ValuationSnapshot, error)
	Sectors() []finance.SectorMultiples
}

type Service struct {
	companyRepo  repository.CompanyRepository
	costRepo     repository.CostRepository
	productRepo  repository.ProductRepository
	configRepo   repository.ValuationConfigRepository
	snapshotRepo repository.ValuationSnapshotRepository
	cache        ReportCache
	engine       *finance.Engine
	cfg          config.Valuation
	now          func() time.Time
}

func NewService(
	companyRepo repository.CompanyRepository,
	costRepo repository.CostRepository,
	productRepo repository.ProductRepository,
	configRepo repository.ValuationConfigRepository,
	snapshotRepo repository.ValuationSnapshotRepository,
	cache ReportCache,
	cfg *config.Config,
) *Service {
	if cache == nil {
		cache = NoopReportCache{}
	}

	return &Service{
		companyRepo:  companyRepo,
		costRepo:     costRepo,
		productRepo:  productRepo,
		configRepo:   configRepo,
		snapshotRepo: snapshotRepo,
		cache:        cache,
		engine:       NewEngine(cfg.Valuation),
		cfg:          cfg.Valuation,
		now:          time.Now,
	}
}

// NewEngine monta o motor de valuation a partir da configuração
func NewEngine(cfg config.Valuation) *finance.Engine {
	opts := []finance.Option{
		finance.WithTerminalPolicy(finance.TerminalPolicy(cfg.TerminalPolicy), cfg.TerminalClampSpread),
		finance.WithWeights(finance.Weights{
			DCF:     cfg.WeightDCF,
			Ebitda:  cfg.WeightEbitda,
			Receita: cfg.WeightReceita,
		}),
	}

	if cfg.HonorPreferredMethod {
		opts = append(opts, finance.WithRecommendation(finance.PreferredRecommendation))
	}

	return finance.NewEngine(opts...)
}

func (s *Service) Sectors() []finance.SectorMultiples {
	return finance.Sectors()
}

// GetValuation devolve o relatório de valuation da empresa, usando o cache quando disponível
func (s *Service) GetValuation(ctx context.Context, companyID string) (*domain.ValuationReport, error) {
	logger := log.ForContext(ctx).WithField("company_id", companyID)

	company, err := s.getCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	cached, found, err := s.cache.GetReport(ctx, companyID)
	if err != nil {
		logger.WithError(err).Warn("Erro ao consultar cache de valuation, recalculando")
	}
	if found {
		metrics.CacheHits.WithLabelValues("valuation", "hit").Inc()
		return cached, nil
	}
	metrics.CacheHits.WithLabelValues("valuation", "miss").Inc()

	report, err := s.calculate(ctx, company)
	if err != nil {
		return nil, err
	}
	metrics.ValuationsComputed.WithLabelValues(report.MetodoRecomendado.String(), SourceAPI).Inc()

	if err := s.cache.SetReport(ctx, report); err != nil {
		logger.WithError(err).Warn("Erro ao gravar valuation no cache")
	}

	return report, nil
}

// UpsertConfig valida e grava os parâmetros da empresa e devolve o valuation recalculado
func (s *Service) UpsertConfig(ctx context.Context, request *domain.UpsertValuationConfigRequest) (*domain.ValuationReport, error) {
	company, err := s.getCompany(ctx, request.CompanyID)
	if err != nil {
		return nil, err
	}

	current, err := s.loadConfig(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	merged, err := s.mergeConfig(current, request)
	if err != nil {
		return nil, err
	}

	if _, err := s.configRepo.Upsert(ctx, merged); err != nil {
		return nil, newDatabaseError(company.ID, err)
	}

	if err := s.cache.Invalidate(ctx, company.ID); err != nil {
		log.ForContext(ctx).WithField("company_id", company.ID).WithError(err).Warn("Erro ao invalidar cache de valuation")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"company_id":       company.ID,
		"discount_rate":    merged.DiscountRate,
		"growth_rate":      merged.GrowthRate,
		"projection_years": merged.ProjectionYears,
	}).Info("Configuração de valuation atualizada")

	return s.GetValuation(ctx, company.ID)
}

// GetFinancials calcula ponto de equilíbrio e margens por produto
func (s *Service) GetFinancials(ctx context.Context, companyID string) (*domain.FinancialSummary, error) {
	company, err := s.getCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	fixedCosts, err := s.costRepo.ListFixed(ctx, company.ID)
	if err != nil {
		return nil, newDatabaseError(company.ID, err)
	}

	variableCosts, err := s.costRepo.ListVariable(ctx, company.ID)
	if err != nil {
		return nil, newDatabaseError(company.ID, err)
	}

	products, err := s.productRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, newDatabaseError(company.ID, err)
	}

	totalFixed := domain.TotalFixedMonthly(fixedCosts)
	avgSalePrice, avgProductCost := productAverages(products)

	avgVariableCost := avgProductCost
	if len(variableCosts) > 0 {
		var sum float64
		for _, cost := range variableCosts {
			sum += cost.Amount
		}
		avgVariableCost = sum / float64(len(variableCosts))
	}

	summary := &domain.FinancialSummary{
		CompanyID:              company.ID,
		TotalFixedCostsMonthly: utils.RoundWithTwoDecimalPlace(totalFixed),
		AverageSalePrice:       utils.RoundWithTwoDecimalPlace(avgSalePrice),
		AverageVariableCost:    utils.RoundWithTwoDecimalPlace(avgVariableCost),
		Products:               make([]*domain.ProductProfitability, 0, len(products)),
	}

	breakEven := finance.BreakEvenUnits(totalFixed, avgSalePrice, avgVariableCost)
	if finance.IsApplicable(breakEven) {
		units := utils.RoundWithTwoDecimalPlace(breakEven)
		rounded := utils.RoundUnitsUp(breakEven)
		summary.BreakEvenApplicable = true
		summary.BreakEvenUnits = &units
		summary.BreakEvenUnitsRounded = &rounded
	}

	// Custo fixo rateado pelas unidades estimadas de todos os produtos
	estimatedUnits := s.cfg.EstimatedUnitsPerProduct * float64(len(products))
	if estimatedUnits > 0 {
		summary.AllocatedFixedCostByUnit = utils.RoundWithTwoDecimalPlace(totalFixed / estimatedUnits)
	}

	for _, product := range products {
		cost := product.EffectiveCost()
		summary.Products = append(summary.Products, &domain.ProductProfitability{
			ProductID:     product.ID,
			Name:          product.Name,
			SalePrice:     product.SalePrice,
			Cost:          utils.RoundWithTwoDecimalPlace(cost),
			Profit:        utils.RoundWithTwoDecimalPlace(finance.Profit(product.SalePrice, cost)),
			ProfitPercent: utils.RoundWithTwoDecimalPlace(finance.ProfitPercent(product.SalePrice, cost)),
			GrossMargin:   utils.RoundWithTwoDecimalPlace(finance.GrossMargin(product.SalePrice, cost)),
			NetMargin:     utils.RoundWithTwoDecimalPlace(finance.NetMargin(product.SalePrice, cost, summary.AllocatedFixedCostByUnit)),
		})
	}

	return summary, nil
}

// History lista os snapshots mensais de valuation da empresa
func (s *Service) History(ctx context.Context, companyID string) ([]*domain.ValuationSnapshot, error) {
	company, err := s.getCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.snapshotRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, newDatabaseError(company.ID, err)
	}

	return snapshots, nil
}

// TakeSnapshot recalcula o valuation sem cache e grava no histórico do período
func (s *Service) TakeSnapshot(ctx context.Context, companyID, period string) (*domain.ValuationSnapshot, error) {
	if _, err := utils.ParsePeriod(period); err != nil {
		return nil, newInvalidParameter(companyID, fmt.Sprintf("período %q fora do formato mm-yyyy", period))
	}

	company, err := s.getCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	report, err := s.calculate(ctx, company)
	if err != nil {
		return nil, err
	}
	metrics.ValuationsComputed.WithLabelValues(report.MetodoRecomendado.String(), SourceSnapshot).Inc()

	snapshot := domain.NewValuationSnapshot(company.ID, period, report.ValuationResult)
	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshot); err != nil {
		return nil, newDatabaseError(company.ID, err)
	}

	return snapshot, nil
}

func (s *Service) calculate(ctx context.Context, company *domain.Company) (*domain.ValuationReport, error) {
	cfg, err := s.loadConfig(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	fixedCosts, err := s.costRepo.ListFixed(ctx, company.ID)
	if err != nil {
		return nil, newDatabaseError(company.ID, err)
	}

	revenue := 0.0
	estimated := false
	if cfg.MonthlyRevenue != nil {
		revenue = *cfg.MonthlyRevenue
	} else {
		products, err := s.productRepo.ListByCompany(ctx, company.ID)
		if err != nil {
			return nil, newDatabaseError(company.ID, err)
		}
		revenue = s.estimateRevenue(products)
		estimated = true
	}

	monthlyCosts := domain.TotalFixedMonthly(fixedCosts)

	result := s.engine.Valuate(finance.ValuationInput{
		MonthlyRevenue:  revenue,
		MonthlyCosts:    monthlyCosts,
		Sector:          company.Sector,
		DiscountRate:    cfg.DiscountRate,
		GrowthRate:      cfg.GrowthRate,
		Years:           cfg.ProjectionYears,
		ManualMultiple:  cfg.ManualMultiple,
		PreferredMethod: cfg.PreferredMethod,
	})

	monthlyGrowth := finance.AnnualToMonthlyRate(cfg.GrowthRate)
	var projection []finance.MonthlyProjection
	if s.cfg.CompoundCosts {
		projection = finance.ProjectTwelveMonthsCompounding(revenue, monthlyCosts, monthlyGrowth, monthlyGrowth)
	} else {
		projection = finance.ProjectTwelveMonths(revenue, monthlyCosts, monthlyGrowth)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"company_id":         company.ID,
		"company_sector":     company.Sector,
		"metodo_recomendado": result.MetodoRecomendado,
		"receita_estimada":   estimated,
	}).Debug("Valuation calculado")

	return &domain.ValuationReport{
		ValuationResult: result,
		Projecao:        projection,
		ReceitaEstimada: estimated,
		Config:          *cfg,
		CalculatedAt:    s.now(),
	}, nil
}

// estimateRevenue estima a receita mensal a partir do preço de venda dos produtos
func (s *Service) estimateRevenue(products []*domain.Product) float64 {
	var total float64
	for _, product := range products {
		total += product.SalePrice
	}
	return total * s.cfg.EstimatedUnitsPerProduct
}

// loadConfig devolve a configuração gravada ou os defaults da aplicação
func (s *Service) loadConfig(ctx context.Context, companyID string) (*domain.ValuationConfig, error) {
	stored, err := s.configRepo.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, newDatabaseError(companyID, err)
	}
	if stored != nil {
		return stored, nil
	}

	return &domain.ValuationConfig{
		CompanyID:       companyID,
		DiscountRate:    s.cfg.DefaultDiscountRate,
		GrowthRate:      s.cfg.DefaultGrowthRate,
		ProjectionYears: s.cfg.DefaultProjectionYears,
	}, nil
}

func (s *Service) mergeConfig(current *domain.ValuationConfig, request *domain.UpsertValuationConfigRequest) (*domain.ValuationConfig, error) {
	merged := *current
	companyID := current.CompanyID

	if request.MonthlyRevenue != nil {
		if *request.MonthlyRevenue < 0 {
			return nil, newInvalidParameter(companyID, "monthly_revenue deve ser maior ou igual a zero")
		}
		merged.MonthlyRevenue = request.MonthlyRevenue
	}

	if request.DiscountRate != nil {
		if *request.DiscountRate <= 0 || *request.DiscountRate > 1 {
			return nil, newInvalidParameter(companyID, "discount_rate deve estar entre 0 (exclusivo) e 1")
		}
		merged.DiscountRate = *request.DiscountRate
	}

	if request.GrowthRate != nil {
		if *request.GrowthRate < -1 {
			return nil, newInvalidParameter(companyID, "growth_rate deve ser maior ou igual a -1")
		}
		merged.GrowthRate = *request.GrowthRate
	}

	if request.ProjectionYears != nil {
		if *request.ProjectionYears < 1 || *request.ProjectionYears > maxProjectionYears {
			return nil, newInvalidParameter(companyID, fmt.Sprintf("projection_years deve estar entre 1 e %d", maxProjectionYears))
		}
		merged.ProjectionYears = *request.ProjectionYears
	}

	if request.ManualMultiple != nil {
		switch {
		case *request.ManualMultiple == 0:
			// Zero remove o múltiplo manual e volta para a média do setor
			merged.ManualMultiple = nil
		case *request.ManualMultiple < 0 || *request.ManualMultiple > maxManualMultiple:
			return nil, newInvalidParameter(companyID, fmt.Sprintf("manual_multiple deve estar entre 0 e %d", maxManualMultiple))
		default:
			merged.ManualMultiple = request.ManualMultiple
		}
	}

	if request.PreferredMethod != nil {
		if *request.PreferredMethod != "" && !request.PreferredMethod.IsValid() {
			return nil, newInvalidParameter(companyID, "preferred_method deve ser dcf, ebitda ou receita")
		}
		merged.PreferredMethod = *request.PreferredMethod
	}

	return &merged, nil
}

func (s *Service) getCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, newDatabaseError(companyID, err)
	}
	if company == nil {
		return nil, newCompanyNotFound(companyID)
	}
	return company, nil
}

func productAverages(products []*domain.Product) (avgSalePrice, avgCost float64) {
	if len(products) == 0 {
		return 0, 0
	}

	var totalPrice, totalCost float64
	for _, product := range products {
		totalPrice += product.SalePrice
		totalCost += product.EffectiveCost()
	}

	n := float64(len(products))
	return totalPrice / n, totalCost / n
}
