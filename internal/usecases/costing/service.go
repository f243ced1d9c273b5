package costing

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/vfg2006/valuation-api/infrastructure/repository"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/internal/finance"
	"github.com/vfg2006/valuation-api/pkg/apiErrors"
	"github.com/vfg2006/valuation-api/pkg/log"
)

const cnpjLength = 14

type Catalog interface {
	CreateCompany(ctx context.Context, request *domain.CreateCompanyRequest) (*domain.Company, error)
	GetCompany(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]*domain.Company, error)

	AddFixedCost(ctx context.Context, companyID string, request *domain.CreateCostRequest) (*domain.FixedCost, error)
	ListFixedCosts(ctx context.Context, companyID string) ([]*domain.FixedCost, error)
	AddVariableCost(ctx context.Context, companyID string, request *domain.CreateCostRequest) (*domain.VariableCost, error)
	ListVariableCosts(ctx context.Context, companyID string) ([]*domain.VariableCost, error)
	DeleteCost(ctx context.Context, companyID string, kind domain.CostKind, costID string) error

	CreateProduct(ctx context.Context, companyID string, request *domain.CreateProductRequest) (*domain.Product, error)
	ListProducts(ctx context.Context, companyID string) ([]*domain.Product, error)
	AddStage(ctx context.Context, request *domain.StageRequest) (*domain.Product, error)
	UpdateStage(ctx context.Context, request *domain.StageRequest) (*domain.Product, error)
	DeleteStage(ctx context.Context, productID, stageID string) (*domain.Product, error)
}

// ReportInvalidator descarta o valuation em cache quando os insumos da empresa mudam
type ReportInvalidator interface {
	Invalidate(ctx context.Context, companyID string) error
}

type Service struct {
	companyRepo repository.CompanyRepository
	costRepo    repository.CostRepository
	productRepo repository.ProductRepository
	invalidator ReportInvalidator
}

func NewService(
	companyRepo repository.CompanyRepository,
	costRepo repository.CostRepository,
	productRepo repository.ProductRepository,
	invalidator ReportInvalidator,
) *Service {
	return &Service{
		companyRepo: companyRepo,
		costRepo:    costRepo,
		productRepo: productRepo,
		invalidator: invalidator,
	}
}

func (s *Service) CreateCompany(ctx context.Context, request *domain.CreateCompanyRequest) (*domain.Company, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, NewCostingError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, "nome da empresa é obrigatório")
	}

	company := &domain.Company{
		Name:   name,
		Sector: normalizeSector(request.Sector),
	}

	if request.CNPJ != nil && strings.TrimSpace(*request.CNPJ) != "" {
		cnpj, ok := normalizeCNPJ(*request.CNPJ)
		if !ok {
			return nil, NewCostingError(ErrInvalidRequest, apiErrors.ErrInvalidFormat, "cnpj deve conter 14 dígitos")
		}
		company.CNPJ = &cnpj
	}

	created, err := s.companyRepo.Create(ctx, company)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, invalid("cnpj já cadastrado")
		}
		return nil, databaseError(err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"company_id":     created.ID,
		"company_sector": created.Sector,
	}).Info("Empresa cadastrada")

	return created, nil
}

func (s *Service) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, databaseError(err)
	}
	if company == nil {
		return nil, NewCostingError(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, companyID)
	}
	return company, nil
}

func (s *Service) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, databaseError(err)
	}
	return companies, nil
}

func (s *Service) AddFixedCost(ctx context.Context, companyID string, request *domain.CreateCostRequest) (*domain.FixedCost, error) {
	if err := validateCost(request); err != nil {
		return nil, err
	}

	periodicity := finance.PeriodicityMonthly
	if request.Periodicity != nil {
		if !request.Periodicity.IsValid() {
			return nil, invalid("periodicity deve ser mensal, semanal ou anual")
		}
		periodicity = *request.Periodicity
	}

	if _, err := s.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}

	cost, err := s.costRepo.CreateFixed(ctx, &domain.FixedCost{
		CompanyID:   companyID,
		Name:        strings.TrimSpace(request.Name),
		Amount:      request.Amount,
		Periodicity: periodicity,
		Description: request.Description,
	})
	if err != nil {
		return nil, databaseError(err)
	}

	s.invalidate(ctx, companyID)
	return cost, nil
}

func (s *Service) ListFixedCosts(ctx context.Context, companyID string) ([]*domain.FixedCost, error) {
	if _, err := s.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}

	costs, err := s.costRepo.ListFixed(ctx, companyID)
	if err != nil {
		return nil, databaseError(err)
	}
	return costs, nil
}

func (s *Service) AddVariableCost(ctx context.Context, companyID string, request *domain.CreateCostRequest) (*domain.VariableCost, error) {
	if err := validateCost(request); err != nil {
		return nil, err
	}

	unit := "unidade"
	if request.Unit != nil && strings.TrimSpace(*request.Unit) != "" {
		unit = strings.TrimSpace(*request.Unit)
	}

	if _, err := s.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}

	cost, err := s.costRepo.CreateVariable(ctx, &domain.VariableCost{
		CompanyID:   companyID,
		Name:        strings.TrimSpace(request.Name),
		Amount:      request.Amount,
		Unit:        unit,
		Description: request.Description,
	})
	if err != nil {
		return nil, databaseError(err)
	}

	s.invalidate(ctx, companyID)
	return cost, nil
}

func (s *Service) ListVariableCosts(ctx context.Context, companyID string) ([]*domain.VariableCost, error) {
	if _, err := s.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}

	costs, err := s.costRepo.ListVariable(ctx, companyID)
	if err != nil {
		return nil, databaseError(err)
	}
	return costs, nil
}

func (s *Service) DeleteCost(ctx context.Context, companyID string, kind domain.CostKind, costID string) error {
	if !kind.IsValid() {
		return invalid("tipo de custo deve ser fixed ou variable")
	}

	err := s.costRepo.Delete(ctx, kind, companyID, costID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewCostingError(ErrCostNotFound, apiErrors.ErrCostNotFound, costID)
		}
		return databaseError(err)
	}

	s.invalidate(ctx, companyID)
	return nil
}

func (s *Service) CreateProduct(ctx context.Context, companyID string, request *domain.CreateProductRequest) (*domain.Product, error) {
	if strings.TrimSpace(request.Name) == "" {
		return nil, NewCostingError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, "nome do produto é obrigatório")
	}
	if request.SalePrice < 0 || request.ManualCost < 0 {
		return nil, invalid("sale_price e manual_cost devem ser maiores ou iguais a zero")
	}

	if _, err := s.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.Create(ctx, &domain.Product{
		CompanyID:  companyID,
		Name:       strings.TrimSpace(request.Name),
		ManualCost: request.ManualCost,
		SalePrice:  request.SalePrice,
	})
	if err != nil {
		return nil, databaseError(err)
	}

	s.invalidate(ctx, companyID)
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context, companyID string) ([]*domain.Product, error) {
	if _, err := s.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, databaseError(err)
	}
	return products, nil
}

// AddStage inclui uma etapa e devolve o produto com o custo efetivo recalculado
func (s *Service) AddStage(ctx context.Context, request *domain.StageRequest) (*domain.Product, error) {
	if request.Name == nil || strings.TrimSpace(*request.Name) == "" {
		return nil, NewCostingError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, "nome da etapa é obrigatório")
	}
	if request.Cost == nil || *request.Cost < 0 {
		return nil, invalid("cost da etapa é obrigatório e deve ser maior ou igual a zero")
	}

	product, err := s.getProduct(ctx, request.ProductID)
	if err != nil {
		return nil, err
	}

	order := nextStageOrder(product.Stages)
	if request.Order != nil {
		if *request.Order < 1 {
			return nil, invalid("order deve ser maior que zero")
		}
		order = *request.Order
	}

	updated, err := s.productRepo.AddStage(ctx, &domain.ProductionStage{
		ProductID:   product.ID,
		Name:        strings.TrimSpace(*request.Name),
		Order:       order,
		Cost:        *request.Cost,
		Description: request.Description,
	})
	if err != nil {
		return nil, stageError(err, "")
	}

	s.invalidate(ctx, product.CompanyID)
	return updated, nil
}

func (s *Service) UpdateStage(ctx context.Context, request *domain.StageRequest) (*domain.Product, error) {
	if request.Name != nil && strings.TrimSpace(*request.Name) == "" {
		return nil, invalid("nome da etapa não pode ser vazio")
	}
	if request.Cost != nil && *request.Cost < 0 {
		return nil, invalid("cost deve ser maior ou igual a zero")
	}
	if request.Order != nil && *request.Order < 1 {
		return nil, invalid("order deve ser maior que zero")
	}

	product, err := s.getProduct(ctx, request.ProductID)
	if err != nil {
		return nil, err
	}

	updated, err := s.productRepo.UpdateStage(ctx, request)
	if err != nil {
		return nil, stageError(err, request.ID)
	}

	s.invalidate(ctx, product.CompanyID)
	return updated, nil
}

func (s *Service) DeleteStage(ctx context.Context, productID, stageID string) (*domain.Product, error) {
	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	updated, err := s.productRepo.DeleteStage(ctx, productID, stageID)
	if err != nil {
		return nil, stageError(err, stageID)
	}

	s.invalidate(ctx, product.CompanyID)
	return updated, nil
}

func (s *Service) getProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, databaseError(err)
	}
	if product == nil {
		return nil, NewCostingError(ErrProductNotFound, apiErrors.ErrProductNotFound, productID)
	}
	return product, nil
}

func (s *Service) invalidate(ctx context.Context, companyID string) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx, companyID); err != nil {
		log.ForContext(ctx).WithField("company_id", companyID).WithError(err).Warn("Erro ao invalidar cache de valuation")
	}
}

func stageError(err error, stageID string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NewCostingError(ErrStageNotFound, apiErrors.ErrStageNotFound, stageID)
	case errors.Is(err, repository.ErrDuplicate):
		return NewCostingError(ErrStageConflict, apiErrors.ErrStageConflict, "")
	default:
		return databaseError(err)
	}
}

func validateCost(request *domain.CreateCostRequest) error {
	if strings.TrimSpace(request.Name) == "" {
		return NewCostingError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, "nome do custo é obrigatório")
	}
	if request.Amount < 0 {
		return invalid("amount deve ser maior ou igual a zero")
	}
	return nil
}

// normalizeSector usa o nome canônico da tabela de múltiplos quando o setor é conhecido
func normalizeSector(sector string) string {
	sector = strings.TrimSpace(sector)
	if sector == "" {
		return finance.DefaultSector
	}
	if finance.IsMappedSector(sector) {
		return finance.MultiplesFor(sector).Sector
	}
	return sector
}

func normalizeCNPJ(cnpj string) (string, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		if r == '.' || r == '/' || r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return 'x'
	}, cnpj)

	if len(digits) != cnpjLength || strings.ContainsRune(digits, 'x') {
		return "", false
	}
	return digits, true
}

// nextStageOrder devolve a ordem seguinte à maior já usada, pois as ordens podem ter lacunas
func nextStageOrder(stages []*domain.ProductionStage) int {
	highest := 0
	for _, stage := range stages {
		if stage != nil && stage.Order > highest {
			highest = stage.Order
		}
	}
	return highest + 1
}
