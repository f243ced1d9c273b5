package valuating

//go:generate mockgen -source=cache.go -destination=mocks/cache_mock.go -package=mocks

import (
	"context"

	"github.com/vfg2006/valuation-api/internal/domain"
)

// ReportCache guarda relatórios já calculados por empresa.
// Qualquer alteração nos insumos da empresa deve chamar Invalidate.
type ReportCache interface {
	GetReport(ctx context.Context, companyID string) (*domain.ValuationReport, bool, error)
	SetReport(ctx context.Context, report *domain.ValuationReport) error
	Invalidate(ctx context.Context, companyID string) error
}

// NoopReportCache é usado quando o redis está desabilitado
type NoopReportCache struct{}

func (NoopReportCache) GetReport(context.Context, string) (*domain.ValuationReport, bool, error) {
	return nil, false, nil
}

func (NoopReportCache) SetReport(context.Context, *domain.ValuationReport) error { return nil }

func (NoopReportCache) Invalidate(context.Context, string) error { return nil }
