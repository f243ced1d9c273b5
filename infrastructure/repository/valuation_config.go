package repository

//go:generate mockgen -source=valuation_config.go -destination=mocks/valuation_config_mock.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/valuation-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuation-api/internal/domain"
)

type ValuationConfigRepository interface {
	GetByCompany(ctx context.Context, companyID string) (*domain.ValuationConfig, error)
	Upsert(ctx context.Context, config *domain.ValuationConfig) (*domain.ValuationConfig, error)
}

type valuationConfigRepository struct {
	conn *postgres.Connection
}

func NewValuationConfigRepository(conn *postgres.Connection) ValuationConfigRepository {
	return &valuationConfigRepository{
		conn: conn,
	}
}

func (r *valuationConfigRepository) GetByCompany(ctx context.Context, companyID string) (*domain.ValuationConfig, error) {
	selectSQL, args, err := psql.
		Select(
			"company_id",
			"monthly_revenue",
			"discount_rate",
			"growth_rate",
			"projection_years",
			"manual_multiple",
			"preferred_method",
			"updated_at",
		).
		From(valuationConfigsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	config := &domain.ValuationConfig{}
	var preferredMethod sql.NullString
	err = r.conn.QueryRowContext(ctx, selectSQL, args...).Scan(
		&config.CompanyID,
		&config.MonthlyRevenue,
		&config.DiscountRate,
		&config.GrowthRate,
		&config.ProjectionYears,
		&config.ManualMultiple,
		&preferredMethod,
		&config.UpdatedAt,
	)
	if err = observe("valuation_configs.get", err); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao buscar configuração de valuation da empresa %s", companyID)
	}
	config.PreferredMethod = methodFromNull(preferredMethod)

	return config, nil
}

func (r *valuationConfigRepository) Upsert(ctx context.Context, config *domain.ValuationConfig) (*domain.ValuationConfig, error) {
	var preferredMethod *string
	if config.PreferredMethod != "" {
		method := config.PreferredMethod.String()
		preferredMethod = &method
	}

	upsertSQL, args, err := psql.
		Insert(valuationConfigsTable).
		Columns(
			"company_id",
			"monthly_revenue",
			"discount_rate",
			"growth_rate",
			"projection_years",
			"manual_multiple",
			"preferred_method",
		).
		Values(
			config.CompanyID,
			config.MonthlyRevenue,
			config.DiscountRate,
			config.GrowthRate,
			config.ProjectionYears,
			config.ManualMultiple,
			preferredMethod,
		).
		Suffix(`ON CONFLICT (company_id) DO UPDATE SET
			monthly_revenue = EXCLUDED.monthly_revenue,
			discount_rate = EXCLUDED.discount_rate,
			growth_rate = EXCLUDED.growth_rate,
			projection_years = EXCLUDED.projection_years,
			manual_multiple = EXCLUDED.manual_multiple,
			preferred_method = EXCLUDED.preferred_method,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, upsertSQL, args...).Scan(&config.UpdatedAt)
	if err = observe("valuation_configs.upsert", err); err != nil {
		return nil, errors.Wrapf(err, "erro ao salvar configuração de valuation da empresa %s", config.CompanyID)
	}

	return config, nil
}
