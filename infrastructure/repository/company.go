package repository

//go:generate mockgen -source=company.go -destination=mocks/company_mock.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/valuation-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/pkg/utils"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, companyID string) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da empresa")
	}
	company.ID = id

	insertSQL, args, err := psql.
		Insert(companiesTable).
		Columns("id", "name", "cnpj", "sector").
		Values(company.ID, company.Name, company.CNPJ, company.Sector).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, insertSQL, args...).Scan(&company.CreatedAt, &company.UpdatedAt)
	if err = observe("companies.create", err); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, errors.Wrap(err, "erro ao inserir empresa")
	}

	return company, nil
}

func (r *companyRepository) GetByID(ctx context.Context, companyID string) (*domain.Company, error) {
	selectSQL, args, err := psql.
		Select("id", "name", "cnpj", "sector", "created_at", "updated_at").
		From(companiesTable).
		Where(squirrel.Eq{"id": companyID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	company, err := scanCompany(r.conn.QueryRowContext(ctx, selectSQL, args...))
	if err = observe("companies.get", err); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao buscar empresa %s", companyID)
	}

	return company, nil
}

func (r *companyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	selectSQL, args, err := psql.
		Select("id", "name", "cnpj", "sector", "created_at", "updated_at").
		From(companiesTable).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, selectSQL, args...)
	if err = observe("companies.list", err); err != nil {
		return nil, errors.Wrap(err, "erro ao listar empresas")
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler empresa")
		}
		companies = append(companies, company)
	}

	return companies, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	company := &domain.Company{}
	err := row.Scan(
		&company.ID,
		&company.Name,
		&company.CNPJ,
		&company.Sector,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return company, nil
}
