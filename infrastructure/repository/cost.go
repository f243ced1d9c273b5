package repository

//go:generate mockgen -source=cost.go -destination=mocks/cost_mock.go -package=mocks

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/valuation-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/pkg/utils"
)

type CostRepository interface {
	CreateFixed(ctx context.Context, cost *domain.FixedCost) (*domain.FixedCost, error)
	ListFixed(ctx context.Context, companyID string) ([]*domain.FixedCost, error)
	CreateVariable(ctx context.Context, cost *domain.VariableCost) (*domain.VariableCost, error)
	ListVariable(ctx context.Context, companyID string) ([]*domain.VariableCost, error)
	Delete(ctx context.Context, kind domain.CostKind, companyID, costID string) error
}

type costRepository struct {
	conn *postgres.Connection
}

func NewCostRepository(conn *postgres.Connection) CostRepository {
	return &costRepository{
		conn: conn,
	}
}

func (r *costRepository) CreateFixed(ctx context.Context, cost *domain.FixedCost) (*domain.FixedCost, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id do custo")
	}
	cost.ID = id

	insertSQL, args, err := psql.
		Insert(fixedCostsTable).
		Columns("id", "company_id", "name", "amount", "periodicity", "description").
		Values(cost.ID, cost.CompanyID, cost.Name, cost.Amount, string(cost.Periodicity), cost.Description).
		ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.ExecContext(ctx, insertSQL, args...)
	if err = observe("fixed_costs.create", err); err != nil {
		return nil, errors.Wrap(err, "erro ao inserir custo fixo")
	}

	return cost, nil
}

func (r *costRepository) ListFixed(ctx context.Context, companyID string) ([]*domain.FixedCost, error) {
	selectSQL, args, err := psql.
		Select("id", "company_id", "name", "amount", "periodicity", "description").
		From(fixedCostsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, selectSQL, args...)
	if err = observe("fixed_costs.list", err); err != nil {
		return nil, errors.Wrapf(err, "erro ao listar custos fixos da empresa %s", companyID)
	}
	defer rows.Close()

	costs := make([]*domain.FixedCost, 0)
	for rows.Next() {
		cost := &domain.FixedCost{}
		if err := rows.Scan(
			&cost.ID,
			&cost.CompanyID,
			&cost.Name,
			&cost.Amount,
			&cost.Periodicity,
			&cost.Description,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler custo fixo")
		}
		costs = append(costs, cost)
	}

	return costs, rows.Err()
}

func (r *costRepository) CreateVariable(ctx context.Context, cost *domain.VariableCost) (*domain.VariableCost, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id do custo")
	}
	cost.ID = id

	insertSQL, args, err := psql.
		Insert(variableCostsTable).
		Columns("id", "company_id", "name", "amount", "unit", "description").
		Values(cost.ID, cost.CompanyID, cost.Name, cost.Amount, cost.Unit, cost.Description).
		ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.ExecContext(ctx, insertSQL, args...)
	if err = observe("variable_costs.create", err); err != nil {
		return nil, errors.Wrap(err, "erro ao inserir custo variável")
	}

	return cost, nil
}

func (r *costRepository) ListVariable(ctx context.Context, companyID string) ([]*domain.VariableCost, error) {
	selectSQL, args, err := psql.
		Select("id", "company_id", "name", "amount", "unit", "description").
		From(variableCostsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, selectSQL, args...)
	if err = observe("variable_costs.list", err); err != nil {
		return nil, errors.Wrapf(err, "erro ao listar custos variáveis da empresa %s", companyID)
	}
	defer rows.Close()

	costs := make([]*domain.VariableCost, 0)
	for rows.Next() {
		cost := &domain.VariableCost{}
		if err := rows.Scan(
			&cost.ID,
			&cost.CompanyID,
			&cost.Name,
			&cost.Amount,
			&cost.Unit,
			&cost.Description,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler custo variável")
		}
		costs = append(costs, cost)
	}

	return costs, rows.Err()
}

func (r *costRepository) Delete(ctx context.Context, kind domain.CostKind, companyID, costID string) error {
	table := fixedCostsTable
	if kind == domain.CostKindVariable {
		table = variableCostsTable
	}

	deleteSQL, args, err := psql.
		Delete(table).
		Where(squirrel.Eq{"id": costID, "company_id": companyID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, deleteSQL, args...)
	if err = observe(table+".delete", err); err != nil {
		return errors.Wrapf(err, "erro ao remover custo %s", costID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao verificar remoção do custo")
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
