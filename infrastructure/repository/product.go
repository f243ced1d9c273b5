package repository

//go:generate mockgen -source=product.go -destination=mocks/product_mock.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/valuation-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/pkg/utils"
)

// ProductRepository persiste produtos e etapas de produção.
// Toda alteração de etapa recalcula products.cost na mesma transação.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, productID string) (*domain.Product, error)
	ListByCompany(ctx context.Context, companyID string) ([]*domain.Product, error)
	AddStage(ctx context.Context, stage *domain.ProductionStage) (*domain.Product, error)
	UpdateStage(ctx context.Context, request *domain.StageRequest) (*domain.Product, error)
	DeleteStage(ctx context.Context, productID, stageID string) (*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id do produto")
	}
	product.ID = id
	product.Cost = product.EffectiveCost()

	insertSQL, args, err := psql.
		Insert(productsTable).
		Columns("id", "company_id", "name", "manual_cost", "cost", "sale_price").
		Values(product.ID, product.CompanyID, product.Name, product.ManualCost, product.Cost, product.SalePrice).
		ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.ExecContext(ctx, insertSQL, args...)
	if err = observe("products.create", err); err != nil {
		return nil, errors.Wrap(err, "erro ao inserir produto")
	}

	if product.Stages == nil {
		product.Stages = []*domain.ProductionStage{}
	}

	return product, nil
}

func (r *productRepository) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := getProduct(ctx, r.conn, productID)
	if err = observe("products.get", err); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao buscar produto %s", productID)
	}

	return product, nil
}

func (r *productRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.Product, error) {
	selectSQL, args, err := psql.
		Select("id", "company_id", "name", "manual_cost", "cost", "sale_price").
		From(productsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, selectSQL, args...)
	if err = observe("products.list", err); err != nil {
		return nil, errors.Wrapf(err, "erro ao listar produtos da empresa %s", companyID)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	byID := make(map[string]*domain.Product)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler produto")
		}
		products = append(products, product)
		byID[product.ID] = product
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return products, nil
	}

	productIDs := make([]string, 0, len(products))
	for _, product := range products {
		productIDs = append(productIDs, product.ID)
	}

	stages, err := listStages(ctx, r.conn, squirrel.Eq{"product_id": productIDs})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar etapas de produção")
	}
	for _, stage := range stages {
		if product, ok := byID[stage.ProductID]; ok {
			product.Stages = append(product.Stages, stage)
		}
	}

	return products, nil
}

func (r *productRepository) AddStage(ctx context.Context, stage *domain.ProductionStage) (*domain.Product, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da etapa")
	}
	stage.ID = id

	var product *domain.Product
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		insertSQL, args, err := psql.
			Insert(productionStagesTable).
			Columns("id", "product_id", "name", "stage_order", "cost", "description").
			Values(stage.ID, stage.ProductID, stage.Name, stage.Order, stage.Cost, stage.Description).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, insertSQL, args...); err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return errors.Wrap(err, "erro ao inserir etapa de produção")
		}

		product, err = recomputeProductCost(ctx, tx, stage.ProductID)
		return err
	})
	if err = observe("production_stages.create", err); err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) UpdateStage(ctx context.Context, request *domain.StageRequest) (*domain.Product, error) {
	builder := psql.
		Update(productionStagesTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": request.ID, "product_id": request.ProductID})

	if request.Name != nil {
		builder = builder.Set("name", *request.Name)
	}
	if request.Order != nil {
		builder = builder.Set("stage_order", *request.Order)
	}
	if request.Cost != nil {
		builder = builder.Set("cost", *request.Cost)
	}
	if request.Description != nil {
		builder = builder.Set("description", *request.Description)
	}

	var product *domain.Product
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		updateSQL, args, err := builder.ToSql()
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, updateSQL, args...)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return errors.Wrap(err, "erro ao atualizar etapa de produção")
		}
		if err := requireAffected(result); err != nil {
			return err
		}

		product, err = recomputeProductCost(ctx, tx, request.ProductID)
		return err
	})
	if err = observe("production_stages.update", err); err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) DeleteStage(ctx context.Context, productID, stageID string) (*domain.Product, error) {
	var product *domain.Product
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, args, err := psql.
			Delete(productionStagesTable).
			Where(squirrel.Eq{"id": stageID, "product_id": productID}).
			ToSql()
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, deleteSQL, args...)
		if err != nil {
			return errors.Wrap(err, "erro ao remover etapa de produção")
		}
		if err := requireAffected(result); err != nil {
			return err
		}

		product, err = recomputeProductCost(ctx, tx, productID)
		return err
	})
	if err = observe("production_stages.delete", err); err != nil {
		return nil, err
	}

	return product, nil
}

// recomputeProductCost relê as etapas do produto e grava o custo efetivo
func recomputeProductCost(ctx context.Context, q postgres.Queryer, productID string) (*domain.Product, error) {
	product, err := getProduct(ctx, q, productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "erro ao buscar produto %s", productID)
	}

	product.Cost = product.EffectiveCost()

	updateSQL, args, err := psql.
		Update(productsTable).
		Set("cost", product.Cost).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": productID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := q.ExecContext(ctx, updateSQL, args...); err != nil {
		return nil, errors.Wrap(err, "erro ao gravar custo efetivo do produto")
	}

	return product, nil
}

func getProduct(ctx context.Context, q postgres.Queryer, productID string) (*domain.Product, error) {
	selectSQL, args, err := psql.
		Select("id", "company_id", "name", "manual_cost", "cost", "sale_price").
		From(productsTable).
		Where(squirrel.Eq{"id": productID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	product, err := scanProduct(q.QueryRowContext(ctx, selectSQL, args...))
	if err != nil {
		return nil, err
	}

	product.Stages, err = listStages(ctx, q, squirrel.Eq{"product_id": productID})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func listStages(ctx context.Context, q postgres.Queryer, where squirrel.Sqlizer) ([]*domain.ProductionStage, error) {
	selectSQL, args, err := psql.
		Select("id", "product_id", "name", "stage_order", "cost", "description").
		From(productionStagesTable).
		Where(where).
		OrderBy("product_id", "stage_order").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, selectSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stages := make([]*domain.ProductionStage, 0)
	for rows.Next() {
		stage := &domain.ProductionStage{}
		if err := rows.Scan(
			&stage.ID,
			&stage.ProductID,
			&stage.Name,
			&stage.Order,
			&stage.Cost,
			&stage.Description,
		); err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}

	return stages, rows.Err()
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{Stages: []*domain.ProductionStage{}}
	err := row.Scan(
		&product.ID,
		&product.CompanyID,
		&product.Name,
		&product.ManualCost,
		&product.Cost,
		&product.SalePrice,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
