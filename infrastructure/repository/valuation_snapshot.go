package repository

//go:generate mockgen -source=valuation_snapshot.go -destination=mocks/valuation_snapshot_mock.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/valuation-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/internal/finance"
	"github.com/vfg2006/valuation-api/pkg/utils"
)

type ValuationSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.ValuationSnapshot) error
	ListByCompany(ctx context.Context, companyID string) ([]*domain.ValuationSnapshot, error)
}

type valuationSnapshotRepository struct {
	conn *postgres.Connection
}

func NewValuationSnapshotRepository(conn *postgres.Connection) ValuationSnapshotRepository {
	return &valuationSnapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava o snapshot do período, substituindo o anterior do mesmo mês
func (r *valuationSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.ValuationSnapshot) error {
	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return errors.Wrap(err, "erro ao gerar id do snapshot")
		}
		snapshot.ID = id
	}

	upsertSQL, args, err := psql.
		Insert(valuationSnapshotsTable).
		Columns(
			"id",
			"company_id",
			"period",
			"dcf",
			"multiplo_ebitda",
			"multiplo_receita",
			"media_valuation",
			"metodo_recomendado",
			"ebitda_anual",
			"receita_anual",
		).
		Values(
			snapshot.ID,
			snapshot.CompanyID,
			snapshot.Period,
			snapshot.DCF,
			snapshot.MultiploEbitda,
			snapshot.MultiploReceita,
			snapshot.MediaValuation,
			snapshot.MetodoRecomendado.String(),
			snapshot.EbitdaAnual,
			snapshot.ReceitaAnual,
		).
		Suffix(`ON CONFLICT (company_id, period) DO UPDATE SET
			dcf = EXCLUDED.dcf,
			multiplo_ebitda = EXCLUDED.multiplo_ebitda,
			multiplo_receita = EXCLUDED.multiplo_receita,
			media_valuation = EXCLUDED.media_valuation,
			metodo_recomendado = EXCLUDED.metodo_recomendado,
			ebitda_anual = EXCLUDED.ebitda_anual,
			receita_anual = EXCLUDED.receita_anual,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, upsertSQL, args...).Scan(&snapshot.ID, &snapshot.CreatedAt, &snapshot.UpdatedAt)
	if err = observe("valuation_snapshots.upsert", err); err != nil {
		return errors.Wrapf(err, "erro ao salvar snapshot %s da empresa %s", snapshot.Period, snapshot.CompanyID)
	}

	return nil
}

func (r *valuationSnapshotRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.ValuationSnapshot, error) {
	selectSQL, args, err := psql.
		Select(
			"id",
			"company_id",
			"period",
			"dcf",
			"multiplo_ebitda",
			"multiplo_receita",
			"media_valuation",
			"metodo_recomendado",
			"ebitda_anual",
			"receita_anual",
			"created_at",
			"updated_at",
		).
		From(valuationSnapshotsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("RIGHT(period, 4) DESC", "LEFT(period, 2) DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, selectSQL, args...)
	if err = observe("valuation_snapshots.list", err); err != nil {
		return nil, errors.Wrapf(err, "erro ao listar histórico da empresa %s", companyID)
	}
	defer rows.Close()

	snapshots := make([]*domain.ValuationSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.ValuationSnapshot{}
		var method sql.NullString
		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.CompanyID,
			&snapshot.Period,
			&snapshot.DCF,
			&snapshot.MultiploEbitda,
			&snapshot.MultiploReceita,
			&snapshot.MediaValuation,
			&method,
			&snapshot.EbitdaAnual,
			&snapshot.ReceitaAnual,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler snapshot de valuation")
		}
		snapshot.MetodoRecomendado = methodFromNull(method)
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, rows.Err()
}

func methodFromNull(value sql.NullString) finance.Method {
	if !value.Valid {
		return ""
	}
	return finance.Method(value.String)
}
