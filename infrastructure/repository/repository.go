package repository

import (
	"database/sql"
	stdErrors "errors"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/valuation-api/pkg/metrics"
)

const (
	companiesTable          = "companies"
	fixedCostsTable         = "fixed_costs"
	variableCostsTable      = "variable_costs"
	productsTable           = "products"
	productionStagesTable   = "production_stages"
	valuationConfigsTable   = "valuation_configs"
	valuationSnapshotsTable = "valuation_snapshots"
	usersTable              = "users"

	uniqueViolation = "23505"
)

var (
	// ErrNotFound indica que a linha alvo de uma alteração não existe
	ErrNotFound = stdErrors.New("registro não encontrado")
	// ErrDuplicate indica violação de chave única
	ErrDuplicate = stdErrors.New("registro duplicado")
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// observe registra a operação nas métricas e devolve o mesmo erro
func observe(operation string, err error) error {
	if stdErrors.Is(err, sql.ErrNoRows) {
		metrics.ObserveDatabase(operation, nil)
		return err
	}
	metrics.ObserveDatabase(operation, err)
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return stdErrors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
