package costing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/valuation-api/pkg/apiErrors"
)

var (
	ErrCompanyNotFound   = errors.New("empresa não encontrada")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrStageNotFound     = errors.New("etapa de produção não encontrada")
	ErrCostNotFound      = errors.New("custo não encontrado")
	ErrStageConflict     = errors.New("já existe uma etapa com esta ordem")
	ErrInvalidRequest    = errors.New("requisição inválida")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// CostingError é um erro de cadastro com o código de API correspondente
type CostingError struct {
	Err     error
	Code    string
	Details string
}

func (e *CostingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CostingError) Unwrap() error {
	return e.Err
}

func NewCostingError(baseErr error, code string, details string) *CostingError {
	return &CostingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func invalid(details string) *CostingError {
	return NewCostingError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, details)
}

func databaseError(err error) *CostingError {
	return NewCostingError(fmt.Errorf("%w: %v", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "")
}
