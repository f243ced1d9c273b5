package valuating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/valuation-api/pkg/apiErrors"
)

var (
	ErrCompanyNotFound   = errors.New("empresa não encontrada")
	ErrInvalidParameter  = errors.New("parâmetro de valuation inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ValuationError carrega o código de API e a empresa envolvida
type ValuationError struct {
	Err       error
	Code      string
	CompanyID string
	Details   string
}

func (e *ValuationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValuationError) Unwrap() error {
	return e.Err
}

func newCompanyNotFound(companyID string) *ValuationError {
	return &ValuationError{
		Err:       ErrCompanyNotFound,
		Code:      apiErrors.ErrCompanyNotFound,
		CompanyID: companyID,
		Details:   companyID,
	}
}

func newInvalidParameter(companyID, details string) *ValuationError {
	return &ValuationError{
		Err:       ErrInvalidParameter,
		Code:      apiErrors.ErrInvalidParameter,
		CompanyID: companyID,
		Details:   details,
	}
}

func newDatabaseError(companyID string, err error) *ValuationError {
	return &ValuationError{
		Err:       fmt.Errorf("%w: %v", ErrDatabaseOperation, err),
		Code:      apiErrors.ErrDatabaseOperation,
		CompanyID: companyID,
	}
}
