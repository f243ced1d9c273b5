// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CNPJ      *string   `json:"cnpj"`
	Sector    string    `json:"sector"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCompanyRequest struct {
	Name   string  `json:"name"`
	CNPJ   *string `json:"cnpj,omitempty"`
	Sector string  `json:"sector"`
}
