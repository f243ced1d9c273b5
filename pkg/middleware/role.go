package middleware

import (
	"net/http"
	"slices"

	"github.com/vfg2006/valuation-api/pkg/apiErrors"
	"github.com/vfg2006/valuation-api/pkg/log"
)

// Constantes para identificar os roles
const (
	RoleAdmin   = 1
	RoleAnalyst = 2 // Cadastra custos, produtos e parâmetros de valuation
	RoleViewer  = 3 // Apenas consulta relatórios
)

// RoleMiddleware restringe o acesso à rota aos roles informados
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, userClaims.UserRoleID) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_id":      userClaims.UserID,
					"user_role_id": userClaims.UserRoleID,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin})
}

// Editors permite acesso para quem pode alterar dados das empresas
func Editors() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleAnalyst})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleAnalyst, RoleViewer})
}
