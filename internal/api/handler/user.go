package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/internal/usecases/authenticating"
	"github.com/vfg2006/valuation-api/pkg/apiErrors"
	"github.com/vfg2006/valuation-api/pkg/middleware"
)

// ListUsers lista todos os usuários, inclusive os pendentes de ativação
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers(r.Context())
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// UpdateUser ativa, desativa ou troca o perfil de um usuário
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		var req domain.UpdateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = id

		// O administrador não pode remover o próprio acesso
		if userClaims, ok := middleware.ClaimsFromContext(r.Context()); ok && userClaims.UserID == id {
			if (req.Active != nil && !*req.Active) || (req.RoleID != nil && *req.RoleID != middleware.RoleAdmin) {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não é possível desativar ou rebaixar o próprio usuário", nil)
				return
			}
		}

		user, err := service.UpdateUser(r.Context(), &req)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// ChangePassword troca a senha do usuário logado
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.ChangePasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.ChangePassword(r.Context(), userClaims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
