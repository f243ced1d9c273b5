package handler

import (
	"net/http"

	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/internal/usecases/authenticating"
	"github.com/vfg2006/valuation-api/pkg/apiErrors"
	"github.com/vfg2006/valuation-api/pkg/log"
	"github.com/vfg2006/valuation-api/pkg/middleware"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.LoginResponse{Token: token})
	}
}

// Register cadastra um usuário inativo com o perfil de leitura
func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.CreateUser(r.Context(), &domain.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: req.Password,
		})
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("user_id", user.ID).Info("Usuário cadastrado")
		writeJSON(w, http.StatusCreated, user)
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), userClaims.UserID)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
