package authenticating

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/valuation-api/infrastructure/repository"
	"github.com/vfg2006/valuation-api/internal/config"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/pkg/apiErrors"
	"github.com/vfg2006/valuation-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	defaultRoleID     = 3 // Apenas leitura
	minRoleID         = 1
	maxRoleID         = 3
)

type Authenticator interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, email, password string) (string, error)
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, request *domain.UpdateUserRequest) (*domain.User, error)
	ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      config.Auth
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg.Auth,
	}
}

// CreateUser cadastra um usuário inativo; a ativação é feita por um administrador
func (s *Service) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome e senha são obrigatórios")
	}

	if err := validatePasswordStrength(user.PasswordHash); err != nil {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidRequest, err.Error())
	}

	user.Email = handleEmail(user.Email)

	existing, err := s.userRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if user.RoleID == 0 {
		user.RoleID = defaultRoleID
	}
	user.PasswordHash = string(hashedPassword)
	user.Active = false

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
		}
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	created.PasswordHash = ""
	return created, nil
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(email))
	if err != nil {
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}
	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("Login realizado")
	return token, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários")
	}

	for _, user := range users {
		user.PasswordHash = ""
	}
	return users, nil
}

// UpdateUser permite ao administrador ativar, desativar ou trocar o perfil de um usuário
func (s *Service) UpdateUser(ctx context.Context, request *domain.UpdateUserRequest) (*domain.User, error) {
	if request.ID <= 0 {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID do usuário é obrigatório")
	}
	if request.Name != nil && strings.TrimSpace(*request.Name) == "" {
		return nil, NewUserAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, request.ID, "Nome não pode ser vazio")
	}
	if request.RoleID != nil && (*request.RoleID < minRoleID || *request.RoleID > maxRoleID) {
		return nil, NewUserAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, request.ID, "Perfil de usuário inválido")
	}

	user, err := s.userRepo.GetUserByID(ctx, request.ID)
	if err != nil {
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Erro ao consultar usuário")
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, request.ID, "Usuário não encontrado")
	}

	if request.Name != nil {
		user.Name = strings.TrimSpace(*request.Name)
	}
	if request.Active != nil {
		user.Active = *request.Active
	}
	if request.RoleID != nil {
		user.RoleID = *request.RoleID
	}

	// Hash vazio mantém a senha atual no banco
	user.PasswordHash = ""
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, user.ID, "Erro ao atualizar usuário")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id": user.ID,
		"active":  user.Active,
		"role_id": user.RoleID,
	}).Info("Usuário atualizado")
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return NewUserAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, userID, "Senha atual e nova senha são obrigatórias")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Erro ao consultar usuário")
	}
	if user == nil {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, userID, "Senha atual incorreta")
	}

	if err := validatePasswordStrength(newPassword); err != nil {
		return NewUserAuthError(ErrWeakPassword, apiErrors.ErrInvalidRequest, userID, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Erro ao atualizar senha")
	}

	log.ForContext(ctx).WithField("user_id", userID).Info("Senha alterada")
	return nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.TokenExpiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	return strings.ReplaceAll(email, " ", "")
}

// validatePasswordStrength exige ao menos 8 caracteres com letras maiúsculas, minúsculas e números
func validatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("a senha deve conter pelo menos %d caracteres", minPasswordLength)
	}

	var hasUpper, hasLower, hasNumber bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasNumber = true
		}
	}

	if !hasUpper {
		return errors.New("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return errors.New("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return errors.New("a senha deve conter pelo menos um número")
	}

	return nil
}
