package repository

//go:generate mockgen -source=user.go -destination=mocks/user_mock.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/valuation-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuation-api/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	usersSQL, usersArgs, err := psql.
		Insert(usersTable).
		Columns("name", "email", "password_hash", "active", "role_id").
		Values(user.Name, user.Email, user.PasswordHash, user.Active, user.RoleID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, usersSQL, usersArgs...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err = observe("users.create", err); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, errors.Wrap(err, "erro ao inserir usuário")
	}

	return user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, "users.get_by_email", squirrel.Eq{"email": email})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	return r.getUser(ctx, "users.get_by_id", squirrel.Eq{"id": userID})
}

func (r *userRepository) getUser(ctx context.Context, operation string, where squirrel.Eq) (*domain.User, error) {
	usersSQL, usersArgs, err := psql.
		Select("id", "name", "email", "password_hash", "active", "role_id", "created_at", "updated_at").
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user domain.User
	err = r.conn.QueryRowContext(ctx, usersSQL, usersArgs...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err = observe(operation, err); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar usuário")
	}

	return &user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	usersSQL, usersArgs, err := psql.
		Select("id", "name", "email", "active", "role_id", "created_at", "updated_at").
		From(usersTable).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, usersSQL, usersArgs...)
	if err = observe("users.list", err); err != nil {
		return nil, errors.Wrap(err, "erro ao listar usuários")
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Active,
			&user.RoleID,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler usuário")
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

// UpdateUser grava nome, status e perfil; a senha só é alterada quando o hash vem preenchido
func (r *userRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	queryBuilder := psql.
		Update(usersTable).
		Set("name", user.Name).
		Set("active", user.Active).
		Set("role_id", user.RoleID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID})

	if user.PasswordHash != "" {
		queryBuilder = queryBuilder.Set("password_hash", user.PasswordHash)
	}

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, usersSQL, usersArgs...)
	if err = observe("users.update", err); err != nil {
		return errors.Wrap(err, "erro ao atualizar usuário")
	}

	return nil
}
