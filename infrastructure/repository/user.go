package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/business-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-copilot-api/internal/domain"
)

const (
	usersTable = "users"

	uniqueViolationCode = "23505"
)

var ErrDuplicatedEmail = errors.New("email já cadastrado")

var userColumns = []string{
	"id", "email", "password_hash", "business_name", "sector", "tone",
	"logo_url", "primary_color", "created_at", "updated_at",
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	queryBuilder := squirrel.
		Insert(usersTable).
		Columns("id", "email", "password_hash", "business_name", "sector", "tone", "logo_url", "primary_color").
		Values(user.ID, user.Email, user.PasswordHash, user.BusinessName, user.Sector, user.Tone, user.LogoURL, user.PrimaryColor).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = postgres.QueryerFrom(ctx, r.conn).QueryRowContext(ctx, usersSQL, usersArgs...).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, ErrDuplicatedEmail
		}
		return nil, fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID})

	if user.BusinessName != "" {
		queryBuilder = queryBuilder.Set("business_name", user.BusinessName)
	}

	if user.Sector != "" {
		queryBuilder = queryBuilder.Set("sector", user.Sector)
	}

	if user.Tone != "" {
		queryBuilder = queryBuilder.Set("tone", user.Tone)
	}

	if user.PasswordHash != "" {
		queryBuilder = queryBuilder.Set("password_hash", user.PasswordHash)
	}

	if user.LogoURL != nil {
		queryBuilder = queryBuilder.Set("logo_url", user.LogoURL)
	}

	if user.PrimaryColor != nil {
		queryBuilder = queryBuilder.Set("primary_color", user.PrimaryColor)
	}

	usersSQL, usersArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = postgres.QueryerFrom(ctx, r.conn).ExecContext(ctx, usersSQL, usersArgs...); err != nil {
		return fmt.Errorf("erro ao atualizar usuário %s: %w", user.ID, err)
	}

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email})
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": userID})
}

// getBy devolve nil, nil quando nenhum usuário atende ao filtro
func (r *userRepository) getBy(ctx context.Context, filter squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(filter).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user, err := scanUser(postgres.QueryerFrom(ctx, r.conn).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := postgres.QueryerFrom(ctx, r.conn).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar usuário: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return users, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.BusinessName,
		&user.Sector,
		&user.Tone,
		&user.LogoURL,
		&user.PrimaryColor,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
