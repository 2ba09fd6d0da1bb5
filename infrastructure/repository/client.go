package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-copilot-api/internal/domain"
)

const clientsTable = "clients"

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Client, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	CountAddedBetween(ctx context.Context, userID string, start, end time.Time) (int, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query, args, err := squirrel.
		Insert(clientsTable).
		Columns("id", "user_id", "name", "email", "created_at").
		Values(client.ID, client.UserID, client.Name, client.Email, client.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := postgres.QueryerFrom(ctx, r.conn).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

func (r *clientRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Client, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "name", "email", "created_at").
		From(clientsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := postgres.QueryerFrom(ctx, r.conn).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(&client.ID, &client.UserID, &client.Name, &client.Email, &client.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao processar cliente: %w", err)
		}
		clients = append(clients, &client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	return count(ctx, r.conn, squirrel.
		Select("COUNT(*)").
		From(clientsTable).
		Where(squirrel.Eq{"user_id": userID}))
}

func (r *clientRepository) CountAddedBetween(ctx context.Context, userID string, start, end time.Time) (int, error) {
	return count(ctx, r.conn, squirrel.
		Select("COUNT(*)").
		From(clientsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"created_at": start}).
		Where(squirrel.Lt{"created_at": end}))
}
