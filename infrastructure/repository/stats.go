package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-copilot-api/internal/domain"
)

const statsTable = "statistics_snapshots"

// StatsRepository só insere snapshots; nenhum registro é alterado ou removido
type StatsRepository interface {
	Create(ctx context.Context, snapshot *domain.StatisticsSnapshot) error
	ListByUser(ctx context.Context, userID string) ([]*domain.StatisticsSnapshot, error)
}

type statsRepository struct {
	conn *postgres.Connection
}

func NewStatsRepository(conn *postgres.Connection) StatsRepository {
	return &statsRepository{
		conn: conn,
	}
}

func (r *statsRepository) Create(ctx context.Context, snapshot *domain.StatisticsSnapshot) error {
	query, args, err := squirrel.
		Insert(statsTable).
		Columns("user_id", "period", "posts_published", "reviews_received", "reviews_answered", "views", "date").
		Values(
			snapshot.UserID,
			snapshot.Period,
			snapshot.PostsPublished,
			snapshot.ReviewsReceived,
			snapshot.ReviewsAnswered,
			snapshot.Views,
			snapshot.Date,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := postgres.QueryerFrom(ctx, r.conn).QueryRowContext(ctx, query, args...).Scan(&snapshot.ID); err != nil {
		return fmt.Errorf("erro ao gravar snapshot de estatísticas: %w", err)
	}

	return nil
}

// ListByUser devolve os snapshots do mais recente para o mais antigo.
// O id desempata snapshots gravados no mesmo instante.
func (r *statsRepository) ListByUser(ctx context.Context, userID string) ([]*domain.StatisticsSnapshot, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "period", "posts_published", "reviews_received", "reviews_answered", "views", "date").
		From(statsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := postgres.QueryerFrom(ctx, r.conn).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.StatisticsSnapshot, 0)
	for rows.Next() {
		var snapshot domain.StatisticsSnapshot
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.UserID,
			&snapshot.Period,
			&snapshot.PostsPublished,
			&snapshot.ReviewsReceived,
			&snapshot.ReviewsAnswered,
			&snapshot.Views,
			&snapshot.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar snapshot: %w", err)
		}
		snapshots = append(snapshots, &snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return snapshots, nil
}
