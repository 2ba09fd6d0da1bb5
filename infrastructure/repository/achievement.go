package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/business-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-copilot-api/internal/domain"
)

const achievementsTable = "achievements"

var achievementColumns = []string{"id", "user_id", "type", "title", "description", "icon", "earned_at"}

type AchievementRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Achievement, error)
	// Create não faz nada quando o usuário já possui o tipo e informa se a linha foi inserida
	Create(ctx context.Context, achievement *domain.Achievement) (bool, error)
}

type achievementRepository struct {
	conn *postgres.Connection
}

func NewAchievementRepository(conn *postgres.Connection) AchievementRepository {
	return &achievementRepository{
		conn: conn,
	}
}

func (r *achievementRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Achievement, error) {
	query, args, err := squirrel.
		Select(achievementColumns...).
		From(achievementsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("earned_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := postgres.QueryerFrom(ctx, r.conn).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar conquistas: %w", err)
	}
	defer rows.Close()

	achievements := make([]*domain.Achievement, 0)
	for rows.Next() {
		var achievement domain.Achievement
		err := rows.Scan(
			&achievement.ID,
			&achievement.UserID,
			&achievement.Type,
			&achievement.Title,
			&achievement.Description,
			&achievement.Icon,
			&achievement.EarnedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar conquista: %w", err)
		}
		achievements = append(achievements, &achievement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return achievements, nil
}

func (r *achievementRepository) Create(ctx context.Context, achievement *domain.Achievement) (bool, error) {
	query, args, err := squirrel.
		Insert(achievementsTable).
		Columns(achievementColumns...).
		Values(
			achievement.ID,
			achievement.UserID,
			achievement.Type,
			achievement.Title,
			achievement.Description,
			achievement.Icon,
			achievement.EarnedAt,
		).
		Suffix("ON CONFLICT (user_id, type) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := postgres.QueryerFrom(ctx, r.conn).ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return inserted > 0, nil
}
