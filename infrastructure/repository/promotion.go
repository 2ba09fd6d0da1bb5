package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-copilot-api/internal/domain"
)

const promotionsTable = "promotions"

var promotionColumns = []string{
	"id", "user_id", "title", "description", "discount", "start_date", "end_date",
	"google_post", "facebook_post", "visual_suggestion", "status", "created_at",
}

type PromotionRepository interface {
	Create(ctx context.Context, promotion *domain.Promotion) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Promotion, error)
	UpdateStatus(ctx context.Context, userID, promotionID string, status domain.PromotionStatus) error
	CountActive(ctx context.Context, userID string) (int, error)
}

type promotionRepository struct {
	conn *postgres.Connection
}

func NewPromotionRepository(conn *postgres.Connection) PromotionRepository {
	return &promotionRepository{
		conn: conn,
	}
}

func (r *promotionRepository) Create(ctx context.Context, promotion *domain.Promotion) error {
	query, args, err := squirrel.
		Insert(promotionsTable).
		Columns(promotionColumns...).
		Values(
			promotion.ID,
			promotion.UserID,
			promotion.Title,
			promotion.Description,
			promotion.Discount,
			promotion.StartDate,
			promotion.EndDate,
			promotion.Posts.Google,
			promotion.Posts.Facebook,
			promotion.VisualSuggestion,
			promotion.Status,
			promotion.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := postgres.QueryerFrom(ctx, r.conn).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao criar promoção: %w", err)
	}

	return nil
}

func (r *promotionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Promotion, error) {
	query, args, err := squirrel.
		Select(promotionColumns...).
		From(promotionsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := postgres.QueryerFrom(ctx, r.conn).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar promoções: %w", err)
	}
	defer rows.Close()

	promotions := make([]*domain.Promotion, 0)
	for rows.Next() {
		var promotion domain.Promotion
		err := rows.Scan(
			&promotion.ID,
			&promotion.UserID,
			&promotion.Title,
			&promotion.Description,
			&promotion.Discount,
			&promotion.StartDate,
			&promotion.EndDate,
			&promotion.Posts.Google,
			&promotion.Posts.Facebook,
			&promotion.VisualSuggestion,
			&promotion.Status,
			&promotion.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar promoção: %w", err)
		}
		promotions = append(promotions, &promotion)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return promotions, nil
}

func (r *promotionRepository) UpdateStatus(ctx context.Context, userID, promotionID string, status domain.PromotionStatus) error {
	query, args, err := squirrel.
		Update(promotionsTable).
		Set("status", status).
		Where(squirrel.Eq{"id": promotionID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := postgres.QueryerFrom(ctx, r.conn).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar promoção %s: %w", promotionID, err)
	}

	return ensureAffected(result)
}

func (r *promotionRepository) CountActive(ctx context.Context, userID string) (int, error) {
	return count(ctx, r.conn, squirrel.
		Select("COUNT(*)").
		From(promotionsTable).
		Where(squirrel.Eq{"user_id": userID, "status": domain.PromotionStatusActive}))
}
