package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-copilot-api/internal/domain"
)

const reviewsTable = "reviews"

var reviewColumns = []string{"id", "user_id", "rating", "author", "content", "date", "platform"}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Review, error)
	ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]*domain.Review, error)
	GetByID(ctx context.Context, userID, reviewID string) (*domain.Review, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

type reviewRepository struct {
	conn *postgres.Connection
}

func NewReviewRepository(conn *postgres.Connection) ReviewRepository {
	return &reviewRepository{
		conn: conn,
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query, args, err := squirrel.
		Insert(reviewsTable).
		Columns(reviewColumns...).
		Values(review.ID, review.UserID, review.Rating, review.Author, review.Content, review.Date, review.Platform).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := postgres.QueryerFrom(ctx, r.conn).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao criar avaliação: %w", err)
	}

	return nil
}

// ListByUser devolve as avaliações da mais recente para a mais antiga
func (r *reviewRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Review, error) {
	return r.list(ctx, squirrel.
		Select(reviewColumns...).
		From(reviewsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC"))
}

// ListByUserBetween devolve as avaliações com data em [start, end)
func (r *reviewRepository) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]*domain.Review, error) {
	return r.list(ctx, squirrel.
		Select(reviewColumns...).
		From(reviewsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.Lt{"date": end}).
		OrderBy("date DESC"))
}

func (r *reviewRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Review, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := postgres.QueryerFrom(ctx, r.conn).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar avaliações: %w", err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar avaliação: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, userID, reviewID string) (*domain.Review, error) {
	query, args, err := squirrel.
		Select(reviewColumns...).
		From(reviewsTable).
		Where(squirrel.Eq{"id": reviewID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	review, err := scanReview(postgres.QueryerFrom(ctx, r.conn).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar avaliação: %w", err)
	}

	return review, nil
}

func (r *reviewRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	return count(ctx, r.conn, squirrel.
		Select("COUNT(*)").
		From(reviewsTable).
		Where(squirrel.Eq{"user_id": userID}))
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var review domain.Review
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.Rating,
		&review.Author,
		&review.Content,
		&review.Date,
		&review.Platform,
	)
	if err != nil {
		return nil, err
	}

	return &review, nil
}
