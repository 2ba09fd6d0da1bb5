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

const reviewResponsesTable = "review_responses"

// ErrResponseAlreadySent indica que a escrita foi recusada porque a resposta
// gravada já tinha sido enviada
var ErrResponseAlreadySent = errors.New("resposta já enviada")

var reviewResponseColumns = []string{"id", "review_id", "response", "status", "created_at", "updated_at"}

type ReviewResponseRepository interface {
	Create(ctx context.Context, response *domain.ReviewResponse) error
	GetByReviewID(ctx context.Context, reviewID string) (*domain.ReviewResponse, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.ReviewResponse, error)
	Update(ctx context.Context, response *domain.ReviewResponse) error
	CountSentForUser(ctx context.Context, userID string) (int, error)
	CountSentForUserBetween(ctx context.Context, userID string, start, end time.Time) (int, error)
}

type reviewResponseRepository struct {
	conn *postgres.Connection
}

func NewReviewResponseRepository(conn *postgres.Connection) ReviewResponseRepository {
	return &reviewResponseRepository{
		conn: conn,
	}
}

// Create grava a resposta; cada avaliação tem no máximo uma resposta. Uma
// resposta já enviada nunca é sobrescrita: o upsert não devolve linha e o
// erro é ErrResponseAlreadySent.
func (r *reviewResponseRepository) Create(ctx context.Context, response *domain.ReviewResponse) error {
	query, args, err := squirrel.
		Insert(reviewResponsesTable).
		Columns(reviewResponseColumns...).
		Values(response.ID, response.ReviewID, response.Response, response.Status, response.CreatedAt, response.UpdatedAt).
		Suffix(`
			ON CONFLICT (review_id) DO UPDATE SET
				response = EXCLUDED.response,
				status = EXCLUDED.status,
				updated_at = EXCLUDED.updated_at
			WHERE review_responses.status <> ?
			RETURNING id
		`, domain.ResponseStatusSent).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = postgres.QueryerFrom(ctx, r.conn).QueryRowContext(ctx, query, args...).Scan(&response.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrResponseAlreadySent
	}
	if err != nil {
		return fmt.Errorf("erro ao salvar resposta: %w", err)
	}

	return nil
}

func (r *reviewResponseRepository) GetByReviewID(ctx context.Context, reviewID string) (*domain.ReviewResponse, error) {
	query, args, err := squirrel.
		Select(reviewResponseColumns...).
		From(reviewResponsesTable).
		Where(squirrel.Eq{"review_id": reviewID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	response, err := scanReviewResponse(postgres.QueryerFrom(ctx, r.conn).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar resposta: %w", err)
	}

	return response, nil
}

func (r *reviewResponseRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ReviewResponse, error) {
	columns := make([]string, 0, len(reviewResponseColumns))
	for _, column := range reviewResponseColumns {
		columns = append(columns, "rr."+column)
	}

	query, args, err := squirrel.
		Select(columns...).
		From(reviewResponsesTable + " rr").
		Join(reviewsTable + " r ON r.id = rr.review_id").
		Where(squirrel.Eq{"r.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := postgres.QueryerFrom(ctx, r.conn).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar respostas: %w", err)
	}
	defer rows.Close()

	responses := make([]*domain.ReviewResponse, 0)
	for rows.Next() {
		response, err := scanReviewResponse(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resposta: %w", err)
		}
		responses = append(responses, response)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return responses, nil
}

// Update só altera respostas ainda não enviadas; sem linha afetada o erro é
// ErrResponseAlreadySent
func (r *reviewResponseRepository) Update(ctx context.Context, response *domain.ReviewResponse) error {
	query, args, err := squirrel.
		Update(reviewResponsesTable).
		Set("response", response.Response).
		Set("status", response.Status).
		Set("updated_at", response.UpdatedAt).
		Where(squirrel.Eq{"id": response.ID}).
		Where(squirrel.NotEq{"status": domain.ResponseStatusSent}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := postgres.QueryerFrom(ctx, r.conn).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar resposta %s: %w", response.ID, err)
	}

	if err := ensureAffected(result); errors.Is(err, ErrNotFound) {
		return ErrResponseAlreadySent
	} else if err != nil {
		return err
	}

	return nil
}

// CountSentForUser conta as respostas enviadas para avaliações do usuário
func (r *reviewResponseRepository) CountSentForUser(ctx context.Context, userID string) (int, error) {
	return count(ctx, r.conn, r.sentForUser(userID))
}

// CountSentForUserBetween considera a data da avaliação, não a da resposta
func (r *reviewResponseRepository) CountSentForUserBetween(ctx context.Context, userID string, start, end time.Time) (int, error) {
	return count(ctx, r.conn, r.sentForUser(userID).
		Where(squirrel.GtOrEq{"r.date": start}).
		Where(squirrel.Lt{"r.date": end}))
}

func (r *reviewResponseRepository) sentForUser(userID string) squirrel.SelectBuilder {
	return squirrel.
		Select("COUNT(*)").
		From(reviewResponsesTable + " rr").
		Join(reviewsTable + " r ON r.id = rr.review_id").
		Where(squirrel.Eq{"r.user_id": userID, "rr.status": domain.ResponseStatusSent})
}

func scanReviewResponse(row rowScanner) (*domain.ReviewResponse, error) {
	var response domain.ReviewResponse
	err := row.Scan(
		&response.ID,
		&response.ReviewID,
		&response.Response,
		&response.Status,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
