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

const postsTable = "posts"

var postColumns = []string{
	"id", "user_id", "campaign_id", "title", "content", "visual_suggestion",
	"status", "channel", "publish_date", "created_at",
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Post, error)
	GetByID(ctx context.Context, userID, postID string) (*domain.Post, error)
	UpdateContent(ctx context.Context, userID, postID, content string) error
	UpdateStatus(ctx context.Context, userID, postID string, status domain.PostStatus) error
	CountPublishedBetween(ctx context.Context, userID string, start, end time.Time) (int, error)
}

type postRepository struct {
	conn *postgres.Connection
}

func NewPostRepository(conn *postgres.Connection) PostRepository {
	return &postRepository{
		conn: conn,
	}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	query, args, err := squirrel.
		Insert(postsTable).
		Columns(postColumns...).
		Values(
			post.ID,
			post.UserID,
			post.CampaignID,
			post.Title,
			post.Content,
			post.VisualSuggestion,
			post.Status,
			post.Channel,
			post.PublishDate,
			post.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := postgres.QueryerFrom(ctx, r.conn).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao criar post: %w", err)
	}

	return nil
}

// ListByUser devolve os posts do mais recente para o mais antigo
func (r *postRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Post, error) {
	query, args, err := squirrel.
		Select(postColumns...).
		From(postsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := postgres.QueryerFrom(ctx, r.conn).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, userID, postID string) (*domain.Post, error) {
	query, args, err := squirrel.
		Select(postColumns...).
		From(postsTable).
		Where(squirrel.Eq{"id": postID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	post, err := scanPost(postgres.QueryerFrom(ctx, r.conn).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar post: %w", err)
	}

	return post, nil
}

func (r *postRepository) UpdateContent(ctx context.Context, userID, postID, content string) error {
	return r.update(ctx, userID, postID, squirrel.Eq{"content": content})
}

func (r *postRepository) UpdateStatus(ctx context.Context, userID, postID string, status domain.PostStatus) error {
	return r.update(ctx, userID, postID, squirrel.Eq{"status": status})
}

func (r *postRepository) update(ctx context.Context, userID, postID string, values squirrel.Eq) error {
	query, args, err := squirrel.
		Update(postsTable).
		SetMap(values).
		Where(squirrel.Eq{"id": postID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := postgres.QueryerFrom(ctx, r.conn).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar post %s: %w", postID, err)
	}

	return ensureAffected(result)
}

// CountPublishedBetween conta os posts publicados criados em [start, end)
func (r *postRepository) CountPublishedBetween(ctx context.Context, userID string, start, end time.Time) (int, error) {
	return count(ctx, r.conn, squirrel.
		Select("COUNT(*)").
		From(postsTable).
		Where(squirrel.Eq{"user_id": userID, "status": domain.PostStatusPublished}).
		Where(squirrel.GtOrEq{"created_at": start}).
		Where(squirrel.Lt{"created_at": end}))
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var post domain.Post
	err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.CampaignID,
		&post.Title,
		&post.Content,
		&post.VisualSuggestion,
		&post.Status,
		&post.Channel,
		&post.PublishDate,
		&post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &post, nil
}
