package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-copilot-api/internal/domain"
)

const campaignsTable = "campaigns"

var campaignColumns = []string{"id", "user_id", "title", "description", "posts", "status", "created_at"}

// ErrCampaignAlreadyActive indica que outra requisição ativou a campanha antes
var ErrCampaignAlreadyActive = errors.New("campanha já está ativa")

type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Campaign, error)
	GetByID(ctx context.Context, userID, campaignID string) (*domain.Campaign, error)
	Activate(ctx context.Context, userID, campaignID string) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	postsJSON, err := json.Marshal(campaign.Posts)
	if err != nil {
		return fmt.Errorf("erro ao serializar posts da campanha para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert(campaignsTable).
		Columns(campaignColumns...).
		Values(campaign.ID, campaign.UserID, campaign.Title, campaign.Description, postsJSON, campaign.Status, campaign.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := postgres.QueryerFrom(ctx, r.conn).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao criar campanha: %w", err)
	}

	return nil
}

func (r *campaignRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := postgres.QueryerFrom(ctx, r.conn).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar campanhas: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) GetByID(ctx context.Context, userID, campaignID string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"id": campaignID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(postgres.QueryerFrom(ctx, r.conn).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanha: %w", err)
	}

	return campaign, nil
}

// Activate troca o status para active somente se a campanha ainda não estiver
// ativa. A campanha deve existir; nenhuma linha afetada significa que ela já
// foi ativada e o erro é ErrCampaignAlreadyActive.
func (r *campaignRepository) Activate(ctx context.Context, userID, campaignID string) error {
	query, args, err := squirrel.
		Update(campaignsTable).
		Set("status", domain.CampaignStatusActive).
		Where(squirrel.Eq{"id": campaignID, "user_id": userID}).
		Where(squirrel.NotEq{"status": domain.CampaignStatusActive}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := postgres.QueryerFrom(ctx, r.conn).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao ativar campanha %s: %w", campaignID, err)
	}

	if err := ensureAffected(result); errors.Is(err, ErrNotFound) {
		return ErrCampaignAlreadyActive
	} else if err != nil {
		return err
	}

	return nil
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var (
		campaign  domain.Campaign
		postsJSON []byte
	)

	err := row.Scan(
		&campaign.ID,
		&campaign.UserID,
		&campaign.Title,
		&campaign.Description,
		&postsJSON,
		&campaign.Status,
		&campaign.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(postsJSON) > 0 {
		if err := json.Unmarshal(postsJSON, &campaign.Posts); err != nil {
			return nil, fmt.Errorf("erro ao desserializar posts da campanha: %w", err)
		}
	}

	return &campaign, nil
}
