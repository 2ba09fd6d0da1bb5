package clienting

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/infrastructure/repository"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/generating"
	"github.com/vfg2006/business-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
)

const exportDateLayout = "02/01/2006"

var exportHeader = []string{"Nom", "Email", "Date d'ajout"}

type ClientService interface {
	AddClient(ctx context.Context, userID string, request domain.CreateClientRequest) (*domain.Client, error)
	ListClients(ctx context.Context, userID string) ([]*domain.Client, error)
	// ExportCSV escreve os clientes do mais recente para o mais antigo
	ExportCSV(ctx context.Context, userID string, w io.Writer) error
	PreviewNewsletter(ctx context.Context, userID string) (*domain.Newsletter, error)
}

type Service struct {
	clientRepo repository.ClientRepository
	userRepo   repository.UserRepository
	generator  generating.Generator
	clock      utils.Clock
}

func NewService(
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
	generator generating.Generator,
	clock utils.Clock,
) ClientService {
	if clock == nil {
		clock = utils.SystemClock
	}

	if generator == nil {
		generator = generating.NewService(clock)
	}

	return &Service{
		clientRepo: clientRepo,
		userRepo:   userRepo,
		generator:  generator,
		clock:      clock,
	}
}

func (s *Service) AddClient(ctx context.Context, userID string, request domain.CreateClientRequest) (*domain.Client, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, NewClientError(ErrMissingName, apiErrors.ErrMissingRequiredData, userID, "")
	}

	email := utils.NormalizeEmail(request.Email)
	if !utils.IsValidEmail(email) {
		return nil, NewClientError(ErrInvalidEmail, apiErrors.ErrInvalidFormat, userID, request.Email)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewClientError(err, apiErrors.ErrInternalServer, userID, "Erro ao gerar identificador")
	}

	client := &domain.Client{
		ID:        id,
		UserID:    userID,
		Name:      name,
		Email:     email,
		CreatedAt: s.clock(),
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao salvar cliente")
		return nil, NewClientError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, userID, "Erro ao salvar cliente")
	}

	return client, nil
}

func (s *Service) ListClients(ctx context.Context, userID string) ([]*domain.Client, error) {
	clients, err := s.clientRepo.ListByUser(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao listar clientes")
		return nil, NewClientError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, userID, "Erro ao listar clientes")
	}

	return clients, nil
}

func (s *Service) ExportCSV(ctx context.Context, userID string, w io.Writer) error {
	clients, err := s.ListClients(ctx, userID)
	if err != nil {
		return err
	}

	return WriteCSV(w, clients)
}

// PreviewNewsletter devolve a newsletter que será enviada no primeiro dia do
// próximo mês a todos os clientes cadastrados
func (s *Service) PreviewNewsletter(ctx context.Context, userID string) (*domain.Newsletter, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao buscar perfil")
		return nil, NewClientError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, userID, "Erro ao buscar perfil")
	}
	if user == nil {
		return nil, NewClientError(ErrProfileNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	total, err := s.clientRepo.CountByUser(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao contar clientes")
		return nil, NewClientError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, userID, "Erro ao contar clientes")
	}

	newsletter := s.generator.GenerateNewsletter(user.Profile(), total)
	_, newsletter.NextSendDate = domain.MonthBounds(s.clock())

	return &newsletter, nil
}

// WriteCSV usa o cabeçalho e o formato de data exibidos na interface
func WriteCSV(w io.Writer, clients []*domain.Client) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}

	for _, client := range clients {
		record := []string{client.Name, client.Email, client.CreatedAt.Format(exportDateLayout)}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("%w: %w", ErrExport, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}

	return nil
}
