package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/infrastructure/repository"
	"github.com/vfg2006/business-copilot-api/internal/config"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength     = 6
	minBusinessNameLength = 2
	defaultTokenTTL       = 24 * time.Hour
)

type Authenticator interface {
	Register(ctx context.Context, request domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, request domain.UpdateProfileRequest) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      config.Auth
	clock    utils.Clock
}

func NewService(userRepo repository.UserRepository, cfg *config.Config, clock utils.Clock) Authenticator {
	if clock == nil {
		clock = utils.SystemClock
	}

	authCfg := cfg.Auth
	if authCfg.TokenTTL <= 0 {
		authCfg.TokenTTL = defaultTokenTTL
	}

	return &Service{
		userRepo: userRepo,
		cfg:      authCfg,
		clock:    clock,
	}
}

func (s *Service) Register(ctx context.Context, request domain.RegisterRequest) (*domain.User, error) {
	if request.Email == "" || request.Password == "" || strings.TrimSpace(request.BusinessName) == "" || request.Sector == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, senha, nome do negócio e setor são obrigatórios")
	}

	email := utils.NormalizeEmail(request.Email)
	if !utils.IsValidEmail(email) {
		return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Email inválido")
	}

	if len(request.Password) < minPasswordLength {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, fmt.Sprintf("A senha deve conter pelo menos %d caracteres", minPasswordLength))
	}

	businessName := strings.TrimSpace(request.BusinessName)
	if len([]rune(businessName)) < minBusinessNameLength {
		return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Nome do negócio muito curto")
	}

	sector, ok := domain.ParseSector(request.Sector)
	if !ok {
		return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Setor inválido")
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao processar senha")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		ID:           id,
		Email:        email,
		PasswordHash: string(hashedPassword),
		BusinessName: businessName,
		Sector:       sector,
		Tone:         domain.ToneProfessional,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatedEmail) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"sector":  user.Sector,
	}).Info("Usuário cadastrado")

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user, err := s.userRepo.GetByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewUserAuthError(err, apiErrors.ErrInternalServer, user.ID, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao buscar perfil")
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao buscar usuário")
	}

	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile altera apenas os campos informados na requisição
func (s *Service) UpdateProfile(ctx context.Context, request domain.UpdateProfileRequest) (*domain.User, error) {
	if request.ID == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID é obrigatório")
	}

	user, err := s.userRepo.GetByID(ctx, request.ID)
	if err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, request.ID, "Erro ao buscar usuário")
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, request.ID, "Usuário não encontrado")
	}

	if request.BusinessName != nil {
		businessName := strings.TrimSpace(*request.BusinessName)
		if len([]rune(businessName)) < minBusinessNameLength {
			return nil, NewUserAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, request.ID, "Nome do negócio muito curto")
		}
		user.BusinessName = businessName
	}

	if request.Sector != nil {
		sector, ok := domain.ParseSector(*request.Sector)
		if !ok {
			return nil, NewUserAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, request.ID, "Setor inválido")
		}
		user.Sector = sector
	}

	if request.Tone != nil {
		user.Tone = domain.ParseTone(*request.Tone)
	}

	if request.LogoURL != nil {
		user.LogoURL = request.LogoURL
	}

	if request.PrimaryColor != nil {
		user.PrimaryColor = request.PrimaryColor
	}

	// A senha não é alterada por esta operação
	user.PasswordHash = ""
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, request.ID, "Erro ao atualizar perfil")
	}

	return user, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.clock()
	claims := domain.Claims{
		UserID:       user.ID,
		UserEmail:    user.Email,
		BusinessName: user.BusinessName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.clock))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem usuário")
	}

	return claims, nil
}
