package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/business-copilot-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Register")

		var req domain.RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := service.Register(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar usuário")
			return
		}

		writeJSON(w, r, http.StatusCreated, user)
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if req.Email == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios", nil)
			return
		}

		token, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			// usuário inexistente e senha errada têm a mesma resposta
			if authenticating.IsCredentialsError(err) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
				return
			}
			writeServiceError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, r, http.StatusOK, LoginResponse{Token: token})
	}
}

// GetMe retorna o perfil do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

// UpdateMe altera somente os campos enviados
func UpdateMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateMe")

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.UpdateProfileRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.ID = claims.UserID

		user, err := service.UpdateProfile(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar perfil")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}
