package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/business-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-copilot-api/internal/usecases/badging"
	"github.com/vfg2006/business-copilot-api/internal/usecases/clienting"
	"github.com/vfg2006/business-copilot-api/internal/usecases/insighting"
	"github.com/vfg2006/business-copilot-api/internal/usecases/publishing"
	"github.com/vfg2006/business-copilot-api/internal/usecases/reporting"
	"github.com/vfg2006/business-copilot-api/internal/usecases/reviewing"
	"github.com/vfg2006/business-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/business-copilot-api/pkg/log"
	"github.com/vfg2006/business-copilot-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao decodificar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

// writeServiceError traduz os erros dos casos de uso para o código da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	code, details := apiErrors.ErrInternalServer, fallback

	var (
		authErr    *authenticating.AuthError
		contentErr *publishing.ContentError
		reviewErr  *reviewing.ReviewError
		clientErr  *clienting.ClientError
		badgeErr   *badging.BadgeError
		insightErr *insighting.InsightError
		reportErr  *reporting.ReportError
	)

	switch {
	case errors.As(err, &authErr):
		code, details = authErr.Code, authErr.Details
	case errors.As(err, &contentErr):
		code, details = contentErr.Code, contentErr.Details
	case errors.As(err, &reviewErr):
		code, details = reviewErr.Code, reviewErr.Details
	case errors.As(err, &clientErr):
		code, details = clientErr.Code, clientErr.Details
	case errors.As(err, &badgeErr):
		code, details = badgeErr.Code, badgeErr.Details
	case errors.As(err, &insightErr):
		code, details = insightErr.Code, insightErr.Details
	case errors.As(err, &reportErr):
		code, details = reportErr.Code, reportErr.Details
	}

	logger := log.ForContext(r.Context()).WithError(err).WithField("code", code)
	if code == apiErrors.ErrInternalServer || code == apiErrors.ErrDatabaseOperation {
		logger.Error(details)
	} else {
		logger.Warn(details)
	}

	apiErrors.WriteError(w, code, details, nil)
}

// userID devolve o usuário autenticado ou responde 401
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}
	return claims.UserID, true
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}
