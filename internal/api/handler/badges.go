package handler

import (
	"net/http"

	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/badging"
)

type EvaluateBadgesResponse struct {
	NewBadges []*domain.Achievement `json:"new_badges"`
}

func ListBadges(service badging.BadgeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		achievements, err := service.ListAchievements(r.Context(), uid)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar conquistas")
			return
		}

		writeJSON(w, r, http.StatusOK, achievements)
	}
}

func EvaluateBadges(service badging.BadgeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		awarded, err := service.EvaluateAndAward(r.Context(), uid)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao avaliar conquistas")
			return
		}
		if awarded == nil {
			awarded = []*domain.Achievement{}
		}

		writeJSON(w, r, http.StatusOK, EvaluateBadgesResponse{NewBadges: awarded})
	}
}
