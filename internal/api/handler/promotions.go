package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/publishing"
)

func ListPromotions(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		promotions, err := service.ListPromotions(r.Context(), uid)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar promoções")
			return
		}

		writeJSON(w, r, http.StatusOK, promotions)
	}
}

func CreatePromotion(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreatePromotion")

		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.CreatePromotionRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		promotion, err := service.CreatePromotion(r.Context(), uid, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar promoção")
			return
		}

		writeJSON(w, r, http.StatusCreated, promotion)
	}
}

func ActivatePromotion(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		promotionID := pathParam(r, "id")
		if err := service.ActivatePromotion(r.Context(), uid, promotionID); err != nil {
			writeServiceError(w, r, err, "Erro ao ativar promoção")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"id":     promotionID,
			"status": string(domain.PromotionStatusActive),
		})
	}
}
