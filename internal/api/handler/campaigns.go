package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/publishing"
)

type ActivateCampaignResponse struct {
	ID    string         `json:"id"`
	Posts []*domain.Post `json:"posts"`
}

func ListCampaigns(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		campaigns, err := service.ListCampaigns(r.Context(), uid)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, r, http.StatusOK, campaigns)
	}
}

func CreateCampaign(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaign")

		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.CreateCampaignRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		campaign, err := service.CreateCampaign(r.Context(), uid, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar campanha")
			return
		}

		writeJSON(w, r, http.StatusCreated, campaign)
	}
}

// ActivateCampaign devolve os dois rascunhos criados (Google e Facebook)
func ActivateCampaign(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ActivateCampaign")

		uid, ok := userID(w, r)
		if !ok {
			return
		}

		campaignID := pathParam(r, "id")
		posts, err := service.ActivateCampaign(r.Context(), uid, campaignID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao ativar campanha")
			return
		}

		writeJSON(w, r, http.StatusOK, ActivateCampaignResponse{ID: campaignID, Posts: posts})
	}
}
