package handler

import (
	"net/http"

	"github.com/vfg2006/business-copilot-api/internal/usecases/insighting"
)

// GetDashboard registra um snapshot semanal a cada chamada
func GetDashboard(service insighting.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		dashboard, err := service.Dashboard(r.Context(), uid)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao carregar painel")
			return
		}

		writeJSON(w, r, http.StatusOK, dashboard)
	}
}
