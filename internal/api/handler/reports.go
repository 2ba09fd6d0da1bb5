package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/reporting"
	"github.com/vfg2006/business-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
)

func ListReports(service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		reports, err := service.ListReports(r.Context(), uid)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar relatórios")
			return
		}

		writeJSON(w, r, http.StatusOK, reports)
	}
}

// GenerateReport gera o relatório do mês corrente ou do mês passado em ?month=yyyy-mm.
// Um mês que já tem relatório devolve o existente.
func GenerateReport(service reporting.ReportService, clock utils.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateReport")

		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var (
			report *domain.MonthlyReport
			err    error
		)

		if month := r.URL.Query().Get("month"); month != "" {
			date, parseErr := utils.ParseMonth(month)
			if parseErr != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use o formato yyyy-mm", nil)
				return
			}
			if !utils.SameOrBeforeMonth(date, clock()) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não é possível gerar relatório de um mês futuro", nil)
				return
			}
			report, err = service.GenerateReportForMonth(r.Context(), uid, date)
		} else {
			report, err = service.GenerateReport(r.Context(), uid)
		}
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar relatório")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}
