package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMonthlyReports = "monthly-reports"
	CronJobTypeAll            = "all"
)

// ManualSyncer é implementado pelos agendadores que aceitam execução manual
type ManualSyncer interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MonthlyReportSyncService ManualSyncer
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		if _, ok := userID(w, r); !ok {
			return
		}

		cronType := pathParam(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMonthlyReports, CronJobTypeAll:
			if services.MonthlyReportSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de relatórios mensais não disponível", nil)
				return
			}
			services.MonthlyReportSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: monthly-reports, all", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userID(w, r); !ok {
			return
		}

		status := map[string]any{}
		if services.MonthlyReportSyncService != nil {
			status[CronJobTypeMonthlyReports] = services.MonthlyReportSyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
