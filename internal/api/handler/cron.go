package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/utmdash/utmdash-api/internal/scheduler"
	"github.com/utmdash/utmdash-api/pkg/apiErrors"
	"github.com/utmdash/utmdash-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSheetSync = "sheet-sync"
)

// CronJobServices contém os serviços agendados disponíveis para
// execução manual
type CronJobServices struct {
	SheetSyncService *scheduler.SheetSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSheetSync:
			if services.SheetSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização da planilha não disponível", nil)
				return
			}
			services.SheetSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: sheet-sync", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual disparada")

		writeJSON(w, logger, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{
			"sheet-sync": services.SheetSyncService.GetStatus(),
		}

		writeJSON(w, logger, status)
	})
}
