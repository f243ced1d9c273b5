package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/valuation-api/internal/scheduler"
	"github.com/vfg2006/valuation-api/pkg/apiErrors"
	"github.com/vfg2006/valuation-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeValuationSnapshot = "valuation-snapshot"
	CronJobTypeAll               = "all"
)

// SnapshotJob é o job de histórico de valuation controlado pela API
type SnapshotJob interface {
	TriggerManualSync(period string) error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ValuationSnapshotService SnapshotJob
}

// RunCronJob executa manualmente uma cron job. O query param period (mm-yyyy) é opcional.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeValuationSnapshot, CronJobTypeAll:
			if services.ValuationSnapshotService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de histórico de valuation não disponível", nil)
				return
			}

			period := r.URL.Query().Get("period")
			if err := services.ValuationSnapshotService.TriggerManualSync(period); err != nil {
				if errors.Is(err, scheduler.ErrSnapshotAlreadyRunning) {
					apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, err.Error(), nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: valuation-snapshot, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("Cron job iniciada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ValuationSnapshotService != nil {
			status[CronJobTypeValuationSnapshot] = services.ValuationSnapshotService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
