package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/utmdash/utmdash-api/internal/session"
	"github.com/utmdash/utmdash-api/internal/usecases/insighting"
	"github.com/utmdash/utmdash-api/pkg/apiErrors"
	"github.com/utmdash/utmdash-api/pkg/log"
)

// GetDashboard devolve o view model completo da aba solicitada,
// recalculado sobre o dataset e os filtros atuais
func GetDashboard(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		view, err := viewFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: parâmetro de aba inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		dashboard, err := service.BuildDashboard(view)
		if err != nil {
			if errors.Is(err, session.ErrNoDataset) {
				apiErrors.WriteError(w, apiErrors.ErrNoDataset, "Nenhum dataset carregado. Importe um CSV primeiro.", nil)
				return
			}

			logger.WithError(err).Error("dashboard: falha ao montar o painel")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o painel", nil)
			return
		}

		logger.WithFields(log.Fields{
			"view":          view,
			"total_rows":    dashboard.TotalRows,
			"filtered_rows": dashboard.FilteredRows,
		}).Debug("dashboard: painel montado")

		writeJSON(w, logger, dashboard)
	})
}
