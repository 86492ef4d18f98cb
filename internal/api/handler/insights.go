package handler

import (
	"net/http"

	"github.com/utmdash/utmdash-api/infrastructure/integrator/gemini"
	"github.com/utmdash/utmdash-api/internal/domain"
	"github.com/utmdash/utmdash-api/internal/session"
	"github.com/utmdash/utmdash-api/internal/usecases/filtering"
	"github.com/utmdash/utmdash-api/pkg/apiErrors"
	"github.com/utmdash/utmdash-api/pkg/log"
)

type insightsResponse struct {
	Analysis string `json:"analysis"`
	Rows     int    `json:"rows"`
}

// GenerateInsights envia uma amostra das linhas filtradas da aba para
// análise. Falhas do serviço externo viram uma mensagem de contingência
// com status 200; só a ausência de dataset é um erro.
func GenerateInsights(advisor gemini.Advisor, sess *session.Session, filterService *filtering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		view, err := viewFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		dataset, columns, err := sess.Dataset()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrNoDataset, "Nenhum dataset carregado. Importe um CSV primeiro.", nil)
			return
		}

		state := filterService.State(view)
		filtered := filtering.Apply(dataset, columns, state, timeNow())

		scoped := &domain.Dataset{
			Headers: dataset.Headers,
			Types:   dataset.Types,
			Rows:    filtered,
		}

		logger.WithFields(log.Fields{
			"view": view,
			"rows": len(filtered),
		}).Info("insights: gerando análise inteligente")

		writeJSON(w, logger, insightsResponse{
			Analysis: advisor.AnalyzeDataset(scoped),
			Rows:     len(filtered),
		})
	})
}
