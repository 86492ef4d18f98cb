package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/utmdash/utmdash-api/infrastructure/repository"
	"github.com/utmdash/utmdash-api/internal/domain"
	"github.com/utmdash/utmdash-api/internal/usecases/importing"
	"github.com/utmdash/utmdash-api/pkg/apiErrors"
	"github.com/utmdash/utmdash-api/pkg/log"
)

// historySummary é a projeção de uma entrada do histórico sem o
// snapshot completo do dataset
type historySummary struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Timestamp time.Time           `json:"timestamp"`
	Stats     domain.HistoryStats `json:"stats"`
}

func summarize(entry *domain.HistoryEntry) historySummary {
	return historySummary{
		ID:        entry.ID,
		Name:      entry.Name,
		Timestamp: entry.Timestamp,
		Stats:     entry.Stats,
	}
}

// ListHistory devolve as importações registradas, da mais recente para
// a mais antiga
func ListHistory(repo repository.HistoryRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entries := repo.List()
		summaries := make([]historySummary, 0, len(entries))
		for _, entry := range entries {
			summaries = append(summaries, summarize(entry))
		}

		writeJSON(w, logger, summaries)
	})
}

// RemoveHistoryEntry apaga uma entrada do histórico. O dataset ativo da
// sessão não é afetado.
func RemoveHistoryEntry(repo repository.HistoryRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da entrada não informado", nil)
			return
		}

		if err := repo.Remove(id); err != nil {
			if errors.Is(err, repository.ErrEntryNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrEntryNotFound, "Entrada do histórico não encontrada", nil)
				return
			}

			logger.WithError(err).Error("histórico: falha ao remover entrada")
			apiErrors.WriteError(w, apiErrors.ErrStorage, "Erro ao remover a entrada do histórico", nil)
			return
		}

		logger.WithField("entry_id", id).Info("histórico: entrada removida")

		w.WriteHeader(http.StatusNoContent)
	})
}

// LoadHistoryEntry torna ativo uma cópia do snapshot salvo
func LoadHistoryEntry(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da entrada não informado", nil)
			return
		}

		dataset, err := service.LoadFromHistory(id)
		if err != nil {
			if errors.Is(err, repository.ErrEntryNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrEntryNotFound, "Entrada do histórico não encontrada", nil)
				return
			}

			logger.WithError(err).Error("histórico: falha ao restaurar dataset")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao restaurar o dataset", nil)
			return
		}

		writeJSON(w, logger, importResponse{
			Rows:    len(dataset.Rows),
			Headers: dataset.Headers,
		})
	})
}
