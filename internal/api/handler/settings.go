package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/utmdash/utmdash-api/infrastructure/repository"
	"github.com/utmdash/utmdash-api/internal/domain"
	"github.com/utmdash/utmdash-api/pkg/apiErrors"
	"github.com/utmdash/utmdash-api/pkg/log"
)

type groupInvestmentRequest struct {
	Amount float64 `json:"amount"`
}

// GetSettings devolve os ajustes manuais persistidos
func GetSettings(repo repository.SettingsRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		writeJSON(w, logger, repo.Get())
	})
}

// UpdateSettings substitui os ajustes manuais pelo corpo enviado
func UpdateSettings(repo repository.SettingsRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var settings domain.Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if settings.GeneralInvestment < 0 || settings.FrozenBalance < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Valores de investimento não podem ser negativos", nil)
			return
		}

		if err := repo.Save(settings); err != nil {
			logger.WithError(err).Error("ajustes: falha ao persistir")
			apiErrors.WriteError(w, apiErrors.ErrStorage, "Erro ao salvar os ajustes", nil)
			return
		}

		logger.WithFields(log.Fields{
			"general_investment": settings.GeneralInvestment,
			"frozen_balance":     settings.FrozenBalance,
		}).Info("ajustes: atualizados")

		writeJSON(w, logger, repo.Get())
	})
}

// SetGroupInvestment registra o investimento manual de um grupo
// origem|campanha
func SetGroupInvestment(repo repository.SettingsRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		key := httprouter.ParamsFromContext(r.Context()).ByName("key")
		if key == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Chave do grupo não informada", nil)
			return
		}

		var req groupInvestmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.Amount < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Investimento não pode ser negativo", nil)
			return
		}

		settings, err := repo.SetGroupInvestment(key, req.Amount)
		if err != nil {
			logger.WithError(err).Error("ajustes: falha ao persistir investimento do grupo")
			apiErrors.WriteError(w, apiErrors.ErrStorage, "Erro ao salvar o investimento do grupo", nil)
			return
		}

		logger.WithFields(log.Fields{
			"group":  key,
			"amount": req.Amount,
		}).Info("ajustes: investimento do grupo atualizado")

		writeJSON(w, logger, settings)
	})
}
