package handler

import (
	"net/http"

	"github.com/utmdash/utmdash-api/internal/domain"
	"github.com/utmdash/utmdash-api/internal/usecases/filtering"
	"github.com/utmdash/utmdash-api/pkg/apiErrors"
	"github.com/utmdash/utmdash-api/pkg/log"
	"github.com/utmdash/utmdash-api/pkg/utils"
)

type toggleFilterRequest struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

type searchRequest struct {
	Term string `json:"term"`
}

type presetRequest struct {
	Preset string `json:"preset"`
}

type rangeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type linkedRequest struct {
	Linked bool `json:"linked"`
}

// ToggleFilter adiciona ou remove um valor do conjunto aceito da coluna
func ToggleFilter(service *filtering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		view, err := viewFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		var req toggleFilterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.Column == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Coluna do filtro não informada", nil)
			return
		}

		state := service.Toggle(view, req.Column, req.Value)

		logger.WithFields(log.Fields{
			"view":   view,
			"column": req.Column,
			"value":  req.Value,
		}).Debug("filtros: valor alternado")

		writeJSON(w, logger, state)
	})
}

// SetSearch atualiza o termo de busca livre da aba
func SetSearch(service *filtering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		view, err := viewFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		writeJSON(w, logger, service.SetSearch(view, req.Term))
	})
}

// SetDatePreset aplica um atalho relativo de período
func SetDatePreset(service *filtering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		view, err := viewFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		var req presetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		preset := domain.DatePreset(req.Preset)
		switch preset {
		case domain.PresetAll, domain.PresetToday, domain.Preset7Days,
			domain.Preset15Days, domain.Preset30Days, domain.PresetCustom:
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Preset de período desconhecido", nil)
			return
		}

		writeJSON(w, logger, service.SetPreset(view, preset))
	})
}

// SetDateRange define um período customizado inclusivo
func SetDateRange(service *filtering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		view, err := viewFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		var req rangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if _, err := utils.ParseDate(req.StartDate); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use AAAA-MM-DD", nil)
			return
		}
		if _, err := utils.ParseDate(req.EndDate); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use AAAA-MM-DD", nil)
			return
		}

		writeJSON(w, logger, service.SetCustomRange(view, req.StartDate, req.EndDate))
	})
}

// ClearFilters remove toda restrição ativa da aba
func ClearFilters(service *filtering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		view, err := viewFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithField("view", view).Info("filtros: estado limpo")

		writeJSON(w, logger, service.Clear(view))
	})
}

// SetLinkedFilters liga ou desliga o compartilhamento de filtros entre abas
func SetLinkedFilters(service *filtering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req linkedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.SetLinked(req.Linked); err != nil {
			logger.WithError(err).Error("filtros: falha ao persistir vínculo de filtros")
			apiErrors.WriteError(w, apiErrors.ErrStorage, "Erro ao salvar a preferência de filtros", nil)
			return
		}

		logger.WithField("linked", req.Linked).Info("filtros: vínculo entre abas atualizado")

		writeJSON(w, logger, map[string]any{"linked": req.Linked})
	})
}
