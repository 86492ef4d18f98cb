package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/utmdash/utmdash-api/internal/domain"
	"github.com/utmdash/utmdash-api/pkg/log"
)

// timeNow é substituível em testes
var timeNow = time.Now

// viewFromRequest lê a aba alvo da query string. Sem o parâmetro, a aba
// Central é assumida.
func viewFromRequest(r *http.Request) (domain.ViewMode, error) {
	raw := r.URL.Query().Get("view")
	if raw == "" {
		return domain.ViewCentral, nil
	}

	view := domain.ViewMode(raw)
	switch view {
	case domain.ViewCentral, domain.ViewUTMDash, domain.ViewGraphs, domain.ViewHistory:
		return view, nil
	}

	return "", errors.Errorf("aba desconhecida: %q", raw)
}

// writeJSON serializa a resposta e registra falhas de encoding
func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("api: falha ao serializar resposta")
	}
}
