package repository

import (
	"github.com/pkg/errors"
	"github.com/utmdash/utmdash-api/infrastructure/storage"
	"github.com/utmdash/utmdash-api/internal/domain"
	"github.com/utmdash/utmdash-api/pkg/log"
)

const settingsKey = "settings"

// SettingsRepository persiste os ajustes manuais (investimento geral,
// saldo preso, investimentos por grupo e o vínculo de filtros)
type SettingsRepository interface {
	Get() domain.Settings
	Save(settings domain.Settings) error
	SetGroupInvestment(key string, amount float64) (domain.Settings, error)
}

type settingsRepository struct {
	store storage.Store
}

// NewSettingsRepository cria um repositório de ajustes sobre a porta de
// persistência local
func NewSettingsRepository(store storage.Store) SettingsRepository {
	return &settingsRepository{store: store}
}

// Get carrega os ajustes persistidos. Valores ausentes ou corrompidos
// caem silenciosamente nos padrões.
func (r *settingsRepository) Get() domain.Settings {
	settings := domain.DefaultSettings()
	if err := r.store.Load(settingsKey, &settings); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.L.WithError(err).Warn("ajustes: dados persistidos ilegíveis, usando padrões")
		}
		return domain.DefaultSettings()
	}

	if settings.GroupInvestments == nil {
		settings.GroupInvestments = map[string]float64{}
	}

	return settings
}

// Save persiste os ajustes completos
func (r *settingsRepository) Save(settings domain.Settings) error {
	if settings.GroupInvestments == nil {
		settings.GroupInvestments = map[string]float64{}
	}

	return r.store.Save(settingsKey, settings)
}

// SetGroupInvestment atualiza o investimento de um único grupo e devolve
// os ajustes resultantes
func (r *settingsRepository) SetGroupInvestment(key string, amount float64) (domain.Settings, error) {
	settings := r.Get()
	settings.GroupInvestments[key] = amount

	if err := r.Save(settings); err != nil {
		return settings, err
	}

	return settings, nil
}
