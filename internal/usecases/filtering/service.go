package filtering

import (
	"sync"

	"github.com/utmdash/utmdash-api/infrastructure/repository"
	"github.com/utmdash/utmdash-api/internal/domain"
)

// Service mantém o estado de filtros ativo. Com filtros vinculados todas
// as abas compartilham um único estado; desvinculadas, cada aba guarda o
// seu próprio snapshot, como no dashboard original.
type Service struct {
	mu           sync.Mutex
	shared       domain.FilterState
	perView      map[domain.ViewMode]domain.FilterState
	settingsRepo repository.SettingsRepository
}

// NewService cria o motor de filtros com estado vazio
func NewService(settingsRepo repository.SettingsRepository) *Service {
	return &Service{
		shared:       domain.NewFilterState(),
		perView:      map[domain.ViewMode]domain.FilterState{},
		settingsRepo: settingsRepo,
	}
}

// State devolve o estado de filtros efetivo para a aba
func (s *Service) State(view domain.ViewMode) domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked(view)
}

func (s *Service) stateLocked(view domain.ViewMode) domain.FilterState {
	if s.settingsRepo.Get().LinkedFilters {
		return s.shared
	}

	state, ok := s.perView[view]
	if !ok {
		state = domain.NewFilterState()
	}
	return state
}

func (s *Service) update(view domain.ViewMode, next domain.FilterState) {
	if s.settingsRepo.Get().LinkedFilters {
		s.shared = next
		return
	}
	s.perView[view] = next
}

// Toggle adiciona ou remove um valor do conjunto aceito da coluna
func (s *Service) Toggle(view domain.ViewMode, column, value string) domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.stateLocked(view).Toggle(column, value)
	s.update(view, next)
	return next
}

// SetSearch atualiza o termo de busca livre
func (s *Service) SetSearch(view domain.ViewMode, term string) domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.stateLocked(view).WithSearch(term)
	s.update(view, next)
	return next
}

// SetPreset atualiza o preset de período
func (s *Service) SetPreset(view domain.ViewMode, preset domain.DatePreset) domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.stateLocked(view).WithPreset(preset)
	s.update(view, next)
	return next
}

// SetCustomRange define um período customizado inclusivo
func (s *Service) SetCustomRange(view domain.ViewMode, start, end string) domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.stateLocked(view).WithCustomRange(start, end)
	s.update(view, next)
	return next
}

// Clear remove toda restrição ativa da aba
func (s *Service) Clear(view domain.ViewMode) domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.stateLocked(view).Clear()
	s.update(view, next)
	return next
}

// SetLinked liga ou desliga o vínculo de filtros entre abas e persiste a
// escolha. Ao vincular, o estado compartilhado volta a valer para todas.
func (s *Service) SetLinked(linked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settingsRepo.Get()
	settings.LinkedFilters = linked
	return s.settingsRepo.Save(settings)
}
