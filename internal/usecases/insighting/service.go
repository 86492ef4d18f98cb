package insighting

import (
	"time"

	"github.com/utmdash/utmdash-api/infrastructure/repository"
	"github.com/utmdash/utmdash-api/internal/domain"
	"github.com/utmdash/utmdash-api/internal/session"
	"github.com/utmdash/utmdash-api/internal/usecases/filtering"
)

// Insighter monta o view model completo do dashboard
type Insighter interface {
	BuildDashboard(view domain.ViewMode) (*domain.DashboardView, error)
}

// Service implementa Insighter combinando sessão, filtros e ajustes
type Service struct {
	session       *session.Session
	filterService *filtering.Service
	settingsRepo  repository.SettingsRepository
	now           func() time.Time
}

// NewService cria uma nova instância do serviço de dashboard
func NewService(
	sess *session.Session,
	filterService *filtering.Service,
	settingsRepo repository.SettingsRepository,
) *Service {
	return &Service{
		session:       sess,
		filterService: filterService,
		settingsRepo:  settingsRepo,
		now:           time.Now,
	}
}

// WithClock troca a fonte de tempo (usado em testes)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// BuildDashboard recalcula todas as visões derivadas a partir do estado
// atual. Tudo é função pura de (dataset, filtros, ajustes, agora); não
// há cache entre chamadas.
func (s *Service) BuildDashboard(view domain.ViewMode) (*domain.DashboardView, error) {
	dataset, columns, err := s.session.Dataset()
	if err != nil {
		return nil, err
	}

	now := s.now()
	state := s.filterService.State(view)
	settings := s.settingsRepo.Get()

	filtered := filtering.Apply(dataset, columns, state, now)

	return &domain.DashboardView{
		Stats:         domain.CalculateStats(SumRevenue(filtered, columns.Revenue), len(filtered), settings),
		Groups:        GroupPerformance(filtered, columns, settings),
		Periods:       PeriodCounters(dataset.Rows, columns.Date, now),
		Evolution:     Evolution(filtered, columns.Date),
		TopCampaigns:  TopN(filtered, columns.Campaign, columns, 5),
		TopSources:    TopN(filtered, columns.Source, columns, 5),
		TopProducts:   TopN(filtered, columns.Product, columns, 5),
		FilterOptions: FilterOptions(dataset, filtered, columns),
		Filters:       state,
		Columns:       columns,
		TotalRows:     len(dataset.Rows),
		FilteredRows:  len(filtered),
	}, nil
}
