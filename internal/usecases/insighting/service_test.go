package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utmdash/utmdash-api/infrastructure/repository"
	"github.com/utmdash/utmdash-api/infrastructure/storage"
	"github.com/utmdash/utmdash-api/internal/domain"
	"github.com/utmdash/utmdash-api/internal/session"
	"github.com/utmdash/utmdash-api/internal/usecases/filtering"
)

func newTestService(t *testing.T) (*Service, *session.Session, *filtering.Service, repository.SettingsRepository) {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	sess := session.New()
	settingsRepo := repository.NewSettingsRepository(store)
	filterService := filtering.NewService(settingsRepo)

	service := NewService(sess, filterService, settingsRepo).WithClock(func() time.Time {
		return time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC)
	})

	return service, sess, filterService, settingsRepo
}

func dashboardDataset() *domain.Dataset {
	return &domain.Dataset{
		Headers: []string{"ID", "Data Venda", "Status", "Produto", "Valor", "utm_source", "utm_campaign"},
		Rows: []domain.Row{
			{"ID": 1.0, "Data Venda": "12/03/2024", "Status": "approved", "Produto": "Curso A", "Valor": 100.0, "utm_source": "tiktok", "utm_campaign": "bf|ad1"},
			{"ID": 2.0, "Data Venda": "11/03/2024", "Status": "approved", "Produto": "Curso B", "Valor": 200.0, "utm_source": "fb", "utm_campaign": "bf|ad2"},
			{"ID": 3.0, "Data Venda": "01/02/2024", "Status": "pending", "Produto": "Curso A", "Valor": 50.0, "utm_source": "", "utm_campaign": ""},
		},
		Types: map[string]domain.ColumnType{"ID": domain.ColumnNumber, "Valor": domain.ColumnNumber},
	}
}

func TestBuildDashboardWithoutDataset(t *testing.T) {
	service, _, _, _ := newTestService(t)

	_, err := service.BuildDashboard(domain.ViewCentral)
	assert.ErrorIs(t, err, session.ErrNoDataset)
}

func TestBuildDashboard(t *testing.T) {
	service, sess, filterService, _ := newTestService(t)
	sess.Replace(dashboardDataset())

	t.Run("Sem filtros todas as linhas contam", func(t *testing.T) {
		dashboard, err := service.BuildDashboard(domain.ViewCentral)
		require.NoError(t, err)

		assert.Equal(t, 3, dashboard.TotalRows)
		assert.Equal(t, 3, dashboard.FilteredRows)
		assert.Equal(t, 350.0, dashboard.Stats.Faturamento)
		assert.Equal(t, 3, dashboard.Stats.Vendas)
		assert.Len(t, dashboard.Groups, 3)
		assert.Len(t, dashboard.Evolution, 3)
	})

	t.Run("Contadores de período ignoram filtros ativos", func(t *testing.T) {
		filterService.Toggle(domain.ViewCentral, "Status", "pending")
		defer filterService.Clear(domain.ViewCentral)

		dashboard, err := service.BuildDashboard(domain.ViewCentral)
		require.NoError(t, err)

		assert.Equal(t, 1, dashboard.FilteredRows)
		assert.Equal(t, 1, dashboard.Periods.Today)
		assert.Equal(t, 2, dashboard.Periods.Last7)
	})

	t.Run("Opções de filtro cobrem o dataset completo", func(t *testing.T) {
		filterService.Toggle(domain.ViewCentral, "utm_source", "tiktok")
		defer filterService.Clear(domain.ViewCentral)

		dashboard, err := service.BuildDashboard(domain.ViewCentral)
		require.NoError(t, err)

		sources := dashboard.FilterOptions["utm_source"]
		values := make([]string, 0, len(sources))
		for _, option := range sources {
			values = append(values, option.Value)
		}
		assert.ElementsMatch(t, []string{"tiktok", "facebook", "organic"}, values)
	})

	t.Run("Estado de filtros acompanha a resposta", func(t *testing.T) {
		filterService.SetSearch(domain.ViewCentral, "curso")
		defer filterService.Clear(domain.ViewCentral)

		dashboard, err := service.BuildDashboard(domain.ViewCentral)
		require.NoError(t, err)

		assert.Equal(t, "curso", dashboard.Filters.Search)
	})
}

func TestBuildDashboardUsesGroupInvestments(t *testing.T) {
	service, sess, _, settingsRepo := newTestService(t)
	sess.Replace(dashboardDataset())

	_, err := settingsRepo.SetGroupInvestment("tiktok|bf", 40)
	require.NoError(t, err)

	dashboard, err := service.BuildDashboard(domain.ViewCentral)
	require.NoError(t, err)

	var tiktok *domain.PerformanceGroup
	for _, group := range dashboard.Groups {
		if group.Key == "tiktok|bf" {
			tiktok = group
		}
	}
	require.NotNil(t, tiktok)
	assert.Equal(t, 40.0, tiktok.Investment)
	assert.Equal(t, domain.GroupProfit, tiktok.Status)
}
