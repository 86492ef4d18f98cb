package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utmdash/utmdash-api/internal/domain"
)

var testColumns = domain.ColumnRoles{
	Date:     "Data",
	Status:   "Status",
	Product:  "Produto",
	Revenue:  "Valor",
	Source:   "Origem",
	Campaign: "Campanha",
	Content:  "Conteudo",
}

func salesRows() []domain.Row {
	return []domain.Row{
		{"Data": "10/03/2024", "Status": "approved", "Produto": "Curso A", "Valor": 100.0, "Origem": "tiktok", "Campanha": "bf|ad1", "Conteudo": "video1"},
		{"Data": "12/03/2024", "Status": "approved", "Produto": "Curso A", "Valor": 150.0, "Origem": "TikTok Ads", "Campanha": "bf|ad2", "Conteudo": "video2"},
		{"Data": "11/03/2024", "Status": "pending", "Produto": "Curso B", "Valor": 80.0, "Origem": "tiktok", "Campanha": "bf", "Conteudo": "video1"},
		{"Data": "12/03/2024", "Status": "approved", "Produto": "Curso B", "Valor": 200.0, "Origem": "google", "Campanha": "promo", "Conteudo": ""},
	}
}

func TestSumRevenue(t *testing.T) {
	assert.Equal(t, 530.0, SumRevenue(salesRows(), "Valor"))
	assert.Zero(t, SumRevenue(salesRows(), ""))
}

func TestGroupPerformance(t *testing.T) {
	settings := domain.Settings{
		GroupInvestments: map[string]float64{
			"tiktok|bf": 100,
		},
	}

	groups := GroupPerformance(salesRows(), testColumns, settings)
	require.Len(t, groups, 2)

	t.Run("Grupos ordenam por vendas decrescentes", func(t *testing.T) {
		assert.Equal(t, "tiktok|bf", groups[0].Key)
		assert.Equal(t, 3, groups[0].Vendas)
		assert.Equal(t, "google|promo", groups[1].Key)
		assert.Equal(t, 1, groups[1].Vendas)
	})

	t.Run("Métricas acumulam por grupo", func(t *testing.T) {
		tiktok := groups[0]
		assert.Equal(t, 330.0, tiktok.Faturamento)
		assert.Equal(t, "10/03/2024", tiktok.MinDate)
		assert.Equal(t, "12/03/2024", tiktok.MaxDate)
		assert.Equal(t, map[string]int{"Curso A": 2, "Curso B": 1}, tiktok.Products)
		assert.Equal(t, map[string]int{"approved": 2, "pending": 1}, tiktok.Statuses)
		assert.Equal(t, []string{"video1", "video2"}, tiktok.Contents)
	})

	t.Run("Investimento registrado define lucro ou prejuízo", func(t *testing.T) {
		tiktok := groups[0]
		assert.InDelta(t, 19.8, tiktok.Taxes, 0.001)
		assert.InDelta(t, 119.8, tiktok.TotalCost, 0.001)
		assert.Equal(t, domain.GroupProfit, tiktok.Status)
	})

	t.Run("Grupo sem investimento fica pendente", func(t *testing.T) {
		assert.Equal(t, domain.GroupPending, groups[1].Status)
	})

	t.Run("Conteúdo vazio conta como N/A", func(t *testing.T) {
		assert.Equal(t, []string{"N/A"}, groups[1].Contents)
	})
}

func TestPeriodCounters(t *testing.T) {
	now := time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC)

	rows := []domain.Row{
		{"Data": "12/03/2024"},
		{"Data": "12/03/2024 09:30:00"},
		{"Data": "08/03/2024"},
		{"Data": "20/02/2024"},
		{"Data": "01/01/2024"},
		{"Data": "inválida"},
	}

	stats := PeriodCounters(rows, "Data", now)

	assert.Equal(t, 2, stats.Today)
	assert.Equal(t, 3, stats.Last7)
	assert.Equal(t, 4, stats.Last30)
}

func TestPeriodCountersWithoutDateColumn(t *testing.T) {
	stats := PeriodCounters(salesRows(), "", time.Now())
	assert.Zero(t, stats.Today)
	assert.Zero(t, stats.Last7)
	assert.Zero(t, stats.Last30)
}

func TestEvolution(t *testing.T) {
	points := Evolution(salesRows(), "Data")

	require.Len(t, points, 3)
	assert.Equal(t, domain.EvolutionPoint{Date: "10/03/2024", Count: 1}, points[0])
	assert.Equal(t, domain.EvolutionPoint{Date: "11/03/2024", Count: 1}, points[1])
	assert.Equal(t, domain.EvolutionPoint{Date: "12/03/2024", Count: 2}, points[2])
}

func TestTopN(t *testing.T) {
	t.Run("Ranqueia valores normalizados", func(t *testing.T) {
		top := TopN(salesRows(), testColumns.Source, testColumns, 5)

		require.Len(t, top, 2)
		assert.Equal(t, domain.TopItem{Name: "tiktok", Count: 3}, top[0])
		assert.Equal(t, domain.TopItem{Name: "google", Count: 1}, top[1])
	})

	t.Run("Limita ao tamanho pedido", func(t *testing.T) {
		top := TopN(salesRows(), testColumns.Product, testColumns, 1)
		require.Len(t, top, 1)
	})

	t.Run("Coluna não resolvida devolve vazio", func(t *testing.T) {
		assert.Empty(t, TopN(salesRows(), "", testColumns, 5))
	})
}

func TestFilterOptions(t *testing.T) {
	dataset := &domain.Dataset{
		Headers: []string{"Data", "Status", "Produto", "Valor", "Origem", "Campanha", "Conteudo"},
		Rows:    salesRows(),
	}

	// Recorte filtrado contendo só as vendas do tiktok
	filtered := salesRows()[:3]

	options := FilterOptions(dataset, filtered, testColumns)

	t.Run("Valores únicos vêm do dataset completo em ordem alfabética", func(t *testing.T) {
		sources := options[testColumns.Source]
		require.Len(t, sources, 2)
		assert.Equal(t, "google", sources[0].Value)
		assert.Equal(t, "tiktok", sources[1].Value)
	})

	t.Run("Contagens refletem apenas o recorte filtrado", func(t *testing.T) {
		sources := options[testColumns.Source]
		assert.Equal(t, 0, sources[0].Count)
		assert.Equal(t, 3, sources[1].Count)
	})
}
