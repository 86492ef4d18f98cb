package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utmdash/utmdash-api/infrastructure/repository"
	"github.com/utmdash/utmdash-api/infrastructure/storage"
	"github.com/utmdash/utmdash-api/internal/api/handler/router"
	"github.com/utmdash/utmdash-api/internal/domain"
	"github.com/utmdash/utmdash-api/internal/session"
	"github.com/utmdash/utmdash-api/internal/usecases/filtering"
	"github.com/utmdash/utmdash-api/internal/usecases/importing"
	"github.com/utmdash/utmdash-api/internal/usecases/insighting"
)

const sampleCSV = "Data,Produto,Valor,Status\n10/03/2024,Curso A,\"R$ 100,00\",approved\n11/03/2024,Curso B,\"R$ 200,00\",pending"

// stubAdvisor evita chamadas reais à API de análise nos testes
type stubAdvisor struct {
	analysis string
}

func (a *stubAdvisor) AnalyzeDataset(dataset *domain.Dataset) string {
	return a.analysis
}

func newTestRouter(t *testing.T) router.Router {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	sess := session.New()
	historyRepo := repository.NewHistoryRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)

	importService := importing.NewService(sess, historyRepo)
	filterService := filtering.NewService(settingsRepo)
	insightService := insighting.NewService(sess, filterService, settingsRepo)

	return router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Datasets(importService)...),
		router.WithRoutes(Dashboard(insightService)...),
		router.WithRoutes(Filters(filterService)...),
		router.WithRoutes(History(importService, historyRepo)...),
		router.WithRoutes(Settings(settingsRepo)...),
		router.WithRoutes(Insights(&stubAdvisor{analysis: "análise ok"}, sess, filterService)...),
	)
}

func doRequest(t *testing.T, rt router.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func TestImportDatasetEndpoint(t *testing.T) {
	rt := newTestRouter(t)

	t.Run("CSV bruto importa com sucesso", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPost, "/v1/datasets?name=Planilha", sampleCSV)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp importResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Rows)
		assert.Equal(t, []string{"Data", "Produto", "Valor", "Status"}, resp.Headers)
		require.NotNil(t, resp.Entry)
		assert.Equal(t, "Planilha", resp.Entry.Name)
	})

	t.Run("CSV vazio retorna erro de importação", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPost, "/v1/datasets", "\n\n")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "IMP_001")
	})
}

func TestDashboardEndpoint(t *testing.T) {
	rt := newTestRouter(t)

	t.Run("Sem dataset retorna conflito", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodGet, "/v1/dashboard", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "IMP_003")
	})

	t.Run("Com dataset devolve o view model", func(t *testing.T) {
		require.Equal(t, http.StatusCreated, doRequest(t, rt, http.MethodPost, "/v1/datasets", sampleCSV).Code)

		rec := doRequest(t, rt, http.MethodGet, "/v1/dashboard?view=central", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var view domain.DashboardView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, 2, view.TotalRows)
		assert.Equal(t, 2, view.FilteredRows)
		assert.Equal(t, 300.0, view.Stats.Faturamento)
	})

	t.Run("Aba desconhecida retorna erro de validação", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodGet, "/v1/dashboard?view=outra", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFilterEndpoints(t *testing.T) {
	rt := newTestRouter(t)
	require.Equal(t, http.StatusCreated, doRequest(t, rt, http.MethodPost, "/v1/datasets", sampleCSV).Code)

	t.Run("Toggle restringe o dashboard", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPost, "/v1/filters/toggle", `{"column":"Status","value":"approved"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		dash := doRequest(t, rt, http.MethodGet, "/v1/dashboard", "")
		var view domain.DashboardView
		require.NoError(t, json.Unmarshal(dash.Body.Bytes(), &view))
		assert.Equal(t, 1, view.FilteredRows)
	})

	t.Run("Preset inválido é rejeitado", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPost, "/v1/filters/preset", `{"preset":"ontem"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Clear remove as restrições", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodDelete, "/v1/filters", "")
		require.Equal(t, http.StatusOK, rec.Code)

		dash := doRequest(t, rt, http.MethodGet, "/v1/dashboard", "")
		var view domain.DashboardView
		require.NoError(t, json.Unmarshal(dash.Body.Bytes(), &view))
		assert.Equal(t, 2, view.FilteredRows)
	})
}

func TestHistoryEndpoints(t *testing.T) {
	rt := newTestRouter(t)
	require.Equal(t, http.StatusCreated, doRequest(t, rt, http.MethodPost, "/v1/datasets?name=Primeira", sampleCSV).Code)

	t.Run("Lista contém a importação sem o snapshot", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodGet, "/v1/history", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var entries []historySummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "Primeira", entries[0].Name)
		assert.Equal(t, 2, entries[0].Stats.Vendas)
		assert.NotContains(t, rec.Body.String(), "Curso A")
	})

	t.Run("Restaurar entrada inexistente retorna 404", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPost, "/v1/history/nao-existe/load", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Remover entrada inexistente retorna 404", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodDelete, "/v1/history/nao-existe", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSettingsEndpoints(t *testing.T) {
	rt := newTestRouter(t)

	t.Run("Atualização completa persiste", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPut, "/v1/settings", `{"generalInvestment":300,"frozenBalance":50,"linkedFilters":true}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var settings domain.Settings
		require.NoError(t, json.Unmarshal(doRequest(t, rt, http.MethodGet, "/v1/settings", "").Body.Bytes(), &settings))
		assert.Equal(t, 300.0, settings.GeneralInvestment)
		assert.Equal(t, 50.0, settings.FrozenBalance)
	})

	t.Run("Valores negativos são rejeitados", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPut, "/v1/settings", `{"generalInvestment":-1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Investimento por grupo", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPut, "/v1/settings/groups/tiktok|bf", `{"amount":120}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var settings domain.Settings
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
		assert.Equal(t, 120.0, settings.GroupInvestment("tiktok|bf"))
	})
}

func TestInsightsEndpoint(t *testing.T) {
	rt := newTestRouter(t)

	t.Run("Sem dataset retorna conflito", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPost, "/v1/insights", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Com dataset devolve a análise", func(t *testing.T) {
		require.Equal(t, http.StatusCreated, doRequest(t, rt, http.MethodPost, "/v1/datasets", sampleCSV).Code)

		rec := doRequest(t, rt, http.MethodPost, "/v1/insights", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp insightsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "análise ok", resp.Analysis)
		assert.Equal(t, 2, resp.Rows)
	})
}
