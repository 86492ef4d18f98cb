package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/utmdash/utmdash-api/infrastructure/integrator/gemini"
	"github.com/utmdash/utmdash-api/infrastructure/repository"
	"github.com/utmdash/utmdash-api/internal/api/handler/router"
	"github.com/utmdash/utmdash-api/internal/session"
	"github.com/utmdash/utmdash-api/internal/usecases/filtering"
	"github.com/utmdash/utmdash-api/internal/usecases/importing"
	"github.com/utmdash/utmdash-api/internal/usecases/insighting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Datasets(service importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets",
			Method:  http.MethodPost,
			Handler: ImportDataset(service),
		},
		{
			Path:    "/v1/datasets/link",
			Method:  http.MethodPost,
			Handler: ImportDatasetFromLink(service),
		},
	}
}

func Dashboard(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Filters(service *filtering.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/filters/toggle",
			Method:  http.MethodPost,
			Handler: ToggleFilter(service),
		},
		{
			Path:    "/v1/filters/search",
			Method:  http.MethodPost,
			Handler: SetSearch(service),
		},
		{
			Path:    "/v1/filters/preset",
			Method:  http.MethodPost,
			Handler: SetDatePreset(service),
		},
		{
			Path:    "/v1/filters/range",
			Method:  http.MethodPost,
			Handler: SetDateRange(service),
		},
		{
			Path:    "/v1/filters",
			Method:  http.MethodDelete,
			Handler: ClearFilters(service),
		},
		{
			Path:    "/v1/filters/linked",
			Method:  http.MethodPut,
			Handler: SetLinkedFilters(service),
		},
	}
}

func History(service importing.Importer, repo repository.HistoryRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/history",
			Method:  http.MethodGet,
			Handler: ListHistory(repo),
		},
		{
			Path:    "/v1/history/:id",
			Method:  http.MethodDelete,
			Handler: RemoveHistoryEntry(repo),
		},
		{
			Path:    "/v1/history/:id/load",
			Method:  http.MethodPost,
			Handler: LoadHistoryEntry(service),
		},
	}
}

func Settings(repo repository.SettingsRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings",
			Method:  http.MethodGet,
			Handler: GetSettings(repo),
		},
		{
			Path:    "/v1/settings",
			Method:  http.MethodPut,
			Handler: UpdateSettings(repo),
		},
		{
			Path:    "/v1/settings/groups/:key",
			Method:  http.MethodPut,
			Handler: SetGroupInvestment(repo),
		},
	}
}

func Insights(advisor gemini.Advisor, sess *session.Session, filterService *filtering.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodPost,
			Handler: GenerateInsights(advisor, sess, filterService),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
