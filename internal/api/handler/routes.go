package handler

import (
	"net/http"

	"github.com/vfg2006/brief-generator-api/internal/api/handler/router"
	"github.com/vfg2006/brief-generator-api/internal/usecases/authenticating"
	"github.com/vfg2006/brief-generator-api/internal/usecases/briefing"
	"github.com/vfg2006/brief-generator-api/internal/usecases/metricsing"
	"github.com/vfg2006/brief-generator-api/internal/usecases/settings"
	"github.com/vfg2006/brief-generator-api/pkg/middleware"
)

// PublicPaths lista as rotas servidas sem token Bearer. Mantida ao lado
// das definições de rota para que uma rota nova sem autenticação seja
// registrada nos dois lugares de uma vez.
func PublicPaths() []string {
	return []string{
		"/healthcheck",
		"/v1/login",
		"/v1/register",
	}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Metrics(service metricsing.MetricsService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics/weeks",
			Method:      http.MethodGet,
			Handler:     ListWeeks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metrics/weeks/:week_id",
			Method:      http.MethodGet,
			Handler:     GetWeekMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metrics/weeks/:week_id",
			Method:      http.MethodPut,
			Handler:     SaveWeekMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/metrics/comparison",
			Method:      http.MethodGet,
			Handler:     CompareWeeks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Briefs(service briefing.BriefGenerator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/briefs",
			Method:      http.MethodPost,
			Handler:     GenerateBrief(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Settings(service settings.SettingsService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/settings",
			Method:      http.MethodGet,
			Handler:     GetSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings",
			Method:      http.MethodPut,
			Handler:     UpdateSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
