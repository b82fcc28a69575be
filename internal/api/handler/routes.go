package handler

import (
	"net/http"

	"github.com/vfg2006/creator-leaderboard-api/internal/api/handler/router"
	"github.com/vfg2006/creator-leaderboard-api/internal/scheduler"
	"github.com/vfg2006/creator-leaderboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/creator-leaderboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-leaderboard-api/internal/usecases/drawing"
	"github.com/vfg2006/creator-leaderboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Session(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Leaderboards(service analyzing.Analyzer, warmup *scheduler.LeaderboardWarmupService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/leaderboards/:tab",
			Method:      http.MethodGet,
			Handler:     GetLeaderboard(service, warmup),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCompany()},
		},
	}
}

func Draws(drawer drawing.Drawer, authService authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/draws",
			Method:      http.MethodPost,
			Handler:     DrawWinner(drawer, authService),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCompany()},
		},
		{
			Path:        "/v1/draws",
			Method:      http.MethodGet,
			Handler:     ListDraws(drawer),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCompany()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCompany()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCompany()},
		},
	}
}
