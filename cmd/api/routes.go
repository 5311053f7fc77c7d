package main

import (
	"expvar"
	"github.com/go-chi/chi/v5"
	"net/http"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	// Router
	router.NotFound(app.notFoundResponse)
	router.MethodNotAllowed(app.methodNotAllowedRequest)

	// Middleware
	router.Use(app.metrics)
	router.Use(app.recoverPanic)
	router.Use(app.enableCORS)
	router.Use(app.rateLimit)
	router.Use(app.authenticate)

	// Healthcheck
	router.Get("/v1/healthcheck", app.HealthCheck)
	router.Method(http.MethodGet, "/v1/metrics", expvar.Handler())

	// User Endpoints
	router.Post("/v1/user", app.RegisterUser)
	router.Put("/v1/user/activate", app.ActivateUser)
	router.Post("/v1/user/login", app.LoginUser)

	// Replay Endpoints
	router.Route("/v1/replay", func(router chi.Router) {
		router.Get("/watch/{pin}", app.WatchReplay)

		router.Group(func(router chi.Router) {
			router.Use(func(next http.Handler) http.Handler {
				return app.requirePermission("replays:read", next)
			})
			router.Get("/{pin}", app.GetReplay)
			router.Get("/", app.GetAllReplays)
			router.Get("/{pin}/summary", app.GetReplaySummary)
		})

		router.Group(func(router chi.Router) {
			router.Use(func(next http.Handler) http.Handler {
				return app.requirePermission("replays:write", next)
			})
			router.Post("/", app.InsertReplay)
			router.Delete("/{pin}", app.DeleteReplay)
			router.Patch("/{pin}/result", app.UpdateReplayResult)
			router.Put("/{pin}/summary", app.UpsertReplaySummary)
			router.Post("/{pin}/share", app.ShareReplaySummary)
		})
	})

	return router
}
