// Package api exposes fixture generation and specification storage over a
// JSON HTTP interface. Verification of arbitrary candidate functions happens
// out-of-process: clients fetch check inputs, apply their candidate, and
// submit the outputs.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fountains/app"
	"fountains/internal"
	"fountains/ports"
)

// App represents the API application
type App struct {
	router  *chi.Mux
	specs   ports.SpecRepository
	codec   ports.BitCodec
	encode  *app.EncodeService
	verify  *app.VerifyService
	fixture *app.FixtureService
	log     *internal.Logger
}

// NewApp creates a new API application
func NewApp(repo ports.SpecRepository, codec ports.BitCodec) *App {
	a := &App{
		router:  chi.NewRouter(),
		specs:   repo,
		codec:   codec,
		encode:  app.NewEncodeService(repo, codec),
		verify:  app.NewVerifyService(repo, codec),
		fixture: app.NewFixtureService(),
		log:     internal.DefaultLogger,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)

	a.router.Get("/api/fixtures", a.handleFixtures)

	a.router.Post("/api/specs", a.handleCreateSpec)
	a.router.Get("/api/specs", a.handleListSpecs)
	a.router.Get("/api/specs/{id}", a.handleGetSpec)
	a.router.Get("/api/specs/{id}/checks", a.handleSpecChecks)
	a.router.Post("/api/specs/{id}/verify", a.handleVerifySpec)
	a.router.Get("/api/specs/{id}/runs", a.handleSpecRuns)
}

// Router returns the HTTP handler
func (a *App) Router() http.Handler {
	return a.router
}

// Run starts the HTTP server on the given address
func (a *App) Run(addr string) error {
	a.log.Info("API server listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
