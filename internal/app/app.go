package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/techtrove/config"
	"github.com/niksmo/techtrove/internal/adapter/catalog"
	"github.com/niksmo/techtrove/internal/adapter/httphandler"
	"github.com/niksmo/techtrove/internal/core/service"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	catalog    catalog.Client
	service    service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	c, err := catalog.NewClient(
		catalog.URLOpt(app.cfg.Catalog.URL),
		catalog.TimeoutOpt(app.cfg.Catalog.Timeout),
		catalog.MaxAttemptsOpt(app.cfg.Catalog.MaxAttempts),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.catalog = c
}

func (app *App) initCoreService() {
	app.service = service.New(app.catalog, app.cfg.Price.Delay)
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterStorefront(mux, app.service, app.cfg.Price.DiscountCookie)
	httphandler.RegisterHealth(mux)

	handler := httphandler.LogRequests(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
