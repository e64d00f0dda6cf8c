package listener

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/alovak/paypal-gateway/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
)

// App is the IPN listener application. It owns the HTTP server and is
// responsible for starting and stopping it.
type App struct {
	srv      *http.Server
	wg       *sync.WaitGroup
	Addr     string
	logger   *slog.Logger
	config   *Config
	verifier Verifier
	registry *prometheus.Registry
}

func NewApp(logger *slog.Logger, config *Config, verifier Verifier) *App {
	logger = logger.With(slog.String("app", "ipn-listener"))

	if config == nil {
		config = DefaultConfig()
	}

	return &App{
		wg:       &sync.WaitGroup{},
		logger:   logger,
		config:   config,
		verifier: verifier,
		registry: prometheus.NewRegistry(),
	}
}

func (a *App) Start() error {
	a.logger.Info("starting app...")

	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(a.logger))

	metrics := NewMetrics(a.registry)

	api := NewAPI(a.verifier, a.logger, metrics)
	api.AppendRoutes(router)

	router.Get("/-/live", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.Get("/-/ready", func(w http.ResponseWriter, r *http.Request) {
		if a.verifier == nil {
			http.Error(w, "verifier not configured", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))

	l, err := net.Listen("tcp", a.config.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listening tcp port: %w", err)
	}

	a.Addr = l.Addr().String()

	a.srv = &http.Server{
		Handler: router,
	}

	a.wg.Add(1)
	go func() {
		a.logger.Info("http server started", slog.String("addr", a.Addr))

		if err := a.srv.Serve(l); err != nil {
			if err != http.ErrServerClosed {
				a.logger.Error("starting http server", "err", err)
			}

			a.logger.Info("http server stopped")
		}

		a.wg.Done()
	}()

	return nil
}

func (a *App) Shutdown() {
	a.logger.Info("shutting down app...")

	a.srv.Shutdown(context.Background())

	a.wg.Wait()

	a.logger.Info("app stopped")
}
