// Пакет docanalyzer предоставляет HTTP API для анализа документов редактора:
// извлечение текста, заголовков, комментариев и чек-листов, обрезку пустых блоков
// и поиск ссылок на вложения.
package docanalyzer

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aisa-it/docanalyzer/internal/docanalyzer/config"
	"github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
	"github.com/aisa-it/docanalyzer/internal/docanalyzer/report"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

//go:generate echo "Generate docs"
//go:generate go run ../../cmd/docsgen/main.go -src apierrors/apierrors.go -out ../../api_errors.md

const shutdownTimeout = 10 * time.Second

type Services struct {
	cfg     *config.Config
	schema  *prosemirror.Schema
	version string

	registry *prometheus.Registry
	metrics  *Metrics
}

// NewServices создает сервисы API. Метрики регистрируются в собственном реестре.
func NewServices(cfg *config.Config, schema *prosemirror.Schema, version string) (*Services, error) {
	s := &Services{
		cfg:      cfg,
		schema:   schema,
		version:  version,
		registry: prometheus.NewRegistry(),
	}

	if cfg.MetricsDisabled {
		return s, nil
	}

	if err := s.registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("register go collector: %w", err)
	}
	if err := s.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("register process collector: %w", err)
	}

	metrics, err := NewMetrics(s.registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	s.metrics = metrics
	return s, nil
}

// ServerHeader middleware adds a `Server` header to the response.
func ServerHeader(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderServer, "DocAnalyzer")
		return next(c)
	}
}

// NewEcho собирает основной HTTP сервер со всеми маршрутами API.
func NewEcho(s *Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}

		// Ignore 404
		if code == http.StatusNotFound {
			c.NoContent(http.StatusNotFound)
			return
		}
		slog.Error("Unhandled error in endpoint", "url", c.Request().URL, "err", err)
		EErrorMsgStatus(c, nil, code)
	}

	// Global middlewares
	e.Use(ServerHeader)
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dB", s.cfg.MaxDocumentSize)))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level:     5,
		MinLength: 2048,
	}))
	if s.metrics != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  metricsNamespace,
			Registerer: s.registry,
		}))
	}
	e.Pre(middleware.AddTrailingSlash())

	e.Validator = NewRequestValidator()

	apiGroup := e.Group("/api/")

	s.AddDocumentServices(apiGroup)

	// Version endpoint
	apiGroup.GET("version/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"version":      s.version,
			"strict_marks": s.cfg.SchemaStrictMarks,
			"operations":   report.AllOperations(),
		})
	})

	// Health endpoint
	apiGroup.GET("_health/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return e
}

// NewMetricsEcho собирает сервер метрик. Если задан METRICS_TOKEN, доступ только по Bearer токену.
func NewMetricsEcho(s *Services) *echo.Echo {
	metrics := echo.New()
	metrics.HideBanner = true

	var mw []echo.MiddlewareFunc
	if s.cfg.MetricsToken != "" {
		mw = append(mw, middleware.KeyAuth(func(key string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.MetricsToken)) == 1, nil
		}))
	}
	metrics.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: s.registry,
	}), mw...)
	return metrics
}

// Server запускает API и сервер метрик и блокируется до получения SIGINT или SIGTERM.
func Server(cfg *config.Config, schema *prosemirror.Schema, version string) error {
	s, err := NewServices(cfg, schema, version)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := NewEcho(s)

	var metrics *echo.Echo
	if !cfg.MetricsDisabled {
		metrics = NewMetricsEcho(s)
		go func() {
			if err := metrics.Start(cfg.MetricsAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Metrics server fail", "err", err)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		slog.Info("Shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if metrics != nil {
			if err := metrics.Shutdown(shutdownCtx); err != nil {
				slog.Error("Metrics server shutdown", "err", err)
			}
		}
		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown", "err", err)
		}
	}()

	slog.Info("Start server", "addr", cfg.HTTPAddr, "metrics", cfg.MetricsAddr, "version", version)
	if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server fail: %w", err)
	}
	<-done
	return nil
}
