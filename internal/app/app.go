package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"todoList/internal/config"
	"todoList/internal/handlers"
	"todoList/internal/logger"
	"todoList/internal/middleware"
	"todoList/internal/repository/task/inmemory"
	"todoList/internal/service"
	"todoList/internal/tracing"
	"todoList/internal/worker"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config     *config.Config
	server     *http.Server
	router     *chi.Mux
	repository service.TaskRepository // интерфейс!
	service    handlers.Service
	worker     *worker.StatsWorker
	shutdowns  []func() // функции для graceful shutdown

	spanProcessor sdktrace.SpanProcessor
}

type Option func(*App)

// WithSpanProcessor заменяет stdout-экспорт спанов, если трассировка включена
func WithSpanProcessor(sp sdktrace.SpanProcessor) Option {
	return func(a *App) {
		a.spanProcessor = sp
	}
}

func New(cfg *config.Config, opts ...Option) *App {
	a := &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init собирает зависимости: логгер, хранилище, сервис, роутер и сервер
func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development, a.config.Logging.Level); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	a.repository = inmemory.NewTaskStorage()
	svc := service.NewTaskService(a.repository)
	a.service = svc

	if err := a.service.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка сервиса при старте: %w", err)
	}

	if a.config.Stats.Interval > 0 {
		interval := a.config.Stats.Interval
		a.worker = worker.NewStatsWorker(svc, &interval)
	}

	traceOpts, err := a.initTracing()
	if err != nil {
		return err
	}

	a.router = a.newRouter()

	a.server = &http.Server{
		Addr:         a.config.GetServerAddr(),
		Handler:      otelhttp.NewHandler(a.router, handlers.ServiceName, traceOpts...),
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	return nil
}

// initTracing ставит SDK-провайдер, когда tracing.enabled; иначе спаны уходят в no-op
func (a *App) initTracing() ([]otelhttp.Option, error) {
	opts := []otelhttp.Option{
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	}
	if !a.config.Tracing.Enabled {
		return opts, nil
	}

	processor := a.spanProcessor
	if processor == nil {
		var err error
		if processor, err = tracing.StdoutProcessor(os.Stdout); err != nil {
			return nil, fmt.Errorf("инициализация трассировки: %w", err)
		}
	}

	tp := tracing.NewProvider(a.config.Tracing, processor)
	tracing.Install(tp)

	a.shutdowns = append(a.shutdowns, func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("Ошибка остановки трассировки", err)
		}
	})

	logger.Info("Трассировка включена",
		zap.String("service_name", a.config.Tracing.ServiceName),
		zap.Float64("sample_ratio", a.config.Tracing.SampleRatio))

	return append(opts,
		otelhttp.WithTracerProvider(tp),
		otelhttp.WithPropagators(tracing.Propagator()),
	), nil
}

func (a *App) newRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.config.CORS.AllowedOrigins,
		AllowedMethods:   a.config.CORS.AllowedMethods,
		AllowedHeaders:   a.config.CORS.AllowedHeaders,
		ExposedHeaders:   []string{middleware.RequestIdHeader},
		AllowCredentials: a.config.CORS.AllowCredentials,
		MaxAge:           a.config.CORS.MaxAge,
	}))

	handlers.NewTaskHandler(a.service).Register(r)
	return r
}

// Handler возвращает корневой http.Handler, доступен после Init
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run блокируется до отмены ctx или ошибки сервера, затем останавливает всё
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Сервер запущен", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("запуск сервера: %w", err)
		}
		return nil
	})

	if a.worker != nil {
		g.Go(func() error {
			a.worker.Start(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Остановка сервера...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("остановка сервера: %w", err)
		}
		return nil
	})

	err := g.Wait()
	a.shutdown()
	return err
}

func (a *App) shutdown() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
}
