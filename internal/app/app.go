package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stpnv0/TennisHub/internal/clubclient"
	"github.com/stpnv0/TennisHub/internal/config"
	"github.com/stpnv0/TennisHub/internal/handler"
	"github.com/stpnv0/TennisHub/internal/middleware"
	"github.com/stpnv0/TennisHub/internal/notification"
	"github.com/stpnv0/TennisHub/internal/repository"
	"github.com/stpnv0/TennisHub/internal/router"
	"github.com/stpnv0/TennisHub/internal/scheduler"
	"github.com/stpnv0/TennisHub/internal/service"
	"github.com/stpnv0/TennisHub/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	rabbit     *notification.RabbitPublisher
	clubs      *clubclient.FailoverGateway
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TennisHub",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if cfg.Storage.Driver == config.StoragePostgres {
		if err = app.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}

		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) repositories() (ports.EventRepo, ports.UserRepo) {
	if a.db == nil {
		a.log.Warn("using in-memory storage, data is lost on restart")
		store := repository.NewMemoryStore()
		return store.Events(), store.Users()
	}
	return repository.NewEventRepo(a.db), repository.NewUserRepo(a.db)
}

func (a *App) initServices() error {
	eventRepo, userRepo := a.repositories()

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	a.rabbit, err = notification.NewRabbitPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange, a.log)
	if err != nil {
		return fmt.Errorf("init rabbitmq: %w", err)
	}

	remote, err := clubclient.NewHTTPGateway(clubclient.Options{
		BaseURL:        a.cfg.ClubService.BaseURL,
		ConnectTimeout: a.cfg.ClubService.ConnectTimeout,
		RequestTimeout: a.cfg.ClubService.RequestTimeout,
		RetryAttempts:  a.cfg.ClubService.RetryAttempts,
		RetryDelay:     a.cfg.ClubService.RetryDelay,
	}, a.log, prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("init club client: %w", err)
	}
	a.clubs = clubclient.NewFailoverGateway(remote, clubclient.DegradedGateway{}, a.log)

	eventService := service.NewEventService(eventRepo, a.clubs, a.log)
	registry := service.NewRegistry(eventRepo, userRepo, notification.Fanout{tg, a.rabbit}, a.log)
	userService := service.NewUserService(userRepo, eventRepo)
	clubService := service.NewClubService(a.clubs)

	a.scheduler = scheduler.New(
		a.clubs,
		a.cfg.ClubService.HealthInterval,
		a.log,
	)

	metrics, err := middleware.Metrics(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	h := handler.NewHandler(eventService, registry, userService, clubService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		promhttp.Handler(),
		a.health,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		metrics,
		cors.New(a.corsConfig()),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(a.cfg.CORS.AllowOrigins) == 0 || slices.Contains(a.cfg.CORS.AllowOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = a.cfg.CORS.AllowOrigins
	}
	return cfg
}

func (a *App) health() map[string]string {
	status := "up"
	if !a.clubs.Healthy() {
		status = "degraded"
	}
	return map[string]string{
		"club_service": status,
		"storage":      a.cfg.Storage.Driver,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.rabbit.Close()

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, a.cfg.Storage.MigrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
