// @title           Tabkeeper API
// @version         1.0
// @description     Bookmark ("tab") storage service.
// @description     Users register, authenticate with a bearer token and manage their own tabs.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// Package main содержит точку входа серверного приложения tabkeeper.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - инициализацию подключения к базе данных и применение миграций;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - настройку и запуск сервера с заданными таймаутами (TLS по конфигу);
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
// HTTP API сервера реализовано в пакете internal/server/api и документируется с помощью OpenAPI (Swagger).
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/api"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/middleware"
	h "github.com/IvanChernomyrdin/go-tabkeeper/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/repository"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/service"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-tabkeeper/swagger/docs"
)

const configPath = "./configs/server.yaml"

func main() {
	boot := logger.NewHTTPLogger().Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		boot.Warnf("no .env file loaded, error: %v", err)
	}

	path := configPath
	if p := os.Getenv("TABKEEPER_CONFIG"); p != "" {
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		boot.Fatal(err)
	}

	httpLogger := logger.New(cfg.Log.Options())
	defer func() { _ = httpLogger.Sync() }()
	sugar := httpLogger.Sugar()

	// подключаем базу данных и накатываем миграции
	if err := config.Init(cfg.DB, cfg.Migrations, httpLogger); err != nil {
		sugar.Fatal(err)
	}
	db := sqlx.NewDb(config.GetDB(), "pgx")
	// делаем отложенное закрытие бд
	defer func() {
		_ = db.Close()
	}()

	// создаём репы и складываем в репозиторий
	repos := service.Repositories{
		Users:  repository.NewUsersRepository(db),
		Tabs:   repository.NewTabsRepository(db),
		Health: repository.NewHealthRepository(db),
	}
	// создаём сервис
	svc := service.NewServices(repos, cfg)
	// создаём проверку jwt
	verifier := middleware.NewJWTVerifier(cfg.Auth.Token())
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger, verifier)
	// создаём роутер
	router := h.NewRouter(handler, routerOptions(cfg)...)

	//создаём сервер
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: tlsVersion(cfg.TLS.MinVersion)}
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s (tls=%t)", server.Addr, cfg.TLS.Enabled)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}

// routerOptions включает служебные эндпоинты по конфигу.
func routerOptions(cfg *config.Config) []h.Option {
	opts := []h.Option{h.WithMaxBodyBytes(cfg.Server.MaxBodyBytes)}

	obs := cfg.Observability
	if obs.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts = append(opts, h.WithMetrics(reg, obs.Metrics.Path))
	}
	if obs.Pprof.Enabled {
		opts = append(opts, h.WithPprof(obs.Pprof.PathPrefix))
	}
	if obs.Swagger.Enabled {
		opts = append(opts, h.WithSwagger())
	}
	return opts
}

func tlsVersion(v string) uint16 {
	if v == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}
