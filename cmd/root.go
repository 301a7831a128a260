package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/Saikabilane/AutoSense/internal/app"
	"github.com/Saikabilane/AutoSense/internal/config"
	calendarStore "github.com/Saikabilane/AutoSense/internal/infra/storage/calendar"
	"github.com/Saikabilane/AutoSense/pkg/logger"
	"github.com/Saikabilane/AutoSense/pkg/metrics"
	"github.com/Saikabilane/AutoSense/pkg/txmanager"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "autosense",
	Short:         "AutoSense service calendar and booking service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.toml", "configuration file")
}

// Execute запускает CLI
func Execute() error { return rootCmd.Execute() }

// environment зависимости, общие для всех команд
type environment struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics
	db      *sql.DB
	app     *app.App
}

// envOptions параметры сборки окружения команды
type envOptions struct {
	logWriter     io.Writer // nil = файл из конфигурации
	globalMetrics bool      // регистрировать метрики в глобальном registerer
}

func newEnvironment(ctx context.Context, opts envOptions) (*environment, error) {
	// Загружаем конфигурацию
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Инициализируем логгер
	var log *logger.Logger
	if opts.logWriter != nil {
		log, err = logger.NewWithWriter(opts.logWriter, cfg.Logs.Level)
	} else {
		log, err = logger.New(cfg.Logs.File, cfg.Logs.Level)
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	// Метрики вне сервера пишутся в отдельный registry и никуда не экспортируются
	var m *metrics.Metrics
	if opts.globalMetrics && cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.ServiceName)
	} else if m, err = metrics.NewWithRegistry(cfg.Metrics.ServiceName, prometheus.NewRegistry()); err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	env := &environment{cfg: cfg, log: log, metrics: m}

	store, err := env.openStore(ctx)
	if err != nil {
		env.Close()
		return nil, err
	}

	env.app = app.New(cfg, store, nil, m, log)
	return env, nil
}

func (e *environment) openStore(ctx context.Context) (txmanager.Store, error) {
	switch e.cfg.Storage.Driver {
	case config.StoragePostgres:
		// Подключаемся к базе данных
		db, err := sql.Open("postgres", e.cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		e.db = db

		// Настраиваем connection pool
		db.SetMaxOpenConns(e.cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(e.cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(e.cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("ping database: %w", err)
		}
		e.log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			e.cfg.Database.Host, e.cfg.Database.Port, e.cfg.Database.DBName)

		store := calendarStore.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		e.log.Info("Using CSV calendar table %s", e.cfg.Storage.File)
		return calendarStore.NewFileStore(e.cfg.Storage.File), nil
	}
}

// Close освобождает соединение с БД и файл лога
func (e *environment) Close() {
	if e.db != nil {
		if err := e.db.Close(); err != nil {
			e.log.Error("Failed to close database: %v", err)
		}
	}
	_ = e.log.Close()
}
