package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/Saikabilane/AutoSense/internal/api"
	"github.com/Saikabilane/AutoSense/internal/domain"
	calendarStore "github.com/Saikabilane/AutoSense/internal/infra/storage/calendar"
	"github.com/Saikabilane/AutoSense/internal/integrations/decisionfeed"
	"github.com/Saikabilane/AutoSense/internal/usecase/generate_calendar"
	"github.com/Saikabilane/AutoSense/pkg/dbmetrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the decision feed subscriber",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env, err := newEnvironment(ctx, envOptions{globalMetrics: true})
	if err != nil {
		return err
	}
	defer env.Close()

	cfg, log := env.cfg, env.log
	log.Info("Starting AutoSense scheduler...")
	log.Info("Configuration loaded from %s", cfgPath)

	if cfg.Metrics.Enabled && env.db != nil {
		if err := dbmetrics.Register(env.db, cfg.Database.DBName, prometheus.DefaultRegisterer); err != nil {
			log.Warn("Database metrics are not registered: %v", err)
		} else {
			log.Info("Database metrics collection started")
		}
	}

	// Календарь должен существовать до приема запросов
	if err := ensureCalendar(ctx, env); err != nil {
		return err
	}

	// Подписка на решения диагностики
	if cfg.DecisionFeed.Enabled {
		feed := decisionfeed.NewSubscriber(decisionfeed.Config{
			Broker:   cfg.DecisionFeed.Broker,
			ClientID: cfg.DecisionFeed.ClientID,
			Username: cfg.DecisionFeed.Username,
			Password: cfg.DecisionFeed.Password,
			Topic:    cfg.DecisionFeed.Topic,
			QoS:      cfg.DecisionFeed.QoS,
		}, env.app.TriageVehicle, log.With("decisionfeed"))
		if err := feed.Start(ctx); err != nil {
			return fmt.Errorf("start decision feed: %w", err)
		}
		defer feed.Stop()
	}

	// Настраиваем роутер
	opts := api.Options{MetricsPath: cfg.Metrics.Path}
	if cfg.Metrics.Enabled {
		opts.Metrics = env.metrics
	}
	r := api.NewRouter(env.app.Handlers(), opts, log)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Ожидаем сигнал завершения
	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// ensureCalendar создает календарь, если таблицы еще нет и это разрешено конфигурацией
// Поврежденная таблица никогда не перезаписывается
func ensureCalendar(ctx context.Context, env *environment) error {
	err := env.app.TxManager.DoReadOnly(ctx, func(_ context.Context, cal *domain.Calendar) error {
		env.log.Info("Calendar loaded: %d slots, %d available", cal.Len(), cal.AvailableCount())
		return nil
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, calendarStore.ErrStoreUnreadable) || !env.cfg.Calendar.GenerateIfMissing {
		return fmt.Errorf("load calendar: %w", err)
	}

	env.log.Warn("Calendar table is missing, generating a new one: %v", err)
	resp, err := env.app.GenerateCalendar.Execute(ctx, &generate_calendar.Request{})
	if err != nil {
		return fmt.Errorf("generate calendar: %w", err)
	}
	env.log.Info("Calendar generated: %d slots, %s..%s", resp.TotalSlots, resp.FirstDay, resp.LastDay)
	return nil
}

