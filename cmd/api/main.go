package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/starfolio/portfolio-backend/config"
	"github.com/starfolio/portfolio-backend/internal/bootstrap"
	contactservice "github.com/starfolio/portfolio-backend/internal/contact/service"
	contentrepo "github.com/starfolio/portfolio-backend/internal/content/repository"
	contentservice "github.com/starfolio/portfolio-backend/internal/content/service"
	"github.com/starfolio/portfolio-backend/internal/jobs"
	"github.com/starfolio/portfolio-backend/internal/logging"
	"github.com/starfolio/portfolio-backend/internal/starfield"
)

const serviceName = "portfolio-backend"

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("config load failed", "error", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.OpenContactStore(ctx, cfg.Contact)
	if err != nil {
		logging.Fatal("contact store open failed", "error", err)
	}
	defer closeStore()
	contactSvc := contactservice.NewContactService(store)

	var repo contentrepo.Repository = contentrepo.NewMemoryRepository()
	if cfg.Database.URL != "" {
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.URL})
		if err != nil {
			logging.Fatal("db open failed", "error", err)
		}
		defer pool.Close()
		repo = contentrepo.NewPgRepository(pool)
	}
	contentSvc := contentservice.NewContentService(repo)
	if err := contentSvc.Refresh(ctx); err != nil {
		slog.Warn("initial content load failed, serving on demand", "error", err)
	}

	scene := starfield.NewScene(cfg.Starfield.Width, cfg.Starfield.Height, starfield.Options{})
	engine := starfield.NewEngine(scene, starfield.NewTickScheduler(cfg.Starfield.FPS))
	go engine.Run(ctx)

	scheduler := jobs.NewScheduler(contactSvc, contentSvc)
	if err := scheduler.Start(); err != nil {
		logging.Fatal("scheduler start failed", "error", err)
	}
	defer scheduler.Stop()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		ContactService: contactSvc,
		ContentService: contentSvc,
		Engine:         engine,
		RatePerMinute:  cfg.Contact.RatePerMinute,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "port", cfg.Server.Port, "store", cfg.Contact.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
