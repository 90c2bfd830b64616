package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"finanzassistent/internal/config"
	"finanzassistent/internal/data"
	"finanzassistent/internal/data/files"
	"finanzassistent/internal/data/memory"
	apphttp "finanzassistent/internal/http"
	"finanzassistent/internal/log"
	"finanzassistent/internal/mail"
	"finanzassistent/internal/services"
)

func main() {
	// Load .env if present; real env vars win.
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", log.FieldError, err)
		os.Exit(1)
	}

	source := newSource(cfg, logger)

	var sender apphttp.ReportSender
	if cfg.MailEnabled() {
		sender = mail.New(mail.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPassword,
		}, logger)
		logger.Info("Mail relay configured", log.FieldSMTPHost, cfg.SMTPHost)
	} else {
		logger.Info("Mail relay not configured, report sending disabled")
	}

	assistant := services.NewAssistantService(source, logger)

	srv := apphttp.NewServer(":"+cfg.Port, assistant, sender, apphttp.Options{
		DefaultPlan: cfg.DefaultPlan(),
		MailFrom:    cfg.MailFrom,
		MailTo:      cfg.MailTo,
	})
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting finanzassistent server",
			"port", cfg.Port, log.FieldBackend, cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

// newSource wires the configured data backend. The files backend reads
// the three JSON sources fresh on every request; memory serves seeded
// demo data.
func newSource(cfg *config.Config, logger *log.Logger) data.Source {
	bc := cfg.BackendConfig()
	switch bc.Type {
	case data.MemoryBackend:
		logger.Info("Initialized memory backend", log.FieldBackend, cfg.DataBackend)
		return memory.NewSeeded()
	default:
		logger.Info("Initialized files backend",
			log.FieldBackend, cfg.DataBackend, "data_dir", cfg.DataDir)
		return files.New(bc.TransactionsPath, bc.PreferencesPath, bc.FitnessPath)
	}
}
