// Command monatsbericht builds the monthly report once and prints it to
// stdout. With -send and a configured mail relay it also emails the
// report, which makes the command usable from cron.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"finanzassistent/internal/config"
	"finanzassistent/internal/data"
	"finanzassistent/internal/data/files"
	"finanzassistent/internal/data/memory"
	"finanzassistent/internal/log"
	"finanzassistent/internal/mail"
	"finanzassistent/internal/services"
)

func main() {
	send := flag.Bool("send", false, "email the report via the configured SMTP relay")
	flag.Parse()

	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	var source data.Source
	if cfg.BackendConfig().Type == data.MemoryBackend {
		source = memory.NewSeeded()
	} else {
		bc := cfg.BackendConfig()
		source = files.New(bc.TransactionsPath, bc.PreferencesPath, bc.FitnessPath)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	assistant := services.NewAssistantService(source, logger)
	report, warnings, err := assistant.BuildReport(ctx, cfg.DefaultPlan())
	if err != nil {
		fmt.Fprintln(os.Stderr, "report error:", err)
		os.Exit(1)
	}

	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "Hinweis:", w)
	}
	fmt.Print(report)

	if !*send {
		return
	}
	if !cfg.MailEnabled() {
		fmt.Fprintln(os.Stderr, "send error: SMTP_HOST is not configured")
		os.Exit(1)
	}

	mailer := mail.New(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
	}, logger)
	err = mailer.Send(ctx, mail.Message{
		From:    cfg.MailFrom,
		To:      cfg.MailTo,
		Subject: mail.ReportSubject,
		Body:    report,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "send error:", err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "Bericht gesendet an", cfg.MailTo)
}
