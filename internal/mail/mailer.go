// Package mail delivers the monthly report through an external SMTP
// relay. It validates both addresses before dialing and never retries a
// failed send; the caller decides what to tell the user.
package mail

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"finanzassistent/internal/log"
)

// ReportSubject is the fixed subject line of the emailed report.
const ReportSubject = "Monatsbericht Finanzassistent"

var (
	ErrInvalidAddress = errors.New("invalid email address")
	ErrNotConfigured  = errors.New("mail relay not configured")
	ErrSendFailed     = errors.New("sending report failed")
)

// Config holds the relay connection parameters.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Message is a single plain-text mail.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

type Mailer struct {
	cfg    Config
	logger *log.Logger
}

func New(cfg Config, logger *log.Logger) *Mailer {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Mailer{cfg: cfg, logger: logger.WithComponent(log.ComponentMail)}
}

// Send validates the message addresses, connects to the relay with
// mandatory STARTTLS and plain authentication, and delivers exactly one
// message. Any transport or authentication failure comes back wrapped in
// ErrSendFailed; there is no retry and no queue.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if m.cfg.Host == "" {
		return ErrNotConfigured
	}

	mm, err := buildMessage(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if err := client.DialAndSendWithContext(ctx, mm); err != nil {
		m.logger.ErrorContext(ctx, "Report delivery failed",
			log.FieldSMTPHost, m.cfg.Host, log.FieldError, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	m.logger.InfoContext(ctx, "Report delivered",
		log.FieldSMTPHost, m.cfg.Host, log.FieldRecipient, msg.To)
	return nil
}

// buildMessage constructs the wire message. go-mail rejects syntactically
// invalid addresses here, before any connection is opened.
func buildMessage(msg Message) (*gomail.Msg, error) {
	mm := gomail.NewMsg()
	if err := mm.From(msg.From); err != nil {
		return nil, fmt.Errorf("%w: sender %q", ErrInvalidAddress, msg.From)
	}
	if err := mm.To(msg.To); err != nil {
		return nil, fmt.Errorf("%w: recipient %q", ErrInvalidAddress, msg.To)
	}
	subject := msg.Subject
	if subject == "" {
		subject = ReportSubject
	}
	mm.Subject(subject)
	mm.SetBodyString(gomail.TypeTextPlain, msg.Body)
	return mm, nil
}
