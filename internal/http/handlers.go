package http

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"finanzassistent/internal/mail"
)

type indexData struct {
	Goal        string
	Horizon     int
	Dashboard   dashboardView
	MailEnabled bool
	MailFrom    string
	MailTo      string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	dash, err := s.assistant.Dashboard(r.Context(), s.opts.DefaultPlan)
	if err != nil {
		slog.ErrorContext(r.Context(), "Dashboard error", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := indexData{
		Goal:        s.opts.DefaultPlan.Goal.StringFixed(2),
		Horizon:     s.opts.DefaultPlan.HorizonMonths,
		Dashboard:   buildDashboardView(dash),
		MailEnabled: s.sender != nil,
		MailFrom:    s.opts.MailFrom,
		MailTo:      s.opts.MailTo,
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleDashboard renders the dashboard partial for a user-chosen savings
// plan. Invalid goal or horizon values halt before any computation.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	plan, err := ParsePlanParams(r.URL.Query(), s.opts.DefaultPlan)
	if err != nil {
		UnprocessableEntityError("Bitte gib positive Werte für Sparziel und Zeitraum ein.").Write(w)
		return
	}

	dash, err := s.assistant.Dashboard(r.Context(), plan)
	if err != nil {
		slog.ErrorContext(r.Context(), "Dashboard error", "error", err)
		InternalServerError("Fehler beim Laden der Übersicht.").Write(w)
		return
	}

	s.renderPartial(w, r, "dashboard.html", buildDashboardView(dash), NewHTMXResponse())
}

type reportData struct {
	Report      string
	Warnings    []string
	Goal        string
	Horizon     int
	MailEnabled bool
	MailFrom    string
	MailTo      string
}

func (s *Server) handleReportCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		UnprocessableEntityError("Format der Anfrage ungültig.").Write(w)
		return
	}

	plan, err := ParsePlanParams(r.Form, s.opts.DefaultPlan)
	if err != nil {
		UnprocessableEntityError("Bitte gib positive Werte für Sparziel und Zeitraum ein.").Write(w)
		return
	}

	report, warnings, err := s.assistant.BuildReport(r.Context(), plan)
	if err != nil {
		slog.ErrorContext(r.Context(), "Report build error", "error", err)
		InternalServerError("Fehler beim Erstellen des Berichts.").Write(w)
		return
	}

	data := reportData{
		Report:      report,
		Warnings:    warnings,
		Goal:        plan.Goal.StringFixed(2),
		Horizon:     plan.HorizonMonths,
		MailEnabled: s.sender != nil,
		MailFrom:    s.opts.MailFrom,
		MailTo:      s.opts.MailTo,
	}
	s.renderPartial(w, r, "report.html", data, NewHTMXResponse().TriggerReportCreated())
}

func (s *Server) handleReportSend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if s.sender == nil {
		ErrorResponse(http.StatusServiceUnavailable, "E-Mail-Versand ist nicht konfiguriert.").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		UnprocessableEntityError("Format der Anfrage ungültig.").Write(w)
		return
	}

	plan, err := ParsePlanParams(r.Form, s.opts.DefaultPlan)
	if err != nil {
		UnprocessableEntityError("Bitte gib positive Werte für Sparziel und Zeitraum ein.").Write(w)
		return
	}

	recipient := sanitizeInput(r.Form.Get("empfaenger"))
	if recipient == "" {
		recipient = s.opts.MailTo
	}
	sender := sanitizeInput(r.Form.Get("absender"))
	if sender == "" {
		sender = s.opts.MailFrom
	}

	report, _, err := s.assistant.BuildReport(r.Context(), plan)
	if err != nil {
		slog.ErrorContext(r.Context(), "Report build error", "error", err)
		InternalServerError("Fehler beim Erstellen des Berichts.").Write(w)
		return
	}

	err = s.sender.Send(r.Context(), mail.Message{
		From:    sender,
		To:      recipient,
		Subject: mail.ReportSubject,
		Body:    report,
	})
	switch {
	case errors.Is(err, mail.ErrInvalidAddress):
		UnprocessableEntityError("Ungültige E-Mail-Adresse.").Write(w)
	case err != nil:
		slog.ErrorContext(r.Context(), "Report send error", "error", err, "recipient", recipient)
		ErrorResponse(http.StatusBadGateway, "Fehler beim Senden der E-Mail.").
			TriggerErrorNotification("Fehler beim Senden der E-Mail.").
			Write(w)
	default:
		NewHTMXResponse().
			TriggerReportSent(recipient).
			TriggerSuccessNotification("Bericht wurde per E-Mail gesendet.").
			BodyHTML(`<div class="success">Bericht wurde per E-Mail gesendet.</div>`).
			Write(w)
	}
}

// renderPartial executes a template into the response builder so triggers
// and body go out together.
func (s *Server) renderPartial(w http.ResponseWriter, r *http.Request, name string, data any, builder *HTMXResponseBuilder) {
	if s.templates == nil {
		InternalServerError("Templates nicht geladen.").Write(w)
		return
	}
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", name)
		InternalServerError("Fehler beim Rendern.").Write(w)
		return
	}
	builder.BodyHTML(buf.String()).Write(w)
}
