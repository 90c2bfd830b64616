package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTMXResponseBuilderBasic(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHTMXResponse().
		Status(http.StatusCreated).
		BodyHTML("<div>ok</div>").
		Write(rec)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	if rec.Body.String() != "<div>ok</div>" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHTMXResponseBuilderTriggers(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHTMXResponse().
		TriggerReportCreated().
		TriggerSuccessNotification("gespeichert").
		Write(rec)

	raw := rec.Header().Get("HX-Trigger")
	if raw == "" {
		t.Fatal("missing HX-Trigger header")
	}

	var triggers map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &triggers); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	if _, ok := triggers["report:created"]; !ok {
		t.Error("missing report:created trigger")
	}
	if _, ok := triggers["show-notification"]; !ok {
		t.Error("missing show-notification trigger")
	}
}

func TestTriggerReportSentCarriesRecipient(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHTMXResponse().TriggerReportSent("user@example.com").Write(rec)

	raw := rec.Header().Get("HX-Trigger")
	if !strings.Contains(raw, "report:sent") || !strings.Contains(raw, "user@example.com") {
		t.Errorf("HX-Trigger = %q, want report:sent with recipient", raw)
	}
}

func TestErrorResponseEscapesMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	ErrorResponse(http.StatusBadRequest, `<script>alert("x")</script>`).Write(rec)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<script>") {
		t.Errorf("body contains unescaped script tag: %q", body)
	}
	if !strings.Contains(body, `class="error"`) {
		t.Errorf("body missing error wrapper: %q", body)
	}
}

func TestMethodNotAllowedErrorSetsAllowHeader(t *testing.T) {
	rec := httptest.NewRecorder()

	MethodNotAllowedError("POST").Write(rec)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if allow := rec.Header().Get("Allow"); allow != "POST" {
		t.Errorf("Allow = %q, want POST", allow)
	}
}
