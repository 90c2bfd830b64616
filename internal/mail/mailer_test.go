package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

func TestSendRejectsInvalidAddressesBeforeDialing(t *testing.T) {
	// Host points nowhere; validation must fail before any dial happens.
	mailer := New(Config{Host: "relay.invalid", Port: 587}, nil)

	cases := []struct {
		name string
		msg  Message
	}{
		{"empty sender", Message{From: "", To: "ok@example.com"}},
		{"malformed sender", Message{From: "kein-absender", To: "ok@example.com"}},
		{"empty recipient", Message{From: "ok@example.com", To: ""}},
		{"malformed recipient", Message{From: "ok@example.com", To: "nur text mit leerzeichen"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := mailer.Send(context.Background(), tc.msg)
			require.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}

func TestSendWithoutRelayConfigured(t *testing.T) {
	mailer := New(Config{}, nil)
	err := mailer.Send(context.Background(), Message{From: "a@example.com", To: "b@example.com"})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestBuildMessageDefaultsSubject(t *testing.T) {
	mm, err := buildMessage(Message{From: "a@example.com", To: "b@example.com", Body: "Bericht"})
	require.NoError(t, err)
	assert.Equal(t, []string{ReportSubject}, mm.GetGenHeader(gomail.HeaderSubject))

	mm, err = buildMessage(Message{From: "a@example.com", To: "b@example.com", Subject: "Test"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Test"}, mm.GetGenHeader(gomail.HeaderSubject))
}
