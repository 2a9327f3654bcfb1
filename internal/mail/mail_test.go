package mail

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/go-gomail/gomail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"planreport/internal/config"
)

var testEmail = config.EmailConfig{From: "reportes@example.com", To: "direccion@example.com"}

func TestNewNotConfigured(t *testing.T) {
	tests := []struct {
		name  string
		smtp  config.SMTPConfig
		email config.EmailConfig
	}{
		{"no host", config.SMTPConfig{Port: 587}, testEmail},
		{"no sender", config.SMTPConfig{Host: "smtp.example.com", Port: 587}, config.EmailConfig{To: "a@example.com"}},
		{"no recipient", config.SMTPConfig{Host: "smtp.example.com", Port: 587}, config.EmailConfig{From: "a@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.smtp, tt.email, nil)
			assert.ErrorIs(t, err, ErrNotConfigured)
		})
	}
}

func TestSend(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var (
		gotFrom string
		gotTo   []string
		raw     bytes.Buffer
	)
	transport := gomail.SendFunc(func(from string, to []string, msg io.WriterTo) error {
		gotFrom, gotTo = from, to
		_, err := msg.WriteTo(&raw)
		return err
	})

	s := newSender(testEmail, transport, zap.New(core))
	pdf := []byte("%PDF-1.3 test document")
	err := s.Send("Reporte del plan 7", Attachment{Filename: "Plan-7.pdf", Data: pdf})
	require.NoError(t, err)

	assert.Equal(t, "reportes@example.com", gotFrom)
	assert.Equal(t, []string{"direccion@example.com"}, gotTo)

	body := raw.String()
	assert.Contains(t, body, "Subject: Reporte del plan 7")
	assert.Contains(t, body, `filename="Plan-7.pdf"`)
	assert.Contains(t, body, base64.StdEncoding.EncodeToString(pdf))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "report mailed", logs.All()[0].Message)
}

func TestSendTransportError(t *testing.T) {
	failure := errors.New("connection refused")
	transport := gomail.SendFunc(func(string, []string, io.WriterTo) error { return failure })

	err := newSender(testEmail, transport, nil).Send("Reporte", Attachment{Filename: "a.pdf", Data: []byte("x")})
	require.ErrorIs(t, err, failure)
	assert.True(t, strings.Contains(err.Error(), "direccion@example.com"))
}
