// Package mail delivers rendered reports by e-mail.
package mail

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-gomail/gomail"
	"go.uber.org/zap"

	"planreport/internal/config"
)

// ErrNotConfigured is returned when the SMTP host or the addresses are missing.
var ErrNotConfigured = errors.New("mail: SMTP delivery is not configured")

// Attachment represents an in-memory file attachment.
type Attachment struct {
	Filename string
	Data     []byte
}

// Sender sends reports through one SMTP relay.
type Sender struct {
	from, to  string
	transport gomail.Sender
	logger    *zap.Logger
}

// New creates a sender for the relay in smtp. A nil logger disables logging.
func New(smtp config.SMTPConfig, email config.EmailConfig, logger *zap.Logger) (*Sender, error) {
	if smtp.Host == "" || email.From == "" || email.To == "" {
		return nil, ErrNotConfigured
	}
	dialer := gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password)
	return newSender(email, gomail.SendFunc(func(from string, to []string, msg io.WriterTo) error {
		s, err := dialer.Dial()
		if err != nil {
			return err
		}
		defer s.Close()
		return s.Send(from, to, msg)
	}), logger), nil
}

func newSender(email config.EmailConfig, transport gomail.Sender, logger *zap.Logger) *Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sender{from: email.From, to: email.To, transport: transport, logger: logger}
}

// Send mails the attachments with subject to the configured recipient.
func (s *Sender) Send(subject string, attachments ...Attachment) error {
	msg := message(s.from, s.to, subject, attachments...)
	if err := gomail.Send(s.transport, msg); err != nil {
		return fmt.Errorf("send %q to %s: %w", subject, s.to, err)
	}
	s.logger.Info("report mailed",
		zap.String("subject", subject),
		zap.String("to", s.to),
		zap.Int("attachments", len(attachments)),
	)
	return nil
}

func message(from, to, subject string, attachments ...Attachment) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", "Se adjunta el reporte solicitado.<br>")

	for _, a := range attachments {
		data := a.Data
		msg.Attach(a.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}
	return msg
}
