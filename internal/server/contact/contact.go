// Package contact handles the public contact form. Messages are validated
// and handed to a Sender; the default sender only records them in the log,
// since no mail transport is configured.
package contact

import (
	"context"
	"net/mail"

	"github.com/ozyalhan/ozyblog/internal/common"
	"github.com/ozyalhan/ozyblog/internal/logging"
)

// Message is one submission of the contact form.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Sender delivers a contact message somewhere useful.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// LogSender acknowledges messages by logging them. It stands in until a
// real mail backend is wired up.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg *Message) error {
	s.logger.Info(ctx, "contact message received",
		"name", msg.Name, "email", msg.Email, "subject", msg.Subject)
	return nil
}

// Service validates and forwards contact messages.
type Service struct {
	sender Sender
}

func NewService(sender Sender) *Service {
	return &Service{sender: sender}
}

// Submit checks the form fields and passes the message to the sender.
func (s *Service) Submit(ctx context.Context, msg *Message) error {
	if msg.Name == "" {
		return common.NewValidationError("name", "write your name please")
	}
	if msg.Email == "" {
		return common.NewValidationError("email", "write your email please")
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return common.NewValidationError("email", "invalid email address")
	}
	if msg.Subject == "" {
		return common.NewValidationError("subject", "write a subject please")
	}
	if msg.Body == "" {
		return common.NewValidationError("message", "write something please")
	}
	return s.sender.Send(ctx, msg)
}
