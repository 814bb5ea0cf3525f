package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"
)

// Message is a rendered email ready for a transport.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// EmailRenderer turns a confirmed reservation into the customer email.
type EmailRenderer interface {
	RenderConfirmation(data ConfirmationEmail) (Message, error)
}

type ConfirmationEmail struct {
	To        string
	Name      string
	Code      string
	Date      string
	Time      string
	PartySize int
}

type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload []byte) error
}
