package ports

import "context"

// Message is a plain-text outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers a single message synchronously. Failures propagate to the
// caller; the core never retries.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Notifier accepts a message for asynchronous, best-effort delivery. Used for
// inquiry notifications where a delivery failure must not fail the request.
type Notifier interface {
	Notify(msg Message)
}
