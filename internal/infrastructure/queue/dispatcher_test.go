package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

type recordingMailer struct {
	mu       sync.Mutex
	sent     []ports.Message
	err      error
	expected int
	done     chan struct{}
}

func newRecordingMailer(expected int) *recordingMailer {
	m := &recordingMailer{done: make(chan struct{})}
	if expected == 0 {
		close(m.done)
	}
	m.expected = expected
	return m
}

func (m *recordingMailer) Send(_ context.Context, msg ports.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil && msg.Subject == "fails" {
		return m.err
	}
	m.sent = append(m.sent, msg)
	if len(m.sent) == m.expected {
		close(m.done)
	}
	return nil
}

func (m *recordingMailer) messages() []ports.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ports.Message(nil), m.sent...)
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for deliveries")
	}
}

func TestDispatcher_DeliversNotifications(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := newRecordingMailer(3)
	d := NewDispatcher(2, mailer, zerolog.Nop())
	d.Start(ctx)

	d.Notify(ports.Message{To: "a@example.com", Subject: "one"})
	d.Notify(ports.Message{To: "b@example.com", Subject: "two"})
	d.Notify(ports.Message{To: "a@example.com", Subject: "three"})

	waitFor(t, mailer.done)
	if got := len(mailer.messages()); got != 3 {
		t.Fatalf("expected 3 deliveries, got %d", got)
	}
}

// Messages to the same recipient land on the same worker, so their order is
// preserved.
func TestDispatcher_PerRecipientOrdering(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := newRecordingMailer(5)
	d := NewDispatcher(4, mailer, zerolog.Nop())
	d.Start(ctx)

	for _, subject := range []string{"1", "2", "3", "4", "5"} {
		d.Notify(ports.Message{To: "same@example.com", Subject: subject})
	}

	waitFor(t, mailer.done)
	msgs := mailer.messages()
	for i, msg := range msgs {
		if msg.Subject != []string{"1", "2", "3", "4", "5"}[i] {
			t.Fatalf("messages out of order: %+v", msgs)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, nil, zerolog.Nop())

	first := d.shardIndex("acme@example.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("acme@example.com") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

// A failed delivery is logged and dropped; the worker keeps running.
func TestDispatcher_SurvivesSendFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := newRecordingMailer(1)
	mailer.err = errors.New("smtp down")
	d := NewDispatcher(1, mailer, zerolog.Nop())
	d.Start(ctx)

	d.Notify(ports.Message{To: "a@example.com", Subject: "fails"})
	d.Notify(ports.Message{To: "a@example.com", Subject: "succeeds"})
	waitFor(t, mailer.done)

	msgs := mailer.messages()
	if len(msgs) != 1 || msgs[0].Subject != "succeeds" {
		t.Fatalf("unexpected deliveries: %+v", msgs)
	}
}
