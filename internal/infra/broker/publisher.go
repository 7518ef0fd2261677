package broker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"venue-admin/internal/pkg/config"
	"venue-admin/internal/pkg/errs"
	"venue-admin/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	dialTimeout    = 5 * time.Second
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

var ErrBrokerUnavailable = errs.New("broker unavailable")

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	NotifyClose(receiver chan *amqp.Error) chan *amqp.Error
	Close() error
}

// Dialer opens a channel and returns the connection that owns it, or nil
// when the channel has no separate connection.
type Dialer func() (Channel, io.Closer, error)

// Publisher sends domain events to a topic exchange, routed by event type.
// When the broker drops the channel the next Publish re-dials, backing off
// between failed attempts.
type Publisher struct {
	mu       sync.Mutex
	conn     io.Closer
	ch       Channel
	exchange string
	dial     Dialer
	disabled bool
	closed   bool
	done     chan struct{}

	backoff  time.Duration
	nextDial time.Time
}

var _ shared.EventPublisher = (*Publisher)(nil)

// NewPublisher dials the broker and declares the exchange. An empty URL
// yields a publisher that drops every event.
func NewPublisher(cfg config.BrokerConfig) (*Publisher, error) {
	if cfg.URL == "" {
		slog.Info("AMQP_URL not set, events will not be published")
		return &Publisher{exchange: cfg.Exchange, disabled: true, done: make(chan struct{})}, nil
	}
	return NewPublisherWithDialer(amqpDialer(cfg.URL), cfg.Exchange)
}

// NewPublisherWithDialer fails when the first dial fails; later losses are
// recovered on publish.
func NewPublisherWithDialer(dial Dialer, exchange string) (*Publisher, error) {
	ch, conn, err := dial()
	if err != nil {
		return nil, err
	}
	p := newPublisher(exchange)
	p.dial = dial
	if err := p.attach(ch, conn); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPublisherWithChannel wraps an open channel. It cannot re-dial.
func NewPublisherWithChannel(ch Channel, exchange string) (*Publisher, error) {
	p := newPublisher(exchange)
	if err := p.attach(ch, nil); err != nil {
		return nil, err
	}
	return p, nil
}

func newPublisher(exchange string) *Publisher {
	return &Publisher{exchange: exchange, done: make(chan struct{}), backoff: initialBackoff}
}

func amqpDialer(url string) Dialer {
	return func() (Channel, io.Closer, error) {
		conn, err := amqp.DialConfig(url, amqp.Config{
			Heartbeat: 10 * time.Second,
			Locale:    "en_US",
			Dial:      amqp.DefaultDial(dialTimeout),
		})
		if err != nil {
			return nil, nil, errs.Wrap(err, "failed to dial broker")
		}
		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, nil, errs.Wrap(err, "failed to open broker channel")
		}
		return ch, conn, nil
	}
}

// attach declares the exchange on ch and starts watching it. Callers hold
// p.mu or own p exclusively.
func (p *Publisher) attach(ch Channel, conn io.Closer) error {
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		if conn != nil {
			_ = conn.Close()
		}
		return errs.Wrap(err, "failed to declare exchange")
	}
	notify := ch.NotifyClose(make(chan *amqp.Error, 1))
	p.ch, p.conn = ch, conn
	go p.watch(ch, notify)
	return nil
}

func (p *Publisher) watch(ch Channel, notify <-chan *amqp.Error) {
	select {
	case amqpErr, ok := <-notify:
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.ch != ch {
			return
		}
		if ok && amqpErr != nil {
			slog.Warn("broker channel closed", "error", amqpErr.Error())
		} else {
			slog.Warn("broker channel closed")
		}
		p.drop()
	case <-p.done:
	}
}

// drop forgets a dead channel. The channel itself is already closed.
func (p *Publisher) drop() {
	p.ch = nil
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// redial is called with p.mu held.
func (p *Publisher) redial() error {
	if p.dial == nil {
		return errs.Mark(errs.New("broker channel closed"), ErrBrokerUnavailable)
	}
	now := time.Now()
	if now.Before(p.nextDial) {
		return errs.Mark(errs.New("broker reconnect backing off"), ErrBrokerUnavailable)
	}

	ch, conn, err := p.dial()
	if err == nil {
		err = p.attach(ch, conn)
	}
	if err != nil {
		p.nextDial = now.Add(p.backoff)
		p.backoff = min(p.backoff*2, maxBackoff)
		return errs.Mark(errs.Wrap(err, "failed to reconnect to broker"), ErrBrokerUnavailable)
	}

	p.backoff = initialBackoff
	p.nextDial = time.Time{}
	slog.Info("broker channel re-established", "exchange", p.exchange)
	return nil
}

func (p *Publisher) Publish(ctx context.Context, event shared.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode event")
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         event.Type,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disabled || p.closed {
		return nil
	}
	if p.ch == nil {
		if err := p.redial(); err != nil {
			return err
		}
	}
	if err := p.ch.PublishWithContext(ctx, p.exchange, event.Type, false, false, msg); err != nil {
		if errs.Is(err, amqp.ErrClosed) {
			p.drop()
		}
		return errs.Wrap(err, "failed to publish event")
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	close(p.done)

	var firstErr error
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			firstErr = err
		}
		p.ch = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		p.conn = nil
	}
	return firstErr
}
