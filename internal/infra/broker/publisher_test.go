//go:build unit

package broker_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"venue-admin/internal/infra/broker"
	"venue-admin/internal/pkg/config"
	"venue-admin/internal/pkg/errs"
	"venue-admin/internal/usecase/shared"
	brokermock "venue-admin/tests/mock/broker"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const exchange = "venue.reservations"

// expectDeclare accepts the exchange declaration and hands back the channel
// the publisher watches for closure.
func expectDeclare(ch *brokermock.MockChannel) <-chan chan *amqp.Error {
	watched := make(chan chan *amqp.Error, 1)
	ch.EXPECT().ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil).Return(nil)
	ch.EXPECT().NotifyClose(gomock.Any()).DoAndReturn(func(c chan *amqp.Error) chan *amqp.Error {
		watched <- c
		return c
	})
	return watched
}

func TestNewPublisherWithChannel(t *testing.T) {
	t.Run("success: declares a durable topic exchange", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ch := brokermock.NewMockChannel(ctrl)
		expectDeclare(ch)

		p, err := broker.NewPublisherWithChannel(ch, exchange)

		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("error: declare failure closes the channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ch := brokermock.NewMockChannel(ctrl)
		ch.EXPECT().ExchangeDeclare(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("access refused"))
		ch.EXPECT().Close().Return(nil)

		p, err := broker.NewPublisherWithChannel(ch, exchange)

		assert.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestPublisher_Publish(t *testing.T) {
	event := shared.Event{
		Type:       shared.EventReservationStatusChanged,
		OccurredAt: time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC),
		ActorID:    uuid.New(),
		Payload:    map[string]any{"reservationId": 5},
	}

	t.Run("success: persistent JSON routed by event type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ch := brokermock.NewMockChannel(ctrl)
		expectDeclare(ch)

		var sent amqp.Publishing
		ch.EXPECT().
			PublishWithContext(gomock.Any(), exchange, event.Type, false, false, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
				sent = msg
				return nil
			})

		p, err := broker.NewPublisherWithChannel(ch, exchange)
		require.NoError(t, err)

		require.NoError(t, p.Publish(context.Background(), event))

		assert.Equal(t, "application/json", sent.ContentType)
		assert.Equal(t, amqp.Persistent, sent.DeliveryMode)
		assert.Equal(t, event.Type, sent.Type)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(sent.Body, &decoded))
		assert.Equal(t, event.Type, decoded["type"])
		assert.Equal(t, event.ActorID.String(), decoded["actorId"])
	})

	t.Run("error: channel failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ch := brokermock.NewMockChannel(ctrl)
		expectDeclare(ch)
		ch.EXPECT().PublishWithContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(amqp.ErrClosed)

		p, err := broker.NewPublisherWithChannel(ch, exchange)
		require.NoError(t, err)

		err = p.Publish(context.Background(), event)

		require.Error(t, err)
		assert.ErrorIs(t, err, amqp.ErrClosed)
	})

	t.Run("success: publisher without a broker drops events", func(t *testing.T) {
		p, err := broker.NewPublisher(config.BrokerConfig{Exchange: exchange})
		require.NoError(t, err)

		assert.NoError(t, p.Publish(context.Background(), event))
		assert.NoError(t, p.Close())
	})
}

func TestPublisher_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	ch := brokermock.NewMockChannel(ctrl)
	expectDeclare(ch)
	ch.EXPECT().Close().Return(nil).Times(1)

	p, err := broker.NewPublisherWithChannel(ch, exchange)
	require.NoError(t, err)

	require.NoError(t, p.Close())
	// second close is a no-op
	require.NoError(t, p.Close())
	assert.NoError(t, p.Publish(context.Background(), shared.Event{Type: shared.EventReservationPriced}))
}

type dialer struct {
	dials    int
	channels []broker.Channel
	err      error
}

func (d *dialer) dial() (broker.Channel, io.Closer, error) {
	d.dials++
	if d.err != nil {
		return nil, nil, d.err
	}
	ch := d.channels[0]
	d.channels = d.channels[1:]
	return ch, nil, nil
}

func TestPublisher_Reconnect(t *testing.T) {
	event := shared.Event{Type: shared.EventReservationPriced, ActorID: uuid.New()}

	t.Run("success: channel closed by the broker is re-dialed on the next publish", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		first := brokermock.NewMockChannel(ctrl)
		second := brokermock.NewMockChannel(ctrl)
		watched := expectDeclare(first)
		expectDeclare(second)
		// a publish racing the close notification sees the closed channel
		first.EXPECT().PublishWithContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(amqp.ErrClosed).MaxTimes(1)
		second.EXPECT().PublishWithContext(gomock.Any(), exchange, event.Type, false, false, gomock.Any()).Return(nil).Times(1)
		second.EXPECT().Close().Return(nil).Times(1)

		d := &dialer{channels: []broker.Channel{first, second}}
		p, err := broker.NewPublisherWithDialer(d.dial, exchange)
		require.NoError(t, err)

		(<-watched) <- &amqp.Error{Code: amqp.ConnectionForced, Reason: "broker restarting"}

		assert.Eventually(t, func() bool {
			return p.Publish(context.Background(), event) == nil
		}, time.Second, 10*time.Millisecond)
		assert.Equal(t, 2, d.dials)
		require.NoError(t, p.Close())
	})

	t.Run("error: failed re-dial backs off instead of dialing on every publish", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ch := brokermock.NewMockChannel(ctrl)
		expectDeclare(ch)
		ch.EXPECT().PublishWithContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(amqp.ErrClosed).Times(1)

		d := &dialer{channels: []broker.Channel{ch}}
		p, err := broker.NewPublisherWithDialer(d.dial, exchange)
		require.NoError(t, err)
		d.err = errors.New("connection refused")

		err = p.Publish(context.Background(), event)
		assert.ErrorIs(t, err, amqp.ErrClosed)

		err = p.Publish(context.Background(), event)
		assert.True(t, errs.Is(err, broker.ErrBrokerUnavailable))
		assert.Equal(t, 2, d.dials)

		err = p.Publish(context.Background(), event)
		assert.True(t, errs.Is(err, broker.ErrBrokerUnavailable))
		assert.Equal(t, 2, d.dials, "second attempt waits for the backoff")
	})

	t.Run("error: first dial failure is returned", func(t *testing.T) {
		d := &dialer{err: errors.New("connection refused")}

		p, err := broker.NewPublisherWithDialer(d.dial, exchange)

		assert.Error(t, err)
		assert.Nil(t, p)
	})
}
