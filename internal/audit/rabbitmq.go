package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// publisher is the slice of *amqp.Channel the sink uses.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQSink publishes events to a topic exchange with the action as the
// routing key. After five consecutive failures the breaker opens and events
// are skipped until the broker recovers.
type RabbitMQSink struct {
	conn     *amqp.Connection
	channel  publisher
	exchange string
	breaker  *gobreaker.CircuitBreaker[struct{}]
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewRabbitMQSink(url, exchange string, logger *zap.Logger) (*RabbitMQSink, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	logger.Info("RabbitMQ event sink connected", zap.String("exchange", exchange))

	s := newRabbitMQSink(ch, exchange, logger)
	s.conn = conn
	return s, nil
}

func newRabbitMQSink(ch publisher, exchange string, logger *zap.Logger) *RabbitMQSink {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &RabbitMQSink{
		channel:  ch,
		exchange: exchange,
		logger:   logger,
	}

	s.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "rabbitmq-events",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return s
}

func (s *RabbitMQSink) Write(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	_, err = s.breaker.Execute(func() (struct{}, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		return struct{}{}, s.channel.PublishWithContext(ctx,
			s.exchange, // exchange
			ev.Action,  // routing key
			false,      // mandatory
			false,      // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    ev.ID,
				Timestamp:    ev.OccurredAt,
				Body:         body,
			},
		)
	})
	if errors.Is(err, gobreaker.ErrOpenState) {
		return fmt.Errorf("event %s skipped: %w", ev.ID, err)
	}
	return err
}

func (s *RabbitMQSink) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
