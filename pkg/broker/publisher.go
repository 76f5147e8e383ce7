package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher delivers an event under a routing key. Implementations must be
// safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
	Close() error
}

// RabbitPublisher holds one connection for the process lifetime and opens a
// short-lived channel per message.
type RabbitPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	url      string
	exchange string
	log      *zap.Logger
}

func NewRabbitPublisher(cfg utils.RabbitMQConfig, log *zap.Logger) (*RabbitPublisher, error) {
	p := &RabbitPublisher{
		url:      cfg.URL,
		exchange: cfg.Exchange,
		log:      log.With(zap.String("component", "broker")),
	}

	conn, err := p.dial()
	if err != nil {
		return nil, err
	}
	p.conn = conn

	return p, nil
}

func (p *RabbitPublisher) dial() (*amqp.Connection, error) {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer ch.Close()

	// durable topic exchange, consumers bind their own queues
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare %s: %w", p.exchange, err)
	}

	return conn, nil
}

func (p *RabbitPublisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		conn, err := p.dial()
		if err != nil {
			return nil, err
		}
		p.conn = conn
	}

	return p.conn.Channel()
}

func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", routingKey, err)
	}

	ch, err := p.channel()
	if err != nil {
		return fmt.Errorf("open channel for %s: %w", routingKey, err)
	}
	defer ch.Close()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Type:         routingKey,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	p.log.Debug("Event published", zap.String("routing_key", routingKey), zap.String("message_id", msg.MessageId))
	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}

// NopPublisher drops every event. Used when RabbitMQ is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }

func (NopPublisher) Close() error { return nil }
