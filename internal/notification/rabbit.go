package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	RoutingKeyAdmitted  = "registration.admitted"
	RoutingKeyWithdrawn = "registration.withdrawn"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RegistrationMessage is the JSON body published for every membership change.
type RegistrationMessage struct {
	Type       string    `json:"type"`
	EventID    string    `json:"event_id"`
	EventKind  string    `json:"event_kind"`
	EventName  string    `json:"event_name"`
	ClubID     int64     `json:"club_id"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	Members    int       `json:"members"`
	Capacity   *int      `json:"capacity"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RabbitPublisher publishes registration changes to a topic exchange.
type RabbitPublisher struct {
	conn     *amqp.Connection
	mu       sync.Mutex
	ch       amqpChannel
	exchange string
	logger   logger.Logger
}

func NewRabbitPublisher(url, exchange string, log logger.Logger) (*RabbitPublisher, error) {
	if url == "" {
		log.Warn("rabbitmq url is empty, registration events disabled")
		return &RabbitPublisher{exchange: exchange, logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.Info("rabbitmq publisher initialized", logger.String("exchange", exchange))

	return &RabbitPublisher{conn: conn, ch: ch, exchange: exchange, logger: log}, nil
}

func (p *RabbitPublisher) NotifyAdmitted(ctx context.Context, user *domain.User, event *domain.Event) {
	p.publish(ctx, RoutingKeyAdmitted, user, event)
}

func (p *RabbitPublisher) NotifyWithdrawn(ctx context.Context, user *domain.User, event *domain.Event) {
	p.publish(ctx, RoutingKeyWithdrawn, user, event)
}

func (p *RabbitPublisher) publish(ctx context.Context, key string, user *domain.User, event *domain.Event) {
	if p.ch == nil {
		return
	}

	body, err := json.Marshal(RegistrationMessage{
		Type:       key,
		EventID:    event.ID,
		EventKind:  string(event.Kind),
		EventName:  event.Name,
		ClubID:     event.ClubID,
		UserID:     user.ID,
		Username:   user.Username,
		Members:    len(event.MemberIDs),
		Capacity:   event.Capacity,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		p.logger.Error("failed to encode registration message", logger.String("error", err.Error()))
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		p.logger.Error("failed to publish registration message",
			logger.String("routing_key", key),
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	p.logger.Debug("registration message published",
		logger.String("routing_key", key),
		logger.String("event_id", event.ID),
	)
}

func (p *RabbitPublisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
