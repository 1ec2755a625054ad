package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// SignupEventPayload is everything the confirmation worker needs without
// going back to the database.
type SignupEventPayload struct {
	ContactID      string `json:"contact_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	WorkshopID     string `json:"workshop_id"`
	WorkshopTitle  string `json:"workshop_title"`
	WorkshopDate   string `json:"workshop_date"`
	RegistrationID string `json:"registration_id"`
	Guests         string `json:"guests"`
	Origin         string `json:"origin"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishSignup(ctx context.Context, payload SignupEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling signup payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publishing to RabbitMQ: %w", err)
	}

	return nil
}
