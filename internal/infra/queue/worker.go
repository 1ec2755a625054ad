package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ConfirmationSender is the contract for whatever delivers the
// registration confirmation (SMTP today).
type ConfirmationSender interface {
	SendRegistrationConfirmation(to, name, workshopTitle, workshopDate string) error
}

type Worker struct {
	Channel *amqp.Channel
	Mail    ConfirmationSender
	Logger  *zap.Logger
}

func NewWorker(ch *amqp.Channel, mail ConfirmationSender, logger *zap.Logger) *Worker {
	return &Worker{Channel: ch, Mail: mail, Logger: logger}
}

// Start consumes signup events and sends confirmation emails. Manual acks;
// a malformed message is Nack'd without requeue so a poison payload can't
// wedge the queue (it lands in the DLQ).
func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		w.Logger.Fatal("registering RabbitMQ consumer failed", zap.Error(err))
	}

	w.Logger.Info("confirmation worker waiting", zap.String("queue", queueName))

	for d := range msgs {
		var payload SignupEventPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			w.Logger.Error("invalid signup payload", zap.Error(err))
			d.Nack(false, false)
			continue
		}

		if payload.Email == "" {
			// Nothing to send; drain the message.
			d.Ack(false)
			continue
		}

		if err := w.Mail.SendRegistrationConfirmation(
			payload.Email, payload.Name, payload.WorkshopTitle, payload.WorkshopDate,
		); err != nil {
			w.Logger.Error("confirmation email failed",
				zap.String("registration_id", payload.RegistrationID),
				zap.Error(err))
			d.Nack(false, false)
			continue
		}

		w.Logger.Info("confirmation sent",
			zap.String("contact_id", payload.ContactID),
			zap.String("workshop_id", payload.WorkshopID))
		d.Ack(false)
	}
}
