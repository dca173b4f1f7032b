// Package kafka hands rendered notifications to the mail service through a
// Kafka topic. The mail service owns SMTP; this side only needs the broker
// to acknowledge the message.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fastfeet/internal/core/domain/model/notification"

	"github.com/segmentio/kafka-go"
)

// MessageType is the "type" header of every mail message.
const MessageType = "notification.mail"

// messageWriter is the part of *kafka.Writer the mailer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MailMessage is the JSON value written to the topic.
type MailMessage struct {
	NotificationID string    `json:"notification_id"`
	OrderID        int64     `json:"order_id"`
	To             string    `json:"to"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

// Mailer implements ports.Mailer on top of a synchronous kafka.Writer.
type Mailer struct {
	writer messageWriter
}

// NewMailer creates a mailer writing to topic. Messages are keyed by
// notification ID, so retries of one notification land on one partition.
func NewMailer(brokers []string, topic string, writeTimeout time.Duration) *Mailer {
	return &Mailer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			WriteTimeout: writeTimeout,
		},
	}
}

func newMailerWithWriter(w messageWriter) *Mailer {
	return &Mailer{writer: w}
}

// Send blocks until the brokers acknowledged the message or ctx is done.
func (m *Mailer) Send(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	msg := n.Message()
	value, err := json.Marshal(MailMessage{
		NotificationID: n.ID().String(),
		OrderID:        n.OrderID().Value(),
		To:             msg.To,
		Subject:        msg.Subject,
		Body:           msg.Body,
		CreatedAt:      n.CreatedAt(),
	})
	if err != nil {
		return fmt.Errorf("encode mail message: %w", err)
	}

	err = m.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.ID().String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(MessageType)},
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
	if err != nil {
		return fmt.Errorf("write mail message: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (m *Mailer) Close() error {
	return m.writer.Close()
}
