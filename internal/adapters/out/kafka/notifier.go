// Package kafka publishes notification events to a Kafka topic. The
// downstream notification service consumes the topic and does the actual
// push/email fan-out; this adapter only guarantees the event reaches the
// broker.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"coordinator/internal/core/domain/model/kernel"

	"github.com/IBM/sarama"
)

const producerTimeout = 5 * time.Second

// Event names carried in the message payload.
const (
	EventDeliveryAssigned        = "delivery_assigned"
	EventDeliveryRequestUpdate   = "delivery_request_update"
	EventVolunteerApproved       = "volunteer_approved"
	EventPendingRequestsReminder = "pending_requests_reminder"
)

type notificationMessage struct {
	Event        string    `json:"event"`
	OrderID      string    `json:"orderId,omitempty"`
	VolunteerID  string    `json:"volunteerId,omitempty"`
	RequestID    string    `json:"requestId,omitempty"`
	Outcome      string    `json:"outcome,omitempty"`
	PendingCount int       `json:"pendingCount,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// Notifier implements the notification out-port on top of a Kafka
// SyncProducer. Callers treat every publish as best-effort; the returned
// error is for their logging only.
type Notifier struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewNotifier connects a synchronous producer to the given brokers.
func NewNotifier(brokers []string, topic string, logger *slog.Logger) (*Notifier, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = producerTimeout

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &Notifier{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_notifier"),
	}, nil
}

// NotifyDeliveryAssigned publishes a delivery assignment event.
func (n *Notifier) NotifyDeliveryAssigned(ctx context.Context, orderID, volunteerID kernel.UUID) error {
	return n.publish(ctx, notificationMessage{
		Event:       EventDeliveryAssigned,
		OrderID:     orderID.String(),
		VolunteerID: volunteerID.String(),
		OccurredAt:  time.Now().UTC(),
	}, orderID.String())
}

// NotifyDeliveryRequestUpdate publishes a request decision event.
func (n *Notifier) NotifyDeliveryRequestUpdate(ctx context.Context, requestID kernel.UUID, outcome string, volunteerID kernel.UUID) error {
	return n.publish(ctx, notificationMessage{
		Event:       EventDeliveryRequestUpdate,
		RequestID:   requestID.String(),
		Outcome:     outcome,
		VolunteerID: volunteerID.String(),
		OccurredAt:  time.Now().UTC(),
	}, requestID.String())
}

// NotifyVolunteerApproved publishes an account activation event.
func (n *Notifier) NotifyVolunteerApproved(ctx context.Context, volunteerID kernel.UUID) error {
	return n.publish(ctx, notificationMessage{
		Event:       EventVolunteerApproved,
		VolunteerID: volunteerID.String(),
		OccurredAt:  time.Now().UTC(),
	}, volunteerID.String())
}

// NotifyPendingRequestsReminder publishes the admin reminder event.
func (n *Notifier) NotifyPendingRequestsReminder(ctx context.Context, pendingCount int) error {
	return n.publish(ctx, notificationMessage{
		Event:        EventPendingRequestsReminder,
		PendingCount: pendingCount,
		OccurredAt:   time.Now().UTC(),
	}, EventPendingRequestsReminder)
}

// Close shuts down the underlying producer.
func (n *Notifier) Close() error {
	return n.producer.Close()
}

func (n *Notifier) publish(ctx context.Context, message notificationMessage, key string) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	// Key by subject so events for the same order or volunteer stay ordered
	// within a partition.
	partition, offset, err := n.producer.SendMessage(&sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return err
	}

	n.logger.DebugContext(ctx, "Notification published",
		"event", message.Event, "partition", partition, "offset", offset)
	return nil
}
