package events

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

// KafkaRelay forwards recorded submissions to a Kafka topic so
// downstream consumers (raffle draw, analytics pipelines) see the same
// events as in-process subscribers. Delivery is best effort: a broker
// failure is logged, never surfaced to the submitting user.
type KafkaRelay struct {
	writer *kafka.Writer
}

// NewKafkaRelay creates a relay writing to the given brokers and topic
func NewKafkaRelay(brokers, topic string) *KafkaRelay {
	return &KafkaRelay{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(brokers, ",")...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Attach subscribes the relay to submission events on the bus
func (r *KafkaRelay) Attach(bus *Bus) {
	bus.Subscribe(EventTypeSubmissionRecorded, r.handle)
}

func (r *KafkaRelay) handle(ctx context.Context, event Event) {
	recorded, ok := event.(SubmissionRecordedEvent)
	if !ok {
		return
	}

	payload, err := json.Marshal(recorded)
	if err != nil {
		log.WithError(err).Error("Failed to encode submission event")
		return
	}

	msg := kafka.Message{
		Key:   []byte(recorded.Address),
		Value: payload,
	}
	if err := r.writer.WriteMessages(ctx, msg); err != nil {
		log.WithError(err).WithField("address", recorded.Address).
			Error("Failed to publish submission event to Kafka")
	}
}

// Close closes the underlying Kafka writer
func (r *KafkaRelay) Close() error {
	return r.writer.Close()
}
