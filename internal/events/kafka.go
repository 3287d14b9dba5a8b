package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
)

const EventReplayClassified = "replay_classified"

type Producer struct {
	writer *kafka.Writer
}

// NewProducer returns a producer that silently drops events when disabled.
func NewProducer(enabled bool, broker, topic string) *Producer {
	if !enabled {
		log.Println("[KAFKA] Disabled or not configured")
		return &Producer{writer: nil}
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	log.Printf("[KAFKA] Producer initialized for topic %s", topic)
	return &Producer{writer: writer}
}

func (p *Producer) Enabled() bool {
	return p.writer != nil
}

// ProduceEvent publishes {type, data} keyed by the event type
func (p *Producer) ProduceEvent(ctx context.Context, eventType string, data interface{}) error {
	if p.writer == nil {
		return nil
	}

	eventBytes, err := encodeEvent(eventType, data)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx,
		kafka.Message{
			Key:   []byte(eventType),
			Value: eventBytes,
		},
	)
	if err != nil {
		log.Printf("[KAFKA] Error producing event: %v", err)
		return err
	}

	return nil
}

func encodeEvent(eventType string, data interface{}) ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": data,
	})
}

func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
