package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr: kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key: m.Key,
			Value: m.Value,
			Time: time.Now(),
			Topic: topic,
		})
	}

	return k.writer.WriteMessages(context.Background(), km...)
}

func (k *DefaultKafkaPublisher) PublishTicket(event TicketEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(TicketEventsTopic, domain.Message{Key: []byte(event.UserID), Value: v})
}

func (k *DefaultKafkaPublisher) PublishOrder(event OrderEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(OrderEventsTopic, domain.Message{Key: []byte(event.UserID), Value: v})
}

func (k *DefaultKafkaPublisher) PublishReport(event ReportEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(ReportEventsTopic, domain.Message{Key: []byte(event.ReporterID), Value: v})
}

func (k *DefaultKafkaPublisher) PublishPayment(event PaymentEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(PaymentEventsTopic, domain.Message{Key: []byte(event.PayerID), Value: v})
}
