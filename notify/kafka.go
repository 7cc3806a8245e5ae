// Package notify публикует наборы советов в шину сообщений, откуда их
// забирают рассылки (SMS, push).
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"agro-forecast/models"
)

type Publisher interface {
	Publish(ctx context.Context, batch models.AdvisoryBatch) error
	Close() error
}

// messageWriter часть kafka.Writer, которую использует издатель
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	topic  string
	log    *slog.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *slog.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 10 * time.Second,
	}
	return newPublisher(w, topic, log)
}

func newPublisher(w messageWriter, topic string, log *slog.Logger) *KafkaPublisher {
	if log == nil {
		log = slog.Default()
	}
	return &KafkaPublisher{
		writer: w,
		topic:  topic,
		log:    log.With(slog.String("component", "advisory-publisher")),
	}
}

// Publish ключ сообщения user_id, чтобы советы одного пользователя шли
// в одну партицию по порядку
func (p *KafkaPublisher) Publish(ctx context.Context, batch models.AdvisoryBatch) error {
	b, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("ошибка сериализации советов: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(batch.UserID),
		Value: b,
		Time:  batch.GeneratedAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("ошибка публикации в %s: %w", p.topic, err)
	}

	p.log.Info("advisory batch published",
		slog.String("topic", p.topic),
		slog.String("batch_id", batch.ID),
		slog.Int("items", len(batch.Items)),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
