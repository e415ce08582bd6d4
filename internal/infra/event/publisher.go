package event

import (
	"context"
	"encoding/json"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -package mock_event -destination mock/writer.go github.com/RoyceAzure/lab/shopcenter/internal/infra/event Writer

// Writer kafka.Writer 的最小介面, 方便測試替換
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// IOrderEventPublisher 發布訂單事件
type IOrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, payload OrderCreatedPayload) error
	PublishOrderStatusChanged(ctx context.Context, payload OrderStatusChangedPayload) error
	Close() error
}

// NewKafkaWriter 建立同步寫入的 kafka.Writer
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		MaxAttempts:  3,
		Transport: &kafka.Transport{
			Dial: func(ctx context.Context, network string, address string) (net.Conn, error) {
				dialer := &kafka.Dialer{
					Timeout:   10 * time.Second,
					DualStack: true,
					KeepAlive: 30 * time.Second,
				}
				return dialer.DialContext(ctx, network, address)
			},
		},
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Error().Msgf("kafka producer error: "+msg, args...)
		}),
	}
}

// KafkaPublisher 以 order id 為 key 寫入事件, 同一訂單的事件會進同一個 partition
type KafkaPublisher struct {
	writer   Writer
	topic    string
	producer string
	closed   atomic.Bool
}

func NewKafkaPublisher(writer Writer, topic, producer string) *KafkaPublisher {
	if writer == nil {
		panic("NewKafkaPublisher: writer cannot be nil")
	}
	return &KafkaPublisher{
		writer:   writer,
		topic:    topic,
		producer: producer,
	}
}

func (p *KafkaPublisher) PublishOrderCreated(ctx context.Context, payload OrderCreatedPayload) error {
	return p.publish(ctx, EventOrderCreated, payload.OrderID, payload)
}

func (p *KafkaPublisher) PublishOrderStatusChanged(ctx context.Context, payload OrderStatusChangedPayload) error {
	return p.publish(ctx, EventOrderStatusChanged, payload.OrderID, payload)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, orderID int64, payload any) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return NewKafkaError("Marshal", p.topic, err)
	}

	orderKey := strconv.FormatInt(orderID, 10)
	env := Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  EventVersion,
		OccurredAt:    time.Now().UTC(),
		Producer:      p.producer,
		TraceID:       util.GetRequestID(ctx),
		CorrelationID: orderKey,
		Payload:       raw,
	}
	value, err := json.Marshal(env)
	if err != nil {
		return NewKafkaError("Marshal", p.topic, err)
	}

	msg := kafka.Message{
		Key:   []byte(orderKey),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return NewKafkaError("Produce", p.topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}

// NoopPublisher 未設定 kafka 時使用
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) PublishOrderCreated(context.Context, OrderCreatedPayload) error {
	return nil
}

func (NoopPublisher) PublishOrderStatusChanged(context.Context, OrderStatusChangedPayload) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}

var (
	_ IOrderEventPublisher = (*KafkaPublisher)(nil)
	_ IOrderEventPublisher = NoopPublisher{}
)
