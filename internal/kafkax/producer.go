package kafkax

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Producer serializes publishes through a single goroutine so handlers
// never block on the broker. The queue is drained before the loop exits.
type Producer struct {
	w         *kafka.Writer
	queue     chan kafka.Message
	closed    chan struct{}
	closeOnce sync.Once
	log       zerolog.Logger
}

// NewProducer writes to any topic; each message names its own.
func NewProducer(brokers []string, buf int, log zerolog.Logger) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		queue:  make(chan kafka.Message, buf),
		closed: make(chan struct{}),
		log:    log.With().Str("component", "kafka-producer").Logger(),
	}
}

func (p *Producer) Start(ctx context.Context) {
	go func() {
		defer close(p.closed)
		for {
			select {
			case <-ctx.Done():
				p.drain()
				return
			case m, ok := <-p.queue:
				if !ok {
					_ = p.w.Close()
					return
				}
				p.write(m)
			}
		}
	}()
}

func (p *Producer) drain() {
	p.closeQueue()
	for m := range p.queue {
		p.write(m)
	}
	_ = p.w.Close()
}

func (p *Producer) closeQueue() {
	p.closeOnce.Do(func() { close(p.queue) })
}

func (p *Producer) write(m kafka.Message) {
	if err := p.w.WriteMessages(context.Background(), m); err != nil {
		p.log.Error().Err(err).Str("topic", m.Topic).Msg("publish")
	}
}

// Publish queues a message; it never blocks the caller beyond the buffer.
func (p *Producer) Publish(topic string, key, value []byte, headers ...kafka.Header) {
	p.queue <- kafka.Message{
		Topic:   topic,
		Key:     key,
		Value:   value,
		Time:    time.Now(),
		Headers: headers,
	}
}

// Close stops intake; the loop flushes what is left and exits.
func (p *Producer) Close() { p.closeQueue() }

// WaitClosed blocks until the loop has drained and exited.
func (p *Producer) WaitClosed() { <-p.closed }
