package internal

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/DrGermanius/OnboardFlow/internal/model"
)

type IDispatcher interface {
	Dispatch(model.FanoutPayload)
}

type Sink interface {
	Name() string
	Send(context.Context, model.FanoutPayload) error
}

// Dispatcher runs every sink in a goroutine that is detached from the request.
// Outcomes are only logged.
type Dispatcher struct {
	sinks   []Sink
	timeout time.Duration
	logger  *zap.SugaredLogger
	metrics *Metrics

	wg sync.WaitGroup
}

func NewDispatcher(timeout time.Duration, logger *zap.SugaredLogger, metrics *Metrics, sinks ...Sink) *Dispatcher {
	return &Dispatcher{sinks: sinks, timeout: timeout, logger: logger, metrics: metrics}
}

func (d *Dispatcher) Dispatch(p model.FanoutPayload) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.logger.Errorf("fan-out for order %s panicked: %v", p.OrderID, r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		for _, s := range d.sinks {
			start := time.Now()
			err := s.Send(ctx, p)
			d.metrics.observeStep("fanout_"+s.Name(), start, err)
			if err != nil {
				d.logger.Warnf("%s call failed for order %s: %s", s.Name(), p.OrderID, err.Error())
				continue
			}
			d.logger.Infof("%s called for order %s", s.Name(), p.OrderID)
		}
	}()
}

// Wait blocks until every dispatched fan-out has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) Close() error {
	d.Wait()
	for _, s := range d.sinks {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Notify posts payload to url. No retry.
func Notify(ctx context.Context, client *http.Client, url string, payload interface{}) error {
	return makeRequest(ctx, client, url, nil, payload, nil)
}

type WebhookSink struct {
	url    string
	client *http.Client
}

func NewWebhookSink(url string, client *http.Client) *WebhookSink {
	return &WebhookSink{url: url, client: client}
}

func (w *WebhookSink) Name() string {
	return "webhook"
}

func (w *WebhookSink) Send(ctx context.Context, p model.FanoutPayload) error {
	return Notify(ctx, w.client, w.url, p)
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink publishes the payload keyed by order id.
type KafkaSink struct {
	writer messageWriter
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaSink) Name() string {
	return "kafka"
}

func (k *KafkaSink) Send(ctx context.Context, p model.FanoutPayload) error {
	v, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(p.OrderID),
		Value: v,
		Time:  time.Now(),
	})
}

func (k *KafkaSink) Close() error {
	return k.writer.Close()
}
