package converter_event_consumer

import (
	"context"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/parsewell/excel-gateway/domain/app"
	"github.com/parsewell/excel-gateway/internal/config"
)

// EventConsumer drives conversions from MinIO bucket notifications delivered
// over AMQP. The hosting platform owns redelivery of whole events; the
// consumer itself never retries a file.
type EventConsumer struct {
	cfg     *config.Config
	service app.ConversionService
	log     *slog.Logger

	conn    *amqp.Connection
	channel *amqp.Channel
	done    chan struct{}
}

func New(cfg *config.Config, service app.ConversionService, log *slog.Logger) *EventConsumer {
	return &EventConsumer{cfg: cfg, service: service, log: log}
}

func (this *EventConsumer) Start(ctx context.Context) error {
	if this.cfg.Events.AmqpUrl == "" {
		this.log.Info("no AMQP url configured, bucket event consumer disabled")
		return nil
	}

	conn, err := amqp.Dial(this.cfg.Events.AmqpUrl)
	if err != nil {
		return err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}

	if _, err := channel.QueueDeclare(this.cfg.Events.Queue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return err
	}

	deliveries, err := channel.Consume(this.cfg.Events.Queue, "excel-gateway", false, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return err
	}

	this.conn = conn
	this.channel = channel
	this.done = make(chan struct{})

	go this.consume(deliveries)

	this.log.Info("bucket event consumer started", "queue", this.cfg.Events.Queue)
	return nil
}

func (this *EventConsumer) Stop(ctx context.Context) error {
	if this.conn == nil {
		return nil
	}

	this.channel.Close()
	err := this.conn.Close()

	select {
	case <-this.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return err
}

func (this *EventConsumer) consume(deliveries <-chan amqp.Delivery) {
	defer close(this.done)

	for d := range deliveries {
		this.handle(d)
	}
}

func (this *EventConsumer) handle(d amqp.Delivery) {
	refs, err := DecodeBucketEvent(d.Body)
	if err != nil {
		this.log.Error("failed to decode bucket event", "error", err)
		// Undecodable events are dropped, not requeued.
		d.Ack(false)
		return
	}

	for _, ref := range refs {
		if !ref.IsSpreadsheet() {
			this.log.Warn("ignoring non-Excel file", "bucket", ref.Bucket, "key", ref.Key)
			continue
		}

		message, err := this.service.Convert(context.Background(), ref)
		if err != nil {
			this.log.Error("conversion failed", "bucket", ref.Bucket, "key", ref.Key, "error", err)
			continue
		}
		this.log.Info(message, "bucket", ref.Bucket, "key", ref.Key)
	}

	d.Ack(false)
}
