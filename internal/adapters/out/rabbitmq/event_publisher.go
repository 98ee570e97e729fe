package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/medcenter-scheduling-service/internal/config"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/ports/out"
)

type AppointmentAction string

const (
	AppointmentActionBooked    AppointmentAction = "booked"
	AppointmentActionAccepted  AppointmentAction = "accepted"
	AppointmentActionCompleted AppointmentAction = "completed"
)

// EventPublisher публикует события жизненного цикла записи в topic-exchange.
// Пример routingKey:
// medcenter.scheduling.appointment.booked
// medcenter.scheduling.appointment.accepted
// medcenter.scheduling.appointment.completed
type EventPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	cfg      *config.Config
	logger   out.LoggerPort
}

func NewEventPublisher(cfg *config.Config, logger out.LoggerPort) (*EventPublisher, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, events will not be published",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.URL,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	err = channel.ExchangeDeclare(
		cfg.RabbitMQ.Exchange,
		"topic",
		true,  // durable
		false, // delete when unused
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		logger.Error("rabbitmq.exchange.declare_failed", out.LogFields{
			"error":    err.Error(),
			"exchange": cfg.RabbitMQ.Exchange,
		})
		return nil, err
	}

	return &EventPublisher{
		conn:     conn,
		channel:  channel,
		exchange: cfg.RabbitMQ.Exchange,
		cfg:      cfg,
		logger:   logger.WithModule("EventPublisher"),
	}, nil
}

func (p *EventPublisher) Stop() error {
	if p == nil || p.channel == nil {
		return nil
	}

	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}

func (p *EventPublisher) AppointmentBooked(ctx context.Context, event out.AppointmentEvent) error {
	return p.publish(ctx, AppointmentActionBooked, event)
}

func (p *EventPublisher) AppointmentAccepted(ctx context.Context, event out.AppointmentEvent) error {
	return p.publish(ctx, AppointmentActionAccepted, event)
}

func (p *EventPublisher) AppointmentCompleted(ctx context.Context, event out.AppointmentEvent) error {
	return p.publish(ctx, AppointmentActionCompleted, event)
}

func (p *EventPublisher) publish(ctx context.Context, action AppointmentAction, event out.AppointmentEvent) error {
	routingKey := fmt.Sprintf("medcenter.scheduling.appointment.%s", action)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal appointment event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("rabbitmq.publish.failed", out.LogFields{
			"routingKey":    routingKey,
			"appointmentId": event.AppointmentID,
			"error":         err.Error(),
		})
		return err
	}

	p.logger.Debug("rabbitmq.publish", out.LogFields{
		"routingKey":    routingKey,
		"appointmentId": event.AppointmentID,
	})
	return nil
}
