package evalqueue

import (
	"context"
	"fmt"
	"mailtime-service/internal/app/contracts"
	"mailtime-service/internal/pkg/constvars"
	"mailtime-service/internal/pkg/dto/requests"
	"mailtime-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	// EvaluationQueueName is the durable queue holding pending evaluation runs.
	EvaluationQueueName = "mailtime_evaluation_queue"
)

type evaluationQueue struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewEvaluationQueue opens a channel, declares the durable evaluation queue,
// sets QoS to one in-flight run per consumer, and enables publisher confirms.
func NewEvaluationQueue(conn *amqp.Connection, logger *zap.Logger) (contracts.EvaluationQueue, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		EvaluationQueueName, // name
		true,                // durable
		false,               // autoDelete
		false,               // exclusive
		false,               // noWait
		nil,                 // args
	)
	if err != nil {
		return nil, err
	}

	// Evaluation runs are long-lived; one unacked delivery at a time.
	if err := ch.Qos(1, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &evaluationQueue{
		ch:       ch,
		log:      logger,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (q *evaluationQueue) Enqueue(ctx context.Context, evaluation requests.Evaluation) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	q.log.Info("evaluationQueue.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, evaluation.RunID),
	)

	body, err := json.Marshal(evaluation)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := q.ch.PublishWithContext(ctx, "", EvaluationQueueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}

	select {
	case confirmed := <-q.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublish(fmt.Errorf("message not confirmed"))
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublish(ctx.Err())
	}
	return nil
}

func (q *evaluationQueue) Consume(ctx context.Context, handler func(ctx context.Context, evaluation requests.Evaluation)) error {
	deliveries, err := q.ch.Consume(
		EvaluationQueueName, // queue
		"",                  // consumer tag
		false,               // autoAck
		false,               // exclusive
		false,               // noLocal
		false,               // noWait
		nil,                 // args
	)
	if err != nil {
		return exceptions.ErrRabbitMQConsume(err)
	}

	q.log.Info("evaluationQueue.Consume started",
		zap.String(constvars.LoggingQueueNameKey, EvaluationQueueName),
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return exceptions.ErrRabbitMQConsume(fmt.Errorf("delivery channel closed"))
			}
			var evaluation requests.Evaluation
			if err := json.Unmarshal(d.Body, &evaluation); err != nil {
				// Poison message; drop it rather than redeliver forever.
				q.log.Error("evaluationQueue.Consume dropping malformed payload", zap.Error(err))
				_ = d.Ack(false)
				continue
			}
			handler(ctx, evaluation)
			_ = d.Ack(false)
		}
	}
}
