package contracts

import (
	"context"
	"mailtime-service/internal/pkg/dto/requests"
)

// EvaluationQueue decouples accepting an evaluation request from running
// it. Consume blocks until the context is cancelled.
type EvaluationQueue interface {
	Enqueue(ctx context.Context, evaluation requests.Evaluation) error
	Consume(ctx context.Context, handler func(ctx context.Context, evaluation requests.Evaluation)) error
}
