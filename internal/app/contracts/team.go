package contracts

import (
	"context"
	"mailtime-service/internal/pkg/dto/requests"
)

// TeamClient posts generated challenge inputs to a team's solver endpoint
// and returns the raw response body.
type TeamClient interface {
	PostChallenge(ctx context.Context, teamURL string, payload []byte) ([]byte, error)
}

// CoordinatorClient reports a finished run to the coordinator callback.
type CoordinatorClient interface {
	PostResult(ctx context.Context, callbackURL string, result requests.EvaluationResult) error
}
