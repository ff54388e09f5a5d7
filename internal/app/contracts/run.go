package contracts

import (
	"context"
	"mailtime-service/internal/app/models"
)

type RunRepository interface {
	Save(ctx context.Context, run models.EvaluationRun) error
	FindByRunID(ctx context.Context, runID string) (*models.EvaluationRun, error)
}
