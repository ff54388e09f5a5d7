package evaluations

import (
	"context"
	"mailtime-service/internal/app/contracts"
	"mailtime-service/internal/app/models"
	"sync"
)

// RunInMemoryRepository keeps runs in a map. Used in tests and when no
// MongoDB is configured.
type RunInMemoryRepository struct {
	mu   sync.RWMutex
	runs map[string]models.EvaluationRun
}

func NewRunInMemoryRepository() contracts.RunRepository {
	return &RunInMemoryRepository{
		runs: make(map[string]models.EvaluationRun),
	}
}

func (repo *RunInMemoryRepository) Save(_ context.Context, run models.EvaluationRun) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.runs[run.RunID] = run
	return nil
}

func (repo *RunInMemoryRepository) FindByRunID(_ context.Context, runID string) (*models.EvaluationRun, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	run, ok := repo.runs[runID]
	if !ok {
		return nil, nil
	}
	return &run, nil
}
