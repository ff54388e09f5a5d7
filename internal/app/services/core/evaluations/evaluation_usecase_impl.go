package evaluations

import (
	"context"
	"fmt"
	"mailtime-service/internal/app/contracts"
	"mailtime-service/internal/app/models"
	"mailtime-service/internal/app/services/core/mailtime"
	"mailtime-service/internal/pkg/constvars"
	"mailtime-service/internal/pkg/dto/requests"
	"mailtime-service/internal/pkg/exceptions"
	"math/rand"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type EvaluationUsecase interface {
	Enqueue(ctx context.Context, evaluation requests.Evaluation) error
	Evaluate(ctx context.Context, evaluation requests.Evaluation) error
	FindRun(ctx context.Context, runID string) (*models.EvaluationRun, error)
	RecordResult(ctx context.Context, result requests.EvaluationResult)
}

type evaluationUsecase struct {
	Log               *zap.Logger
	NewRand           func() *rand.Rand
	Queue             contracts.EvaluationQueue
	Locker            contracts.LockerService
	RunRepository     contracts.RunRepository
	Artifacts         contracts.ArtifactStorage
	TeamClient        contracts.TeamClient
	CoordinatorClient contracts.CoordinatorClient
	LockTTL           time.Duration
}

func NewEvaluationUsecase(
	logger *zap.Logger,
	newRand func() *rand.Rand,
	queue contracts.EvaluationQueue,
	locker contracts.LockerService,
	runRepository contracts.RunRepository,
	artifacts contracts.ArtifactStorage,
	teamClient contracts.TeamClient,
	coordinatorClient contracts.CoordinatorClient,
	lockTTL time.Duration,
) EvaluationUsecase {
	return &evaluationUsecase{
		Log:               logger,
		NewRand:           newRand,
		Queue:             queue,
		Locker:            locker,
		RunRepository:     runRepository,
		Artifacts:         artifacts,
		TeamClient:        teamClient,
		CoordinatorClient: coordinatorClient,
		LockTTL:           lockTTL,
	}
}

func (uc *evaluationUsecase) Enqueue(ctx context.Context, evaluation requests.Evaluation) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("evaluationUsecase.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, evaluation.RunID),
		zap.String(constvars.LoggingTeamURLKey, evaluation.TeamURL),
	)
	return uc.Queue.Enqueue(ctx, evaluation)
}

// Evaluate runs all scored levels against a team's solver, archives the
// per-level transcripts, persists the run, and reports the total to the
// coordinator callback. A team URL can only be evaluated by one run at a
// time.
func (uc *evaluationUsecase) Evaluate(ctx context.Context, evaluation requests.Evaluation) error {
	uc.Log.Info("evaluationUsecase.Evaluate called",
		zap.String(constvars.LoggingRunIDKey, evaluation.RunID),
		zap.String(constvars.LoggingTeamURLKey, evaluation.TeamURL),
	)

	lockKey := fmt.Sprintf(constvars.RedisKeyEvaluationLockFormat, evaluation.TeamURL)
	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, uc.LockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		return exceptions.ErrEvaluationLocked()
	}
	defer func() {
		if err := uc.Locker.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Error("evaluationUsecase.Evaluate error releasing lock",
				zap.String(constvars.LoggingRunIDKey, evaluation.RunID),
				zap.Error(err),
			)
		}
	}()

	startedAt := time.Now().UTC()
	r := uc.NewRand()
	generator := mailtime.NewGenerator(r)
	checker := mailtime.NewChecker()

	var total models.ChallengeResult
	var levelResults []models.LevelResult
	for _, level := range mailtime.EvaluationLevels(r) {
		result := uc.evaluateLevel(ctx, evaluation, generator, checker, level)
		total = total.Plus(result)
		levelResults = append(levelResults, models.LevelResult{
			Level:   level.Name,
			Score:   result.Score,
			Message: result.Message,
		})
	}

	run := models.EvaluationRun{
		RunID:       evaluation.RunID,
		TeamURL:     evaluation.TeamURL,
		Score:       total.Score,
		Message:     total.Message,
		Levels:      levelResults,
		StartedAt:   startedAt,
		CompletedAt: time.Now().UTC(),
	}
	if err := uc.RunRepository.Save(ctx, run); err != nil {
		uc.Log.Error("evaluationUsecase.Evaluate error persisting run",
			zap.String(constvars.LoggingRunIDKey, evaluation.RunID),
			zap.Error(err),
		)
	}

	uc.Log.Info("evaluationUsecase.Evaluate finished",
		zap.String(constvars.LoggingRunIDKey, evaluation.RunID),
		zap.Int(constvars.LoggingScoreKey, total.Score),
	)

	return uc.CoordinatorClient.PostResult(ctx, evaluation.CallbackURL, requests.EvaluationResult{
		RunID:   evaluation.RunID,
		Score:   total.Score,
		Message: total.Message,
	})
}

// levelTranscript is the artifact archived per level.
type levelTranscript struct {
	Level    string          `json:"level"`
	Input    models.Input    `json:"input"`
	Response json.RawMessage `json:"response,omitempty"`
	Score    int             `json:"score"`
	Message  string          `json:"message,omitempty"`
}

// evaluateLevel never fails the run: a team that errors on one level
// simply scores zero for it and the evaluation moves on.
func (uc *evaluationUsecase) evaluateLevel(
	ctx context.Context,
	evaluation requests.Evaluation,
	generator *mailtime.Generator,
	checker mailtime.Checker,
	level mailtime.Level,
) models.ChallengeResult {
	input := generator.Generate(level)

	payload, err := json.Marshal(input)
	if err != nil {
		uc.Log.Error("evaluationUsecase.evaluateLevel error marshaling input",
			zap.String(constvars.LoggingRunIDKey, evaluation.RunID),
			zap.String(constvars.LoggingLevelKey, level.Name),
			zap.Error(err),
		)
		return models.ChallengeResult{Score: 0, Message: level.Name + ": internal error"}
	}

	result := models.ChallengeResult{Score: 0, Message: level.Name + ": no valid response"}
	raw, err := uc.TeamClient.PostChallenge(ctx, evaluation.TeamURL, payload)
	if err != nil {
		uc.Log.Warn("evaluationUsecase.evaluateLevel team call failed",
			zap.String(constvars.LoggingRunIDKey, evaluation.RunID),
			zap.String(constvars.LoggingLevelKey, level.Name),
			zap.Error(err),
		)
	} else if submission, err := checker.Convert(raw); err != nil {
		uc.Log.Warn("evaluationUsecase.evaluateLevel malformed team response",
			zap.String(constvars.LoggingRunIDKey, evaluation.RunID),
			zap.String(constvars.LoggingLevelKey, level.Name),
			zap.Error(err),
		)
	} else if checked, err := checker.Check(input, submission); err != nil {
		uc.Log.Error("evaluationUsecase.evaluateLevel error checking submission",
			zap.String(constvars.LoggingRunIDKey, evaluation.RunID),
			zap.String(constvars.LoggingLevelKey, level.Name),
			zap.Error(err),
		)
	} else {
		result = checked
	}

	uc.archiveTranscript(ctx, evaluation.RunID, level.Name, levelTranscript{
		Level:    level.Name,
		Input:    input,
		Response: raw,
		Score:    result.Score,
		Message:  result.Message,
	})

	uc.Log.Info("evaluationUsecase.evaluateLevel scored",
		zap.String(constvars.LoggingRunIDKey, evaluation.RunID),
		zap.String(constvars.LoggingLevelKey, level.Name),
		zap.Int(constvars.LoggingScoreKey, result.Score),
	)
	return result
}

func (uc *evaluationUsecase) archiveTranscript(ctx context.Context, runID, levelName string, transcript levelTranscript) {
	payload, err := json.Marshal(transcript)
	if err != nil {
		uc.Log.Error("evaluationUsecase.archiveTranscript error marshaling transcript",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.Error(err),
		)
		return
	}
	objectName := fmt.Sprintf(constvars.ArtifactObjectNameFormat, runID, levelName)
	if err := uc.Artifacts.UploadJSON(ctx, objectName, payload); err != nil {
		uc.Log.Error("evaluationUsecase.archiveTranscript error uploading artifact",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
	}
}

func (uc *evaluationUsecase) FindRun(ctx context.Context, runID string) (*models.EvaluationRun, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("evaluationUsecase.FindRun called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
	)

	run, err := uc.RunRepository.FindByRunID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, exceptions.ErrRunNotFound(fmt.Errorf("run %s not found", runID))
	}
	return run, nil
}

// RecordResult stores a result delivered to the local coordinator
// callback. Used when the service plays coordinator for itself; a run
// this instance evaluated is already persisted and is left untouched.
func (uc *evaluationUsecase) RecordResult(ctx context.Context, result requests.EvaluationResult) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("evaluationUsecase.RecordResult received",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, result.RunID),
		zap.Int(constvars.LoggingScoreKey, result.Score),
		zap.String(constvars.LoggingDataKey, result.Message),
	)

	existing, err := uc.RunRepository.FindByRunID(ctx, result.RunID)
	if err != nil {
		uc.Log.Error("evaluationUsecase.RecordResult error looking up run",
			zap.String(constvars.LoggingRunIDKey, result.RunID),
			zap.Error(err),
		)
		return
	}
	if existing != nil {
		return
	}

	run := models.EvaluationRun{
		RunID:       result.RunID,
		Score:       result.Score,
		Message:     result.Message,
		CompletedAt: time.Now().UTC(),
	}
	if err := uc.RunRepository.Save(ctx, run); err != nil {
		uc.Log.Error("evaluationUsecase.RecordResult error persisting result",
			zap.String(constvars.LoggingRunIDKey, result.RunID),
			zap.Error(err),
		)
	}
}
