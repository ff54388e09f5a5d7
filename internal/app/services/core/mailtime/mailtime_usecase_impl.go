package mailtime

import (
	"context"
	"mailtime-service/internal/app/models"
	"mailtime-service/internal/pkg/constvars"
	"mailtime-service/internal/pkg/dto/requests"
	"mailtime-service/internal/pkg/dto/responses"
	"mailtime-service/internal/pkg/exceptions"
	"math/rand"

	"go.uber.org/zap"
)

type MailtimeUsecase interface {
	Solve(ctx context.Context, request requests.SolverInput) (models.Output, error)
	Example(ctx context.Context) (responses.Example, error)
}

type mailtimeUsecase struct {
	Log     *zap.Logger
	NewRand func() *rand.Rand
}

func NewMailtimeUsecase(logger *zap.Logger, newRand func() *rand.Rand) MailtimeUsecase {
	return &mailtimeUsecase{
		Log:     logger,
		NewRand: newRand,
	}
}

func (uc *mailtimeUsecase) Solve(ctx context.Context, request requests.SolverInput) (models.Output, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("mailtimeUsecase.Solve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("emails", len(request.Emails)),
		zap.Int("users", len(request.Users)),
	)

	input, err := request.ToModel()
	if err != nil {
		return models.Output{}, exceptions.ErrCannotParseJSON(err)
	}

	output, err := NewSolver(BusinessHoursSegments).Solve(input)
	if err != nil {
		uc.Log.Error("mailtimeUsecase.Solve error solving input",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return models.Output{}, err
	}
	return output, nil
}

func (uc *mailtimeUsecase) Example(ctx context.Context) (responses.Example, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("mailtimeUsecase.Example called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	input := NewGenerator(uc.NewRand()).Generate(LevelExample)
	output, err := NewSolver(BusinessHoursSegments).Solve(input)
	if err != nil {
		return responses.Example{}, err
	}
	return responses.Example{Input: input, Output: output}, nil
}
