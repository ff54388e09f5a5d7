package evaluations

import (
	"context"
	"mailtime-service/internal/pkg/constvars"
	"mailtime-service/internal/pkg/dto/requests"
	"mailtime-service/internal/pkg/exceptions"
	"mailtime-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type EvaluationController struct {
	Log               *zap.Logger
	EvaluationUsecase EvaluationUsecase
}

func NewEvaluationController(logger *zap.Logger, evaluationUsecase EvaluationUsecase) *EvaluationController {
	return &EvaluationController{
		Log:               logger,
		EvaluationUsecase: evaluationUsecase,
	}
}

// Evaluate accepts an evaluation request and queues it. The run itself
// happens asynchronously; the caller gets its result on the callback URL.
func (ctrl *EvaluationController) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var request requests.Evaluation
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := ctrl.EvaluationUsecase.Enqueue(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.EvaluationAcceptedSuccess, requests.EvaluationResult{RunID: request.RunID})
}

// Coordinator receives run results posted back to this service.
func (ctrl *EvaluationController) Coordinator(w http.ResponseWriter, r *http.Request) {
	var result requests.EvaluationResult
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(result); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.EvaluationUsecase.RecordResult(r.Context(), result)
	utils.BuildRawResponse(w, constvars.StatusAccepted, nil)
}

// FindRun returns the persisted record of a finished evaluation.
func (ctrl *EvaluationController) FindRun(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	runID := chi.URLParam(r, constvars.URLParamRunID)
	run, err := ctrl.EvaluationUsecase.FindRun(ctx, runID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRunSuccess, run)
}
