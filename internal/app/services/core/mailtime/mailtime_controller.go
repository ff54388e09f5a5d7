package mailtime

import (
	"context"
	"mailtime-service/internal/pkg/constvars"
	"mailtime-service/internal/pkg/dto/requests"
	"mailtime-service/internal/pkg/exceptions"
	"mailtime-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MailtimeController struct {
	Log             *zap.Logger
	MailtimeUsecase MailtimeUsecase
}

func NewMailtimeController(logger *zap.Logger, mailtimeUsecase MailtimeUsecase) *MailtimeController {
	return &MailtimeController{
		Log:             logger,
		MailtimeUsecase: mailtimeUsecase,
	}
}

// Solve answers a full input with the business-hours averages; it is the
// reference implementation candidates are scored against.
func (ctrl *MailtimeController) Solve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var request requests.SolverInput
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	output, err := ctrl.MailtimeUsecase.Solve(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, output)
}

// Example returns a small generated input together with its expected
// output so candidates can verify their solver locally.
func (ctrl *MailtimeController) Example(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	example, err := ctrl.MailtimeUsecase.Example(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, example)
}
