package routers

import (
	"mailtime-service/internal/app/services/core/evaluations"
	"mailtime-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachEvaluationRoutes(router chi.Router, evaluationController *evaluations.EvaluationController) {
	router.Post("/"+constvars.ResourceEvaluate, evaluationController.Evaluate)
	router.Post("/"+constvars.ResourceCoordinator, evaluationController.Coordinator)
	router.Get("/"+constvars.ResourceRuns+"/{"+constvars.URLParamRunID+"}", evaluationController.FindRun)
}
