package routers

import (
	"mailtime-service/internal/app/services/core/mailtime"
	"mailtime-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMailtimeRoutes(router chi.Router, mailtimeController *mailtime.MailtimeController) {
	router.Post("/"+constvars.ResourceMailtime, mailtimeController.Solve)
	router.Get("/"+constvars.ResourceExample, mailtimeController.Example)
}
