package routers

import (
	"mailtime-service/internal/app/config"
	"mailtime-service/internal/app/delivery/http/middlewares"
	"mailtime-service/internal/app/services/core/evaluations"
	"mailtime-service/internal/app/services/core/mailtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	mailtimeController *mailtime.MailtimeController,
	evaluationController *evaluations.EvaluationController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)

	endpointPrefix := internalConfig.App.EndpointPrefix
	if endpointPrefix == "" {
		endpointPrefix = "/"
	}

	router.Route(endpointPrefix, func(r chi.Router) {
		attachMailtimeRoutes(r, mailtimeController)
		attachEvaluationRoutes(r, evaluationController)
	})
}
