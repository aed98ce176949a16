package routers

import (
	"fmt"
	"modifications-service/internal/app/config"
	"modifications-service/internal/app/delivery/http/middlewares"
	"modifications-service/internal/app/services/core/modifications"
	"modifications-service/internal/app/services/core/navigation"
	"modifications-service/internal/app/services/core/questionnaires"
	"modifications-service/internal/app/services/core/session"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	sessionController *session.SessionController,
	modificationController *modifications.ModificationController,
	questionnaireController *questionnaires.QuestionnaireController,
	navigationController *navigation.NavigationController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(internalConfig.App, middlewares.AccessLog))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/journeys", func(r chi.Router) {
				attachSessionRoutes(r, middlewares, sessionController)
			})

			r.Route("/modifications", func(r chi.Router) {
				attachModificationRoutes(r, middlewares, modificationController, questionnaireController)
			})

			r.Route("/navigation", func(r chi.Router) {
				attachNavigationRoutes(r, middlewares, navigationController)
			})
		})
	})
}
