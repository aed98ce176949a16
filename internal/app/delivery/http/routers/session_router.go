package routers

import (
	"modifications-service/internal/app/delivery/http/middlewares"
	"modifications-service/internal/app/services/core/session"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, sessionController *session.SessionController) {
	router.Post("/", sessionController.StartJourney)
}
