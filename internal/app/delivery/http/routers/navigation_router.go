package routers

import (
	"modifications-service/internal/app/delivery/http/middlewares"
	"modifications-service/internal/app/services/core/navigation"

	"github.com/go-chi/chi/v5"
)

func attachNavigationRoutes(router chi.Router, middlewares *middlewares.Middlewares, navigationController *navigation.NavigationController) {
	router.With(middlewares.Session).Get("/{section_id}", navigationController.ResolveNavigation)
}
