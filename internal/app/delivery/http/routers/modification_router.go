package routers

import (
	"modifications-service/internal/app/delivery/http/middlewares"
	"modifications-service/internal/app/services/core/modifications"
	"modifications-service/internal/app/services/core/questionnaires"

	"github.com/go-chi/chi/v5"
)

func attachModificationRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	modificationController *modifications.ModificationController,
	questionnaireController *questionnaires.QuestionnaireController,
) {
	router.Use(middlewares.APIKeyAuth)

	router.Post("/", modificationController.CreateModification)
	router.Get("/", modificationController.ListModifications)
	router.Get("/{modification_id}", modificationController.GetModification)
	router.Post("/{modification_id}/changes", modificationController.AddChange)
	router.With(middlewares.Session).Post("/{modification_id}/transitions", modificationController.Transition)

	router.With(middlewares.Session).Get("/changes/{change_id}/questionnaire", questionnaireController.GetChangeQuestionnaire)
	router.With(middlewares.Session).Put("/changes/{change_id}/answers", questionnaireController.SaveChangeAnswers)
}
