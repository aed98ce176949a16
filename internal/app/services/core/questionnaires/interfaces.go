package questionnaires

import (
	"context"
	"modifications-service/internal/app/models"
	"modifications-service/internal/pkg/dto/requests"
	"modifications-service/internal/pkg/dto/responses"
)

type QuestionnaireUsecase interface {
	GetChangeQuestionnaire(ctx context.Context, journey *models.JourneyContext, changeID, sectionFilter, viewContext string) (*responses.ChangeQuestionnaire, error)
	SaveChangeAnswers(ctx context.Context, journey *models.JourneyContext, changeID string, request *requests.SaveAnswers) (*responses.SaveAnswersResult, error)
}
