package navigation

import (
	"context"
	"modifications-service/internal/app/models"
)

type NavigationUsecase interface {
	ResolveNavigation(ctx context.Context, journeyID string, journey *models.JourneyContext, sectionID string) (*models.NavigationState, error)
}
