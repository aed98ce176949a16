package modifications

import (
	"context"
	"modifications-service/internal/app/models"
	"modifications-service/internal/pkg/dto/requests"
	"modifications-service/internal/pkg/dto/responses"
)

type ModificationUsecase interface {
	CreateModification(ctx context.Context, request *requests.CreateModification) (*models.Modification, error)
	AddChange(ctx context.Context, modificationID string, request *requests.CreateChange) (*models.Modification, error)
	GetModification(ctx context.Context, modificationID string) (*responses.ModificationDetail, error)
	ListModifications(ctx context.Context, projectRecordID string) ([]models.Modification, error)
	AttemptTransition(ctx context.Context, modificationID, role string, request *requests.Transition) (*responses.TransitionResult, error)
}
