package contracts

import (
	"context"
	"modifications-service/internal/app/models"
)

type ModificationRepository interface {
	CreateModification(ctx context.Context, modification *models.Modification) (*models.Modification, error)
	FindModificationByID(ctx context.Context, modificationID string) (*models.Modification, error)
	FindModificationsByProjectRecord(ctx context.Context, projectRecordID string) ([]models.Modification, error)
	UpdateModification(ctx context.Context, modification *models.Modification) error
	UpdateModificationStatus(ctx context.Context, modificationID string, status models.ModificationStatus, reasonOrDescription string) error
}
