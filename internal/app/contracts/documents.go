package contracts

import (
	"context"
	"modifications-service/internal/app/models"
)

type DocumentStorage interface {
	FetchUploadedDocuments(ctx context.Context, modificationID, projectRecordID string) ([]models.DocumentRef, error)
}
