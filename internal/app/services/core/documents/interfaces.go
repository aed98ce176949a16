package documents

import (
	"context"
	"modifications-service/internal/app/models"
)

type DocumentUsecase interface {
	ListUploadedDocuments(ctx context.Context, modificationID, projectRecordID string) ([]models.DocumentRef, error)
	EvaluateDocumentCompleteness(ctx context.Context, modificationID, projectRecordID string) ([]models.DocumentCompleteness, error)
}
