package contracts

import (
	"context"
	"modifications-service/internal/app/models"
)

type SaveAnswersRequest struct {
	ChangeID        string          `json:"change_id"`
	ProjectRecordID string          `json:"project_record_id"`
	Answers         []models.Answer `json:"answers"`
}

type AnswerStoreClient interface {
	FetchAnswers(ctx context.Context, changeID, projectRecordID string) ([]models.Answer, error)
	SaveAnswers(ctx context.Context, request *SaveAnswersRequest) error
	FetchDocumentAnswers(ctx context.Context, modificationID, projectRecordID string) (map[string][]models.Answer, error)
}
