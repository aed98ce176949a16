package questionnaires

import (
	"context"
	"fmt"
	"modifications-service/internal/app/contracts"
	"modifications-service/internal/app/models"
	"modifications-service/internal/pkg/dto/requests"
	"modifications-service/internal/pkg/dto/responses"
	"modifications-service/internal/pkg/exceptions"
)

type questionnaireUsecase struct {
	QuestionSetClient      contracts.QuestionSetClient
	AnswerStoreClient      contracts.AnswerStoreClient
	ModificationRepository contracts.ModificationRepository
}

func NewQuestionnaireUsecase(
	questionSetClient contracts.QuestionSetClient,
	answerStoreClient contracts.AnswerStoreClient,
	modificationRepository contracts.ModificationRepository,
) QuestionnaireUsecase {
	return &questionnaireUsecase{
		QuestionSetClient:      questionSetClient,
		AnswerStoreClient:      answerStoreClient,
		ModificationRepository: modificationRepository,
	}
}

func (uc *questionnaireUsecase) GetChangeQuestionnaire(ctx context.Context, journey *models.JourneyContext, changeID, sectionFilter, viewContext string) (*responses.ChangeQuestionnaire, error) {
	questionnaire, err := uc.assembleQuestionnaire(ctx, journey, changeID, sectionFilter)
	if err != nil {
		return nil, err
	}

	trimmed, surfacing, showSurfacing := TrimAndSurface(questionnaire, viewContext)
	status := EvaluateChangeStatus(trimmed)

	// Readiness is never sticky: persist the freshly computed status so the
	// overview screens agree with what the respondent just saw.
	if err := uc.persistChangeStatus(ctx, journey.ModificationID, changeID, status); err != nil {
		return nil, err
	}

	return &responses.ChangeQuestionnaire{
		ChangeID:          changeID,
		Status:            status,
		Questionnaire:     trimmed,
		Categories:        trimmed.Categories(),
		SurfacingQuestion: surfacing,
		ShowSurfacing:     showSurfacing,
	}, nil
}

func (uc *questionnaireUsecase) SaveChangeAnswers(ctx context.Context, journey *models.JourneyContext, changeID string, request *requests.SaveAnswers) (*responses.SaveAnswersResult, error) {
	err := uc.AnswerStoreClient.SaveAnswers(ctx, &contracts.SaveAnswersRequest{
		ChangeID:        changeID,
		ProjectRecordID: journey.ProjectRecordID,
		Answers:         request.Answers,
	})
	if err != nil {
		return nil, err
	}

	questionnaire, err := uc.assembleQuestionnaire(ctx, journey, changeID, "")
	if err != nil {
		return nil, err
	}

	trimmed, _, _ := TrimAndSurface(questionnaire, "")
	status := EvaluateChangeStatus(trimmed)
	errorSet := Validate(trimmed, models.ValidationModeFull)

	if err := uc.persistChangeStatus(ctx, journey.ModificationID, changeID, status); err != nil {
		return nil, err
	}

	return &responses.SaveAnswersResult{
		ChangeID: changeID,
		Status:   status,
		Errors:   errorSet,
	}, nil
}

// assembleQuestionnaire fetches the question set and the stored answers,
// then runs the single merge implementation. The schema is fetched fresh
// per request and only lives for this request.
func (uc *questionnaireUsecase) assembleQuestionnaire(ctx context.Context, journey *models.JourneyContext, changeID, sectionFilter string) (*models.Questionnaire, error) {
	document, err := uc.QuestionSetClient.FetchQuestionSet(ctx, sectionFilter)
	if err != nil {
		return nil, err
	}

	answers, err := uc.AnswerStoreClient.FetchAnswers(ctx, changeID, journey.ProjectRecordID)
	if err != nil {
		return nil, err
	}

	questionnaire := MergeAnswers(ImportQuestionSet(document, sectionFilter), answers)
	questionnaire.CurrentStage = journey.CurrentCategory
	return questionnaire, nil
}

func (uc *questionnaireUsecase) persistChangeStatus(ctx context.Context, modificationID, changeID string, status models.ChangeStatus) error {
	modification, err := uc.ModificationRepository.FindModificationByID(ctx, modificationID)
	if err != nil {
		return err
	}
	if modification == nil {
		return exceptions.ErrModificationNotFound(fmt.Errorf("modification %s not found", modificationID))
	}

	change := modification.FindChange(changeID)
	if change == nil || change.Status == status {
		return nil
	}
	change.Status = status

	return uc.ModificationRepository.UpdateModification(ctx, modification)
}
