package questionnaires

import (
	"context"
	"testing"

	"modifications-service/internal/app/contracts"
	"modifications-service/internal/app/models"
	"modifications-service/internal/pkg/constvars"
	"modifications-service/internal/pkg/dto/requests"
	"modifications-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockQuestionSetClient struct {
	mock.Mock
}

func (m *MockQuestionSetClient) FetchQuestionSet(ctx context.Context, sectionFilter string) (*contracts.SchemaDocument, error) {
	args := m.Called(ctx, sectionFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.SchemaDocument), args.Error(1)
}

func (m *MockQuestionSetClient) FetchPreviousSection(ctx context.Context, sectionID string) (*models.SectionRef, error) {
	args := m.Called(ctx, sectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SectionRef), args.Error(1)
}

func (m *MockQuestionSetClient) FetchNextSection(ctx context.Context, sectionID string) (*models.SectionRef, error) {
	args := m.Called(ctx, sectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SectionRef), args.Error(1)
}

func (m *MockQuestionSetClient) FetchDocumentMetadataSchema(ctx context.Context) (*contracts.SchemaDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.SchemaDocument), args.Error(1)
}

type MockAnswerStoreClient struct {
	mock.Mock
}

func (m *MockAnswerStoreClient) FetchAnswers(ctx context.Context, changeID, projectRecordID string) ([]models.Answer, error) {
	args := m.Called(ctx, changeID, projectRecordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Answer), args.Error(1)
}

func (m *MockAnswerStoreClient) SaveAnswers(ctx context.Context, request *contracts.SaveAnswersRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAnswerStoreClient) FetchDocumentAnswers(ctx context.Context, modificationID, projectRecordID string) (map[string][]models.Answer, error) {
	args := m.Called(ctx, modificationID, projectRecordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]models.Answer), args.Error(1)
}

type MockModificationRepository struct {
	mock.Mock
}

func (m *MockModificationRepository) CreateModification(ctx context.Context, modification *models.Modification) (*models.Modification, error) {
	args := m.Called(ctx, modification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Modification), args.Error(1)
}

func (m *MockModificationRepository) FindModificationByID(ctx context.Context, modificationID string) (*models.Modification, error) {
	args := m.Called(ctx, modificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Modification), args.Error(1)
}

func (m *MockModificationRepository) FindModificationsByProjectRecord(ctx context.Context, projectRecordID string) ([]models.Modification, error) {
	args := m.Called(ctx, projectRecordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Modification), args.Error(1)
}

func (m *MockModificationRepository) UpdateModification(ctx context.Context, modification *models.Modification) error {
	args := m.Called(ctx, modification)
	return args.Error(0)
}

func (m *MockModificationRepository) UpdateModificationStatus(ctx context.Context, modificationID string, status models.ModificationStatus, reasonOrDescription string) error {
	args := m.Called(ctx, modificationID, status, reasonOrDescription)
	return args.Error(0)
}

func usecaseSchemaDocument() *contracts.SchemaDocument {
	return &contracts.SchemaDocument{
		VersionID: "v1",
		Sections: []contracts.SchemaSection{
			{SectionID: "s1", CategoryID: "c1", Sequence: 1, Questions: []contracts.SchemaQuestion{
				{QuestionID: "q1", Sequence: 1, DataType: models.DataTypeText, Conformance: models.ConformanceMandatory},
				{QuestionID: "q2", Sequence: 2, DataType: models.DataTypeText, Conformance: models.ConformanceConditional,
					Rules: []models.ConditionalRule{{ParentQuestionID: "q1", ExpectedValues: []string{"trigger"}}}},
			}},
		},
	}
}

func testJourney() *models.JourneyContext {
	return &models.JourneyContext{
		ModificationID:  "1234567/1",
		ProjectRecordID: "1234567",
		CurrentCategory: "c1",
	}
}

func storedModification(changeStatus models.ChangeStatus) *models.Modification {
	return &models.Modification{
		ModificationID: "1234567/1",
		Status:         models.ModificationStatusInDraft,
		Changes: []models.ModificationChange{
			{ChangeID: "change-1", Status: changeStatus},
		},
	}
}

func TestGetChangeQuestionnaire(t *testing.T) {
	t.Run("assembles, trims and persists the recomputed status", func(t *testing.T) {
		questionSet := new(MockQuestionSetClient)
		answerStore := new(MockAnswerStoreClient)
		repo := new(MockModificationRepository)
		uc := NewQuestionnaireUsecase(questionSet, answerStore, repo)

		questionSet.On("FetchQuestionSet", mock.Anything, "").Return(usecaseSchemaDocument(), nil)
		answerStore.On("FetchAnswers", mock.Anything, "change-1", "1234567").
			Return([]models.Answer{{QuestionID: "q1", Text: "plain"}}, nil)
		repo.On("FindModificationByID", mock.Anything, "1234567/1").
			Return(storedModification(models.ChangeStatusUnfinished), nil)
		repo.On("UpdateModification", mock.Anything, mock.MatchedBy(func(m *models.Modification) bool {
			return m.FindChange("change-1").Status == models.ChangeStatusReadyForSubmission
		})).Return(nil)

		response, err := uc.GetChangeQuestionnaire(context.Background(), testJourney(), "change-1", "", constvars.ViewContextReview)

		assert.NoError(t, err)
		assert.Equal(t, models.ChangeStatusReadyForSubmission, response.Status)
		// the conditional follow-up is hidden: only q1 remains
		assert.Len(t, response.Questionnaire.Questions, 1)
		assert.Equal(t, "q1", response.SurfacingQuestion.QuestionID)
		assert.True(t, response.ShowSurfacing)
		repo.AssertExpectations(t)
	})

	t.Run("status already current is not rewritten", func(t *testing.T) {
		questionSet := new(MockQuestionSetClient)
		answerStore := new(MockAnswerStoreClient)
		repo := new(MockModificationRepository)
		uc := NewQuestionnaireUsecase(questionSet, answerStore, repo)

		questionSet.On("FetchQuestionSet", mock.Anything, "").Return(usecaseSchemaDocument(), nil)
		answerStore.On("FetchAnswers", mock.Anything, "change-1", "1234567").
			Return([]models.Answer{}, nil)
		repo.On("FindModificationByID", mock.Anything, "1234567/1").
			Return(storedModification(models.ChangeStatusUnfinished), nil)

		response, err := uc.GetChangeQuestionnaire(context.Background(), testJourney(), "change-1", "", constvars.ViewContextEdit)

		assert.NoError(t, err)
		assert.Equal(t, models.ChangeStatusUnfinished, response.Status)
		assert.False(t, response.ShowSurfacing)
		repo.AssertNotCalled(t, "UpdateModification", mock.Anything, mock.Anything)
	})

	t.Run("journey pointing at a vanished modification is not found", func(t *testing.T) {
		questionSet := new(MockQuestionSetClient)
		answerStore := new(MockAnswerStoreClient)
		repo := new(MockModificationRepository)
		uc := NewQuestionnaireUsecase(questionSet, answerStore, repo)

		questionSet.On("FetchQuestionSet", mock.Anything, "").Return(usecaseSchemaDocument(), nil)
		answerStore.On("FetchAnswers", mock.Anything, "change-1", "1234567").
			Return([]models.Answer{}, nil)
		repo.On("FindModificationByID", mock.Anything, "1234567/1").Return(nil, nil)

		_, err := uc.GetChangeQuestionnaire(context.Background(), testJourney(), "change-1", "", constvars.ViewContextEdit)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestSaveChangeAnswers(t *testing.T) {
	t.Run("saves then revalidates in full mode", func(t *testing.T) {
		questionSet := new(MockQuestionSetClient)
		answerStore := new(MockAnswerStoreClient)
		repo := new(MockModificationRepository)
		uc := NewQuestionnaireUsecase(questionSet, answerStore, repo)

		saved := []models.Answer{{QuestionID: "q1", Text: "trigger"}}

		answerStore.On("SaveAnswers", mock.Anything, mock.MatchedBy(func(r *contracts.SaveAnswersRequest) bool {
			return r.ChangeID == "change-1" && r.ProjectRecordID == "1234567"
		})).Return(nil)
		questionSet.On("FetchQuestionSet", mock.Anything, "").Return(usecaseSchemaDocument(), nil)
		answerStore.On("FetchAnswers", mock.Anything, "change-1", "1234567").Return(saved, nil)
		repo.On("FindModificationByID", mock.Anything, "1234567/1").
			Return(storedModification(models.ChangeStatusReadyForSubmission), nil)

		result, err := uc.SaveChangeAnswers(context.Background(), testJourney(), "change-1", &requests.SaveAnswers{Answers: saved})

		assert.NoError(t, err)
		// mandatory q1 answered, so the change stays ready
		assert.Equal(t, models.ChangeStatusReadyForSubmission, result.Status)
		// but full validation flags the now-visible conditional follow-up
		assert.Len(t, result.Errors, 1)
		assert.Equal(t, "q2", result.Errors[0].FieldPath)
	})

	t.Run("save failure propagates without revalidation", func(t *testing.T) {
		questionSet := new(MockQuestionSetClient)
		answerStore := new(MockAnswerStoreClient)
		repo := new(MockModificationRepository)
		uc := NewQuestionnaireUsecase(questionSet, answerStore, repo)

		answerStore.On("SaveAnswers", mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := uc.SaveChangeAnswers(context.Background(), testJourney(), "change-1", &requests.SaveAnswers{})

		assert.Error(t, err)
		questionSet.AssertNotCalled(t, "FetchQuestionSet", mock.Anything, mock.Anything)
	})
}
