package modifications

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

type MockDocumentUsecase struct {
	mock.Mock
}

func (m *MockDocumentUsecase) ListUploadedDocuments(ctx context.Context, modificationID, projectRecordID string) ([]models.DocumentRef, error) {
	args := m.Called(ctx, modificationID, projectRecordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DocumentRef), args.Error(1)
}

func (m *MockDocumentUsecase) EvaluateDocumentCompleteness(ctx context.Context, modificationID, projectRecordID string) ([]models.DocumentCompleteness, error) {
	args := m.Called(ctx, modificationID, projectRecordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DocumentCompleteness), args.Error(1)
}

type MockStatusEventPublisher struct {
	mock.Mock
}

func (m *MockStatusEventPublisher) PublishStatusEvent(ctx context.Context, event *contracts.StatusEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newTestUsecase() (ModificationUsecase, *MockModificationRepository, *MockQuestionSetClient, *MockAnswerStoreClient, *MockDocumentUsecase, *MockStatusEventPublisher) {
	repo := new(MockModificationRepository)
	questionSet := new(MockQuestionSetClient)
	answerStore := new(MockAnswerStoreClient)
	docs := new(MockDocumentUsecase)
	publisher := new(MockStatusEventPublisher)
	uc := NewModificationUsecase(repo, questionSet, answerStore, docs, publisher)
	return uc, repo, questionSet, answerStore, docs, publisher
}

// submissionSchemaDocument has one mandatory text question so a change is
// ready iff its answer is present.
func submissionSchemaDocument() *contracts.SchemaDocument {
	return &contracts.SchemaDocument{
		VersionID: "v1",
		Sections: []contracts.SchemaSection{
			{SectionID: "s1", CategoryID: "c1", Sequence: 1, Questions: []contracts.SchemaQuestion{
				{QuestionID: "q1", Sequence: 1, DataType: models.DataTypeText, Conformance: models.ConformanceMandatory},
			}},
		},
	}
}

func TestCreateModification(t *testing.T) {
	t.Run("first modification gets suffix 1", func(t *testing.T) {
		uc, repo, _, _, _, _ := newTestUsecase()

		repo.On("FindModificationsByProjectRecord", mock.Anything, "1234567").Return([]models.Modification{}, nil)
		repo.On("CreateModification", mock.Anything, mock.AnythingOfType("*models.Modification")).
			Return(&models.Modification{ModificationID: "1234567/1"}, nil)

		modification, err := uc.CreateModification(context.Background(), &requests.CreateModification{ProjectRecordID: "1234567"})

		assert.NoError(t, err)
		assert.Equal(t, "1234567/1", modification.ModificationID)
		repo.AssertExpectations(t)
	})

	t.Run("suffix continues past the highest issued", func(t *testing.T) {
		uc, repo, _, _, _, _ := newTestUsecase()

		repo.On("FindModificationsByProjectRecord", mock.Anything, "1234567").Return([]models.Modification{
			{ModificationID: "1234567/1"},
			{ModificationID: "1234567/3"},
		}, nil)
		repo.On("CreateModification", mock.Anything, mock.MatchedBy(func(m *models.Modification) bool {
			return m.ModificationID == "1234567/4" && m.Status == models.ModificationStatusInDraft
		})).Return(&models.Modification{ModificationID: "1234567/4"}, nil)

		_, err := uc.CreateModification(context.Background(), &requests.CreateModification{ProjectRecordID: "1234567"})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("malformed project record is a hard failure", func(t *testing.T) {
		uc, _, _, _, _, _ := newTestUsecase()

		_, err := uc.CreateModification(context.Background(), &requests.CreateModification{ProjectRecordID: "not-a-record"})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}

func TestAddChange(t *testing.T) {
	t.Run("appends an unfinished change in draft", func(t *testing.T) {
		uc, repo, _, _, _, _ := newTestUsecase()

		repo.On("FindModificationByID", mock.Anything, "1234567/1").Return(&models.Modification{
			ModificationID: "1234567/1",
			Status:         models.ModificationStatusInDraft,
		}, nil)
		repo.On("UpdateModification", mock.Anything, mock.AnythingOfType("*models.Modification")).Return(nil)

		modification, err := uc.AddChange(context.Background(), "1234567/1", &requests.CreateChange{
			AreaOfChangeID:         "area-1",
			SpecificAreaOfChangeID: "specific-2",
		})

		assert.NoError(t, err)
		assert.Len(t, modification.Changes, 1)
		assert.NotEmpty(t, modification.Changes[0].ChangeID)
		assert.Equal(t, models.ChangeStatusUnfinished, modification.Changes[0].Status)
	})

	t.Run("rejected outside draft", func(t *testing.T) {
		uc, repo, _, _, _, _ := newTestUsecase()

		repo.On("FindModificationByID", mock.Anything, "1234567/1").Return(&models.Modification{
			ModificationID: "1234567/1",
			Status:         models.ModificationStatusWithSponsor,
		}, nil)

		_, err := uc.AddChange(context.Background(), "1234567/1", &requests.CreateChange{
			AreaOfChangeID:         "area-1",
			SpecificAreaOfChangeID: "specific-2",
		})

		assertForbidden(t, err)
	})

	t.Run("unknown modification yields not found", func(t *testing.T) {
		uc, repo, _, _, _, _ := newTestUsecase()

		repo.On("FindModificationByID", mock.Anything, "1234567/9").Return(nil, nil)

		_, err := uc.AddChange(context.Background(), "1234567/9", &requests.CreateChange{
			AreaOfChangeID:         "area-1",
			SpecificAreaOfChangeID: "specific-2",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestAttemptTransition_Submission(t *testing.T) {
	aggregate := func() *models.Modification {
		return &models.Modification{
			ModificationID:  "1234567/1",
			ProjectRecordID: "1234567",
			Status:          models.ModificationStatusInDraft,
			Changes: []models.ModificationChange{
				{ChangeID: "change-a", Status: models.ChangeStatusUnfinished},
				{ChangeID: "change-b", Status: models.ChangeStatusUnfinished},
			},
		}
	}

	t.Run("succeeds and publishes when every change and document is ready", func(t *testing.T) {
		uc, repo, questionSet, answerStore, docs, publisher := newTestUsecase()

		repo.On("FindModificationByID", mock.Anything, "1234567/1").Return(aggregate(), nil)
		questionSet.On("FetchQuestionSet", mock.Anything, "").Return(submissionSchemaDocument(), nil)
		answerStore.On("FetchAnswers", mock.Anything, "change-a", "1234567").
			Return([]models.Answer{{QuestionID: "q1", Text: "done"}}, nil)
		answerStore.On("FetchAnswers", mock.Anything, "change-b", "1234567").
			Return([]models.Answer{{QuestionID: "q1", Text: "also done"}}, nil)
		docs.On("EvaluateDocumentCompleteness", mock.Anything, "1234567/1", "1234567").
			Return([]models.DocumentCompleteness{{FileName: "protocol.pdf", Complete: true}}, nil)
		repo.On("UpdateModification", mock.Anything, mock.MatchedBy(func(m *models.Modification) bool {
			return m.Status == models.ModificationStatusWithSponsor
		})).Return(nil)
		publisher.On("PublishStatusEvent", mock.Anything, mock.MatchedBy(func(event *contracts.StatusEvent) bool {
			return event.FromStatus == models.ModificationStatusInDraft &&
				event.ToStatus == models.ModificationStatusWithSponsor
		})).Return(nil)

		result, err := uc.AttemptTransition(context.Background(), "1234567/1", constvars.RoleApplicant, &requests.Transition{
			TargetStatus: string(models.ModificationStatusWithSponsor),
		})

		assert.NoError(t, err)
		assert.Equal(t, models.ModificationStatusWithSponsor, result.Modification.Status)
		publisher.AssertExpectations(t)
	})

	t.Run("forbidden while one change is unfinished, recomputed statuses persisted", func(t *testing.T) {
		uc, repo, questionSet, answerStore, docs, publisher := newTestUsecase()

		repo.On("FindModificationByID", mock.Anything, "1234567/1").Return(aggregate(), nil)
		questionSet.On("FetchQuestionSet", mock.Anything, "").Return(submissionSchemaDocument(), nil)
		answerStore.On("FetchAnswers", mock.Anything, "change-a", "1234567").
			Return([]models.Answer{{QuestionID: "q1", Text: "done"}}, nil)
		answerStore.On("FetchAnswers", mock.Anything, "change-b", "1234567").
			Return([]models.Answer{}, nil)
		docs.On("EvaluateDocumentCompleteness", mock.Anything, "1234567/1", "1234567").
			Return([]models.DocumentCompleteness{}, nil)
		repo.On("UpdateModification", mock.Anything, mock.MatchedBy(func(m *models.Modification) bool {
			return m.Status == models.ModificationStatusInDraft &&
				m.FindChange("change-a").Status == models.ChangeStatusReadyForSubmission &&
				m.FindChange("change-b").Status == models.ChangeStatusUnfinished
		})).Return(nil)

		_, err := uc.AttemptTransition(context.Background(), "1234567/1", constvars.RoleApplicant, &requests.Transition{
			TargetStatus: string(models.ModificationStatusWithSponsor),
		})

		assertForbidden(t, err)
		repo.AssertExpectations(t)
		publisher.AssertNotCalled(t, "PublishStatusEvent", mock.Anything, mock.Anything)
	})

	t.Run("forbidden while a document is incomplete", func(t *testing.T) {
		uc, repo, questionSet, answerStore, docs, _ := newTestUsecase()

		repo.On("FindModificationByID", mock.Anything, "1234567/1").Return(aggregate(), nil)
		questionSet.On("FetchQuestionSet", mock.Anything, "").Return(submissionSchemaDocument(), nil)
		answerStore.On("FetchAnswers", mock.Anything, mock.Anything, "1234567").
			Return([]models.Answer{{QuestionID: "q1", Text: "done"}}, nil)
		docs.On("EvaluateDocumentCompleteness", mock.Anything, "1234567/1", "1234567").
			Return([]models.DocumentCompleteness{
				{FileName: "protocol.pdf", Complete: true},
				{FileName: "summary.docx", Complete: false},
			}, nil)
		repo.On("UpdateModification", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.AttemptTransition(context.Background(), "1234567/1", constvars.RoleApplicant, &requests.Transition{
			TargetStatus: string(models.ModificationStatusWithSponsor),
		})

		assertForbidden(t, err)
	})
}

func TestAttemptTransition_Review(t *testing.T) {
	t.Run("sponsor decision routes by review type without readiness lookups", func(t *testing.T) {
		uc, repo, questionSet, _, _, publisher := newTestUsecase()

		repo.On("FindModificationByID", mock.Anything, "1234567/1").Return(&models.Modification{
			ModificationID:  "1234567/1",
			ProjectRecordID: "1234567",
			Status:          models.ModificationStatusWithSponsor,
		}, nil)
		repo.On("UpdateModification", mock.Anything, mock.Anything).Return(nil)
		publisher.On("PublishStatusEvent", mock.Anything, mock.Anything).Return(nil)

		result, err := uc.AttemptTransition(context.Background(), "1234567/1", constvars.RoleSponsor, &requests.Transition{
			TargetStatus: string(models.ModificationStatusApproved),
			ReviewType:   constvars.ReviewTypeNoneRequired,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.ModificationStatusApproved, result.Modification.Status)
		questionSet.AssertNotCalled(t, "FetchQuestionSet", mock.Anything, mock.Anything)
	})

	t.Run("forbidden sponsor routing writes nothing", func(t *testing.T) {
		uc, repo, _, _, _, publisher := newTestUsecase()

		repo.On("FindModificationByID", mock.Anything, "1234567/1").Return(&models.Modification{
			ModificationID:  "1234567/1",
			ProjectRecordID: "1234567",
			Status:          models.ModificationStatusWithSponsor,
		}, nil)

		_, err := uc.AttemptTransition(context.Background(), "1234567/1", constvars.RoleSponsor, &requests.Transition{
			TargetStatus: string(models.ModificationStatusApproved),
			ReviewType:   "full",
		})

		assertForbidden(t, err)
		repo.AssertNotCalled(t, "UpdateModification", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "UpdateModificationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "PublishStatusEvent", mock.Anything, mock.Anything)
	})

	t.Run("review body rejection persists only status and reason", func(t *testing.T) {
		uc, repo, _, _, _, publisher := newTestUsecase()

		repo.On("FindModificationByID", mock.Anything, "1234567/1").Return(&models.Modification{
			ModificationID:  "1234567/1",
			ProjectRecordID: "1234567",
			Status:          models.ModificationStatusWithReviewBody,
		}, nil)
		repo.On("UpdateModificationStatus", mock.Anything, "1234567/1",
			models.ModificationStatusNotApproved, "missing consent forms").Return(nil)
		publisher.On("PublishStatusEvent", mock.Anything, mock.MatchedBy(func(event *contracts.StatusEvent) bool {
			return event.ToStatus == models.ModificationStatusNotApproved
		})).Return(nil)

		result, err := uc.AttemptTransition(context.Background(), "1234567/1", constvars.RoleReviewBody, &requests.Transition{
			TargetStatus:  string(models.ModificationStatusNotApproved),
			Justification: "missing consent forms",
		})

		assert.NoError(t, err)
		assert.Equal(t, "missing consent forms", result.Modification.Reason)
		repo.AssertNotCalled(t, "UpdateModification", mock.Anything, mock.Anything)
	})
}
