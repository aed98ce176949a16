package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"modifications-service/internal/app/config"
	"modifications-service/internal/app/delivery/http/middlewares"
	"modifications-service/internal/app/models"
	"modifications-service/internal/app/services/core/modifications"
	"modifications-service/internal/app/services/core/questionnaires"
	"modifications-service/internal/pkg/constvars"
	"modifications-service/internal/pkg/dto/requests"
	"modifications-service/internal/pkg/dto/responses"
	"modifications-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type MockModificationUsecase struct {
	mock.Mock
}

func (m *MockModificationUsecase) CreateModification(ctx context.Context, request *requests.CreateModification) (*models.Modification, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Modification), args.Error(1)
}

func (m *MockModificationUsecase) AddChange(ctx context.Context, modificationID string, request *requests.CreateChange) (*models.Modification, error) {
	args := m.Called(ctx, modificationID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Modification), args.Error(1)
}

func (m *MockModificationUsecase) GetModification(ctx context.Context, modificationID string) (*responses.ModificationDetail, error) {
	args := m.Called(ctx, modificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ModificationDetail), args.Error(1)
}

func (m *MockModificationUsecase) ListModifications(ctx context.Context, projectRecordID string) ([]models.Modification, error) {
	args := m.Called(ctx, projectRecordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Modification), args.Error(1)
}

func (m *MockModificationUsecase) AttemptTransition(ctx context.Context, modificationID, role string, request *requests.Transition) (*responses.TransitionResult, error) {
	args := m.Called(ctx, modificationID, role, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.TransitionResult), args.Error(1)
}

type MockQuestionnaireUsecase struct {
	mock.Mock
}

func (m *MockQuestionnaireUsecase) GetChangeQuestionnaire(ctx context.Context, journey *models.JourneyContext, changeID, sectionFilter, viewContext string) (*responses.ChangeQuestionnaire, error) {
	args := m.Called(ctx, journey, changeID, sectionFilter, viewContext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ChangeQuestionnaire), args.Error(1)
}

func (m *MockQuestionnaireUsecase) SaveChangeAnswers(ctx context.Context, journey *models.JourneyContext, changeID string, request *requests.SaveAnswers) (*responses.SaveAnswersResult, error) {
	args := m.Called(ctx, journey, changeID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SaveAnswersResult), args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) SaveJourneyContext(ctx context.Context, journeyID string, journey *models.JourneyContext) error {
	args := m.Called(ctx, journeyID, journey)
	return args.Error(0)
}

func (m *MockRedisRepository) GetJourneyContext(ctx context.Context, journeyID string) (*models.JourneyContext, error) {
	args := m.Called(ctx, journeyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JourneyContext), args.Error(1)
}

func TestModificationRouter(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-superadmin-api-key-12345"
	hash, err := bcrypt.GenerateFromPassword([]byte(testAPIKey), bcrypt.MinCost)
	assert.NoError(t, err)

	jwtSecret := "test-jwt-secret"
	internalConfig := &config.InternalConfig{
		App: config.App{
			SuperadminAPIKeyBcryptHash: string(hash),
		},
		JWT: config.JWT{
			Secret:      jwtSecret,
			ExpiryHours: 1,
		},
	}

	mockModificationUsecase := new(MockModificationUsecase)
	mockQuestionnaireUsecase := new(MockQuestionnaireUsecase)
	mockRedisRepository := new(MockRedisRepository)

	modificationController := modifications.NewModificationController(logger, mockModificationUsecase, 5*time.Second)
	questionnaireController := questionnaires.NewQuestionnaireController(logger, mockQuestionnaireUsecase, 5*time.Second)

	middlewareInstance := &middlewares.Middlewares{
		Log:             logger,
		InternalConfig:  internalConfig,
		RedisRepository: mockRedisRepository,
	}

	router := chi.NewRouter()
	attachModificationRoutes(router, middlewareInstance, modificationController, questionnaireController)

	t.Run("CreateModification with Valid API Key", func(t *testing.T) {

		mockModificationUsecase.On("CreateModification", mock.Anything, mock.AnythingOfType("*requests.CreateModification")).
			Return(&models.Modification{ModificationID: "1234567/1"}, nil)

		requestBody := requests.CreateModification{
			ProjectRecordID: "1234567",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "should return 201 Created for valid API key")
		mockModificationUsecase.AssertExpectations(t)
	})

	t.Run("CreateModification with Invalid API Key", func(t *testing.T) {

		requestBody := requests.CreateModification{
			ProjectRecordID: "1234567",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAPIKey, "invalid-api-key")

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for invalid API key")
	})

	t.Run("Transition without Token", func(t *testing.T) {

		requestBody := requests.Transition{
			TargetStatus: string(models.ModificationStatusWithSponsor),
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/mod-1/transitions", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized without a journey token")
		mockModificationUsecase.AssertNotCalled(t, "AttemptTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Transition with Valid API Key", func(t *testing.T) {

		mockModificationUsecase.On("AttemptTransition", mock.Anything, "mod-1", constvars.RoleSuperadmin, mock.AnythingOfType("*requests.Transition")).
			Return(&responses.TransitionResult{Modification: &models.Modification{ModificationID: "1234567/1"}}, nil)

		requestBody := requests.Transition{
			TargetStatus: string(models.ModificationStatusWithSponsor),
			ReviewType:   "full",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/mod-1/transitions", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for API key authenticated transition")
		mockModificationUsecase.AssertExpectations(t)
	})

	t.Run("Questionnaire with Valid Journey Token", func(t *testing.T) {

		journey := &models.JourneyContext{
			ModificationID:  "1234567/1",
			ProjectRecordID: "1234567",
		}
		mockRedisRepository.On("GetJourneyContext", mock.Anything, "journey-1").Return(journey, nil)
		mockQuestionnaireUsecase.On("GetChangeQuestionnaire", mock.Anything, journey, "change-1", "", "").
			Return(&responses.ChangeQuestionnaire{ChangeID: "change-1", Status: models.ChangeStatusUnfinished}, nil)

		token, err := utils.GenerateJourneyJWT("journey-1", constvars.RoleApplicant, jwtSecret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/changes/change-1/questionnaire", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid journey token")
		mockQuestionnaireUsecase.AssertExpectations(t)
	})

	t.Run("Questionnaire with Expired Journey Context", func(t *testing.T) {

		mockRedisRepository.On("GetJourneyContext", mock.Anything, "journey-expired").Return(nil, nil)

		token, err := utils.GenerateJourneyJWT("journey-expired", constvars.RoleApplicant, jwtSecret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/changes/change-1/questionnaire", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized when the journey context is gone")
	})

	t.Run("Questionnaire with Tampered Token", func(t *testing.T) {

		token, err := utils.GenerateJourneyJWT("journey-1", constvars.RoleApplicant, "some-other-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/changes/change-1/questionnaire", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for a token signed with the wrong secret")
	})
}
