package questionnaires

import (
	"context"
	"modifications-service/internal/pkg/constvars"
	"modifications-service/internal/pkg/dto/requests"
	"modifications-service/internal/pkg/exceptions"
	"modifications-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type QuestionnaireController struct {
	Log                  *zap.Logger
	QuestionnaireUsecase QuestionnaireUsecase
	RequestTimeout       time.Duration
}

func NewQuestionnaireController(logger *zap.Logger, questionnaireUsecase QuestionnaireUsecase, requestTimeout time.Duration) *QuestionnaireController {
	return &QuestionnaireController{
		Log:                  logger,
		QuestionnaireUsecase: questionnaireUsecase,
		RequestTimeout:       requestTimeout,
	}
}

func (ctrl *QuestionnaireController) GetChangeQuestionnaire(w http.ResponseWriter, r *http.Request) {
	journey, err := utils.JourneyContextFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	changeID := chi.URLParam(r, constvars.URLParamChangeID)
	sectionFilter := r.URL.Query().Get(constvars.URLQueryParamSection)
	viewContext := r.URL.Query().Get(constvars.URLQueryParamViewContext)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.QuestionnaireUsecase.GetChangeQuestionnaire(ctx, journey, changeID, sectionFilter, viewContext)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindQuestionnaireSuccessMessage, response)
}

func (ctrl *QuestionnaireController) SaveChangeAnswers(w http.ResponseWriter, r *http.Request) {
	journey, err := utils.JourneyContextFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.SaveAnswers)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSaveAnswersRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	changeID := chi.URLParam(r, constvars.URLParamChangeID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.QuestionnaireUsecase.SaveChangeAnswers(ctx, journey, changeID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveAnswersSuccessMessage, response)
}
