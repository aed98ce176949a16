package session

import (
	"context"
	"modifications-service/internal/pkg/constvars"
	"modifications-service/internal/pkg/dto/requests"
	"modifications-service/internal/pkg/exceptions"
	"modifications-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SessionController struct {
	Log            *zap.Logger
	SessionUsecase SessionUsecase
	RequestTimeout time.Duration
}

func NewSessionController(logger *zap.Logger, sessionUsecase SessionUsecase, requestTimeout time.Duration) *SessionController {
	return &SessionController{
		Log:            logger,
		SessionUsecase: sessionUsecase,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *SessionController) StartJourney(w http.ResponseWriter, r *http.Request) {
	request := new(requests.StartJourney)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	session, err := ctrl.SessionUsecase.StartJourney(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.StartJourneySuccessMessage, session)
}
