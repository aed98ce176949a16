package modifications

import (
	"context"
	"errors"
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

type ModificationController struct {
	Log                 *zap.Logger
	ModificationUsecase ModificationUsecase
	RequestTimeout      time.Duration
}

func NewModificationController(logger *zap.Logger, modificationUsecase ModificationUsecase, requestTimeout time.Duration) *ModificationController {
	return &ModificationController{
		Log:                 logger,
		ModificationUsecase: modificationUsecase,
		RequestTimeout:      requestTimeout,
	}
}

func (ctrl *ModificationController) CreateModification(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateModification)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateModificationRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	modification, err := ctrl.ModificationUsecase.CreateModification(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateModificationSuccessMessage, modification)
}

func (ctrl *ModificationController) AddChange(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateChange)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateChangeRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	modificationID := chi.URLParam(r, constvars.URLParamModificationID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	modification, err := ctrl.ModificationUsecase.AddChange(ctx, modificationID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateChangeSuccessMessage, modification)
}

func (ctrl *ModificationController) GetModification(w http.ResponseWriter, r *http.Request) {
	modificationID := chi.URLParam(r, constvars.URLParamModificationID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	detail, err := ctrl.ModificationUsecase.GetModification(ctx, modificationID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindModificationSuccessMessage, detail)
}

func (ctrl *ModificationController) ListModifications(w http.ResponseWriter, r *http.Request) {
	projectRecordID := r.URL.Query().Get(constvars.URLQueryParamProjectRecord)
	if projectRecordID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(errors.New("missing project record query parameter"), constvars.URLQueryParamProjectRecord))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	modifications, err := ctrl.ModificationUsecase.ListModifications(ctx, projectRecordID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindModificationSuccessMessage, modifications)
}

func (ctrl *ModificationController) Transition(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Transition)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeTransitionRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	modificationID := chi.URLParam(r, constvars.URLParamModificationID)
	role := utils.RoleFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.ModificationUsecase.AttemptTransition(ctx, modificationID, role, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TransitionSuccessMessage, result)
}
