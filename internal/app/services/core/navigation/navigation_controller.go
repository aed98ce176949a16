package navigation

import (
	"context"
	"modifications-service/internal/pkg/constvars"
	"modifications-service/internal/pkg/exceptions"
	"modifications-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NavigationController struct {
	Log               *zap.Logger
	NavigationUsecase NavigationUsecase
	RequestTimeout    time.Duration
}

func NewNavigationController(logger *zap.Logger, navigationUsecase NavigationUsecase, requestTimeout time.Duration) *NavigationController {
	return &NavigationController{
		Log:               logger,
		NavigationUsecase: navigationUsecase,
		RequestTimeout:    requestTimeout,
	}
}

func (ctrl *NavigationController) ResolveNavigation(w http.ResponseWriter, r *http.Request) {
	journey, err := utils.JourneyContextFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	journeyID, err := utils.JourneyIDFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	sectionID := chi.URLParam(r, constvars.URLParamSectionID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	state, err := ctrl.NavigationUsecase.ResolveNavigation(ctx, journeyID, journey, sectionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResolveNavigationSuccessMessage, state)
}
