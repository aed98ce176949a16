package utils

import (
	"errors"
	"modifications-service/internal/app/models"
	"modifications-service/internal/pkg/constvars"
	"modifications-service/internal/pkg/exceptions"
	"net/http"
)

// JourneyContextFromRequest pulls the journey context stored by the session
// middleware. A request that reaches a journey-scoped handler without one is
// an unauthenticated request.
func JourneyContextFromRequest(r *http.Request) (*models.JourneyContext, error) {
	journey, ok := r.Context().Value(constvars.CONTEXT_JOURNEY_CONTEXT_KEY).(*models.JourneyContext)
	if !ok || journey == nil {
		return nil, exceptions.ErrTokenMissing(errors.New("journey context missing from request"))
	}
	return journey, nil
}

// JourneyIDFromRequest returns the journey identifier the session middleware
// resolved from the bearer token. It keys the journey context in redis.
func JourneyIDFromRequest(r *http.Request) (string, error) {
	journeyID, ok := r.Context().Value(constvars.CONTEXT_JOURNEY_ID_KEY).(string)
	if !ok || journeyID == "" {
		return "", exceptions.ErrTokenMissing(errors.New("journey id missing from request"))
	}
	return journeyID, nil
}

// RoleFromRequest returns the caller's role as resolved by the session
// middleware, defaulting to Applicant.
func RoleFromRequest(r *http.Request) string {
	role, ok := r.Context().Value(constvars.CONTEXT_USER_ROLE_KEY).(string)
	if !ok || role == "" {
		return constvars.RoleApplicant
	}
	return role
}
