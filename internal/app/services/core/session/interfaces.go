package session

import (
	"context"
	"modifications-service/internal/pkg/dto/requests"
	"modifications-service/internal/pkg/dto/responses"
)

type SessionUsecase interface {
	StartJourney(ctx context.Context, request *requests.StartJourney) (*responses.JourneySession, error)
}
