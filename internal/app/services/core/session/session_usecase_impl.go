package session

import (
	"context"

	"modifications-service/internal/app/config"
	"modifications-service/internal/app/contracts"
	"modifications-service/internal/app/models"
	"modifications-service/internal/pkg/constvars"
	"modifications-service/internal/pkg/dto/requests"
	"modifications-service/internal/pkg/dto/responses"
	"modifications-service/internal/pkg/exceptions"
	"modifications-service/internal/pkg/utils"

	"github.com/google/uuid"
)

type sessionUsecase struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionUsecase(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) SessionUsecase {
	return &sessionUsecase{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

// StartJourney seeds a journey context in redis and issues the bearer token
// that resolves it on later requests. The context replaces any per-request
// session globals: every journey-scoped operation reads its modification
// and record identifiers from here.
func (uc *sessionUsecase) StartJourney(ctx context.Context, request *requests.StartJourney) (*responses.JourneySession, error) {
	recordID, _, err := utils.ParseProjectRecordReference(request.ProjectRecordID)
	if err != nil {
		return nil, exceptions.ErrMalformedState(err, request.ProjectRecordID)
	}

	role := request.Role
	if role == "" {
		role = constvars.RoleApplicant
	}

	journeyID := uuid.NewString()
	journey := &models.JourneyContext{
		ModificationID:  request.ModificationID,
		ChangeID:        request.ChangeID,
		ProjectRecordID: recordID,
	}

	if err := uc.RedisRepository.SaveJourneyContext(ctx, journeyID, journey); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJourneyJWT(journeyID, role, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpiryHours)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	return &responses.JourneySession{
		JourneyID: journeyID,
		Token:     token,
	}, nil
}
