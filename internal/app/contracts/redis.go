package contracts

import (
	"context"
	"modifications-service/internal/app/models"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	SaveJourneyContext(ctx context.Context, journeyID string, journey *models.JourneyContext) error
	GetJourneyContext(ctx context.Context, journeyID string) (*models.JourneyContext, error)
}
