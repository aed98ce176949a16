package redis

import (
	"context"
	"fmt"
	"time"

	"modifications-service/internal/app/contracts"
	"modifications-service/internal/app/models"
	"modifications-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const journeyKeyPrefix = "journey:"

type redisRepository struct {
	client     *redis.Client
	journeyTTL time.Duration
}

func NewRedisRepository(client *redis.Client, journeyTTL time.Duration) contracts.RedisRepository {
	return &redisRepository{
		client:     client,
		journeyTTL: journeyTTL,
	}
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGetNoData(err, key)
	}

	return data, nil
}

// SaveJourneyContext stores the journey context under its journey key with
// the configured TTL. Every save refreshes the TTL, so a journey stays
// alive while the respondent keeps working.
func (r *redisRepository) SaveJourneyContext(ctx context.Context, journeyID string, journey *models.JourneyContext) error {
	return r.Set(ctx, journeyKey(journeyID), journey, r.journeyTTL)
}

func (r *redisRepository) GetJourneyContext(ctx context.Context, journeyID string) (*models.JourneyContext, error) {
	data, err := r.Get(ctx, journeyKey(journeyID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	journey := new(models.JourneyContext)
	if err := json.Unmarshal([]byte(data), journey); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return journey, nil
}

func journeyKey(journeyID string) string {
	return fmt.Sprintf("%s%s", journeyKeyPrefix, journeyID)
}
