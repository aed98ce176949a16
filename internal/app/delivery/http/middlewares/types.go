package middlewares

import (
	"modifications-service/internal/app/config"
	"modifications-service/internal/app/contracts"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	AccessLog       *logrus.Logger
	InternalConfig  *config.InternalConfig
	RedisRepository contracts.RedisRepository
}
