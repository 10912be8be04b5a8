package middlewares

import (
	"patientdesk-service/internal/app/config"
	"patientdesk-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	InternalConfig  *config.InternalConfig
	ResourceLimiter *ratelimiter.ResourceLimiter
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, resourceLimiter *ratelimiter.ResourceLimiter) *Middlewares {
	return &Middlewares{
		Log:             logger,
		InternalConfig:  internalConfig,
		ResourceLimiter: resourceLimiter,
	}
}
