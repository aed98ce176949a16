package middlewares

import (
	"context"
	"modifications-service/internal/pkg/constvars"
	"modifications-service/internal/pkg/exceptions"
	"modifications-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const ContextAPIKeyAuth constvars.ContextKey = "api_key_auth"

// APIKeyAuth grants superadmin access when the configured API key is
// presented. Only a bcrypt hash of the key is held in config. Requests
// without the header pass through untouched.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)

		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		err := bcrypt.CompareHashAndPassword([]byte(m.InternalConfig.App.SuperadminAPIKeyBcryptHash), []byte(apiKey))
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyMismatch(err))
			return
		}

		ctx := context.WithValue(r.Context(), ContextAPIKeyAuth, true)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ROLE_KEY, constvars.RoleSuperadmin)

		m.Log.Info("API key authentication successful",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
