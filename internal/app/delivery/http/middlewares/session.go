package middlewares

import (
	"context"
	"errors"
	"modifications-service/internal/pkg/constvars"
	"modifications-service/internal/pkg/exceptions"
	"modifications-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

const (
	journeyIDClaim = "journey_id"
	roleClaim      = "role"
)

// Session resolves the journey context for journey-scoped routes. The
// bearer token carries the journey identifier and role; the context itself
// lives in redis so every instance of the service sees the same journey
// state.
func (m *Middlewares) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if apiKeyAuth, ok := r.Context().Value(ContextAPIKeyAuth).(bool); ok && apiKeyAuth {
			next.ServeHTTP(w, r)
			return
		}

		authorization := r.Header.Get(constvars.HeaderAuthorization)
		if authorization == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New("missing authorization header")))
			return
		}

		tokenString := strings.TrimPrefix(authorization, "Bearer ")
		if tokenString == authorization {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(errors.New("authorization header is not a bearer token")))
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(m.InternalConfig.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		journeyID, _ := claims[journeyIDClaim].(string)
		if journeyID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(errors.New("token carries no journey id")))
			return
		}

		journey, err := m.RedisRepository.GetJourneyContext(r.Context(), journeyID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if journey == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(errors.New("journey context expired")))
			return
		}

		role, _ := claims[roleClaim].(string)
		if role == "" {
			role = constvars.RoleApplicant
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_JOURNEY_ID_KEY, journeyID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_JOURNEY_CONTEXT_KEY, journey)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ROLE_KEY, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
