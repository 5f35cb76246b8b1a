package middleware

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

var tracer = otel.Tracer("auth")

// AuthMiddleware reads the requester identity off the bearer token.
// Signature verification happens at the API gateway in front of this
// service; here we only need the subject and the raw token, which is
// forwarded to the router service on export.
type AuthMiddleware struct{}

func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

func (s *AuthMiddleware) IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.IdentifyIdentity")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")

		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 {
				span.RecordError(fmt.Errorf("invalid authentication header"))
				goto skipCheckAuthorization
			}

			authType, token := split[0], split[1]
			if authType != "Bearer" {
				span.RecordError(fmt.Errorf("only Bearer is acceptable"))
				goto skipCheckAuthorization
			}

			subject, err := tokenSubject(token)
			if err != nil {
				span.RecordError(errors.Wrap(err, "AuthMiddleware.IdentifyIdentity: failed to read token subject"))
				goto skipCheckAuthorization
			}

			ctx = context.WithValue(ctx, domain.TokenCtxKey, token)
			ctx = context.WithValue(ctx, domain.RequesterIDCtxKey, subject)
			span.SetAttributes(attribute.String("RequesterId", subject))
		}

	skipCheckAuthorization:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func tokenSubject(token string) (string, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return "", fmt.Errorf("token is not a jwt")
	}

	payload, err := base64.RawURLEncoding.DecodeString(segments[1])
	if err != nil {
		return "", errors.Wrap(err, "failed to decode claims")
	}

	var claims struct {
		Sub string `json:"sub"`
		Oid string `json:"oid"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", errors.Wrap(err, "failed to parse claims")
	}

	if claims.Oid != "" {
		return claims.Oid, nil
	}
	if claims.Sub == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Sub, nil
}
