package middleware

import (
	"context"
	"errors"
	"net/http"

	"playcourt/infras/jwt"
	"playcourt/infras/otel"
	"playcourt/permissions"
	"playcourt/shared/constant"
	"playcourt/shared/failure"
	"playcourt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth gates every route the permission table does not mark as public.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
}

// NewAuthMiddleware creates a new middleware instance
func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
	}
}

// Auth answers 401 when no bearer token is presented and 403 when the token
// fails verification. Unmatched paths fall through to the router.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		method := request.Method

		var path string
		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.Routes != nil {
			path = rctx.Routes.Find(chi.NewRouteContext(), method, request.URL.Path)
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     method,
		})

		if path == "" || m.permission.Public(path, method) {
			next.ServeHTTP(writer, request)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			scope.TraceError(failure.UnauthorizedAccess)
			response.WithError(writer, failure.UnauthorizedAccess)

			return
		}

		claims, err := m.jwtService.Verify(tokenString)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("rejected bearer token")

			rejected := error(failure.ForbiddenAccess)

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				rejected = failure.Forbidden("token has expired")
			case errors.Is(err, jwt.ErrInvalidClaim):
				rejected = failure.Forbidden("invalid token claims")
			}

			scope.TraceError(rejected)
			response.WithError(writer, rejected)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
