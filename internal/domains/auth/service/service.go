package service

import (
	"context"
	"fmt"

	"playcourt/infras/jwt"
	"playcourt/infras/otel"
	"playcourt/internal/domains/auth/model/dto"
	"playcourt/shared/constant"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	IssueToken(ctx context.Context, req dto.IssueTokenRequest) (dto.TokenResponse, error)
}

type serviceImpl struct {
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		otel:       otel,
		jwtService: jwt,
	}
}

// IssueToken signs a token for the claimed email. The directory is not
// consulted; registration happens separately through POST /users.
func (s *serviceImpl) IssueToken(ctx context.Context, req dto.IssueTokenRequest) (res dto.TokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.IssueToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	token, err := s.jwtService.Issue(req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue token")

		return res, fmt.Errorf("failed to issue token: %w", err)
	}

	res.FromToken(token)

	return res, nil
}
