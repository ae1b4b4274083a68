package service

import (
	"context"
	"errors"
	"fmt"

	"playcourt/infras/otel"
	"playcourt/internal/domains/user/model"
	"playcourt/internal/domains/user/model/dto"
	"playcourt/internal/domains/user/repository"
	"playcourt/shared"
	"playcourt/shared/constant"
	gDto "playcourt/shared/dto"
	"playcourt/shared/failure"
	gRepo "playcourt/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	messageEmailRegistered = "email already registered"
	messageUserNotFound    = "user not found"
	messageRoleUnchanged   = "role unchanged"
	messageRoleUpdated     = "role updated"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
	GetMembers(ctx context.Context) ([]dto.UserResponse, error)
	GetRole(ctx context.Context, email string) (dto.RoleResponse, error)
	UpdateRole(ctx context.Context, req dto.UpdateRoleRequest, id string) (gDto.MessageResponse, error)
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func filterByEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldEmail, Value: email, Operator: gDto.FilterOperatorEq},
		},
	}
}

// Create registers the account only when the email is not yet known.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.repo.Exist(ctx, filterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict(messageEmailRegistered) //nolint:wrapcheck
	}

	user := req.ToModel()

	user.ID, err = s.repo.Insert(ctx, user)
	if errors.Is(err, gRepo.ErrDuplicateKey) {
		return res, failure.Conflict(messageEmailRegistered) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, gDto.FilterGroup{})
}

func (s *serviceImpl) GetMembers(ctx context.Context) (res []dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetMembers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldRole, Value: constant.RoleMember, Operator: gDto.FilterOperatorEq},
		},
	})
}

func (s *serviceImpl) list(ctx context.Context, filter gDto.FilterGroup) ([]dto.UserResponse, error) {
	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return dto.FromModels(models), nil
}

// GetRole falls back to the user role for unknown emails.
func (s *serviceImpl) GetRole(ctx context.Context, email string) (res dto.RoleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.Get(ctx, filterByEmail(email))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to get user role")

		return res, fmt.Errorf("failed to get user role: %w", err)
	}

	res.Role = user.Role
	if res.Role == "" {
		res.Role = constant.RoleUser
	}

	return res, nil
}

func (s *serviceImpl) UpdateRole(ctx context.Context, req dto.UpdateRoleRequest, id string) (res gDto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.UpdateRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !model.ValidRole(req.Role) {
		return res, failure.BadRequestFromString("role must be one of admin member user") //nolint:wrapcheck
	}

	filter, err := shared.FilterByID(id)
	if err != nil {
		return res, err
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	// modifiedAt always changes, so an unchanged role is excluded in the match.
	changed := gDto.FilterGroup{
		Filters: append(filter.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Value:    req.Role,
			Operator: gDto.FilterOperatorNotEq,
		}),
		Operator: gDto.FilterGroupOperatorAnd,
	}

	result, err := s.repo.Update(ctx, shared.TransformFields(struct {
		Role string `bson:"role"`
	}{Role: req.Role}, email), changed)
	if err != nil {
		log.Error().Err(err).Msg("failed to update user role")

		return res, fmt.Errorf("failed to update user role: %w", err)
	}

	if result.MatchedCount == 0 {
		exist, err := s.repo.Exist(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to check if user exists")

			return res, fmt.Errorf("failed to check if user exists: %w", err)
		}

		if !exist {
			return res, failure.NotFound(messageUserNotFound) //nolint:wrapcheck
		}

		return res, failure.NotFound(messageRoleUnchanged) //nolint:wrapcheck
	}

	res.Message = messageRoleUpdated

	return res, nil
}
