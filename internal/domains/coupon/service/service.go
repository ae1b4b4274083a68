package service

import (
	"context"
	"errors"
	"fmt"

	"playcourt/infras/otel"
	"playcourt/internal/domains/coupon/model/dto"
	"playcourt/internal/domains/coupon/repository"
	"playcourt/shared"
	"playcourt/shared/constant"
	gDto "playcourt/shared/dto"
	"playcourt/shared/failure"
	gRepo "playcourt/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	messageCouponNotFound = "coupon not found"
	messageCodeExists     = "coupon code already exists"
)

type Coupon interface {
	Create(ctx context.Context, req dto.CreateCouponRequest) (gDto.InsertResponse, error)
	GetAll(ctx context.Context) ([]dto.CouponResponse, error)
	Update(ctx context.Context, req dto.UpdateCouponRequest, id string) (gDto.UpdateResponse, error)
	Delete(ctx context.Context, id string) (gDto.DeleteResponse, error)
}

type serviceImpl struct {
	repo repository.Coupon
	otel otel.Otel
}

func New(repo repository.Coupon, otel otel.Otel) Coupon {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCouponRequest) (res gDto.InsertResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coupon.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	res.InsertedID, err = s.repo.Insert(ctx, req.ToModel(email))
	if errors.Is(err, gRepo.ErrDuplicateKey) {
		return res, failure.Conflict(messageCodeExists) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create coupon")

		return res, fmt.Errorf("failed to create coupon: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.CouponResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coupon.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	coupons, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get coupons")

		return res, fmt.Errorf("failed to get coupons: %w", err)
	}

	return dto.FromModels(coupons), nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCouponRequest, id string) (res gDto.UpdateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coupon.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := shared.FilterByID(id)
	if err != nil {
		return res, err
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	updatedFields := shared.TransformFields(req, email)
	if len(updatedFields) == 0 {
		return res, failure.EmptyUpdateRequest
	}

	result, err := s.repo.Update(ctx, updatedFields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update coupon")

		return res, fmt.Errorf("failed to update coupon: %w", err)
	}

	if result.MatchedCount == 0 {
		return res, failure.NotFound(messageCouponNotFound) //nolint:wrapcheck
	}

	res.ModifiedCount = result.ModifiedCount

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res gDto.DeleteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coupon.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := shared.FilterByID(id)
	if err != nil {
		return res, err
	}

	res.DeletedCount, err = s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete coupon")

		return res, fmt.Errorf("failed to delete coupon: %w", err)
	}

	if res.DeletedCount == 0 {
		return res, failure.NotFound(messageCouponNotFound) //nolint:wrapcheck
	}

	return res, nil
}
