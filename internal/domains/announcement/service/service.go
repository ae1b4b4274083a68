package service

import (
	"context"
	"fmt"

	"playcourt/infras/otel"
	"playcourt/internal/domains/announcement/model/dto"
	"playcourt/internal/domains/announcement/repository"
	"playcourt/shared"
	"playcourt/shared/constant"
	gDto "playcourt/shared/dto"
	"playcourt/shared/failure"

	"github.com/rs/zerolog/log"
)

const messageAnnouncementNotFound = "announcement not found"

type Announcement interface {
	Create(ctx context.Context, req dto.CreateAnnouncementRequest) (gDto.InsertResponse, error)
	GetAll(ctx context.Context) ([]dto.AnnouncementResponse, error)
	Update(ctx context.Context, req dto.UpdateAnnouncementRequest, id string) (gDto.UpdateResponse, error)
	Delete(ctx context.Context, id string) (gDto.DeleteResponse, error)
}

type serviceImpl struct {
	repo repository.Announcement
	otel otel.Otel
}

func New(repo repository.Announcement, otel otel.Otel) Announcement {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAnnouncementRequest) (res gDto.InsertResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".announcement.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	res.InsertedID, err = s.repo.Insert(ctx, req.ToModel(email))
	if err != nil {
		log.Error().Err(err).Msg("failed to create announcement")

		return res, fmt.Errorf("failed to create announcement: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.AnnouncementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".announcement.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	announcements, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get announcements")

		return res, fmt.Errorf("failed to get announcements: %w", err)
	}

	return dto.FromModels(announcements), nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAnnouncementRequest, id string) (res gDto.UpdateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".announcement.Update")
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
		log.Error().Err(err).Msg("failed to update announcement")

		return res, fmt.Errorf("failed to update announcement: %w", err)
	}

	if result.MatchedCount == 0 {
		return res, failure.NotFound(messageAnnouncementNotFound) //nolint:wrapcheck
	}

	res.ModifiedCount = result.ModifiedCount

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res gDto.DeleteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".announcement.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := shared.FilterByID(id)
	if err != nil {
		return res, err
	}

	res.DeletedCount, err = s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete announcement")

		return res, fmt.Errorf("failed to delete announcement: %w", err)
	}

	if res.DeletedCount == 0 {
		return res, failure.NotFound(messageAnnouncementNotFound) //nolint:wrapcheck
	}

	return res, nil
}
