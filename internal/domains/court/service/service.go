package service

import (
	"context"
	"fmt"
	"path"

	"playcourt/config"
	"playcourt/infras/otel"
	"playcourt/infras/s3"
	"playcourt/internal/domains/court/model"
	"playcourt/internal/domains/court/model/dto"
	"playcourt/internal/domains/court/repository"
	"playcourt/shared"
	"playcourt/shared/constant"
	gDto "playcourt/shared/dto"
	"playcourt/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const messageCourtNotFound = "court not found"

type Court interface {
	Create(ctx context.Context, req dto.CreateCourtRequest) (gDto.InsertResponse, error)
	GetAll(ctx context.Context) ([]dto.CourtResponse, error)
	Update(ctx context.Context, req dto.UpdateCourtRequest, id string) (gDto.UpdateResponse, error)
	Delete(ctx context.Context, id string) (gDto.DeleteResponse, error)
	UploadImage(ctx context.Context, req dto.UploadImageRequest, id string) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo repository.Court
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(repo repository.Court, cfg *config.Config, otel otel.Otel, s3 s3.S3) Court {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCourtRequest) (res gDto.InsertResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".court.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	res.InsertedID, err = s.repo.Insert(ctx, req.ToModel(email))
	if err != nil {
		log.Error().Err(err).Msg("failed to create court")

		return res, fmt.Errorf("failed to create court: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.CourtResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".court.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	courts, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get courts")

		return res, fmt.Errorf("failed to get courts: %w", err)
	}

	return dto.FromModels(courts), nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCourtRequest, id string) (res gDto.UpdateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".court.Update")
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
		log.Error().Err(err).Msg("failed to update court")

		return res, fmt.Errorf("failed to update court: %w", err)
	}

	if result.MatchedCount == 0 {
		return res, failure.NotFound(messageCourtNotFound) //nolint:wrapcheck
	}

	res.ModifiedCount = result.ModifiedCount

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res gDto.DeleteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".court.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := shared.FilterByID(id)
	if err != nil {
		return res, err
	}

	court, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get court")

		return res, fmt.Errorf("failed to get court: %w", err)
	}

	if court.ID.IsZero() {
		return res, failure.NotFound(messageCourtNotFound) //nolint:wrapcheck
	}

	res.DeletedCount, err = s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete court")

		return res, fmt.Errorf("failed to delete court: %w", err)
	}

	if res.DeletedCount == 0 {
		return res, failure.NotFound(messageCourtNotFound) //nolint:wrapcheck
	}

	s.deleteImage(ctx, court.Image)

	return res, nil
}

// UploadImage stores the file in the bucket and points the court at it. The
// previous image is removed once the court no longer references it.
func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest, id string) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".court.UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := shared.FilterByID(id)
	if err != nil {
		return res, err
	}

	court, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get court")

		return res, fmt.Errorf("failed to get court: %w", err)
	}

	if court.ID.IsZero() {
		return res, failure.NotFound(messageCourtNotFound) //nolint:wrapcheck
	}

	fileName := uuid.NewString() + path.Ext(req.Image.Filename)

	url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.ImageDirectory, req.ImageFile, req.Image, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload court image")

		return res, fmt.Errorf("failed to upload court image: %w", err)
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	result, err := s.repo.Update(ctx, shared.TransformFields(dto.UpdateCourtRequest{Image: &url}, email), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update court image")
		s.deleteImage(ctx, url)

		return res, fmt.Errorf("failed to update court image: %w", err)
	}

	res.ModifiedCount = result.ModifiedCount
	res.Image = url

	s.deleteImage(ctx, court.Image)

	return res, nil
}

// deleteImage removes an uploaded object in the background. URLs outside the
// bucket are left alone.
func (s *serviceImpl) deleteImage(ctx context.Context, url string) {
	if url == "" {
		return
	}

	bucketName := s.cfg.External.S3.BucketName

	objectName := s.s3.GetObjectNameFromURL(bucketName, url)
	if objectName == constant.Empty {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.s3.DeleteFile(c, bucketName, "", objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete court image")
		}
	}()
}
