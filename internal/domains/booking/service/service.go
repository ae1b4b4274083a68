package service

import (
	"context"
	"fmt"

	"playcourt/config"
	"playcourt/infras/kafka"
	"playcourt/infras/otel"
	"playcourt/internal/domains/booking/model"
	"playcourt/internal/domains/booking/model/dto"
	"playcourt/internal/domains/booking/repository"
	"playcourt/shared"
	"playcourt/shared/constant"
	gDto "playcourt/shared/dto"
	"playcourt/shared/failure"
	"playcourt/shared/timezone"

	"github.com/rs/zerolog/log"
)

const messageBookingNotFound = "booking not found"

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, filter dto.ListFilter) ([]dto.BookingResponse, error)
	GetConfirmed(ctx context.Context, params gDto.QueryParams) (dto.ConfirmedBookingsResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.BookingResponse, error)
	Approve(ctx context.Context, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) (gDto.DeleteResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	cfg       *config.Config
	kafka     kafka.Client
	otel      otel.Otel
	lifecycle model.Lifecycle
}

func New(repo repository.Booking, cfg *config.Config, kafka kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		kafka:     kafka,
		otel:      otel,
		lifecycle: model.NewLifecycle(cfg.App.Booking.StrictLifecycle),
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	booking := req.ToModel(email)

	booking.ID, err = s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)
	s.publish(ctx, model.EventCreated, booking, email)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, filter dto.ListFilter) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) GetConfirmed(ctx context.Context, params gDto.QueryParams) (res dto.ConfirmedBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetConfirmed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if params.Page <= 0 {
		params.Page = constant.DefaultValuePage
	}

	if params.Limit <= 0 {
		params.Limit = constant.DefaultValueLimit
	}

	params.SortBy = constant.FieldID
	params.SortDir = gDto.SortDirAsc

	filter := dto.ConfirmedFilter()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count confirmed bookings")

		return res, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}

	if params.Skip() >= int64(total) {
		res.FromModels(nil, total, params.Limit)

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get confirmed bookings")

		return res, fmt.Errorf("failed to get confirmed bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	status := model.Status(req.Status)
	if !status.Valid() {
		return res, failure.BadRequestFromString("status must be one of " + model.AllowedStatuses()) //nolint:wrapcheck
	}

	booking, err := s.transition(ctx, id, status, s.lifecycle)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)
	s.publish(ctx, model.EventStatusChanged, booking, booking.ModifiedBy)

	return res, nil
}

// Approve sets the status to approved whatever the current state.
func (s *serviceImpl) Approve(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Approve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, id, model.StatusApproved, model.PermissiveLifecycle())
	if err != nil {
		return res, err
	}

	res.FromModel(booking)
	s.publish(ctx, model.EventApproved, booking, booking.ModifiedBy)

	return res, nil
}

// transition moves the booking to status in a single find-and-update. Under a
// strict lifecycle the current status is part of the match, so a miss is
// resolved into not found or a refused transition afterwards.
func (s *serviceImpl) transition(ctx context.Context, id string, status model.Status, lifecycle model.Lifecycle) (model.Booking, error) {
	filter, err := shared.FilterByID(id)
	if err != nil {
		return model.Booking{}, err
	}

	guarded := filter
	if lifecycle.Strict() {
		guarded = gDto.FilterGroup{
			Filters: append(filter.Filters, gDto.Filter{
				Field:    model.FieldStatus,
				Value:    lifecycle.SourcesFor(status),
				Operator: gDto.FilterOperatorIn,
			}),
			Operator: gDto.FilterGroupOperatorAnd,
		}
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	update := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if email != "" {
		update[constant.FieldModifiedBy] = email
	}

	booking, err := s.repo.FindOneAndUpdate(ctx, update, guarded)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update booking status")

		return booking, fmt.Errorf("failed to update booking status: %w", err)
	}

	if !booking.ID.IsZero() {
		return booking, nil
	}

	if !lifecycle.Strict() {
		return booking, failure.NotFound(messageBookingNotFound) //nolint:wrapcheck
	}

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		return current, fmt.Errorf("failed to get booking: %w", err)
	}

	if current.ID.IsZero() {
		return current, failure.NotFound(messageBookingNotFound) //nolint:wrapcheck
	}

	refused := &model.TransitionError{From: current.Status, To: status}
	log.Warn().Str("id", id).Str("from", string(current.Status)).Str("to", string(status)).Msg("refused booking status change")

	return current, failure.Conflict(refused.Error()) //nolint:wrapcheck
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res gDto.DeleteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := shared.FilterByID(id)
	if err != nil {
		return res, err
	}

	res.DeletedCount, err = s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return res, fmt.Errorf("failed to delete booking: %w", err)
	}

	if res.DeletedCount == 0 {
		return res, failure.NotFound(messageBookingNotFound) //nolint:wrapcheck
	}

	objectID, _ := shared.ParseID(id)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	s.publish(ctx, model.EventDeleted, model.Booking{ID: objectID}, email)

	return res, nil
}

// publish sends the lifecycle event in the background. Delivery problems are
// logged and never reach the caller.
func (s *serviceImpl) publish(ctx context.Context, eventType model.EventType, booking model.Booking, actor string) {
	event := model.Event{
		Type:       eventType,
		BookingID:  booking.ID.Hex(),
		Status:     booking.Status,
		UserEmail:  booking.UserEmail,
		Actor:      actor,
		OccurredAt: timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Booking, kafka.Message{
			Key:   event.BookingID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("event", string(eventType)).Msg("failed to publish booking event")
		}
	}()
}

