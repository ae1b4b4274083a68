package booking

import (
	"net/http"

	"playcourt/infras/otel"
	"playcourt/internal/domains/booking/model"
	"playcourt/internal/domains/booking/model/dto"
	"playcourt/internal/domains/booking/service"
	"playcourt/shared/constant"
	gDto "playcourt/shared/dto"
	"playcourt/shared/validator"
	"playcourt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamStatus = "status"
	queryParamEmail  = "email"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the booking routes. Paths are registered flat so the
// matched pattern is identical to the permission table entry.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/bookings", handler.GetBookings)
	router.Get("/bookings/confirmed", handler.GetConfirmedBookings)
	router.Post("/bookings", handler.CreateBooking)
	router.Patch("/bookings/{id}/status", handler.UpdateBookingStatus)
	router.Patch("/bookings/approve/{id}", handler.ApproveBooking)
	router.Delete("/bookings/{id}", handler.DeleteBooking)
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Store a booking request. The stored status is always pending.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	scope.AddEvent("Booking created by " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings handles listing bookings.
// @Summary List bookings
// @Description List every booking, optionally narrowed by status and requester email.
// @Tags Booking
// @Produce json
// @Param status query string false "Booking status" Enums(pending, confirmed, approved, rejected)
// @Param email query string false "Requester email"
// @Success 200 {array} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	query := request.URL.Query()
	filter := dto.ListFilter{
		Status: query.Get(queryParamStatus),
		Email:  query.Get(queryParamEmail),
	}

	if err := validator.ValidateVar(queryParamStatus, filter.Status, "omitempty,oneof="+model.AllowedStatuses()); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate status filter")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetConfirmedBookings handles the paginated confirmed booking list.
// @Summary List confirmed bookings
// @Description Page through confirmed bookings in insertion order.
// @Tags Booking
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ConfirmedBookingsResponse
// @Failure 500 {object} response.Error
// @Router /bookings/confirmed [get]
func (handler *Handler) GetConfirmedBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConfirmedBookings")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(request, true)

	res, err := handler.service.GetConfirmed(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get confirmed bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateBookingStatus handles status changes.
// @Summary Update booking status
// @Description Move a booking to the requested status.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update booking status")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	scope.AddEvent("Booking " + id + " moved to " + req.Status + " by " + user)

	response.WithJSON(writer, http.StatusOK, res)
}

// ApproveBooking handles booking approval.
// @Summary Approve a booking
// @Description Mark a booking as approved.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/approve/{id} [patch]
func (handler *Handler) ApproveBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Approve(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to approve booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteBooking handles booking removal.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} gDto.DeleteResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	scope.AddEvent("Booking " + id + " deleted by " + user)

	response.WithJSON(writer, http.StatusOK, res)
}
