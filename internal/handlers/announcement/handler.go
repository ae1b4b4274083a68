package announcement

import (
	"net/http"

	"playcourt/infras/otel"
	"playcourt/internal/domains/announcement/model/dto"
	"playcourt/internal/domains/announcement/service"
	"playcourt/shared/constant"
	"playcourt/shared/validator"
	"playcourt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Announcement
	otel    otel.Otel
}

func New(service service.Announcement, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/announcements", handler.GetAnnouncements)
	router.Post("/announcements", handler.CreateAnnouncement)
	router.Patch("/announcements/{id}", handler.UpdateAnnouncement)
	router.Delete("/announcements/{id}", handler.DeleteAnnouncement)
}

// CreateAnnouncement handles the creation of a new announcement.
// @Summary Create an announcement
// @Tags Announcement
// @Accept json
// @Produce json
// @Param request body dto.CreateAnnouncementRequest true "Create Announcement Request"
// @Success 201 {object} gDto.InsertResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /announcements [post]
// @Security BearerAuth
func (handler *Handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAnnouncement")
	defer scope.End()

	req := dto.CreateAnnouncementRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create announcement")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetAnnouncements handles listing announcements.
// @Summary List announcements
// @Tags Announcement
// @Produce json
// @Success 200 {array} dto.AnnouncementResponse
// @Failure 500 {object} response.Error
// @Router /announcements [get]
func (handler *Handler) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnnouncements")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get announcements")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateAnnouncement handles partial announcement updates.
// @Summary Update an announcement
// @Tags Announcement
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param request body dto.UpdateAnnouncementRequest true "Update Announcement Request"
// @Success 200 {object} gDto.UpdateResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /announcements/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAnnouncement")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAnnouncementRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update announcement")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteAnnouncement handles announcement removal.
// @Summary Delete an announcement
// @Tags Announcement
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} gDto.DeleteResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /announcements/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAnnouncement")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete announcement")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
