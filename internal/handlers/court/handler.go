package court

import (
	"errors"
	"mime/multipart"
	"net/http"

	"playcourt/infras/otel"
	"playcourt/internal/domains/court/model/dto"
	"playcourt/internal/domains/court/service"
	"playcourt/shared/constant"
	"playcourt/shared/validator"
	"playcourt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var errMissingImage = errors.New("image file is required")

type Handler struct {
	service service.Court
	otel    otel.Otel
}

func New(service service.Court, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/courts", handler.GetCourts)
	router.Post("/courts", handler.CreateCourt)
	router.Patch("/courts/{id}", handler.UpdateCourt)
	router.Delete("/courts/{id}", handler.DeleteCourt)
	router.Post("/courts/{id}/image", handler.UploadCourtImage)
}

// CreateCourt handles the creation of a new court.
// @Summary Create a court
// @Tags Court
// @Accept json
// @Produce json
// @Param request body dto.CreateCourtRequest true "Create Court Request"
// @Success 201 {object} gDto.InsertResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts [post]
// @Security BearerAuth
func (handler *Handler) CreateCourt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCourt")
	defer scope.End()

	req := dto.CreateCourtRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create court")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	scope.AddEvent("Court created by " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetCourts handles listing courts.
// @Summary List courts
// @Tags Court
// @Produce json
// @Success 200 {array} dto.CourtResponse
// @Failure 500 {object} response.Error
// @Router /courts [get]
func (handler *Handler) GetCourts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourts")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get courts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateCourt handles partial court updates.
// @Summary Update a court
// @Tags Court
// @Accept json
// @Produce json
// @Param id path string true "Court ID"
// @Param request body dto.UpdateCourtRequest true "Update Court Request"
// @Success 200 {object} gDto.UpdateResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCourt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCourt")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCourtRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update court")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteCourt handles court removal.
// @Summary Delete a court
// @Tags Court
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} gDto.DeleteResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCourt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCourt")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete court")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UploadCourtImage handles the court picture upload.
// @Summary Upload a court image
// @Description Replace the court picture. Accepts png, jpg, jpeg and webp up to 5 MB.
// @Tags Court
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Court ID"
// @Param file formData file true "Image file"
// @Success 200 {object} dto.UploadImageResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadCourtImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadCourtImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UploadImageRequest{}

	err := validator.ValidateForm(r, &req, func(form *multipart.Form, data *dto.UploadImageRequest) error {
		headers := form.File[constant.FormFile]
		if len(headers) == 0 {
			return errMissingImage
		}

		file, err := headers[0].Open()
		if err != nil {
			return err
		}

		data.Image = headers[0]
		data.ImageFile = file

		return nil
	})
	if req.ImageFile != nil {
		defer req.ImageFile.Close()
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate upload form")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to upload court image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	scope.AddEvent("Court " + id + " image uploaded by " + user)

	response.WithJSON(w, http.StatusOK, res)
}
