package auth

import (
	"net/http"

	"playcourt/infras/otel"
	"playcourt/internal/domains/auth/model/dto"
	"playcourt/internal/domains/auth/service"
	"playcourt/shared/constant"
	"playcourt/shared/validator"
	"playcourt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/jwt", handler.IssueToken)
}

// IssueToken handles bearer token issuance.
// @Summary Issue an access token
// @Description Sign a bearer token for the given email.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.IssueTokenRequest true "Issue Token Request"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /jwt [post]
func (handler *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IssueToken")
	defer scope.End()

	req := dto.IssueTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.IssueToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to issue token")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
