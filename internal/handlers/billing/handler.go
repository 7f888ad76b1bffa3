package billing

import (
	"net/http"

	"hallbook/infras/otel"
	"hallbook/internal/domains/billing/model/dto"
	"hallbook/internal/domains/billing/service"
	"hallbook/shared/constant"
	"hallbook/shared/failure"
	"hallbook/shared/validator"
	"hallbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Billing
	otel    otel.Otel
}

func New(service service.Billing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/billing", func(routerGroup chi.Router) {
		routerGroup.Get("/settings", handler.GetSettings)
		routerGroup.Put("/settings", handler.UpsertSettings)
	})
}

// GetSettings retrieves the billing settings of an organization.
// @Summary Get billing settings
// @Description Retrieve the billing settings of an organization.
// @Tags Billing
// @Accept json
// @Produce json
// @Param organization_id query string true "Organization ID"
// @Success 200 {object} dto.SettingsResponse "Billing settings"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billing/settings [get]
// @Security BearerAuth
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	organizationID := r.URL.Query().Get("organization_id")
	if organizationID == "" {
		err := failure.BadRequestFromString("organization_id is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	settings, err := handler.service.GetSettings(ctx, organizationID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get billing settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Billing settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

// UpsertSettings creates or replaces the billing settings of an organization.
// @Summary Upsert billing settings
// @Description Create the billing settings of an organization, or replace them if they exist.
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.CreateSettingsRequest true "Billing Settings Request"
// @Success 200 {object} response.Message "Billing settings saved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billing/settings [put]
// @Security BearerAuth
func (handler *Handler) UpsertSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertSettings")
	defer scope.End()

	req := dto.CreateSettingsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpsertSettings(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save billing settings")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Billing settings saved successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Billing settings saved successfully")
}
