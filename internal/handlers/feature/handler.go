package feature

import (
	"net/http"

	"hallbook/infras/otel"
	"hallbook/internal/domains/feature/model/dto"
	"hallbook/internal/domains/feature/service"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"
	"hallbook/shared/validator"
	"hallbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Feature
	otel    otel.Otel
}

func New(service service.Feature, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/features", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateFeature)
		routerGroup.Get("/", handler.GetFeaturesByBooking)
		routerGroup.Patch("/{id}", handler.UpdateFeature)
		routerGroup.Delete("/{id}", handler.DeleteFeature)
	})
}

// CreateFeature attaches a feature line item to a booking.
// @Summary Create a booking feature
// @Description Attach a feature line item to a booking. Quantity defaults to 1.
// @Tags Feature
// @Accept json
// @Produce json
// @Param request body dto.CreateFeatureRequest true "Create Feature Request"
// @Success 201 {object} response.Message "Feature created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/features [post]
// @Security BearerAuth
func (handler *Handler) CreateFeature(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFeature")
	defer scope.End()

	req := dto.CreateFeatureRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create feature")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Feature created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Feature created successfully")
}

// GetFeaturesByBooking lists the feature line items of a booking.
// @Summary Get features by booking
// @Description Retrieve the feature line items attached to a booking.
// @Tags Feature
// @Accept json
// @Produce json
// @Param booking_id query string true "Booking ID"
// @Success 200 {object} dto.GetFeaturesResponse "List of features"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/features [get]
// @Security BearerAuth
func (handler *Handler) GetFeaturesByBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturesByBooking")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookingID := r.URL.Query().Get("booking_id")
	if bookingID == "" {
		err := failure.BadRequestFromString("booking_id is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	features, err := handler.service.GetByBooking(ctx, bookingID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get features")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Features retrieved successfully")

	response.WithJSON(w, http.StatusOK, features)
}

// UpdateFeature updates a feature line item by its ID.
// @Summary Update a feature by ID
// @Description Update the details of an existing feature line item.
// @Tags Feature
// @Accept json
// @Produce json
// @Param id path string true "Feature ID"
// @Param request body dto.UpdateFeatureRequest true "Update Feature Request"
// @Success 200 {object} response.Message "Feature updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/features/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateFeature(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFeature")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFeatureRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update feature")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Feature updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Feature updated successfully")
}

// DeleteFeature removes a feature line item, logging the reason.
// @Summary Delete a feature by ID
// @Description Remove a feature line item. The reason is appended to the booking's communication log.
// @Tags Feature
// @Accept json
// @Produce json
// @Param id path string true "Feature ID"
// @Param request body dto.DeleteFeatureRequest true "Delete Feature Request"
// @Success 200 {object} response.Message "Feature deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/features/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFeature(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFeature")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.DeleteFeatureRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete feature")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Feature deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Feature deleted successfully")
}
