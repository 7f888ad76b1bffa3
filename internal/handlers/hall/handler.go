package hall

import (
	"net/http"

	"hallbook/infras/otel"
	"hallbook/internal/domains/hall/model"
	"hallbook/internal/domains/hall/model/dto"
	"hallbook/internal/domains/hall/service"
	"hallbook/shared"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/validator"
	"hallbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hall
	otel    otel.Otel
}

func New(service service.Hall, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/halls", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHall)
		routerGroup.Get("/", handler.GetHalls)
		routerGroup.Get("/{id}", handler.GetHallByID)
		routerGroup.Patch("/{id}", handler.UpdateHall)
		routerGroup.Delete("/{id}", handler.DeleteHall)
		routerGroup.Get("/{id}/availability", handler.GetAvailability)
	})

	// storefront calendar, no auth
	router.Get("/public/halls/{id}/availability", handler.GetAvailability)
}

// CreateHall handles the creation of a new hall.
// @Summary Create a new hall
// @Description Create a new hall with rate card and feature catalog.
// @Tags Hall
// @Accept json
// @Produce json
// @Param request body dto.CreateHallRequest true "Create Hall Request"
// @Success 201 {object} response.Message "Hall created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/halls [post]
// @Security BearerAuth
func (handler *Handler) CreateHall(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHall")
	defer scope.End()

	req := dto.CreateHallRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hall")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hall created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Hall created successfully")
}

// GetHalls retrieves all halls based on query parameters.
// @Summary Get all halls
// @Description Retrieve all halls with optional filtering and pagination.
// @Tags Hall
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param location query string false "Filter by location"
// @Param organization_id query string false "Filter by organization"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} dto.GetHallsResponse "List of halls"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/halls [get]
// @Security BearerAuth
func (handler *Handler) GetHalls(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHalls")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if location := r.URL.Query().Get(model.FieldLocation); location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if organizationID := r.URL.Query().Get(model.FieldOrganizationID); organizationID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOrganizationID,
			Operator: gDto.FilterOperatorEq,
			Value:    organizationID,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	halls, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get halls")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Halls retrieved successfully")

	response.WithJSON(w, http.StatusOK, halls)
}

// GetHallByID retrieves a hall by its ID.
// @Summary Get a hall by ID
// @Description Retrieve a hall by its unique identifier.
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall ID"
// @Success 200 {object} dto.HallResponse "Hall details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/halls/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetHallByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHallByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	hall, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hall by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall retrieved successfully")

	response.WithJSON(w, http.StatusOK, hall)
}

// UpdateHall updates an existing hall by its ID.
// @Summary Update a hall by ID
// @Description Update the details of an existing hall.
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall ID"
// @Param request body dto.UpdateHallRequest true "Update Hall Request"
// @Success 200 {object} response.Message "Hall updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/halls/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateHall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHall")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateHallRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hall")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hall updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Hall updated successfully")
}

// DeleteHall deletes a hall by its ID.
// @Summary Delete a hall by ID
// @Description Delete a hall using its unique identifier.
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall ID"
// @Success 200 {object} response.Message "Hall deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/halls/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHall")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hall")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hall deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Hall deleted successfully")
}

// GetAvailability classifies each date of the requested range.
// @Summary Get hall availability
// @Description Classify each date in the range as available, morning, evening or full.
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.GetAvailabilityResponse "Per-date availability"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/halls/{id}/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	availability, err := handler.service.GetAvailability(ctx, id, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hall availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}
