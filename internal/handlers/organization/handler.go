package organization

import (
	"net/http"

	"hallbook/infras/otel"
	"hallbook/internal/domains/organization/model"
	"hallbook/internal/domains/organization/model/dto"
	"hallbook/internal/domains/organization/service"
	"hallbook/shared"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/validator"
	"hallbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Organization
	otel    otel.Otel
}

func New(service service.Organization, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/organizations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOrganization)
		routerGroup.Get("/", handler.GetOrganizations)
		routerGroup.Get("/{id}", handler.GetOrganizationByID)
		routerGroup.Patch("/{id}", handler.UpdateOrganization)
		routerGroup.Delete("/{id}", handler.DeleteOrganization)
	})
}

// CreateOrganization handles the creation of a new organization.
// @Summary Create a new organization
// @Description Create a new organization with the provided details.
// @Tags Organization
// @Accept json
// @Produce json
// @Param request body dto.CreateOrganizationRequest true "Create Organization Request"
// @Success 201 {object} response.Message "Organization created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organizations [post]
// @Security BearerAuth
func (handler *Handler) CreateOrganization(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrganization")
	defer scope.End()

	req := dto.CreateOrganizationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create organization")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Organization created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Organization created successfully")
}

// GetOrganizations retrieves all organizations based on query parameters.
// @Summary Get all organizations
// @Description Retrieve all organizations with optional filtering and pagination.
// @Tags Organization
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} dto.GetOrganizationsResponse "List of organizations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organizations [get]
// @Security BearerAuth
func (handler *Handler) GetOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrganizations")
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

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	organizations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get organizations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Organizations retrieved successfully")

	response.WithJSON(w, http.StatusOK, organizations)
}

// GetOrganizationByID retrieves an organization by its ID.
// @Summary Get an organization by ID
// @Description Retrieve an organization by its unique identifier.
// @Tags Organization
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse "Organization details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organizations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOrganizationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrganizationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	organization, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get organization by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Organization retrieved successfully")

	response.WithJSON(w, http.StatusOK, organization)
}

// UpdateOrganization updates an existing organization by its ID.
// @Summary Update an organization by ID
// @Description Update the details of an existing organization.
// @Tags Organization
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param request body dto.UpdateOrganizationRequest true "Update Organization Request"
// @Success 200 {object} response.Message "Organization updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organizations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrganization")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateOrganizationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update organization")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Organization updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Organization updated successfully")
}

// DeleteOrganization deletes an organization by its ID.
// @Summary Delete an organization by ID
// @Description Delete an organization using its unique identifier.
// @Tags Organization
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} response.Message "Organization deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organizations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOrganization")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete organization")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Organization deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Organization deleted successfully")
}
