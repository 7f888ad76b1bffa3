package microsite

import (
	"net/http"

	"hallbook/infras/otel"
	"hallbook/internal/domains/microsite/model/dto"
	"hallbook/internal/domains/microsite/service"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/validator"
	"hallbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Microsite
	otel    otel.Otel
}

func New(service service.Microsite, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/microsites", func(routerGroup chi.Router) {
		routerGroup.Post("/sections", handler.CreateSection)
		routerGroup.Patch("/sections/{id}", handler.UpdateSection)
		routerGroup.Delete("/sections/{id}", handler.DeleteSection)
		routerGroup.Get("/{hallID}", handler.GetSections)
		routerGroup.Put("/{hallID}/reorder", handler.ReorderSections)
	})

	// storefront page, no auth
	router.Get("/public/halls/{id}/microsite", handler.GetPublicSections)
}

// CreateSection adds a section to a hall's microsite.
// @Summary Create a microsite section
// @Description Add a section to a hall's microsite. Without a position it lands at the end.
// @Tags Microsite
// @Accept json
// @Produce json
// @Param request body dto.CreateSectionRequest true "Create Section Request"
// @Success 201 {object} response.Message "Section created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/microsites/sections [post]
// @Security BearerAuth
func (handler *Handler) CreateSection(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSection")
	defer scope.End()

	req := dto.CreateSectionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create section")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Section created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Section created successfully")
}

// GetSections lists the microsite sections of a hall in order.
// @Summary Get microsite sections
// @Description Retrieve the microsite sections of a hall ordered by position.
// @Tags Microsite
// @Accept json
// @Produce json
// @Param hallID path string true "Hall ID"
// @Success 200 {object} dto.GetSectionsResponse "Ordered sections"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/microsites/{hallID} [get]
// @Security BearerAuth
func (handler *Handler) GetSections(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSections")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	hallID := chi.URLParam(r, constant.RequestParamHallID)

	sections, err := handler.service.GetByHall(ctx, hallID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sections")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sections retrieved successfully")

	response.WithJSON(w, http.StatusOK, sections)
}

// GetPublicSections serves the storefront microsite page of a hall.
// @Summary Get the public microsite of a hall
// @Description Retrieve the microsite sections of a hall for the storefront page.
// @Tags Microsite
// @Accept json
// @Produce json
// @Param id path string true "Hall ID"
// @Success 200 {object} dto.GetSectionsResponse "Ordered sections"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/halls/{id}/microsite [get]
func (handler *Handler) GetPublicSections(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPublicSections")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	hallID := chi.URLParam(r, constant.RequestParamID)

	sections, err := handler.service.GetByHall(ctx, hallID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get public sections")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Public sections retrieved successfully")

	response.WithJSON(w, http.StatusOK, sections)
}

// UpdateSection updates a microsite section by its ID.
// @Summary Update a microsite section by ID
// @Description Update the kind, title or body of a microsite section.
// @Tags Microsite
// @Accept json
// @Produce json
// @Param id path string true "Section ID"
// @Param request body dto.UpdateSectionRequest true "Update Section Request"
// @Success 200 {object} response.Message "Section updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/microsites/sections/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSection")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSectionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update section")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Section updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Section updated successfully")
}

// ReorderSections reassigns section positions after a drag and drop.
// @Summary Reorder microsite sections
// @Description Reassign positions 0 through n-1 following the submitted section order.
// @Tags Microsite
// @Accept json
// @Produce json
// @Param hallID path string true "Hall ID"
// @Param request body dto.ReorderRequest true "Reorder Request"
// @Success 200 {object} response.Message "Sections reordered successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/microsites/{hallID}/reorder [put]
// @Security BearerAuth
func (handler *Handler) ReorderSections(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReorderSections")
	defer scope.End()

	hallID := chi.URLParam(r, constant.RequestParamHallID)

	req := dto.ReorderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Reorder(ctx, req, hallID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reorder sections")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Sections reordered successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Sections reordered successfully")
}

// DeleteSection deletes a microsite section by its ID.
// @Summary Delete a microsite section by ID
// @Description Delete a microsite section using its unique identifier.
// @Tags Microsite
// @Accept json
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} response.Message "Section deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/microsites/sections/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSection")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete section")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Section deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Section deleted successfully")
}
