package inventory

import (
	"net/http"

	"hallbook/infras/otel"
	"hallbook/internal/domains/inventory/model/dto"
	"hallbook/internal/domains/inventory/service"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"
	"hallbook/shared/validator"
	"hallbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inventory
	otel    otel.Otel
}

func New(service service.Inventory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inventory", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateInventory)
		routerGroup.Get("/", handler.GetInventoryByBooking)
		routerGroup.Patch("/{id}", handler.UpdateInventory)
		routerGroup.Delete("/{id}", handler.DeleteInventory)
	})
}

// CreateInventory attaches an inventory line item to a booking.
// @Summary Create a booking inventory
// @Description Attach an inventory line item to a booking. Quantity defaults to 1.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateInventoryRequest true "Create Inventory Request"
// @Success 201 {object} response.Message "Inventory created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory [post]
// @Security BearerAuth
func (handler *Handler) CreateInventory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInventory")
	defer scope.End()

	req := dto.CreateInventoryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inventory")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inventory created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Inventory created successfully")
}

// GetInventoryByBooking lists the inventory line items of a booking.
// @Summary Get inventory by booking
// @Description Retrieve the inventory line items attached to a booking.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param booking_id query string true "Booking ID"
// @Success 200 {object} dto.GetInventoriesResponse "List of inventory line items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory [get]
// @Security BearerAuth
func (handler *Handler) GetInventoryByBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInventoryByBooking")
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

	inventory, err := handler.service.GetByBooking(ctx, bookingID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventorys retrieved successfully")

	response.WithJSON(w, http.StatusOK, inventory)
}

// UpdateInventory updates an inventory line item by its ID.
// @Summary Update an inventory by ID
// @Description Update the details of an existing inventory line item.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param request body dto.UpdateInventoryRequest true "Update Inventory Request"
// @Success 200 {object} response.Message "Inventory updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateInventory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateInventoryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inventory")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inventory updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inventory updated successfully")
}

// DeleteInventory removes an inventory line item, logging the reason.
// @Summary Delete an inventory by ID
// @Description Remove an inventory line item. The reason is appended to the booking's communication log.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param request body dto.DeleteInventoryRequest true "Delete Inventory Request"
// @Success 200 {object} response.Message "Inventory deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteInventory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.DeleteInventoryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete inventory")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inventory deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inventory deleted successfully")
}
