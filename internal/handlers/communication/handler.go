package communication

import (
	"net/http"

	"hallbook/infras/otel"
	"hallbook/internal/domains/communication/model/dto"
	"hallbook/internal/domains/communication/service"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"
	"hallbook/shared/validator"
	"hallbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Communication
	otel    otel.Otel
}

func New(service service.Communication, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// The log is append-only, so there are no update or delete routes.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/communications", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCommunication)
		routerGroup.Get("/", handler.GetCommunicationsByBooking)
	})
}

// CreateCommunication appends an entry to a booking's contact log.
// @Summary Create a communication entry
// @Description Append an entry to the booking's contact log and stamp the last contact date.
// @Tags Communication
// @Accept json
// @Produce json
// @Param request body dto.CreateCommunicationRequest true "Create Communication Request"
// @Success 201 {object} response.Message "Communication created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/communications [post]
// @Security BearerAuth
func (handler *Handler) CreateCommunication(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCommunication")
	defer scope.End()

	req := dto.CreateCommunicationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create communication")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Communication created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Communication created successfully")
}

// GetCommunicationsByBooking lists the contact log of a booking.
// @Summary Get communications by booking
// @Description Retrieve the contact log entries of a booking.
// @Tags Communication
// @Accept json
// @Produce json
// @Param booking_id query string true "Booking ID"
// @Success 200 {object} dto.GetCommunicationsResponse "Contact log entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/communications [get]
// @Security BearerAuth
func (handler *Handler) GetCommunicationsByBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCommunicationsByBooking")
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

	communications, err := handler.service.GetByBooking(ctx, bookingID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get communications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Communications retrieved successfully")

	response.WithJSON(w, http.StatusOK, communications)
}
