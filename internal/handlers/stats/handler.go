package stats

import (
	"net/http"

	"hallbook/infras/otel"
	"hallbook/internal/domains/stats/service"
	"hallbook/shared/constant"
	"hallbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stats
	otel    otel.Otel
}

func New(service service.Stats, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stats", func(routerGroup chi.Router) {
		routerGroup.Get("/dashboard", handler.GetDashboard)
	})
}

// GetDashboard returns the dashboard aggregates.
// @Summary Get dashboard statistics
// @Description Bookings by status, revenue by month and upcoming events count.
// @Tags Stats
// @Accept json
// @Produce json
// @Success 200 {object} dto.DashboardResponse "Dashboard aggregates"
// @Failure 500 {object} response.Error
// @Router /v1/stats/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard statistics")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard statistics retrieved successfully")

	response.WithJSON(w, http.StatusOK, dashboard)
}
