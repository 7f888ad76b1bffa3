package router

import (
	"hallbook/internal/handlers/auth"
	"hallbook/internal/handlers/billing"
	"hallbook/internal/handlers/booking"
	"hallbook/internal/handlers/communication"
	"hallbook/internal/handlers/feature"
	"hallbook/internal/handlers/gallery"
	"hallbook/internal/handlers/hall"
	"hallbook/internal/handlers/inventory"
	"hallbook/internal/handlers/microsite"
	"hallbook/internal/handlers/organization"
	"hallbook/internal/handlers/payment"
	"hallbook/internal/handlers/review"
	"hallbook/internal/handlers/service"
	"hallbook/internal/handlers/stats"
	"hallbook/internal/handlers/ticket"
	"hallbook/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth          auth.Handler
	User          user.Handler
	Organization  organization.Handler
	Hall          hall.Handler
	Booking       booking.Handler
	Feature       feature.Handler
	Service       service.Handler
	Inventory     inventory.Handler
	Payment       payment.Handler
	Communication communication.Handler
	Ticket        ticket.Handler
	Gallery       gallery.Handler
	Review        review.Handler
	Microsite     microsite.Handler
	Billing       billing.Handler
	Stats         stats.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Organization.Router(routerGroup)
		r.DomainHandlers.Hall.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Feature.Router(routerGroup)
		r.DomainHandlers.Service.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Communication.Router(routerGroup)
		r.DomainHandlers.Ticket.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Microsite.Router(routerGroup)
		r.DomainHandlers.Billing.Router(routerGroup)
		r.DomainHandlers.Stats.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
