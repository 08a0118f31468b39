package router

import (
	"github.com/go-chi/chi/v5"

	"localtime/internal/handlers/clock"
	"localtime/internal/handlers/session"
)

type DomainHandlers struct {
	Clock   clock.Handler
	Session session.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Clock.Router(routerGroup)
		r.DomainHandlers.Session.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
