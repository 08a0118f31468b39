//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"localtime/config"
	"localtime/infras/otel"
	"localtime/infras/redis"
	"localtime/shared/cache"
	"localtime/transport/http"
	"localtime/transport/http/middleware"
	"localtime/transport/http/router"

	clockService "localtime/internal/domains/clock/service"
	sessionService "localtime/internal/domains/session/service"

	clockHandler "localtime/internal/handlers/clock"
	sessionHandler "localtime/internal/handlers/session"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var sessionDomain = wire.NewSet(
	sessionService.New,
)

var clockDomain = wire.NewSet(
	clockService.New,
)

var domains = wire.NewSet(
	sessionDomain,
	clockDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	clockHandler.New,
	sessionHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
