package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"localtime/config"
	"localtime/infras/otel"
	"localtime/internal/domains/session/model"
	"localtime/internal/domains/session/model/dto"
	"localtime/shared/cache"
	"localtime/shared/constant"
	"localtime/shared/failure"
	"localtime/shared/timezone"
)

const defaultTTLSeconds = 24 * 60 * 60

type Session interface {
	Register(ctx context.Context, req dto.RegisterSessionRequest) (dto.SessionResponse, error)
	Get(ctx context.Context, id string) (model.Session, error)
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Session {
	return &serviceImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterSessionRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Stored verbatim; an unrecognized name is only worth a heads-up here,
	// the render path falls back per call.
	if req.Timezone != "" && !timezone.IsValid(req.Timezone) {
		log.Warn().
			Str("timezone", req.Timezone).
			Msg("Registering session with unrecognized client timezone")
	}

	sess := req.ToModel()

	if err = s.cache.Save(ctx, cacheKey(sess.ID), sess, s.ttl()); err != nil {
		log.Error().Err(err).Msg("failed to store session")

		return res, fmt.Errorf("failed to store session: %w", err)
	}

	scope.SetAttribute("session.id", sess.ID)

	res.FromModel(sess)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (sess model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Get(ctx, cacheKey(id), &sess); err != nil {
		if errors.Is(err, cache.Nil) {
			return sess, failure.NotFound("session not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to get session")

		return sess, fmt.Errorf("failed to get session: %w", err)
	}

	return sess, nil
}

func (s *serviceImpl) Touch(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Touch")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Expire(ctx, cacheKey(id), s.ttl()); err != nil {
		log.Error().Err(err).Msg("failed to touch session")

		return fmt.Errorf("failed to touch session: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *serviceImpl) ttl() int {
	if s.cfg.Session.TTLSeconds > 0 {
		return s.cfg.Session.TTLSeconds
	}

	return defaultTTLSeconds
}

func cacheKey(id string) string {
	return model.CacheKeyPrefix + ":" + id
}
