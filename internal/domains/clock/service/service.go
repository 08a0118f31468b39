package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"localtime/config"
	"localtime/infras/otel"
	"localtime/internal/domains/clock/model"
	"localtime/internal/domains/clock/model/dto"
	sessionService "localtime/internal/domains/session/service"
	"localtime/shared/constant"
	"localtime/shared/failure"
	"localtime/shared/timestamp"
	"localtime/shared/timezone"
)

type Clock interface {
	Render(ctx context.Context, kind model.Kind, req dto.RenderRequest) (dto.RenderResponse, error)
}

type serviceImpl struct {
	sessions sessionService.Session
	cfg      *config.Config
	otel     otel.Otel
}

func New(sessions sessionService.Session, cfg *config.Config, otel otel.Otel) Clock {
	return &serviceImpl{
		sessions: sessions,
		cfg:      cfg,
		otel:     otel,
	}
}

var (
	formattersMu sync.RWMutex
	formatters   = map[string]timestamp.Formatter{}
)

// RegisterFormatter installs a named custom formatter that render requests
// can select instead of template formatting. Registering nil removes it.
func RegisterFormatter(name string, f timestamp.Formatter) {
	formattersMu.Lock()
	defer formattersMu.Unlock()

	if f == nil {
		delete(formatters, name)
		return
	}

	formatters[name] = f
}

func lookupFormatter(name string) timestamp.Formatter {
	formattersMu.RLock()
	defer formattersMu.RUnlock()

	return formatters[name]
}

func (s *serviceImpl) Render(ctx context.Context, kind model.Kind, req dto.RenderRequest) (res dto.RenderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Render")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !kind.Valid() {
		return res, failure.BadRequestFromString("unknown render surface: " + string(kind)) // nolint:wrapcheck
	}

	candidate := s.candidate(ctx, req)
	resolved := timezone.ResolveClient(candidate, timezone.Default())

	res.Timezone = resolved
	res.FallbackUsed = candidate == nil || resolved != *candidate

	layout := req.Format
	if layout == "" {
		layout = kind.Layout()
	}

	opts := timestamp.Options{
		Layout:     layout,
		Locale:     req.Locale,
		AppendZone: req.AppendZone,
	}

	if req.Formatter != "" {
		fn := lookupFormatter(req.Formatter)
		if fn == nil {
			return res, failure.BadRequestFromString("unknown formatter: " + req.Formatter) // nolint:wrapcheck
		}
		opts.Func = fn
	}

	text, err := timestamp.FormatValueWith(req.Value, resolved, opts)
	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to render timestamp")

		if failure.IsUnsupportedValue(err) {
			return res, err
		}

		return res, fmt.Errorf("failed to render timestamp: %w", err)
	}

	scope.SetAttributes(map[string]any{
		"render.kind":     string(kind),
		"render.timezone": resolved,
		"render.fallback": res.FallbackUsed,
	})

	res.Text = text

	return res, nil
}

// candidate picks the untrusted timezone source for this render: an explicit
// override wins, then the viewer session; nil means no per-viewer context
// exists, which resolution reports as its own condition.
func (s *serviceImpl) candidate(ctx context.Context, req dto.RenderRequest) *string {
	if req.Timezone != "" {
		return &req.Timezone
	}

	if req.SessionID == "" {
		return nil
	}

	sess, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		log.Warn().Err(err).Str("session_id", req.SessionID).Msg("failed to load viewer session")

		return nil
	}

	return &sess.Timezone
}
