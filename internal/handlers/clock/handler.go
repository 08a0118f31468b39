package clock

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"localtime/infras/otel"
	"localtime/internal/domains/clock/model"
	"localtime/internal/domains/clock/model/dto"
	"localtime/internal/domains/clock/service"
	"localtime/shared/constant"
	"localtime/shared/failure"
	"localtime/transport/http/response"
)

type Handler struct {
	service service.Clock
	otel    otel.Otel
}

func New(service service.Clock, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clock", func(routerGroup chi.Router) {
		routerGroup.Get("/datetime", handler.RenderDatetime)
		routerGroup.Get("/date", handler.RenderDate)
		routerGroup.Get("/time", handler.RenderTime)
	})
}

// RenderDatetime renders the timestamp as a local date and time for the viewer.
func (handler *Handler) RenderDatetime(w http.ResponseWriter, r *http.Request) {
	handler.render(w, r, model.KindDatetime)
}

// RenderDate renders the timestamp as a local calendar date for the viewer.
func (handler *Handler) RenderDate(w http.ResponseWriter, r *http.Request) {
	handler.render(w, r, model.KindDate)
}

// RenderTime renders the timestamp as a local clock time for the viewer.
func (handler *Handler) RenderTime(w http.ResponseWriter, r *http.Request) {
	handler.render(w, r, model.KindTime)
}

func (handler *Handler) render(w http.ResponseWriter, r *http.Request, kind model.Kind) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Render")
	defer scope.End()

	req := requestFromQuery(r)

	res, err := handler.service.Render(ctx, kind, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to render clock value")

		// Wrong kind of data is shown inline where the value would have
		// been; everything else is a regular error payload.
		if failure.IsUnsupportedValue(err) {
			response.WithInlineError(w, err)

			return
		}

		response.WithError(w, err)

		return
	}

	w.Header().Set(constant.RequestHeaderTimezone, res.Timezone)

	response.WithText(w, http.StatusOK, res.Text)
}

func requestFromQuery(r *http.Request) dto.RenderRequest {
	query := r.URL.Query()

	req := dto.RenderRequest{
		Format:    query.Get(constant.RequestParamFormat),
		Formatter: query.Get("formatter"),
		Locale:    query.Get("locale"),
	}

	if abbrev, err := strconv.ParseBool(query.Get(constant.RequestParamAbbrev)); err == nil {
		req.AppendZone = abbrev
	}

	req.Timezone = query.Get(constant.RequestParamTimezone)
	if req.Timezone == "" {
		req.Timezone = r.Header.Get(constant.RequestHeaderTimezone)
	}

	req.SessionID = query.Get(constant.RequestParamSession)
	if req.SessionID == "" {
		req.SessionID = r.Header.Get(constant.RequestHeaderSessionID)
	}

	req.Value = valueFromQuery(query)

	return req
}

// valueFromQuery maps the "at" parameter to a render value: absent means the
// current instant, present but empty means no value, an integer is epoch
// seconds, anything else is passed through for RFC 3339 parsing downstream.
func valueFromQuery(query url.Values) any {
	if !query.Has(constant.RequestParamAt) {
		return time.Now().UTC()
	}

	raw := query.Get(constant.RequestParamAt)
	if raw == "" {
		return nil
	}

	if epoch, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return epoch
	}

	return raw
}
