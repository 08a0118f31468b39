package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"localtime/infras/otel"
	"localtime/internal/domains/session/model/dto"
	"localtime/internal/domains/session/service"
	"localtime/shared/constant"
	"localtime/shared/validator"
	"localtime/transport/http/response"
)

type Handler struct {
	service service.Session
	otel    otel.Otel
}

func New(service service.Session, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Register)
		routerGroup.Get("/{id}", handler.Get)
		routerGroup.Delete("/{id}", handler.Delete)
	})
}

// Register stores the browser-reported timezone for a new viewer session.
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterSessionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if req.UserAgent == "" {
		req.UserAgent = r.Header.Get(constant.RequestHeaderUserAgent)
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session registered for timezone " + req.Timezone)

	response.WithJSON(w, http.StatusCreated, res)
}

// Get returns a viewer session by its ID.
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Get")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	sess, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get session")

		response.WithError(w, err)

		return
	}

	res := dto.SessionResponse{}
	res.FromModel(sess)

	response.WithJSON(w, http.StatusOK, res)
}

// Delete removes a viewer session.
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Delete")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete session")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Session deleted successfully")
}
