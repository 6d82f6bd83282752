package handler

import (
	"net/http"

	"airseat/internal/routes/service"
	httputil "airseat/pkg/http"
	"airseat/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type RouteHandler struct {
	service service.RouteService
	log     *logger.Logger
}

func NewRouteHandler(service service.RouteService, log *logger.Logger) *RouteHandler {
	return &RouteHandler{
		service: service,
		log:     log,
	}
}

func (h *RouteHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/airports/:code/flights", h.FlightsFrom)
	router.GET("/api/v1/routes/:departure/:arrival/seats", h.AvailableSeats)
}

func (h *RouteHandler) FlightsFrom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	code := ps.ByName("code")

	flights, err := h.service.FlightsFrom(r.Context(), code)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, flights)
}

func (h *RouteHandler) AvailableSeats(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	departure := ps.ByName("departure")
	arrival := ps.ByName("arrival")

	seats, err := h.service.AvailableSeats(r.Context(), departure, arrival)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, seats)
}
