package handler

import (
	"encoding/json"
	"net/http"

	"airseat/internal/bookings/service"
	"airseat/internal/bookings/validator"
	apperrors "airseat/pkg/errors"
	httputil "airseat/pkg/http"
	"airseat/pkg/logger"
	"airseat/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service   service.BookingService
	validator *validator.BookingValidator
	log       *logger.Logger
}

func NewBookingHandler(service service.BookingService, validator *validator.BookingValidator, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service:   service,
		validator: validator,
		log:       log,
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Book)
}

// Book attempts a booking. A rejected booking is an ordinary outcome
// and answers 200 with booked=false; only infrastructure faults map to
// error statuses.
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.log.Warn("Booking request validation failed", "error", err)
		httputil.WriteError(w, apperrors.Validation("Invalid booking request", map[string]any{
			"error": err.Error(),
		}))
		return
	}

	booked, err := h.service.BookFlight(r.Context(), req.FlightID, req.SeatID, req.Buyer)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, model.BookingResult{
		Booked: booked,
		Buyer:  req.Buyer,
	})
}
