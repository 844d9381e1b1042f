package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"charterhub/skybroker/internal/auth"
	"charterhub/skybroker/internal/common"
	"charterhub/skybroker/internal/constants"
	"charterhub/skybroker/internal/models/dtos"
	"charterhub/skybroker/internal/models/gorm"
)

func toBookingResponse(b *gorm.Booking) dtos.BookingResponse {
	return dtos.BookingResponse{
		ID:            b.ID,
		JetID:         b.JetID,
		CompanyID:     b.CompanyID,
		CustomerEmail: b.CustomerEmail,
		FromIATA:      b.FromIATA,
		ToIATA:        b.ToIATA,
		DepartureDate: b.DepartureDate,
		Passengers:    b.Passengers,
		Status:        b.Status,
		TotalPrice:    b.TotalPrice,
	}
}

// CreateBookingHandler handles POST /bookings
//
// @Summary      Create a charter booking
// @Description  Prices the requested flight and stores a pending booking awaiting operator review.
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.BookingRequest  true  "Booking payload"
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /bookings [post]
func CreateBookingHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid booking payload", http.StatusBadRequest)
			return
		}

		booking, err := deps.Services.Bookings.Create(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create booking", http.StatusBadRequest)
			return
		}

		deps.Metrics.BookingsTotal.WithLabelValues(booking.Status).Inc()
		resp := toBookingResponse(booking)
		common.RespondSuccess(w, initTime, "Booking created", &resp)
	}
}

// AcceptBookingHandler handles POST /api/v1/bookings/{booking_id}/accept
func AcceptBookingHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		bookingID, ok := ownedBooking(w, r, deps, initTime)
		if !ok {
			return
		}

		booking, err := deps.Services.Bookings.Accept(r.Context(), bookingID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to accept booking", http.StatusBadRequest)
			return
		}

		deps.Metrics.BookingsTotal.WithLabelValues(booking.Status).Inc()
		resp := toBookingResponse(booking)
		common.RespondSuccess(w, initTime, "Booking accepted", &resp)
	}
}

// RejectBookingHandler handles POST /api/v1/bookings/{booking_id}/reject
func RejectBookingHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		bookingID, ok := ownedBooking(w, r, deps, initTime)
		if !ok {
			return
		}

		booking, err := deps.Services.Bookings.Reject(r.Context(), bookingID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to reject booking", http.StatusBadRequest)
			return
		}

		deps.Metrics.BookingsTotal.WithLabelValues(booking.Status).Inc()
		resp := toBookingResponse(booking)
		common.RespondSuccess(w, initTime, "Booking rejected", &resp)
	}
}

// ownedBooking loads the path booking and verifies it belongs to the
// caller's company before any transition runs.
func ownedBooking(w http.ResponseWriter, r *http.Request, deps *Dependencies, initTime time.Time) (string, bool) {
	claims := auth.GetOperatorClaims(r.Context())
	if claims == nil {
		common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
		return "", false
	}

	bookingID := chi.URLParam(r, "booking_id")
	booking, err := deps.Repo.Bookings.GetByID(r.Context(), bookingID)
	if err != nil {
		common.RespondError(w, initTime, err, "Failed to fetch booking", http.StatusInternalServerError)
		return "", false
	}
	if booking == nil {
		common.RespondError(w, initTime, nil, constants.ErrBookingNotFound, http.StatusNotFound)
		return "", false
	}
	if booking.CompanyID != claims.CompanyID() {
		common.RespondError(w, initTime, nil, "Booking belongs to another company", http.StatusForbidden)
		return "", false
	}
	return booking.ID, true
}

// ListCompanyBookingsHandler handles GET /api/v1/bookings
func ListCompanyBookingsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetOperatorClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		bookings, err := deps.Repo.Bookings.ListForCompany(r.Context(), claims.CompanyID())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list bookings", http.StatusInternalServerError)
			return
		}

		resps := make([]dtos.BookingResponse, 0, len(bookings))
		for i := range bookings {
			resps = append(resps, toBookingResponse(&bookings[i]))
		}
		common.RespondSuccess(w, initTime, "Bookings fetched", resps)
	}
}
