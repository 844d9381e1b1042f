package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"charterhub/skybroker/internal/auth"
	"charterhub/skybroker/internal/common"
	"charterhub/skybroker/internal/models/dtos"
	"charterhub/skybroker/internal/models/gorm"
)

// ListEmptyLegsHandler handles GET /empty-legs
//
// @Summary      Browse active empty legs
// @Description  Lists all currently bookable discounted repositioning flights.
// @Tags         EmptyLegs
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Router       /empty-legs [get]
func ListEmptyLegsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		legs, err := deps.Services.EmptyLegs.ListActive(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list empty legs", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Empty legs fetched", legs)
	}
}

// CreateManualDealHandler handles POST /api/v1/empty-legs
//
// @Summary      Publish a manual empty leg
// @Description  Operator-entered hot deal on one of the company's own jets.
// @Tags         EmptyLegs
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.ManualDealRequest  true  "Deal payload"
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/v1/empty-legs [post]
func CreateManualDealHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetOperatorClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.ManualDealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid deal payload", http.StatusBadRequest)
			return
		}

		leg, err := deps.Services.EmptyLegs.CreateManual(r.Context(), claims.CompanyID(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create empty leg", http.StatusBadRequest)
			return
		}

		deps.Metrics.EmptyLegsCreatedTotal.WithLabelValues(gorm.EmptyLegSourceManual).Inc()
		common.RespondSuccess(w, initTime, "Empty leg created", leg)
	}
}

// BookEmptyLegHandler handles POST /empty-legs/{leg_id}/book
//
// @Summary      Book an empty leg
// @Description  Buys an active discounted repositioning flight at its published price.
// @Tags         EmptyLegs
// @Accept       json
// @Produce      json
// @Param        leg_id  path  string  true  "Empty leg id"
// @Param        input  body  dtos.EmptyLegBookingRequest  true  "Booking payload"
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /empty-legs/{leg_id}/book [post]
func BookEmptyLegHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.EmptyLegBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid booking payload", http.StatusBadRequest)
			return
		}

		booking, err := deps.Services.Bookings.BookEmptyLeg(r.Context(), chi.URLParam(r, "leg_id"), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to book empty leg", http.StatusBadRequest)
			return
		}

		deps.Metrics.BookingsTotal.WithLabelValues(booking.Status).Inc()
		resp := toBookingResponse(booking)
		common.RespondSuccess(w, initTime, "Empty leg booked", &resp)
	}
}

// DeactivateEmptyLegHandler handles DELETE /api/v1/empty-legs/{leg_id}
func DeactivateEmptyLegHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetOperatorClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		legID := chi.URLParam(r, "leg_id")
		leg, err := deps.Repo.EmptyLegs.GetByID(r.Context(), legID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch empty leg", http.StatusInternalServerError)
			return
		}
		if leg == nil {
			common.RespondError(w, initTime, nil, "Empty leg not found", http.StatusNotFound)
			return
		}
		if leg.CompanyID != claims.CompanyID() {
			common.RespondError(w, initTime, nil, "Empty leg belongs to another company", http.StatusForbidden)
			return
		}

		if err := deps.Repo.EmptyLegs.Deactivate(r.Context(), legID, "withdrawn by operator"); err != nil {
			common.RespondError(w, initTime, err, "Failed to deactivate empty leg", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Empty leg deactivated", nil)
	}
}
