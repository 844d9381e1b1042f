package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"charterhub/skybroker/internal/auth"
	"charterhub/skybroker/internal/common"
	"charterhub/skybroker/internal/constants"
	"charterhub/skybroker/internal/models/dtos"
	"charterhub/skybroker/internal/models/gorm"
)

// CreateJetHandler handles POST /api/v1/jets
//
// @Summary      Add a jet to the fleet
// @Tags         Fleet
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.JetRequest  true  "Jet payload"
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/v1/jets [post]
func CreateJetHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetOperatorClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.JetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid jet payload", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.Type == "" || req.Seats <= 0 || req.RangeKm <= 0 {
			common.RespondError(w, initTime, nil, "Name, type, seats and range are required", http.StatusBadRequest)
			return
		}

		jet := &gorm.Jet{
			ID:               uuid.New().String(),
			CompanyID:        claims.CompanyID(),
			Name:             req.Name,
			Type:             req.Type,
			Seats:            req.Seats,
			RangeKm:          req.RangeKm,
			Status:           gorm.JetStatusAvailable,
			HomeBaseIATA:     common.NormalizeIATA(req.HomeBaseIATA),
			PricePerHour:     req.PricePerHour,
			MinBookingPrice:  req.MinBookingPrice,
			LeadTimeHours:    req.LeadTimeHours,
			AllowEmptyLegs:   req.AllowEmptyLegs,
			EmptyLegDiscount: req.EmptyLegDiscount,
		}

		// New aircraft start at their home base when it is a known airport.
		if jet.HomeBaseIATA != "" {
			if home, err := deps.Services.Airports.Lookup(r.Context(), jet.HomeBaseIATA); err == nil && home != nil {
				jet.CurrentIATA = home.IATA
				jet.CurrentLat = &home.Latitude
				jet.CurrentLng = &home.Longitude
			}
		}

		if err := deps.Repo.Jets.Create(r.Context(), jet); err != nil {
			common.RespondError(w, initTime, err, "Failed to create jet", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Jet created", jet)
	}
}

// UpdateJetHandler handles PUT /api/v1/jets/{jet_id}
func UpdateJetHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetOperatorClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		jet, ok := ownedJet(w, r, deps, claims, initTime)
		if !ok {
			return
		}

		var req dtos.JetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid jet payload", http.StatusBadRequest)
			return
		}

		if req.Name != "" {
			jet.Name = req.Name
		}
		if req.Type != "" {
			jet.Type = req.Type
		}
		if req.Seats > 0 {
			jet.Seats = req.Seats
		}
		if req.RangeKm > 0 {
			jet.RangeKm = req.RangeKm
		}
		if req.HomeBaseIATA != "" {
			jet.HomeBaseIATA = common.NormalizeIATA(req.HomeBaseIATA)
		}
		jet.PricePerHour = req.PricePerHour
		jet.MinBookingPrice = req.MinBookingPrice
		jet.LeadTimeHours = req.LeadTimeHours
		jet.AllowEmptyLegs = req.AllowEmptyLegs
		jet.EmptyLegDiscount = req.EmptyLegDiscount

		if err := deps.Repo.Jets.Update(r.Context(), jet); err != nil {
			common.RespondError(w, initTime, err, "Failed to update jet", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Jet updated", jet)
	}
}

// DeleteJetHandler handles DELETE /api/v1/jets/{jet_id}
func DeleteJetHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetOperatorClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		jet, ok := ownedJet(w, r, deps, claims, initTime)
		if !ok {
			return
		}

		if err := deps.Repo.Jets.Delete(r.Context(), jet.ID); err != nil {
			common.RespondError(w, initTime, err, "Failed to delete jet", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Jet deleted", nil)
	}
}

// ListCompanyJetsHandler handles GET /api/v1/jets
func ListCompanyJetsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetOperatorClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		jets, err := deps.Repo.Jets.ListByCompany(r.Context(), claims.CompanyID())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list jets", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Jets fetched", jets)
	}
}

// UpdateJetPositionHandler handles POST /api/v1/jets/{jet_id}/position
//
// Manual position feed for operators without live tracking. Runs the
// same landing-detection path as the position worker when one is
// configured.
func UpdateJetPositionHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetOperatorClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		jet, ok := ownedJet(w, r, deps, claims, initTime)
		if !ok {
			return
		}

		var req dtos.PositionUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid position payload", http.StatusBadRequest)
			return
		}

		sample := dtos.JetPosition{
			JetID:          jet.ID,
			Lat:            req.Lat,
			Lng:            req.Lng,
			GroundSpeedKts: req.GroundSpeedKts,
			AltitudeFt:     req.AltitudeFt,
		}
		if err := deps.Workers.Position.ApplySample(r.Context(), sample); err != nil {
			common.RespondError(w, initTime, err, "Failed to update position", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Position updated", nil)
	}
}

// ownedJet loads the path jet and verifies it belongs to the caller's
// company.
func ownedJet(w http.ResponseWriter, r *http.Request, deps *Dependencies, claims auth.OperatorClaims, initTime time.Time) (*gorm.Jet, bool) {
	jetID := chi.URLParam(r, "jet_id")
	jet, err := deps.Repo.Jets.GetByID(r.Context(), jetID)
	if err != nil {
		common.RespondError(w, initTime, err, "Failed to fetch jet", http.StatusInternalServerError)
		return nil, false
	}
	if jet == nil {
		common.RespondError(w, initTime, nil, constants.ErrJetNotFound, http.StatusNotFound)
		return nil, false
	}
	if jet.CompanyID != claims.CompanyID() {
		common.RespondError(w, initTime, nil, "Jet belongs to another company", http.StatusForbidden)
		return nil, false
	}
	return jet, true
}
