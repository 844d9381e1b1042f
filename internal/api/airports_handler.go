package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"charterhub/skybroker/internal/common"
	"charterhub/skybroker/internal/constants"
	"charterhub/skybroker/internal/models/gorm"
)

// AirportImportRow is one airport in the bulk-import payload.
type AirportImportRow struct {
	IATA      string  `json:"iata"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GetAirportHandler handles GET /airports/{iata}
func GetAirportHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airport, err := deps.Services.Airports.Lookup(r.Context(), chi.URLParam(r, "iata"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch airport", http.StatusBadRequest)
			return
		}
		if airport == nil {
			common.RespondError(w, initTime, nil, constants.ErrAirportNotFound, http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Airport fetched", airport)
	}
}

// ImportAirportsHandler handles POST /api/v1/admin/airports/import
//
// @Summary      Bulk import airport reference data
// @Tags         Airports
// @Accept       json
// @Produce      json
// @Param        input  body  []api.AirportImportRow  true  "Airport rows"
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/v1/admin/airports/import [post]
func ImportAirportsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var rows []AirportImportRow
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
			common.RespondError(w, initTime, err, "Invalid airport payload", http.StatusBadRequest)
			return
		}

		airports := make([]gorm.Airport, 0, len(rows))
		for _, row := range rows {
			airports = append(airports, gorm.Airport{
				IATA:      row.IATA,
				City:      row.City,
				Country:   row.Country,
				Latitude:  row.Latitude,
				Longitude: row.Longitude,
			})
		}

		if err := deps.Services.Airports.Import(r.Context(), airports); err != nil {
			common.RespondError(w, initTime, err, "Failed to import airports", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Airports imported", map[string]int{"imported": len(airports)})
	}
}
