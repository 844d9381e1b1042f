package api

import (
	"encoding/json"
	"net/http"
	"time"

	"charterhub/skybroker/internal/common"
	"charterhub/skybroker/internal/models/dtos"
)

// QuoteHandler handles POST /quote
//
// @Summary      Price a charter flight on one jet
// @Description  Computes a binding quote for a specific jet on a route, including the full cost breakdown.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.QuoteRequest  true  "Quote payload"
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /quote [post]
func QuoteHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.QuoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid quote payload", http.StatusBadRequest)
			return
		}

		quote, err := deps.Services.Quotes.DirectQuote(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to compute quote", http.StatusBadRequest)
			return
		}

		deps.Metrics.QuotesComputedTotal.WithLabelValues("direct").Inc()
		common.RespondSuccess(w, initTime, "Quote computed", quote)
	}
}

// SimulateHandler handles POST /api/v1/pricing/simulate
//
// @Summary      Simulate pricing with explicit ferry figures
// @Description  Operator-facing pricing dry run. Accepts an explicit ferry distance and empty-leg flag, skips feasibility.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.SimulateRequest  true  "Simulation payload"
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/v1/pricing/simulate [post]
func SimulateHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SimulateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid simulation payload", http.StatusBadRequest)
			return
		}

		quote, err := deps.Services.Quotes.Simulate(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to simulate pricing", http.StatusBadRequest)
			return
		}

		deps.Metrics.QuotesComputedTotal.WithLabelValues("simulate").Inc()
		common.RespondSuccess(w, initTime, "Simulation computed", quote)
	}
}

// MatchHandler handles POST /match
//
// @Summary      Find the cheapest feasible jet for a route
// @Description  Scores every available jet for range, capacity and lead time and returns the cheapest, with an empty-leg opportunity when applicable.
// @Tags         Matching
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.MatchRequest  true  "Match payload"
// @Success      200  {object}  dtos.APIResponse
// @Failure      404  {object}  dtos.APIResponse
// @Router       /match [post]
func MatchHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.MatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid match payload", http.StatusBadRequest)
			return
		}

		result, err := deps.Services.Matcher.Match(r.Context(), req)
		if err != nil {
			deps.Metrics.MatchesTotal.WithLabelValues("no_jet").Inc()
			common.RespondError(w, initTime, err, "No jet available", http.StatusNotFound)
			return
		}

		deps.Metrics.MatchesTotal.WithLabelValues("matched").Inc()
		deps.Metrics.QuotesComputedTotal.WithLabelValues("match").Inc()
		deps.Metrics.MatchCandidates.Observe(float64(result.CandidatesPriced))
		common.RespondSuccess(w, initTime, "Jet matched", result)
	}
}
