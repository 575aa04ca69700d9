// Package calculator exposes the battery health estimator over HTTP.
package calculator

import (
	"encoding/json"
	"net/http"

	"github.com/kilianp07/fleethealth/core/estimator"
)

// EstimateRequest is the POST /api/calculator/estimate body. Model selects
// the estimation strategy; empty defaults to "linear".
type EstimateRequest struct {
	Model  string           `json:"model"`
	Inputs estimator.Inputs `json:"inputs"`
}

// EstimateResponse echoes the chosen model alongside the result.
type EstimateResponse struct {
	Model  string           `json:"model"`
	Result estimator.Result `json:"result"`
}

// NewEstimateHandler returns an HTTP handler running the health calculator
// via POST /api/calculator/estimate. Invalid inputs or an unknown model
// yield 400.
func NewEstimateHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req EstimateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		m, err := estimator.ModelByName(req.Model)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := req.Inputs.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		resp := EstimateResponse{Model: m.Name(), Result: m.Estimate(req.Inputs)}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// NewModelsHandler returns an HTTP handler listing the available estimator
// models via GET /api/calculator/models.
func NewModelsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(estimator.Models()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
