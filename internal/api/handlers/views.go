package handlers

import (
	"errors"
	"io"
	"net/http"
	"trainer-market-service/internal/api/dto"
	"trainer-market-service/internal/domain"
	"trainer-market-service/internal/platform/validation"
	"trainer-market-service/internal/services"

	"github.com/goccy/go-json"
)

type ViewHandler struct {
	Explorer *services.Explorer
}

// View runs one filter interaction and returns all three data products:
// the filtered cities, the recommendation shortlist, and the match counts.
func (h *ViewHandler) View(w http.ResponseWriter, r *http.Request) {
	var req dto.ViewRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	// An empty body is the same as {}: every field takes its default.
	switch err := dec.Decode(&req); {
	case errors.Is(err, io.EOF):
	case err != nil:
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	default:
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
			return
		}
	}

	if verr := validation.ValidateStruct(req); verr != nil {
		writeError(w, r, http.StatusBadRequest, verr.Error())
		return
	}

	criteria, err := h.criteria(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	v := h.Explorer.View(r.Context(), criteria)

	res := dto.ViewResponse{
		Matched:         v.Matched,
		Total:           v.Total,
		Cities:          dto.CitiesFromDomain(v.Filtered),
		Recommendations: dto.CitiesFromDomain(v.Recommendations),
	}
	if len(v.Recommendations) == 0 {
		res.Notice = services.NoRecommendationsNotice
	}

	writeJSON(w, r, http.StatusOK, res)
}

// criteria fills omitted request fields with the control defaults.
func (h *ViewHandler) criteria(req dto.ViewRequest) (domain.FilterCriteria, error) {
	def := h.Explorer.DefaultCriteria()

	states := req.States
	if states == nil {
		states = h.Explorer.States()
	}

	maxCrime := def.MaxTotalCrimePer1k
	if req.MaxTotalCrimePer1k != nil {
		maxCrime = *req.MaxTotalCrimePer1k
	}

	lean, err := domain.ParseLeanFilter(req.Lean)
	if err != nil {
		return domain.FilterCriteria{}, err
	}

	return domain.NewFilterCriteria(states, maxCrime, lean), nil
}
