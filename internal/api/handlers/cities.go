package handlers

import (
	"bytes"
	"net/http"
	"trainer-market-service/internal/adapters/export"
	"trainer-market-service/internal/api/dto"
	"trainer-market-service/internal/services"

	"go.uber.org/zap"
)

// CityHandler exposes read-only views of the market table.
type CityHandler struct {
	Explorer *services.Explorer
}

// List returns the full enriched table in dataset order.
func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	res := dto.ListCitiesResponse{Cities: dto.CitiesFromDomain(h.Explorer.Cities())}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *CityHandler) States(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.StatesResponse{States: h.Explorer.States()})
}

func (h *CityHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s := h.Explorer.Summary()
	writeJSON(w, r, http.StatusOK, dto.SummaryResponse{
		CityCount:        s.CityCount,
		States:           s.States,
		MedianGyms:       s.MedianGyms,
		MedianTrainers:   s.MedianTrainers,
		MedianCrimeIndex: s.MedianCrimeIndex,
	})
}

// Recommendations returns the fixed shortlist. It never depends on filter input.
// An empty shortlist is a 200 with a notice, not an error.
func (h *CityHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	recs := h.Explorer.Recommendations()

	res := dto.RecommendationsResponse{Recommendations: dto.CitiesFromDomain(recs)}
	if len(recs) == 0 {
		res.Notice = services.NoRecommendationsNotice
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Export streams the full table as an XLSX workbook.
func (h *CityHandler) Export(w http.ResponseWriter, r *http.Request) {
	// Buffer first so a failed write can still produce a JSON error.
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, h.Explorer.Cities()); err != nil {
		zap.L().Error("export cities failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="cities.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		zap.L().Warn("write export response failed", zap.Error(err))
	}
}
