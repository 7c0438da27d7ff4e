package api

import (
	"net/http"

	"github.com/safar/go-shop-api/internal/store"
)

func (s *Server) TotalRevenue(w http.ResponseWriter, r *http.Request) {
	total, err := store.TotalRevenue(r.Context(), s.db)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"total_revenue": total})
}

func (s *Server) ProductRevenue(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	total, err := store.ProductRevenue(r.Context(), s.db, id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"total_revenue": total})
}
