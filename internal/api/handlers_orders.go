package api

import (
	"encoding/json"
	"net/http"

	"github.com/safar/go-shop-api/internal/database"
	"github.com/safar/go-shop-api/internal/store"
)

func (s *Server) ListOrders(w http.ResponseWriter, r *http.Request) {
	buyer := claimsFrom(r)

	orders, err := store.ListOrdersByBuyer(r.Context(), s.db, buyer.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	if code, ok := currencyParam(r); ok {
		rate, err := s.rates.FetchRate(r.Context(), code)
		if err != nil {
			respondError(w, err)
			return
		}
		for i := range orders {
			converted := orders[i].Revenue.Mul(rate)
			orders[i].DisplayedRevenue = &converted
			orders[i].DisplayedCurrency = code
		}
	}

	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := store.GetOrder(r.Context(), s.db, id)
	if err != nil {
		respondError(w, err)
		return
	}

	if code, ok := currencyParam(r); ok {
		rate, err := s.rates.FetchRate(r.Context(), code)
		if err != nil {
			respondError(w, err)
			return
		}
		converted := order.Revenue.Mul(rate)
		order.DisplayedRevenue = &converted
		order.DisplayedCurrency = code
	}

	respondJSON(w, http.StatusOK, order)
}

type createOrderRequest struct {
	Product  *int64 `json:"product"`
	Quantity *int   `json:"quantity"`
}

func (s *Server) CreateOrder(w http.ResponseWriter, r *http.Request) {
	buyer := claimsFrom(r)

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Product == nil {
		respondError(w, database.RequiredField("product"))
		return
	}
	if req.Quantity == nil {
		respondError(w, database.RequiredField("quantity"))
		return
	}

	order, err := store.PlaceOrder(r.Context(), s.db, buyer.UserID, *req.Product, *req.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, order)
}
