package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/safar/go-shop-api/internal/currency"
	"github.com/safar/go-shop-api/internal/database"
	"github.com/safar/go-shop-api/internal/store"
	"github.com/shopspring/decimal"
)

// currencyParam reports whether the caller asked for a conversion and the
// normalized code. A present key always counts as a request, even with an
// empty or junk value; the gateway rejects what it doesn't recognize.
func currencyParam(r *http.Request) (string, bool) {
	if !r.URL.Query().Has("currency") {
		return "", false
	}
	return currency.Normalize(r.URL.Query().Get("currency")), true
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := store.ListProducts(r.Context(), s.db)
	if err != nil {
		respondError(w, err)
		return
	}

	if code, ok := currencyParam(r); ok {
		// One rate fetch for the whole batch, multiplied across rows.
		rate, err := s.rates.FetchRate(r.Context(), code)
		if err != nil {
			respondError(w, err)
			return
		}
		for i := range products {
			converted := products[i].Price.Mul(rate)
			products[i].DisplayedPrice = &converted
			products[i].DisplayedCurrency = code
		}
	}

	respondJSON(w, http.StatusOK, products)
}

func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := store.GetProduct(r.Context(), s.db, id)
	if err != nil {
		respondError(w, err)
		return
	}

	if code, ok := currencyParam(r); ok {
		converted, err := s.rates.FetchRate(r.Context(), code)
		if err != nil {
			respondError(w, err)
			return
		}
		displayed := product.Price.Mul(converted)
		product.DisplayedPrice = &displayed
		product.DisplayedCurrency = code
	}

	respondJSON(w, http.StatusOK, product)
}

type productRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Description string           `json:"description"`
}

func (req *productRequest) validate() database.FieldErrors {
	fields := database.FieldErrors{}
	if req.Price == nil {
		fields["price"] = []string{"This field is required."}
	} else if req.Price.IsNegative() {
		fields["price"] = []string{"A non-negative number is required."}
	}
	if req.Name == nil || *req.Name == "" {
		fields["name"] = []string{"This field is required."}
	}
	if req.Quantity == nil {
		fields["quantity"] = []string{"This field is required."}
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}

func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := req.validate(); fields != nil {
		respondError(w, fields)
		return
	}

	product, err := store.CreateProduct(r.Context(), s.db, *req.Name, *req.Price, *req.Quantity, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

func (s *Server) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := req.validate(); fields != nil {
		respondError(w, fields)
		return
	}

	if _, err := store.UpdateProduct(r.Context(), s.db, id, *req.Name, *req.Price, *req.Quantity, req.Description); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := store.DeleteProduct(r.Context(), s.db, id); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
