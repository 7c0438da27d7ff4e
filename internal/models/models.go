package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	IsStaff         bool      `json:"is_staff"`
	IsTermsAccepted bool      `json:"is_terms_accepted"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Product prices are denominated in EUR. Quantity is the total units ever
// stocked; remaining stock is derived from orders, never decremented here.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Set only when the caller asked for a currency conversion; presentation
	// data, never persisted.
	DisplayedPrice    *decimal.Decimal `json:"displayed_price,omitempty"`
	DisplayedCurrency string           `json:"displayed_currency,omitempty"`
}

// Order revenue is fixed at creation as price * quantity and never updated,
// even if the product price changes later.
type Order struct {
	ID        int64           `json:"id"`
	BuyerID   int64           `json:"buyer"`
	ProductID int64           `json:"-"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Product *Product `json:"product,omitempty"`

	DisplayedRevenue  *decimal.Decimal `json:"displayed_revenue,omitempty"`
	DisplayedCurrency string           `json:"displayed_currency,omitempty"`
}
