package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// TotalRevenue sums revenue across every order; zero orders read as zero.
func TotalRevenue(ctx context.Context, db *sql.DB) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(revenue), 0) FROM orders`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total revenue: %w", err)
	}
	return total, nil
}

// ProductRevenue sums revenue across one product's orders. The product must
// exist; a product with no orders yields zero.
func ProductRevenue(ctx context.Context, db *sql.DB, productID int64) (decimal.Decimal, error) {
	if _, err := GetProduct(ctx, db, productID); err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	err := db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(revenue), 0) FROM orders WHERE product_id = $1`,
		productID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("product revenue: %w", err)
	}
	return total, nil
}
