package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/go-shop-api/internal/database"
	"github.com/safar/go-shop-api/internal/models"
	"github.com/shopspring/decimal"
)

// PlaceOrder creates one order for buyerID against productID.
//
// The read-check-write sequence runs in a retrying serializable transaction
// with the product row locked FOR UPDATE, so two concurrent placements
// against the same product cannot both observe sufficient stock. Stock is
// never stored as a counter; it is recomputed from prior orders under the
// lock. Revenue is fixed here as price * quantity and never touched again.
func PlaceOrder(ctx context.Context, db *sql.DB, buyerID, productID int64, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return nil, database.FieldErrors{"quantity": {"A valid positive integer is required."}}
	}

	var order *models.Order

	err := database.WithRetry(ctx, db, database.SerializableTxOptions(), func(tx *sql.Tx) error {
		product := &models.Product{}
		err := tx.QueryRowContext(ctx, `
			SELECT `+productColumns+`
			FROM products
			WHERE id = $1
			FOR UPDATE`,
			productID).Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Quantity,
			&product.Description,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			if err == sql.ErrNoRows {
				return database.ErrProductNotFound
			}
			return fmt.Errorf("lock product: %w", err)
		}

		var purchased int
		err = tx.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(quantity), 0) FROM orders WHERE product_id = $1`,
			productID).Scan(&purchased)
		if err != nil {
			return fmt.Errorf("sum purchased quantity: %w", err)
		}

		remain := product.Quantity - purchased
		if remain <= 0 || remain < quantity {
			return database.ErrStockViolation
		}

		revenue := product.Price.Mul(decimal.NewFromInt(int64(quantity)))

		order = &models.Order{
			BuyerID:   buyerID,
			ProductID: productID,
			Quantity:  quantity,
			Revenue:   revenue,
			Product:   product,
		}
		err = tx.QueryRowContext(ctx, `
			INSERT INTO orders (buyer_id, product_id, quantity, revenue, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			RETURNING id, created_at, updated_at`,
			buyerID, productID, quantity, revenue).Scan(
			&order.ID,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

const orderColumns = `o.id, o.buyer_id, o.product_id, o.quantity, o.revenue, o.created_at, o.updated_at`

func GetOrder(ctx context.Context, db *sql.DB, id int64) (*models.Order, error) {
	order := &models.Order{Product: &models.Product{}}

	query := `
		SELECT ` + orderColumns + `,
		       p.id, p.name, p.price, p.quantity, p.description, p.created_at, p.updated_at
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE o.id = $1`

	err := db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.BuyerID,
		&order.ProductID,
		&order.Quantity,
		&order.Revenue,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.Product.ID,
		&order.Product.Name,
		&order.Product.Price,
		&order.Product.Quantity,
		&order.Product.Description,
		&order.Product.CreatedAt,
		&order.Product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	return order, nil
}

// ListOrdersByBuyer returns a buyer's orders with their products attached,
// newest first.
func ListOrdersByBuyer(ctx context.Context, db *sql.DB, buyerID int64) ([]models.Order, error) {
	query := `
		SELECT ` + orderColumns + `,
		       p.id, p.name, p.price, p.quantity, p.description, p.created_at, p.updated_at
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE o.buyer_id = $1
		ORDER BY o.created_at DESC, o.id DESC`

	rows, err := db.QueryContext(ctx, query, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order := models.Order{Product: &models.Product{}}
		err := rows.Scan(
			&order.ID,
			&order.BuyerID,
			&order.ProductID,
			&order.Quantity,
			&order.Revenue,
			&order.CreatedAt,
			&order.UpdatedAt,
			&order.Product.ID,
			&order.Product.Name,
			&order.Product.Price,
			&order.Product.Quantity,
			&order.Product.Description,
			&order.Product.CreatedAt,
			&order.Product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return orders, nil
}
