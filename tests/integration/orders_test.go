package integration

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/safar/go-shop-api/internal/database"
	"github.com/safar/go-shop-api/internal/models"
	"github.com/safar/go-shop-api/internal/store"
	"github.com/shopspring/decimal"
)

func createTestUser(t *testing.T, db *sql.DB, email string) *models.User {
	t.Helper()
	user, err := store.CreateUser(context.Background(), db, email, "not-a-real-hash", false, true)
	if err != nil {
		t.Fatalf("Create user: %v", err)
	}
	return user
}

func TestPlaceOrderScenario(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "buyer@example.com")

	product, err := store.CreateProduct(ctx, db, "Headphones", decimal.RequireFromString("10.75"), 20, "No details")
	if err != nil {
		t.Fatalf("Create product: %v", err)
	}

	order, err := store.PlaceOrder(ctx, db, user.ID, product.ID, 10)
	if err != nil {
		t.Fatalf("Place order: %v", err)
	}

	wantRevenue := decimal.RequireFromString("107.5")
	if !order.Revenue.Equal(wantRevenue) {
		t.Errorf("Expected revenue %s, got %s", wantRevenue, order.Revenue)
	}

	remain, err := store.RemainInStock(ctx, db, product.ID)
	if err != nil {
		t.Fatalf("Remain in stock: %v", err)
	}
	if remain != 10 {
		t.Errorf("Expected remaining stock 10, got %d", remain)
	}

	// Second order asks for more than the 10 units left.
	_, err = store.PlaceOrder(ctx, db, user.ID, product.ID, 15)
	if !errors.Is(err, database.ErrStockViolation) {
		t.Errorf("Expected stock violation, got: %v", err)
	}

	remain, err = store.RemainInStock(ctx, db, product.ID)
	if err != nil {
		t.Fatalf("Remain in stock: %v", err)
	}
	if remain != 10 {
		t.Errorf("Rejected order must not change stock, got %d", remain)
	}

	purchased, err := store.TotalPurchasedQuantity(ctx, db, product.ID)
	if err != nil {
		t.Fatalf("Total purchased quantity: %v", err)
	}
	if purchased != 10 {
		t.Errorf("Expected one persisted order of 10 units, got %d", purchased)
	}
}

func TestPlaceOrderDepletesStockExactly(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "depleter@example.com")

	product, err := store.CreateProduct(ctx, db, "Poster", decimal.NewFromInt(5), 3, "")
	if err != nil {
		t.Fatalf("Create product: %v", err)
	}

	// Ordering exactly the remaining stock is allowed.
	if _, err := store.PlaceOrder(ctx, db, user.ID, product.ID, 3); err != nil {
		t.Fatalf("Place depleting order: %v", err)
	}

	remain, err := store.RemainInStock(ctx, db, product.ID)
	if err != nil {
		t.Fatalf("Remain in stock: %v", err)
	}
	if remain != 0 {
		t.Errorf("Expected remaining stock 0, got %d", remain)
	}

	// Exhausted stock rejects even a single unit.
	_, err = store.PlaceOrder(ctx, db, user.ID, product.ID, 1)
	if !errors.Is(err, database.ErrStockViolation) {
		t.Errorf("Expected stock violation on exhausted stock, got: %v", err)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "validator@example.com")

	product, err := store.CreateProduct(ctx, db, "Pen", decimal.NewFromInt(2), 10, "")
	if err != nil {
		t.Fatalf("Create product: %v", err)
	}

	var fields database.FieldErrors
	_, err = store.PlaceOrder(ctx, db, user.ID, product.ID, 0)
	if !errors.As(err, &fields) {
		t.Errorf("Expected field validation error for zero quantity, got: %v", err)
	}

	_, err = store.PlaceOrder(ctx, db, user.ID, product.ID, -2)
	if !errors.As(err, &fields) {
		t.Errorf("Expected field validation error for negative quantity, got: %v", err)
	}

	_, err = store.PlaceOrder(ctx, db, user.ID, 999999, 1)
	if !errors.Is(err, database.ErrProductNotFound) {
		t.Errorf("Expected product not found, got: %v", err)
	}
}

func TestRevenueFixedAtCreation(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "pricewatch@example.com")

	product, err := store.CreateProduct(ctx, db, "Keyboard", decimal.RequireFromString("30.00"), 50, "")
	if err != nil {
		t.Fatalf("Create product: %v", err)
	}

	order, err := store.PlaceOrder(ctx, db, user.ID, product.ID, 2)
	if err != nil {
		t.Fatalf("Place order: %v", err)
	}
	if !order.Revenue.Equal(decimal.RequireFromString("60")) {
		t.Errorf("Expected revenue 60, got %s", order.Revenue)
	}

	// Raising the price afterwards must not touch existing revenue.
	_, err = store.UpdateProduct(ctx, db, product.ID, product.Name, decimal.RequireFromString("99.99"), product.Quantity, product.Description)
	if err != nil {
		t.Fatalf("Update product: %v", err)
	}

	reloaded, err := store.GetOrder(ctx, db, order.ID)
	if err != nil {
		t.Fatalf("Get order: %v", err)
	}
	if !reloaded.Revenue.Equal(decimal.RequireFromString("60")) {
		t.Errorf("Revenue changed after price update: %s", reloaded.Revenue)
	}
}

func TestConcurrentDepletingOrders(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userA := createTestUser(t, db, "race-a@example.com")
	userB := createTestUser(t, db, "race-b@example.com")

	product, err := store.CreateProduct(ctx, db, "Limited Run", decimal.NewFromInt(100), 5, "")
	if err != nil {
		t.Fatalf("Create product: %v", err)
	}

	// Both buyers try to take the whole remaining stock at once; exactly
	// one may succeed.
	var wg sync.WaitGroup
	results := make(chan error, 2)
	for _, buyer := range []int64{userA.ID, userB.ID} {
		wg.Add(1)
		go func(buyerID int64) {
			defer wg.Done()
			_, err := store.PlaceOrder(ctx, db, buyerID, product.ID, 5)
			results <- err
		}(buyer)
	}
	wg.Wait()
	close(results)

	successes, violations := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, database.ErrStockViolation):
			violations++
		default:
			t.Errorf("Unexpected error: %v", err)
		}
	}

	if successes != 1 || violations != 1 {
		t.Errorf("Expected exactly one success and one rejection, got %d/%d", successes, violations)
	}

	remain, err := store.RemainInStock(ctx, db, product.ID)
	if err != nil {
		t.Fatalf("Remain in stock: %v", err)
	}
	if remain != 0 {
		t.Errorf("Expected remaining stock 0, got %d", remain)
	}
}

func TestListOrdersByBuyer(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	buyer := createTestUser(t, db, "lister@example.com")
	other := createTestUser(t, db, "other@example.com")

	product, err := store.CreateProduct(ctx, db, "Notebook", decimal.NewFromInt(3), 100, "")
	if err != nil {
		t.Fatalf("Create product: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := store.PlaceOrder(ctx, db, buyer.ID, product.ID, 1); err != nil {
			t.Fatalf("Place order %d: %v", i, err)
		}
	}
	if _, err := store.PlaceOrder(ctx, db, other.ID, product.ID, 1); err != nil {
		t.Fatalf("Place other's order: %v", err)
	}

	orders, err := store.ListOrdersByBuyer(ctx, db, buyer.ID)
	if err != nil {
		t.Fatalf("List orders: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("Expected 3 orders, got %d", len(orders))
	}
	for _, order := range orders {
		if order.BuyerID != buyer.ID {
			t.Errorf("Order %d belongs to buyer %d", order.ID, order.BuyerID)
		}
		if order.Product == nil || order.Product.ID != product.ID {
			t.Errorf("Order %d missing its product", order.ID)
		}
	}
}
