package database

import (
	"errors"
	"testing"

	"geosolar-backoffice/internal/apperrors"
)

func TestUpsertStockRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "PANEL-300", "250.00")

	item, err := UpsertStock(db, product.ID, "main-warehouse", 40, 10)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if item.Quantity != 40 || item.MinStockLevel != 10 {
		t.Fatalf("unexpected row: %+v", item)
	}

	qty, err := GetQuantity(db, product.ID, "main-warehouse")
	if err != nil {
		t.Fatalf("get quantity: %v", err)
	}
	if qty != 40 {
		t.Errorf("quantity = %d, want 40", qty)
	}

	// getQuantity is idempotent: no intervening write, same answer
	again, err := GetQuantity(db, product.ID, "main-warehouse")
	if err != nil || again != qty {
		t.Errorf("second read = %d (%v), want %d", again, err, qty)
	}

	// Upsert replaces, it does not add
	if _, err := UpsertStock(db, product.ID, "main-warehouse", 15, 5); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	qty, _ = GetQuantity(db, product.ID, "main-warehouse")
	if qty != 15 {
		t.Errorf("quantity after replace = %d, want 15", qty)
	}
}

func TestUpsertStockUnknownProduct(t *testing.T) {
	db := setupTestDB(t)

	_, err := UpsertStock(db, 9999, "main-warehouse", 10, 2)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestGetQuantityMissingRow(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "PANEL-301", "250.00")

	_, err := GetQuantity(db, product.ID, "nowhere")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestDecrementStockNoFloor(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "INV-500", "100.00")
	if _, err := UpsertStock(db, product.ID, "shop", 5, 2); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		found, err := DecrementStock(db, product.ID, 3)
		if err != nil {
			t.Fatalf("decrement %d: %v", i, err)
		}
		if !found {
			t.Fatalf("decrement %d: row not found", i)
		}
	}

	// 5 - 3 - 3 = -1: overselling is recorded, not clamped
	qty, err := GetQuantity(db, product.ID, "shop")
	if err != nil {
		t.Fatal(err)
	}
	if qty != -1 {
		t.Errorf("quantity = %d, want -1", qty)
	}
}

func TestDecrementStockMissingRow(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "SRV-01", "80.00")

	found, err := DecrementStock(db, product.ID, 2)
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if found {
		t.Error("expected found=false for a product with no inventory row")
	}
}

func TestListLowStockOrdering(t *testing.T) {
	db := setupTestDB(t)
	a := seedProduct(t, db, "LOW-A", "10.00")
	b := seedProduct(t, db, "LOW-B", "10.00")
	c := seedProduct(t, db, "OK-C", "10.00")

	if _, err := UpsertStock(db, a.ID, "shop", 3, 5); err != nil {
		t.Fatal(err)
	}
	if _, err := UpsertStock(db, b.ID, "shop", 1, 5); err != nil {
		t.Fatal(err)
	}
	if _, err := UpsertStock(db, c.ID, "shop", 10, 2); err != nil {
		t.Fatal(err)
	}

	items, err := ListLowStock(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("low stock rows = %d, want 2", len(items))
	}
	if items[0].ProductID != b.ID || items[1].ProductID != a.ID {
		t.Errorf("wrong order: got products %d, %d", items[0].ProductID, items[1].ProductID)
	}
}
