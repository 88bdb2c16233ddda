package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"geosolar-backoffice/internal/config"
	"geosolar-backoffice/internal/database"
	"geosolar-backoffice/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	cfg := config.Config{
		CORSOrigin: "http://localhost",
		UploadDir:  t.TempDir(),
	}
	return NewRouter(cfg)
}

func createStaff(t *testing.T, email, password, role string) {
	t.Helper()
	if _, err := database.CreateUser(database.DB, database.UserInput{Email: email, Password: password, Role: role}); err != nil {
		t.Fatalf("create %s: %v", email, err)
	}
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200 got %d body=%s", email, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return resp.Token
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/products", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	redirect, _ := resp["redirect_to"].(string)
	if !strings.HasPrefix(redirect, "/login?next=") {
		t.Errorf("redirect_to = %q, want login redirect with destination", redirect)
	}
}

func TestGuardDistinguishes401From403(t *testing.T) {
	r := setupRouter(t)
	createStaff(t, "cashier@geosolar.local", "password123", "CASHIER")
	token := login(t, r, "cashier@geosolar.local", "password123")

	// Cashier may not manage users: authenticated, so 403 with role detail
	w := doJSON(r, http.MethodGet, "/api/admin/users", token, "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["your_role"] != "CASHIER" {
		t.Errorf("your_role = %v, want CASHIER", resp["your_role"])
	}
	if resp["allowed_roles"] == nil {
		t.Error("allowed_roles missing from 403 response")
	}

	// Garbage token is 401, never 403
	w = doJSON(r, http.MethodGet, "/api/admin/users", "not-a-token", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("invalid token: expected 401, got %d", w.Code)
	}
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	r := setupRouter(t)
	createStaff(t, "admin@geosolar.local", "password123", "ADMIN")
	createStaff(t, "cashier@geosolar.local", "password123", "CASHIER")
	adminToken := login(t, r, "admin@geosolar.local", "password123")
	cashierToken := login(t, r, "cashier@geosolar.local", "password123")

	// Admin builds the catalog and stocks it
	w := doJSON(r, http.MethodPost, "/api/categories", adminToken, `{"name":"Solar Panels"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create category: %d %s", w.Code, w.Body.String())
	}
	var category models.Category
	if err := json.Unmarshal(w.Body.Bytes(), &category); err != nil {
		t.Fatal(err)
	}

	productBody := fmt.Sprintf(`{"name":"300W Panel","sku":"PNL-300","category_id":%d,"price":"100.00","cost_price":"60.00"}`, category.ID)
	w = doJSON(r, http.MethodPost, "/api/products", adminToken, productBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("create product: %d %s", w.Code, w.Body.String())
	}
	var product models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &product); err != nil {
		t.Fatal(err)
	}

	stockBody := fmt.Sprintf(`{"product_id":%d,"location":"main","quantity":10,"min_stock_level":2}`, product.ID)
	w = doJSON(r, http.MethodPut, "/api/inventory", adminToken, stockBody)
	if w.Code != http.StatusOK {
		t.Fatalf("upsert stock: %d %s", w.Code, w.Body.String())
	}

	// Cashier processes a sale
	saleBody := fmt.Sprintf(`{"items":[{"product_id":%d,"quantity":2,"unit_price":"100.00"}],"discount_percent":"10","tax_percent":"5","payment_method":"cash"}`, product.ID)
	w = doJSON(r, http.MethodPost, "/api/sales", cashierToken, saleBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("create sale: %d %s", w.Code, w.Body.String())
	}
	var sale models.Sale
	if err := json.Unmarshal(w.Body.Bytes(), &sale); err != nil {
		t.Fatal(err)
	}
	if sale.FinalAmount.String() != "189" {
		// 200 - 10% = 180, +5% tax = 189
		t.Errorf("final amount = %s, want 189", sale.FinalAmount)
	}

	// Stock moved with the sale
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/inventory/quantity?product_id=%d&location=main", product.ID), adminToken, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get quantity: %d %s", w.Code, w.Body.String())
	}
	var qty struct {
		Quantity int `json:"quantity"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &qty); err != nil {
		t.Fatal(err)
	}
	if qty.Quantity != 8 {
		t.Errorf("quantity = %d, want 8", qty.Quantity)
	}

	// Cashier cannot restock
	w = doJSON(r, http.MethodPut, "/api/inventory", cashierToken, stockBody)
	if w.Code != http.StatusForbidden {
		t.Errorf("cashier upsert stock: expected 403, got %d", w.Code)
	}
}

func TestSaleValidationOverHTTP(t *testing.T) {
	r := setupRouter(t)
	createStaff(t, "cashier@geosolar.local", "password123", "CASHIER")
	token := login(t, r, "cashier@geosolar.local", "password123")

	w := doJSON(r, http.MethodPost, "/api/sales", token, `{"items":[],"payment_method":"iou"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Details["items"] == "" || resp.Details["payment_method"] == "" {
		t.Errorf("missing field details: %v", resp.Details)
	}
}

func TestPublicEndpointsSkipAuth(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/health", "", "")
	if w.Code != http.StatusOK {
		t.Errorf("health: %d", w.Code)
	}

	body := `{"name":"Jane Farmer","email":"jane@example.com","message":"Need panels for my borehole pump"}`
	w = doJSON(r, http.MethodPost, "/api/public/contact", "", body)
	if w.Code != http.StatusCreated {
		t.Errorf("public contact: %d %s", w.Code, w.Body.String())
	}
}
