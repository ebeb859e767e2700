package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/devnaspi/ThelittlelemonApi/configs"
	"github.com/devnaspi/ThelittlelemonApi/entity"
	"github.com/devnaspi/ThelittlelemonApi/services"
	"github.com/devnaspi/ThelittlelemonApi/utils"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *configs.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &configs.Config{
		DBDriver:  "sqlite",
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db, cfg
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) *entity.User {
	t.Helper()
	u := entity.User{Username: username, Password: "x", Role: role}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return &u
}

func tokenFor(t *testing.T, cfg *configs.Config, u *entity.User) string {
	t.Helper()
	tok, err := utils.GenerateToken(u.ID, u.Role, cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		t.Fatalf("token for %s: %v", u.Username, err)
	}
	return tok
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		OK   bool            `json:"ok"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("decode data: %v (%s)", err, w.Body.String())
	}
}

func TestMenuItemsRequireAuth(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/menu-items", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestMenuItemCreateForbiddenForCustomer(t *testing.T) {
	r, db, cfg := setupRouter(t)
	customer := seedUser(t, db, "alice", entity.RoleCustomer)

	w := doJSON(t, r, http.MethodPost, "/menu-items", tokenFor(t, cfg, customer),
		gin.H{"title": "Greek Salad", "price": 12.50, "categoryId": 1})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("menu items created despite 403 = %d, want 0", count)
	}
}

func TestMenuItemDetailNotFound(t *testing.T) {
	r, db, cfg := setupRouter(t)
	customer := seedUser(t, db, "alice", entity.RoleCustomer)

	w := doJSON(t, r, http.MethodGet, "/menu-items/1234", tokenFor(t, cfg, customer), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCartDeniedForStaff(t *testing.T) {
	r, db, cfg := setupRouter(t)
	manager := seedUser(t, db, "maria", entity.RoleManager)
	crew := seedUser(t, db, "carl", entity.RoleDeliveryCrew)

	for _, u := range []*entity.User{manager, crew} {
		w := doJSON(t, r, http.MethodGet, "/cart/menu-items", tokenFor(t, cfg, u), nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("%s cart access: status = %d, want 403", u.Role, w.Code)
		}
	}
}

func TestRosterAddAndRemove(t *testing.T) {
	r, db, cfg := setupRouter(t)
	manager := seedUser(t, db, "maria", entity.RoleManager)
	token := tokenFor(t, cfg, manager)

	w := doJSON(t, r, http.MethodPost, "/groups/delivery-crew/users", token,
		gin.H{"username": "carl", "password": "secret1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("add member: status = %d, want 201 (%s)", w.Code, w.Body.String())
	}
	var created struct {
		ID uint `json:"id"`
	}
	decodeData(t, w, &created)

	// duplicate add is a conflict, not a bare store error
	w = doJSON(t, r, http.MethodPost, "/groups/delivery-crew/users", token,
		gin.H{"username": "carl", "password": "secret1"})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate add: status = %d, want 409", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/groups/delivery-crew/users/%d", created.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove member: status = %d, want 200", w.Code)
	}

	var members []services.MemberOut
	w = doJSON(t, r, http.MethodGet, "/groups/delivery-crew/users", token, nil)
	decodeData(t, w, &members)
	if len(members) != 0 {
		t.Errorf("roster after removal = %+v, want empty", members)
	}

	var kept entity.User
	if err := db.First(&kept, created.ID).Error; err != nil {
		t.Fatalf("account deleted with role: %v", err)
	}
}

func TestDemotedManagerTokenLosesAccess(t *testing.T) {
	r, db, cfg := setupRouter(t)
	manager := seedUser(t, db, "maria", entity.RoleManager)
	token := tokenFor(t, cfg, manager)

	w := doJSON(t, r, http.MethodGet, "/groups/manager/users", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("manager roster read: status = %d, want 200", w.Code)
	}

	// demote: the outstanding token must stop opening manager routes, since
	// the role is re-read from the store on every request
	if err := db.Model(&entity.User{}).Where("id = ?", manager.ID).Update("role", entity.RoleCustomer).Error; err != nil {
		t.Fatalf("demote: %v", err)
	}

	w = doJSON(t, r, http.MethodGet, "/groups/manager/users", token, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("demoted manager roster read: status = %d, want 403", w.Code)
	}
}

func TestRosterRequiresManager(t *testing.T) {
	r, db, cfg := setupRouter(t)
	crew := seedUser(t, db, "carl", entity.RoleDeliveryCrew)

	w := doJSON(t, r, http.MethodGet, "/groups/manager/users", tokenFor(t, cfg, crew), nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

// End-to-end: manager creates the item, a customer carts it twice and places
// the order.
func TestOrderPlacementScenario(t *testing.T) {
	r, db, cfg := setupRouter(t)
	manager := seedUser(t, db, "maria", entity.RoleManager)
	customer := seedUser(t, db, "alice", entity.RoleCustomer)
	managerToken := tokenFor(t, cfg, manager)
	customerToken := tokenFor(t, cfg, customer)

	w := doJSON(t, r, http.MethodPost, "/categories", managerToken,
		gin.H{"slug": "mains", "title": "Mains"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create category: status = %d (%s)", w.Code, w.Body.String())
	}
	var cat entity.Category
	decodeData(t, w, &cat)

	w = doJSON(t, r, http.MethodPost, "/menu-items", managerToken,
		gin.H{"title": "Greek Salad", "price": 12.50, "categoryId": cat.ID})
	if w.Code != http.StatusCreated {
		t.Fatalf("create menu item: status = %d (%s)", w.Code, w.Body.String())
	}
	var item entity.MenuItem
	decodeData(t, w, &item)

	w = doJSON(t, r, http.MethodPost, "/cart/menu-items", customerToken,
		gin.H{"menuItemId": item.ID, "quantity": 2})
	if w.Code != http.StatusOK {
		t.Fatalf("add to cart: status = %d (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/orders", customerToken, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("place order: status = %d (%s)", w.Code, w.Body.String())
	}
	var order services.OrderOut
	decodeData(t, w, &order)

	if order.Total != 25.00 {
		t.Errorf("total = %v, want 25.00", order.Total)
	}
	if len(order.OrderItems) != 1 {
		t.Fatalf("order items = %d, want 1", len(order.OrderItems))
	}
	line := order.OrderItems[0]
	if line.Quantity != 2 || line.UnitPrice != 12.50 || line.Price != 25.00 {
		t.Errorf("line = %+v, want x2 @12.50 = 25.00", line)
	}

	var cartCount int64
	if err := db.Model(&entity.CartItem{}).Where("user_id = ?", customer.ID).Count(&cartCount).Error; err != nil {
		t.Fatalf("count cart: %v", err)
	}
	if cartCount != 0 {
		t.Errorf("cart after placement = %d lines, want 0", cartCount)
	}

	// placing again with the now-empty cart is rejected
	w = doJSON(t, r, http.MethodPost, "/orders", customerToken, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty-cart order: status = %d, want 400", w.Code)
	}
}
