package services

import (
	"errors"
	"testing"

	"github.com/devnaspi/ThelittlelemonApi/entity"
	"github.com/devnaspi/ThelittlelemonApi/repository"
)

func TestAddMergesIntoExistingLine(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
	user := seedUser(t, db, "alice", entity.RoleCustomer)
	item := seedMenuItem(t, db, "Bruschetta", 7.25)

	if err := svc.Add(user.ID, &AddToCartIn{MenuItemID: item.ID, Quantity: 2}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.Add(user.ID, &AddToCartIn{MenuItemID: item.ID, Quantity: 3}); err != nil {
		t.Fatalf("second add: %v", err)
	}

	var lines []entity.CartItem
	if err := db.Where("user_id = ?", user.ID).Find(&lines).Error; err != nil {
		t.Fatalf("read lines: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("want 1 merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", lines[0].Quantity)
	}
	if lines[0].UnitPrice != 7.25 {
		t.Errorf("unit price = %v, want 7.25", lines[0].UnitPrice)
	}
	if lines[0].Price != 5*7.25 {
		t.Errorf("line price = %v, want %v", lines[0].Price, 5*7.25)
	}
}

func TestAddRefreshesUnitPriceOnMerge(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
	user := seedUser(t, db, "alice", entity.RoleCustomer)
	item := seedMenuItem(t, db, "Bruschetta", 7.25)

	if err := svc.Add(user.ID, &AddToCartIn{MenuItemID: item.ID, Quantity: 1}); err != nil {
		t.Fatalf("first add: %v", err)
	}

	// price change between adds; the merged line must carry the latest price
	if err := db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).Update("price", 8.0).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}
	if err := svc.Add(user.ID, &AddToCartIn{MenuItemID: item.ID, Quantity: 1}); err != nil {
		t.Fatalf("second add: %v", err)
	}

	var line entity.CartItem
	if err := db.Where("user_id = ?", user.ID).First(&line).Error; err != nil {
		t.Fatalf("read line: %v", err)
	}
	if line.UnitPrice != 8.0 {
		t.Errorf("unit price = %v, want 8.0 (latest resolution)", line.UnitPrice)
	}
	if line.Quantity != 2 || line.Price != 16.0 {
		t.Errorf("line = qty %d price %v, want qty 2 price 16.0", line.Quantity, line.Price)
	}
}

func TestAddUnknownMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
	user := seedUser(t, db, "alice", entity.RoleCustomer)

	err := svc.Add(user.ID, &AddToCartIn{MenuItemID: 999, Quantity: 1})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAddAfterClearCreatesFreshLine(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
	user := seedUser(t, db, "alice", entity.RoleCustomer)
	item := seedMenuItem(t, db, "Greek Salad", 12.50)

	if err := svc.Add(user.ID, &AddToCartIn{MenuItemID: item.ID, Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Clear(user.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}

	// the cleared line must not linger and trip the (user, item) unique index
	if err := svc.Add(user.ID, &AddToCartIn{MenuItemID: item.ID, Quantity: 1}); err != nil {
		t.Fatalf("re-add after clear: %v", err)
	}

	lines, _, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Errorf("cart = %+v, want one fresh line with quantity 1", lines)
	}
}

func TestClearEmptyCartSucceeds(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
	user := seedUser(t, db, "alice", entity.RoleCustomer)

	if err := svc.Clear(user.ID); err != nil {
		t.Fatalf("clear on empty cart: %v", err)
	}
}
