package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/devnaspi/ThelittlelemonApi/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) *entity.User {
	t.Helper()
	u := entity.User{Username: username, Password: "x", Role: role}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return &u
}

func seedMenuItem(t *testing.T, db *gorm.DB, title string, price float64) *entity.MenuItem {
	t.Helper()
	cat := entity.Category{Slug: "mains-" + strings.ToLower(title), Title: "Mains"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	item := entity.MenuItem{Title: title, Price: price, CategoryID: cat.ID}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item %s: %v", title, err)
	}
	return &item
}
