package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devnaspi/ThelittlelemonApi/repository"
)

// CartService is customer-only; the route layer rejects staff before any of
// this runs.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CartLineOut struct {
	MenuItemID uint    `json:"menuItemId"`
	MenuItem   string  `json:"menuItem"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Price      float64 `json:"price"`
}

func (s *CartService) List(userID uint) ([]CartLineOut, float64, error) {
	lines, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, 0, err
	}
	out := make([]CartLineOut, 0, len(lines))
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Price
		out = append(out, CartLineOut{
			MenuItemID: l.MenuItemID,
			MenuItem:   l.MenuItem.Title,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			Price:      l.Price,
		})
	}
	return out, subtotal, nil
}

// Add resolves the current price from the menu item and merges into any
// existing line for the same item.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	item, err := s.MenuRepo.FindMenuItem(in.MenuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertLine(tx, userID, item.ID, in.Quantity, item.Price)
	})
}

// Clear succeeds even when the cart is already empty.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
}
