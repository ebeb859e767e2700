package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/devnaspi/ThelittlelemonApi/entity"
	"github.com/devnaspi/ThelittlelemonApi/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo}
}

// ----- DTOs -----

type OrderLineOut struct {
	MenuItemID uint    `json:"menuItemId"`
	MenuItem   string  `json:"menuItem"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Price      float64 `json:"price"`
}

type OrderOut struct {
	ID             uint           `json:"id"`
	User           string         `json:"user"`
	DeliveryCrewID *uint          `json:"deliveryCrewId"`
	Status         string         `json:"status"`
	Total          float64        `json:"total"`
	Date           time.Time      `json:"date"`
	OrderItems     []OrderLineOut `json:"orderItems"`
}

func toOrderOut(o *entity.Order) *OrderOut {
	lines := make([]OrderLineOut, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		lines = append(lines, OrderLineOut{
			MenuItemID: it.MenuItemID,
			MenuItem:   it.MenuItem.Title,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Price:      it.Price,
		})
	}
	return &OrderOut{
		ID:             o.ID,
		User:           o.User.Username,
		DeliveryCrewID: o.DeliveryCrewID,
		Status:         o.Status,
		Total:          o.Total,
		Date:           o.Date,
		OrderItems:     lines,
	}
}

// ----- placement -----

// PlaceOrder converts the user's cart into an order: create the order, copy
// every cart line to an order line, clear the cart. The whole sequence is one
// transaction, so it either all happens or none of it does. An empty cart is
// rejected.
func (s *OrderService) PlaceOrder(userID uint) (*OrderOut, error) {
	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// the fetch is part of the atomic unit: a line landing after this
		// read lands after the commit, never inside the window
		lines, err := s.CartRepo.ListForUserTx(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		var total float64
		for _, l := range lines {
			total += l.Price
		}

		order := entity.Order{
			UserID: userID,
			Status: entity.StatusPlaced,
			Total:  total,
			Date:   time.Now(),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Price:      l.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		if err := s.CartRepo.Clear(tx, userID); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.fetch(orderID)
}

func (s *OrderService) fetch(orderID uint) (*OrderOut, error) {
	o, err := s.Repo.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toOrderOut(o), nil
}

// ----- reads -----

// ListFor is role-scoped: customers see their own orders, managers see all,
// delivery crew see the orders assigned to them.
func (s *OrderService) ListFor(userID uint, role string) ([]OrderOut, error) {
	var (
		orders []entity.Order
		err    error
	)
	switch role {
	case entity.RoleManager:
		orders, err = s.Repo.ListAll()
	case entity.RoleDeliveryCrew:
		orders, err = s.Repo.ListForCrew(userID)
	default:
		orders, err = s.Repo.ListForUser(userID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]OrderOut, 0, len(orders))
	for i := range orders {
		out = append(out, *toOrderOut(&orders[i]))
	}
	return out, nil
}

// Get allows the owner, the assigned crew member, or any manager.
func (s *OrderService) Get(userID uint, role string, orderID uint) (*OrderOut, error) {
	o, err := s.Repo.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	switch role {
	case entity.RoleManager:
	case entity.RoleDeliveryCrew:
		if o.DeliveryCrewID == nil || *o.DeliveryCrewID != userID {
			return nil, ErrForbidden
		}
	default:
		if o.UserID != userID {
			return nil, ErrForbidden
		}
	}
	return toOrderOut(o), nil
}

// ----- updates -----

type UpdateOrderIn struct {
	Status         *string `json:"status"`
	DeliveryCrewID *uint   `json:"deliveryCrewId"`
}

// Update: managers may set status and assignee; delivery crew may set status
// only, and only on orders assigned to them.
func (s *OrderService) Update(userID uint, role string, orderID uint, in *UpdateOrderIn) (*OrderOut, error) {
	o, err := s.Repo.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}

	switch role {
	case entity.RoleManager:
		if in.DeliveryCrewID != nil {
			crew, err := s.UserRepo.FindByID(*in.DeliveryCrewID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotDeliveryCrew
			}
			if err != nil {
				return nil, err
			}
			if crew.Role != entity.RoleDeliveryCrew {
				return nil, ErrNotDeliveryCrew
			}
			updates["delivery_crew_id"] = *in.DeliveryCrewID
		}
	case entity.RoleDeliveryCrew:
		if o.DeliveryCrewID == nil || *o.DeliveryCrewID != userID {
			return nil, ErrForbidden
		}
		if in.DeliveryCrewID != nil {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}

	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		updates["status"] = *in.Status
	}

	if len(updates) > 0 {
		if err := s.Repo.UpdateOrder(o.ID, updates); err != nil {
			return nil, err
		}
	}
	return s.fetch(o.ID)
}

// Delete removes the order and its lines. Manager-gated at the route level.
func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.fetch(orderID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteOrder(tx, orderID)
	})
}
