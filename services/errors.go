package services

import "errors"

// Domain errors. Controllers map these onto HTTP statuses with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrSlugTaken          = errors.New("category slug already exists")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrMenuItemInUse      = errors.New("menu item is referenced by carts or orders")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrNotDeliveryCrew    = errors.New("assignee is not delivery crew")
)
