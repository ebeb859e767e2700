package entity

const (
	StatusPlaced         = "placed"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case StatusPlaced, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}
