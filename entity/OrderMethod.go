package entity

import "strings"

// OrderMethod is how the order is fulfilled.
type OrderMethod string

const (
	MethodPickup   OrderMethod = "PICKUP"
	MethodDelivery OrderMethod = "DELIVERY"
)

// ParseOrderMethod accepts the method case-insensitively.
func ParseOrderMethod(s string) (OrderMethod, bool) {
	switch OrderMethod(strings.ToUpper(strings.TrimSpace(s))) {
	case MethodPickup:
		return MethodPickup, true
	case MethodDelivery:
		return MethodDelivery, true
	}
	return "", false
}
