package entity

import "strings"

// OrderStatus is a closed workflow tag. Nothing outside this set is ever
// persisted on an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusAccepted  OrderStatus = "ACCEPTED"
	StatusReady     OrderStatus = "READY"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusRejected  OrderStatus = "REJECTED"
)

// allowedTransitions is the whole state machine. Terminal states have no
// outgoing edges.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:  {StatusAccepted, StatusRejected},
	StatusAccepted: {StatusReady, StatusRejected},
	StatusReady:    {StatusCompleted},
}

// ParseOrderStatus maps a request string onto the enum, case-insensitively.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, true
	case StatusAccepted:
		return StatusAccepted, true
	case StatusReady:
		return StatusReady, true
	case StatusCompleted:
		return StatusCompleted, true
	case StatusRejected:
		return StatusRejected, true
	}
	return "", false
}

// IsTerminal reports whether the status releases vendor capacity.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// CanTransitionTo checks the transition table.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range allowedTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
