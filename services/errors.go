package services

import "errors"

// Sentinel errors shared by the services. Controllers map them onto HTTP
// codes with errors.Is; anything unrecognized becomes a 500.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUniversityRequired = errors.New("email domain does not match a registered university, select one manually")

	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("item quantity must be at least 1")
	ErrItemUnavailable   = errors.New("menu item is not available")
	ErrItemWrongVendor   = errors.New("menu item does not belong to this vendor")
	ErrInvalidMethod     = errors.New("order method must be PICKUP or DELIVERY")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrReviewNoTarget    = errors.New("review needs a vendor or a menu item")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)
