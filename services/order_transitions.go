package services

import (
	"errors"

	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"gorm.io/gorm"
)

// UpdateStatus moves an order along the workflow on behalf of the vendor
// owner.
//
// The write is a conditional UPDATE guarded on the previous status, so two
// racing requests can never both succeed: the loser sees zero rows affected
// and the vendor counter is released exactly once per order.
func (s *OrderService) UpdateStatus(callerID, orderID uint, requested string) error {
	next, ok := entity.ParseOrderStatus(requested)
	if !ok {
		return ErrInvalidStatus
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		owned, err := s.VendorRepo.IsOwnedBy(o.VendorID, callerID)
		if err != nil {
			return err
		}
		if !owned {
			return ErrForbidden
		}

		prev := o.Status
		if !prev.CanTransitionTo(next) {
			return ErrInvalidTransition
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, prev, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Lost a race: someone moved the order after we read it.
			return ErrInvalidTransition
		}

		// First entry into a terminal state frees one unit of capacity. The
		// transition table has no edges out of terminal states, so this runs
		// at most once per order.
		if next.IsTerminal() && !prev.IsTerminal() {
			if err := s.VendorRepo.ReleaseLoad(tx, o.VendorID); err != nil {
				return err
			}
		}
		return nil
	})
}
