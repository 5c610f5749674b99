// services/order_transitions.go
package services

import (
	"qrmenu/entity"

	"gorm.io/gorm"
)

// Orders move strictly forward: pending -> preparing|cancelled,
// preparing -> ready, ready -> completed. No skips, no backtracking.
var orderTransitions = map[string][]string{
	entity.OrderPending:   {entity.OrderPreparing, entity.OrderCancelled},
	entity.OrderPreparing: {entity.OrderReady},
	entity.OrderReady:     {entity.OrderCompleted},
	entity.OrderCompleted: {},
	entity.OrderCancelled: {},
}

func orderTransitionAllowed(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type OrderUpdate struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// Transition applies an owner's status change. The guarded UPDATE keys on the
// expected current status, so a concurrent transition makes this one fail
// instead of silently overwriting it.
func (s *OrderService) Transition(userID, orderID uint, in *OrderUpdate) (*entity.Order, error) {
	order, err := s.owned(userID, orderID)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		// Restating the current status is rejected like any other
		// move outside the table.
		to := *in.Status
		if !orderTransitionAllowed(order.Status, to) {
			return nil, ErrInvalidTransition
		}
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			affected, err := s.Repo.UpdateStatusGuard(tx, order.ID, order.Status, to)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInvalidTransition
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if in.Notes != nil {
		if err := s.Repo.UpdateNotes(order.ID, *in.Notes); err != nil {
			return nil, err
		}
	}

	return s.Repo.FindByID(order.ID)
}
