// services/waiter_call_service.go
package services

import (
	"errors"

	"qrmenu/entity"
	"qrmenu/repository"

	"gorm.io/gorm"
)

type WaiterCallService struct {
	DB        *gorm.DB
	Repo      *repository.WaiterCallRepository
	TableRepo *repository.TableRepository
	RestRepo  *repository.RestaurantRepository
	Notify    Notifier
}

func NewWaiterCallService(
	db *gorm.DB,
	repo *repository.WaiterCallRepository,
	tableRepo *repository.TableRepository,
	restRepo *repository.RestaurantRepository,
	notify Notifier,
) *WaiterCallService {
	return &WaiterCallService{DB: db, Repo: repo, TableRepo: tableRepo, RestRepo: restRepo, Notify: notify}
}

// pending -> responded|resolved, responded -> resolved.
var callTransitions = map[string][]string{
	entity.CallPending:   {entity.CallResponded, entity.CallResolved},
	entity.CallResponded: {entity.CallResolved},
	entity.CallResolved:  {},
}

func callTransitionAllowed(from, to string) bool {
	for _, next := range callTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type CreateWaiterCallReq struct {
	RestaurantID uint   `json:"restaurantId"`
	TableID      *uint  `json:"tableId"`
	Message      string `json:"message"`
}

// CreateFromPublic is the unauthenticated call button. Free-plan restaurants
// never accept one, regardless of what the menu page renders.
func (s *WaiterCallService) CreateFromPublic(req *CreateWaiterCallReq) (*entity.WaiterCall, error) {
	rest, err := s.RestRepo.FindByID(req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !CanUseWaiterCall(rest) {
		return nil, ErrPlanRequired
	}

	if req.TableID != nil {
		table, err := s.TableRepo.FindByID(*req.TableID)
		if err != nil || table.RestaurantID != rest.ID {
			return nil, ErrNotFound
		}
	}

	call := &entity.WaiterCall{
		Message:      req.Message,
		Status:       entity.CallPending,
		RestaurantID: rest.ID,
		TableID:      req.TableID,
	}
	if err := s.Repo.Create(call); err != nil {
		return nil, err
	}

	if s.Notify != nil {
		s.Notify.WaiterCallCreated(rest.ID, call)
	}
	return call, nil
}

func (s *WaiterCallService) ListForUser(userID uint, status string) ([]entity.WaiterCall, error) {
	rest, err := ownerRestaurant(s.RestRepo, userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.List(rest.ID, status)
}

type WaiterCallUpdate struct {
	Status *string `json:"status"`
}

func (s *WaiterCallService) Transition(userID, callID uint, in *WaiterCallUpdate) (*entity.WaiterCall, error) {
	call, err := s.owned(userID, callID)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		to := *in.Status
		if !callTransitionAllowed(call.Status, to) {
			return nil, ErrInvalidTransition
		}
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			affected, err := s.Repo.UpdateStatusGuard(tx, call.ID, call.Status, to)
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

	return s.Repo.FindByID(call.ID)
}

func (s *WaiterCallService) owned(userID, callID uint) (*entity.WaiterCall, error) {
	rest, err := ownerRestaurant(s.RestRepo, userID)
	if err != nil {
		return nil, err
	}
	call, err := s.Repo.FindByID(callID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if call.RestaurantID != rest.ID {
		return nil, ErrNotFound
	}
	return call, nil
}
