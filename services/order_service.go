// services/order_service.go
package services

import (
	"errors"

	"qrmenu/entity"
	"qrmenu/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Notifier pushes tenant events to connected dashboards. The websocket hub
// implements it; tests pass nil.
type Notifier interface {
	OrderCreated(restaurantID uint, order *entity.Order)
	WaiterCallCreated(restaurantID uint, call *entity.WaiterCall)
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	ProductRepo *repository.ProductRepository
	TableRepo   *repository.TableRepository
	RestRepo    *repository.RestaurantRepository
	Notify      Notifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	tableRepo *repository.TableRepository,
	restRepo *repository.RestaurantRepository,
	notify Notifier,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, ProductRepo: productRepo,
		TableRepo: tableRepo, RestRepo: restRepo, Notify: notify,
	}
}

type OrderItemIn struct {
	ProductID  uint            `json:"productId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Notes      string          `json:"notes"`
}

type CreateOrderReq struct {
	RestaurantID uint            `json:"restaurantId"`
	TableID      *uint           `json:"tableId"`
	CustomerName string          `json:"customerName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Notes        string          `json:"notes"`
	Items        []OrderItemIn   `json:"items"`
}

// CreateFromPublic is the unauthenticated order endpoint. Orders always start
// pending, and only elite restaurants accept them. Amounts are taken from the
// customer's cart as submitted and stored as snapshots; the server validates
// their shape and that every product belongs to the target restaurant, but
// does not recompute prices. That trust boundary is inherited behavior, kept
// on purpose.
func (s *OrderService) CreateFromPublic(req *CreateOrderReq) (*entity.Order, error) {
	rest, err := s.RestRepo.FindByID(req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !CanUseOrdering(rest) {
		return nil, ErrPlanRequired
	}

	if len(req.Items) == 0 {
		return nil, invalid("items", "required")
	}
	if err := validPrice(req.TotalAmount); err != nil {
		return nil, invalid("totalAmount", "must be a non-negative amount with at most two decimal places")
	}

	productIDs := make([]uint, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, invalid("quantity", "must be positive")
		}
		if validPrice(it.UnitPrice) != nil || validPrice(it.TotalPrice) != nil {
			return nil, invalid("items", "prices must be non-negative with at most two decimal places")
		}
		productIDs = append(productIDs, it.ProductID)
	}

	ok, err := s.ProductRepo.AllBelongToRestaurant(productIDs, rest.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	if req.TableID != nil {
		table, err := s.TableRepo.FindByID(*req.TableID)
		if err != nil || table.RestaurantID != rest.ID {
			return nil, ErrNotFound
		}
	}

	order := &entity.Order{
		CustomerName: req.CustomerName,
		Status:       entity.OrderPending,
		TotalAmount:  req.TotalAmount,
		Notes:        req.Notes,
		RestaurantID: rest.ID,
		TableID:      req.TableID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		for _, it := range req.Items {
			item := entity.OrderItem{
				OrderID:    order.ID,
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				TotalPrice: it.TotalPrice,
				Notes:      it.Notes,
			}
			if err := s.Repo.CreateItem(tx, &item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Notify != nil {
		s.Notify.OrderCreated(rest.ID, order)
	}
	return order, nil
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	rest, err := ownerRestaurant(s.RestRepo, userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.List(rest.ID, limit)
}

type OrderDetail struct {
	entity.Order
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	order, err := s.owned(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.Items(order.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *order, Items: items}, nil
}

func (s *OrderService) owned(userID, orderID uint) (*entity.Order, error) {
	rest, err := ownerRestaurant(s.RestRepo, userID)
	if err != nil {
		return nil, err
	}
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.RestaurantID != rest.ID {
		return nil, ErrNotFound
	}
	return order, nil
}
