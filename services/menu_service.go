// services/menu_service.go
package services

import (
	"errors"

	"qrmenu/entity"
	"qrmenu/repository"

	"gorm.io/gorm"
)

// MenuService assembles the unauthenticated public menu. The table token is
// the only lookup key; numeric ids are never accepted on this path.
type MenuService struct {
	TableRepo   *repository.TableRepository
	RestRepo    *repository.RestaurantRepository
	CatRepo     *repository.CategoryRepository
	ProductRepo *repository.ProductRepository
}

func NewMenuService(tableRepo *repository.TableRepository, restRepo *repository.RestaurantRepository, catRepo *repository.CategoryRepository, productRepo *repository.ProductRepository) *MenuService {
	return &MenuService{TableRepo: tableRepo, RestRepo: restRepo, CatRepo: catRepo, ProductRepo: productRepo}
}

// PublicRestaurant is the tenant as customers see it: branding only, no plan
// internals beyond the feature flags the menu page needs.
type PublicRestaurant struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	LogoURL        string `json:"logoUrl"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	CanOrder       bool   `json:"canOrder"`
	CanCallWaiter  bool   `json:"canCallWaiter"`
}

type PublicMenu struct {
	Restaurant PublicRestaurant  `json:"restaurant"`
	Table      entity.Table      `json:"table"`
	Categories []entity.Category `json:"categories"`
	Products   []entity.Product  `json:"products"`
}

// ByQRCode resolves token -> active table -> restaurant -> active categories
// plus all products. Unavailable products are included; the menu page greys
// them out instead of hiding them.
func (s *MenuService) ByQRCode(qrCode string) (*PublicMenu, error) {
	table, err := s.TableRepo.FindActiveByQRCode(qrCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rest, err := s.RestRepo.FindByID(table.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	categories, err := s.CatRepo.ListActive(rest.ID)
	if err != nil {
		return nil, err
	}
	products, err := s.ProductRepo.List(rest.ID, nil)
	if err != nil {
		return nil, err
	}

	return &PublicMenu{
		Restaurant: PublicRestaurant{
			ID:             rest.ID,
			Name:           rest.Name,
			Description:    rest.Description,
			LogoURL:        rest.LogoURL,
			PrimaryColor:   rest.PrimaryColor,
			SecondaryColor: rest.SecondaryColor,
			CanOrder:       CanUseOrdering(rest),
			CanCallWaiter:  CanUseWaiterCall(rest),
		},
		Table:      *table,
		Categories: categories,
		Products:   products,
	}, nil
}
