// services/product_service.go
package services

import (
	"errors"
	"strings"

	"qrmenu/entity"
	"qrmenu/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService struct {
	DB       *gorm.DB
	Repo     *repository.ProductRepository
	CatRepo  *repository.CategoryRepository
	RestRepo *repository.RestaurantRepository
}

func NewProductService(db *gorm.DB, repo *repository.ProductRepository, catRepo *repository.CategoryRepository, restRepo *repository.RestaurantRepository) *ProductService {
	return &ProductService{DB: db, Repo: repo, CatRepo: catRepo, RestRepo: restRepo}
}

func (s *ProductService) ListForUser(userID uint, categoryID *uint) ([]entity.Product, error) {
	rest, err := ownerRestaurant(s.RestRepo, userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.List(rest.ID, categoryID)
}

type ProductIn struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	IsAvailable *bool           `json:"isAvailable"`
	SortOrder   int             `json:"sortOrder"`
	CategoryID  *uint           `json:"categoryId"`
}

// Create enforces the free-plan ceiling inside the creating transaction, so
// the count it checks is the count the insert joins. Elite restaurants are
// never limited.
func (s *ProductService) Create(userID uint, in *ProductIn) (*entity.Product, error) {
	rest, err := ownerRestaurant(s.RestRepo, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("name", "required")
	}
	if err := validPrice(in.Price); err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		if err := s.categoryInRestaurant(*in.CategoryID, rest.ID); err != nil {
			return nil, err
		}
	}

	product := &entity.Product{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Price:        in.Price,
		ImageURL:     in.ImageURL,
		IsAvailable:  true,
		SortOrder:    in.SortOrder,
		CategoryID:   in.CategoryID,
		RestaurantID: rest.ID,
	}
	if in.IsAvailable != nil {
		product.IsAvailable = *in.IsAvailable
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		count, err := s.Repo.CountByRestaurant(tx, rest.ID)
		if err != nil {
			return err
		}
		if !CanCreateProduct(rest, count) {
			return ErrLimitReached
		}
		return s.Repo.Create(tx, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

type ProductUpdate struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"imageUrl"`
	IsAvailable *bool            `json:"isAvailable"`
	SortOrder   *int             `json:"sortOrder"`
	CategoryID  *uint            `json:"categoryId"`
}

func (s *ProductService) Update(userID, productID uint, in *ProductUpdate) (*entity.Product, error) {
	product, rest, err := s.owned(userID, productID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, invalid("name", "required")
		}
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		if err := validPrice(*in.Price); err != nil {
			return nil, err
		}
		fields["price"] = *in.Price
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.IsAvailable != nil {
		fields["is_available"] = *in.IsAvailable
	}
	if in.SortOrder != nil {
		fields["sort_order"] = *in.SortOrder
	}
	if in.CategoryID != nil {
		if err := s.categoryInRestaurant(*in.CategoryID, rest.ID); err != nil {
			return nil, err
		}
		fields["category_id"] = *in.CategoryID
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(product.ID, fields); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(product.ID)
}

func (s *ProductService) Delete(userID, productID uint) error {
	product, _, err := s.owned(userID, productID)
	if err != nil {
		return err
	}
	return s.Repo.Delete(product.ID)
}

func (s *ProductService) owned(userID, productID uint) (*entity.Product, *entity.Restaurant, error) {
	rest, err := ownerRestaurant(s.RestRepo, userID)
	if err != nil {
		return nil, nil, err
	}
	product, err := s.Repo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if product.RestaurantID != rest.ID {
		return nil, nil, ErrNotFound
	}
	return product, rest, nil
}

func (s *ProductService) categoryInRestaurant(categoryID, restaurantID uint) error {
	cat, err := s.CatRepo.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if cat.RestaurantID != restaurantID {
		return ErrNotFound
	}
	return nil
}

// Prices are fixed-point with two fraction digits, never negative.
func validPrice(d decimal.Decimal) error {
	if d.IsNegative() {
		return invalid("price", "must not be negative")
	}
	if d.Exponent() < -2 {
		return invalid("price", "at most two decimal places")
	}
	return nil
}
