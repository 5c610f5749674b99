// services/category_service.go
package services

import (
	"errors"
	"strings"

	"qrmenu/entity"
	"qrmenu/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	DB       *gorm.DB
	Repo     *repository.CategoryRepository
	RestRepo *repository.RestaurantRepository
}

func NewCategoryService(db *gorm.DB, repo *repository.CategoryRepository, restRepo *repository.RestaurantRepository) *CategoryService {
	return &CategoryService{DB: db, Repo: repo, RestRepo: restRepo}
}

func (s *CategoryService) ListForUser(userID uint) ([]entity.Category, error) {
	rest, err := ownerRestaurant(s.RestRepo, userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListActive(rest.ID)
}

type CategoryIn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}

func (s *CategoryService) Create(userID uint, in *CategoryIn) (*entity.Category, error) {
	rest, err := ownerRestaurant(s.RestRepo, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("name", "required")
	}

	cat := &entity.Category{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		SortOrder:    in.SortOrder,
		IsActive:     true,
		RestaurantID: rest.ID,
	}
	if in.IsActive != nil {
		cat.IsActive = *in.IsActive
	}

	if err := s.Repo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

type CategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
}

func (s *CategoryService) Update(userID, categoryID uint, in *CategoryUpdate) (*entity.Category, error) {
	cat, err := s.owned(userID, categoryID)
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
	if in.SortOrder != nil {
		fields["sort_order"] = *in.SortOrder
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(cat.ID, fields); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(cat.ID)
}

// Delete hard-deletes the category. Its products stay, with categoryId
// cleared, inside one transaction.
func (s *CategoryService) Delete(userID, categoryID uint) error {
	cat, err := s.owned(userID, categoryID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteDetaching(tx, cat.ID)
	})
}

// owned routes ownership failure and absence to the same ErrNotFound.
func (s *CategoryService) owned(userID, categoryID uint) (*entity.Category, error) {
	rest, err := ownerRestaurant(s.RestRepo, userID)
	if err != nil {
		return nil, err
	}
	cat, err := s.Repo.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if cat.RestaurantID != rest.ID {
		return nil, ErrNotFound
	}
	return cat, nil
}
