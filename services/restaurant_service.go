// services/restaurant_service.go
package services

import (
	"errors"
	"strings"

	"qrmenu/entity"
	"qrmenu/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	DB   *gorm.DB
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo}
}

// ownerRestaurant is the ownership-guard entry point shared by every
// tenant-scoped service: it resolves the caller to their single restaurant.
// A user without one gets ErrSetupRequired, which the dashboard treats as
// "finish onboarding first".
func ownerRestaurant(repo *repository.RestaurantRepository, userID uint) (*entity.Restaurant, error) {
	rest, err := repo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSetupRequired
		}
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) GetForUser(userID uint) (*entity.Restaurant, error) {
	return ownerRestaurant(s.Repo, userID)
}

// mustOwn verifies the id-addressed restaurant belongs to the caller.
// A user with no restaurant at all gets ErrSetupRequired; anything else
// that is not theirs reads as a plain miss.
func (s *RestaurantService) mustOwn(userID, restaurantID uint) error {
	ok, err := s.Repo.IsOwnedBy(restaurantID, userID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	if _, err := ownerRestaurant(s.Repo, userID); err != nil {
		return err
	}
	return ErrNotFound
}

type RestaurantIn struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	LogoURL        string `json:"logoUrl"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

// Create sets up the caller's restaurant. First restaurant wins: a second
// create is rejected outright (backed by the unique index on user_id).
func (s *RestaurantService) Create(userID uint, in *RestaurantIn) (*entity.Restaurant, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("name", "required")
	}

	count, err := s.Repo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, invalid("restaurant", "already exists for this user")
	}

	rest := &entity.Restaurant{
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		LogoURL:        in.LogoURL,
		UserID:         userID,
		Plan:           entity.PlanFree,
		MaxProducts:    10,
		PrimaryColor:   "#2563EB",
		SecondaryColor: "#F59E0B",
	}
	if in.PrimaryColor != "" {
		rest.PrimaryColor = in.PrimaryColor
	}
	if in.SecondaryColor != "" {
		rest.SecondaryColor = in.SecondaryColor
	}

	if err := s.Repo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

type RestaurantUpdate struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	LogoURL        *string `json:"logoUrl"`
	PrimaryColor   *string `json:"primaryColor"`
	SecondaryColor *string `json:"secondaryColor"`
	Plan           *string `json:"plan"`
	MaxProducts    *int    `json:"maxProducts"`
}

// Update applies only the supplied fields. Lowering maxProducts or
// downgrading the plan never deletes existing products; the ceiling is
// checked at creation time only.
func (s *RestaurantService) Update(userID, restaurantID uint, in *RestaurantUpdate) (*entity.Restaurant, error) {
	if err := s.mustOwn(userID, restaurantID); err != nil {
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
	if in.LogoURL != nil {
		fields["logo_url"] = *in.LogoURL
	}
	if in.PrimaryColor != nil {
		fields["primary_color"] = *in.PrimaryColor
	}
	if in.SecondaryColor != nil {
		fields["secondary_color"] = *in.SecondaryColor
	}
	if in.Plan != nil {
		if *in.Plan != entity.PlanFree && *in.Plan != entity.PlanElite {
			return nil, invalid("plan", "must be free or elite")
		}
		fields["plan"] = *in.Plan
	}
	if in.MaxProducts != nil {
		if *in.MaxProducts < 0 {
			return nil, invalid("maxProducts", "must not be negative")
		}
		fields["max_products"] = *in.MaxProducts
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(restaurantID, fields); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(restaurantID)
}

// Delete tears the whole tenant down in one transaction.
func (s *RestaurantService) Delete(userID, restaurantID uint) error {
	if err := s.mustOwn(userID, restaurantID); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteCascade(tx, restaurantID)
	})
}

func (s *RestaurantService) DashboardStats(userID uint) (*repository.DashboardStats, error) {
	rest, err := ownerRestaurant(s.Repo, userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.Stats(rest.ID)
}
