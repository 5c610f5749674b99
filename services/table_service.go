// services/table_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"qrmenu/entity"
	"qrmenu/repository"
	"qrmenu/utils"

	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type TableService struct {
	Repo          *repository.TableRepository
	RestRepo      *repository.RestaurantRepository
	PublicBaseURL string
}

func NewTableService(repo *repository.TableRepository, restRepo *repository.RestaurantRepository, publicBaseURL string) *TableService {
	return &TableService{Repo: repo, RestRepo: restRepo, PublicBaseURL: publicBaseURL}
}

func (s *TableService) ListForUser(userID uint) ([]entity.Table, error) {
	rest, err := ownerRestaurant(s.RestRepo, userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListActive(rest.ID)
}

type TableIn struct {
	Name string `json:"name"`
}

// Create generates the table's public token server-side; callers can never
// supply or change it. A collision on the unique index is retried with a
// fresh token.
func (s *TableService) Create(userID uint, in *TableIn) (*entity.Table, error) {
	rest, err := ownerRestaurant(s.RestRepo, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("name", "required")
	}

	table := &entity.Table{
		Name:         strings.TrimSpace(in.Name),
		IsActive:     true,
		RestaurantID: rest.ID,
	}

	for attempt := 0; attempt < 3; attempt++ {
		table.QRCode = utils.NewQRToken()
		taken, err := s.Repo.QRCodeTaken(table.QRCode)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}
		if err := s.Repo.Create(table); err != nil {
			return nil, err
		}
		return table, nil
	}
	return nil, errors.New("could not allocate a unique table token")
}

type TableUpdate struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

func (s *TableService) Update(userID, tableID uint, in *TableUpdate) (*entity.Table, error) {
	table, err := s.owned(userID, tableID)
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
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(table.ID, fields); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(table.ID)
}

func (s *TableService) Delete(userID, tableID uint) error {
	table, err := s.owned(userID, tableID)
	if err != nil {
		return err
	}
	return s.Repo.Delete(table.ID)
}

// QRCodePNG renders the table's public menu link as a PNG for printing.
func (s *TableService) QRCodePNG(userID, tableID uint) ([]byte, error) {
	table, err := s.owned(userID, tableID)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/menu/%s", strings.TrimRight(s.PublicBaseURL, "/"), table.QRCode)
	return qrcode.Encode(url, qrcode.Medium, 256)
}

func (s *TableService) owned(userID, tableID uint) (*entity.Table, error) {
	rest, err := ownerRestaurant(s.RestRepo, userID)
	if err != nil {
		return nil, err
	}
	table, err := s.Repo.FindByID(tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if table.RestaurantID != rest.ID {
		return nil, ErrNotFound
	}
	return table, nil
}
