// services/export_service.go
package services

import (
	"fmt"

	"qrmenu/repository"

	"github.com/xuri/excelize/v2"
)

type ExportService struct {
	OrderRepo *repository.OrderRepository
	RestRepo  *repository.RestaurantRepository
}

func NewExportService(orderRepo *repository.OrderRepository, restRepo *repository.RestaurantRepository) *ExportService {
	return &ExportService{OrderRepo: orderRepo, RestRepo: restRepo}
}

// OrdersXLSX builds an order report workbook for the caller's restaurant.
func (s *ExportService) OrdersXLSX(userID uint, limit int) (*excelize.File, error) {
	rest, err := ownerRestaurant(s.RestRepo, userID)
	if err != nil {
		return nil, err
	}
	orders, err := s.OrderRepo.List(rest.ID, limit)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Orders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Created", "Customer", "Table", "Status", "Total", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, o := range orders {
		table := ""
		if o.TableID != nil {
			table = fmt.Sprintf("%d", *o.TableID)
		}
		values := []any{
			o.ID,
			o.CreatedAt.Format("2006-01-02 15:04"),
			o.CustomerName,
			table,
			o.Status,
			o.TotalAmount.StringFixed(2),
			o.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}
