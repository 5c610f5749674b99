package services

import (
	"testing"

	"qrmenu/entity"
	"qrmenu/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Category{}, &entity.Product{},
		&entity.Table{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.WaiterCall{},
	))
	return db
}

type fixture struct {
	db *gorm.DB

	userRepo    *repository.UserRepository
	restRepo    *repository.RestaurantRepository
	catRepo     *repository.CategoryRepository
	productRepo *repository.ProductRepository
	tableRepo   *repository.TableRepository
	orderRepo   *repository.OrderRepository
	callRepo    *repository.WaiterCallRepository

	restaurants *RestaurantService
	categories  *CategoryService
	products    *ProductService
	tables      *TableService
	menu        *MenuService
	orders      *OrderService
	calls       *WaiterCallService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	f := &fixture{
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		restRepo:    repository.NewRestaurantRepository(db),
		catRepo:     repository.NewCategoryRepository(db),
		productRepo: repository.NewProductRepository(db),
		tableRepo:   repository.NewTableRepository(db),
		orderRepo:   repository.NewOrderRepository(db),
		callRepo:    repository.NewWaiterCallRepository(db),
	}
	f.restaurants = NewRestaurantService(db, f.restRepo)
	f.categories = NewCategoryService(db, f.catRepo, f.restRepo)
	f.products = NewProductService(db, f.productRepo, f.catRepo, f.restRepo)
	f.tables = NewTableService(f.tableRepo, f.restRepo, "http://menu.test")
	f.menu = NewMenuService(f.tableRepo, f.restRepo, f.catRepo, f.productRepo)
	f.orders = NewOrderService(db, f.orderRepo, f.productRepo, f.tableRepo, f.restRepo, nil)
	f.calls = NewWaiterCallService(db, f.callRepo, f.tableRepo, f.restRepo, nil)
	return f
}

// tenant creates a user plus their restaurant and returns both.
func (f *fixture) tenant(t *testing.T, email, plan string, maxProducts int) (*entity.User, *entity.Restaurant) {
	t.Helper()

	user := &entity.User{Email: email, Password: "x"}
	require.NoError(t, f.db.Create(user).Error)

	rest := &entity.Restaurant{
		Name:        "Resto " + email,
		Plan:        plan,
		MaxProducts: maxProducts,
		UserID:      user.ID,
	}
	require.NoError(t, f.db.Create(rest).Error)
	return user, rest
}

func (f *fixture) product(t *testing.T, restID uint, name string, price float64) *entity.Product {
	t.Helper()

	p := &entity.Product{
		Name:         name,
		Price:        decimal.NewFromFloat(price),
		IsAvailable:  true,
		RestaurantID: restID,
	}
	require.NoError(t, f.db.Create(p).Error)
	return p
}

func price(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}
