package configs

import (
	"log"

	"qrmenu/entity"
	"qrmenu/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemo creates a free-plan demo tenant on an empty database.
// Controlled by SEED_DEMO=1; a no-op when any user already exists.
func SeedDemo() error {
	db := DB()

	var count int64
	db.Model(&entity.User{}).Count(&count)
	if count > 0 {
		log.Println("skip demo seed: users already exist")
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	owner := entity.User{
		Email:     "demo@qrmenu.local",
		Password:  string(hash),
		FirstName: "Demo",
		LastName:  "Owner",
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	rest := entity.Restaurant{
		Name:        "Demo Bistro",
		Description: "Seeded demo restaurant",
		Plan:        entity.PlanFree,
		MaxProducts: 10,
		UserID:      owner.ID,
	}
	if err := db.Create(&rest).Error; err != nil {
		return err
	}

	starters := entity.Category{Name: "Starters", SortOrder: 1, RestaurantID: rest.ID}
	mains := entity.Category{Name: "Mains", SortOrder: 2, RestaurantID: rest.ID}
	db.Create(&starters)
	db.Create(&mains)

	db.Create(&entity.Product{
		Name: "Lentil Soup", Price: decimal.NewFromFloat(4.50),
		RestaurantID: rest.ID, CategoryID: &starters.ID, SortOrder: 1, IsAvailable: true,
	})
	db.Create(&entity.Product{
		Name: "Grilled Chicken", Price: decimal.NewFromFloat(12.90),
		RestaurantID: rest.ID, CategoryID: &mains.ID, SortOrder: 1, IsAvailable: true,
	})

	table := entity.Table{Name: "Masa 1", QRCode: utils.NewQRToken(), RestaurantID: rest.ID, IsActive: true}
	if err := db.Create(&table).Error; err != nil {
		return err
	}

	log.Println("demo tenant seeded:", owner.Email, "table token:", table.QRCode)
	return nil
}
