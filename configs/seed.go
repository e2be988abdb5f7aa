package configs

import (
	"log"

	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// SeedUniversities inserts the starter campuses so registration has domains
// to match against.
func SeedUniversities() error {
	db := DB()

	iitd := "iitd.ac.in"
	bits := "pilani.bits-pilani.ac.in"
	db.FirstOrCreate(&entity.University{}, entity.University{Name: "IIT Delhi", Domain: &iitd, Address: "Hauz Khas, New Delhi"})
	db.FirstOrCreate(&entity.University{}, entity.University{Name: "BITS Pilani", Domain: &bits, Address: "Pilani, Rajasthan"})

	log.Println("universities seeded")
	return nil
}

// SeedDemoVendor creates a demo vendor with an owner account and a small
// menu. Controlled by SEED_DEMO_OWNER_EMAIL / SEED_DEMO_OWNER_PASSWORD; a
// missing pair skips the seed.
func SeedDemoVendor() error {
	db := DB()

	email := getEnv("SEED_DEMO_OWNER_EMAIL", "")
	pass := getEnv("SEED_DEMO_OWNER_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding demo vendor: missing SEED_DEMO_OWNER_EMAIL/SEED_DEMO_OWNER_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("demo vendor owner already exists:", email)
		return nil
	}

	var uni entity.University
	if err := db.Where("name = ?", "IIT Delhi").First(&uni).Error; err != nil {
		return err
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	owner := entity.User{
		Username: "canteen-demo",
		Email:    email,
		Password: string(hash),
		Role:     "vendor",
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	vendor := entity.Vendor{
		Name:            "Night Canteen",
		Location:        "Hostel Block C",
		OpeningTime:     "10:00",
		ClosingTime:     "23:00",
		ServiceType:     "stall",
		DietaryFocus:    "veg",
		PickupAvailable: true,
		MaxOrders:       20,
		UniversityID:    uni.ID,
		UserID:          &owner.ID,
	}
	if err := db.Create(&vendor).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{Name: "Maggi", Price: 30, IsVegetarian: true, VendorID: vendor.ID,
			Options: datatypes.JSON([]byte(`{"spice":["mild","hot"]}`))},
		{Name: "Cold Coffee", Price: 50, IsVegetarian: true, VendorID: vendor.ID},
		{Name: "Veg Sandwich", Price: 45, IsVegetarian: true, VendorID: vendor.ID},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	log.Println("demo vendor seeded")
	return nil
}
