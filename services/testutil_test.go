package services

import (
	"fmt"
	"testing"

	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"github.com/IshuIsSleepy/KhanaKhalo/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. The shared-cache DSN
// keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.University{}, &entity.User{}, &entity.Profile{},
		&entity.Vendor{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
	))
	return db
}

type fixture struct {
	db *gorm.DB

	university entity.University
	student    entity.User
	owner      entity.User
	vendor     entity.Vendor
	maggi      entity.MenuItem
	coffee     entity.MenuItem
}

// newFixture seeds one campus with a student, a vendor owner, an open vendor
// and two menu items.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	f := &fixture{db: db}

	domain := "test.ac.in"
	f.university = entity.University{Name: "Test University", Domain: &domain}
	require.NoError(t, db.Create(&f.university).Error)

	f.student = entity.User{Username: "asha", Email: "asha@test.ac.in", Password: "x", Role: "student"}
	require.NoError(t, db.Create(&f.student).Error)
	require.NoError(t, db.Create(&entity.Profile{
		UserID: f.student.ID, UniversityID: f.university.ID, RollNo: "2021CS100",
	}).Error)

	f.owner = entity.User{Username: "canteen", Email: "canteen@test.ac.in", Password: "x", Role: "vendor"}
	require.NoError(t, db.Create(&f.owner).Error)

	f.vendor = entity.Vendor{
		Name: "Night Canteen", OpeningTime: "08:00", ClosingTime: "22:00",
		MaxOrders: 10, UniversityID: f.university.ID, UserID: &f.owner.ID,
	}
	require.NoError(t, db.Create(&f.vendor).Error)

	f.maggi = entity.MenuItem{Name: "Maggi", Price: 10.00, IsAvailable: true, VendorID: f.vendor.ID}
	require.NoError(t, db.Create(&f.maggi).Error)
	f.coffee = entity.MenuItem{Name: "Cold Coffee", Price: 5.50, IsAvailable: true, VendorID: f.vendor.ID}
	require.NoError(t, db.Create(&f.coffee).Error)

	return f
}

func (f *fixture) orderService() *OrderService {
	return NewOrderService(
		f.db,
		repository.NewOrderRepository(f.db),
		repository.NewMenuRepository(f.db),
		repository.NewVendorRepository(f.db),
	)
}

func (f *fixture) vendorService() *VendorService {
	return NewVendorService(
		f.db,
		repository.NewVendorRepository(f.db),
		repository.NewMenuRepository(f.db),
		repository.NewUserRepository(f.db),
	)
}

func (f *fixture) reviewService() *ReviewService {
	return NewReviewService(
		f.db,
		repository.NewReviewRepository(f.db),
		repository.NewVendorRepository(f.db),
		repository.NewMenuRepository(f.db),
	)
}

func (f *fixture) currentOrders(t *testing.T) int {
	t.Helper()
	var v entity.Vendor
	require.NoError(t, f.db.First(&v, f.vendor.ID).Error)
	return v.CurrentOrders
}
