package repository

import (
	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"gorm.io/gorm"
)

type VendorRepository struct {
	DB *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{DB: db}
}

func (r *VendorRepository) FindByID(id uint) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) ListByUniversity(universityID uint) ([]entity.Vendor, error) {
	var vendors []entity.Vendor
	err := r.DB.Where("university_id = ?", universityID).Order("name").Find(&vendors).Error
	return vendors, err
}

// FindByOwner resolves the vendor operated by the given user account.
func (r *VendorRepository) FindByOwner(userID uint) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.DB.Where("user_id = ?", userID).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) IsOwnedBy(vendorID, userID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Vendor{}).
		Where("id = ? AND user_id = ?", vendorID, userID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// IncrementLoad adds one open order to the vendor's counter.
func (r *VendorRepository) IncrementLoad(tx *gorm.DB, vendorID uint) error {
	return tx.Model(&entity.Vendor{}).
		Where("id = ?", vendorID).
		Update("current_orders", gorm.Expr("current_orders + 1")).Error
}

// ReleaseLoad frees one unit of capacity. The counter guard keeps it from
// ever going below zero.
func (r *VendorRepository) ReleaseLoad(tx *gorm.DB, vendorID uint) error {
	return tx.Model(&entity.Vendor{}).
		Where("id = ? AND current_orders > 0", vendorID).
		Update("current_orders", gorm.Expr("current_orders - 1")).Error
}

func (r *VendorRepository) UpdateAvgRating(tx *gorm.DB, vendorID uint, avg float64) error {
	return tx.Model(&entity.Vendor{}).
		Where("id = ?", vendorID).
		Update("avg_rating", avg).Error
}
