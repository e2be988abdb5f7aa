package repository

import (
	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(tx *gorm.DB, rv *entity.Review) error {
	return tx.Create(rv).Error
}

func (r *ReviewRepository) ListForVendor(vendorID uint, limit int) ([]entity.Review, error) {
	if limit <= 0 {
		limit = 50
	}
	var reviews []entity.Review
	err := r.DB.Where("vendor_id = ?", vendorID).
		Order("id DESC").Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

// AvgForVendor recomputes the vendor's mean rating inside the caller's
// transaction.
func (r *ReviewRepository) AvgForVendor(tx *gorm.DB, vendorID uint) (float64, error) {
	var avg float64
	err := tx.Model(&entity.Review{}).
		Where("vendor_id = ?", vendorID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *ReviewRepository) AvgForMenuItem(tx *gorm.DB, itemID uint) (float64, error) {
	var avg float64
	err := tx.Model(&entity.Review{}).
		Where("menu_item_id = ?", itemID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}
