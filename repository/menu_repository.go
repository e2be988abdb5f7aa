package repository

import (
	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) ListForVendor(vendorID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("vendor_id = ?", vendorID).Order("name").Find(&items).Error
	return items, err
}

// GetBasics loads just what order creation needs: id, price, vendor,
// availability.
func (r *MenuRepository) GetBasics(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, price, vendor_id, is_available").First(&m, id).Error
	return m, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(itemID uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", itemID).Updates(updates).Error
}

func (r *MenuRepository) UpdateAvgRating(tx *gorm.DB, itemID uint, avg float64) error {
	return tx.Model(&entity.MenuItem{}).
		Where("id = ?", itemID).
		Update("avg_rating", avg).Error
}
