package repository

import (
	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"gorm.io/gorm"
)

type UniversityRepository struct {
	DB *gorm.DB
}

func NewUniversityRepository(db *gorm.DB) *UniversityRepository {
	return &UniversityRepository{DB: db}
}

func (r *UniversityRepository) FindAll() ([]entity.University, error) {
	var unis []entity.University
	err := r.DB.Order("name").Find(&unis).Error
	return unis, err
}

func (r *UniversityRepository) FindByID(id uint) (*entity.University, error) {
	var uni entity.University
	if err := r.DB.First(&uni, id).Error; err != nil {
		return nil, err
	}
	return &uni, nil
}

// FindByDomain matches the exact email domain. gorm.ErrRecordNotFound means
// no campus claims that domain.
func (r *UniversityRepository) FindByDomain(domain string) (*entity.University, error) {
	var uni entity.University
	if err := r.DB.Where("domain = ?", domain).First(&uni).Error; err != nil {
		return nil, err
	}
	return &uni, nil
}
