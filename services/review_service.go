package services

import (
	"errors"

	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"github.com/IshuIsSleepy/KhanaKhalo/repository"
	"gorm.io/gorm"
)

type ReviewService struct {
	DB         *gorm.DB
	Repo       *repository.ReviewRepository
	VendorRepo *repository.VendorRepository
	MenuRepo   *repository.MenuRepository
}

func NewReviewService(db *gorm.DB, repo *repository.ReviewRepository, vendorRepo *repository.VendorRepository, menuRepo *repository.MenuRepository) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, VendorRepo: vendorRepo, MenuRepo: menuRepo}
}

type CreateReviewReq struct {
	VendorID   *uint  `json:"vendorId"`
	MenuItemID *uint  `json:"menuItemId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// Create stores the review and refreshes the target's average rating in the
// same transaction.
func (s *ReviewService) Create(userID uint, req *CreateReviewReq) (*entity.Review, error) {
	if req.VendorID == nil && req.MenuItemID == nil {
		return nil, ErrReviewNoTarget
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if req.VendorID != nil {
		if _, err := s.VendorRepo.FindByID(*req.VendorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}
	if req.MenuItemID != nil {
		if _, err := s.MenuRepo.FindByID(*req.MenuItemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	review := &entity.Review{
		UserID:     userID,
		VendorID:   req.VendorID,
		MenuItemID: req.MenuItemID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, review); err != nil {
			return err
		}
		if review.VendorID != nil {
			avg, err := s.Repo.AvgForVendor(tx, *review.VendorID)
			if err != nil {
				return err
			}
			if err := s.VendorRepo.UpdateAvgRating(tx, *review.VendorID, avg); err != nil {
				return err
			}
		}
		if review.MenuItemID != nil {
			avg, err := s.Repo.AvgForMenuItem(tx, *review.MenuItemID)
			if err != nil {
				return err
			}
			if err := s.MenuRepo.UpdateAvgRating(tx, *review.MenuItemID, avg); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListForVendor(vendorID uint, limit int) ([]entity.Review, error) {
	if _, err := s.VendorRepo.FindByID(vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Repo.ListForVendor(vendorID, limit)
}
