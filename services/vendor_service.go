package services

import (
	"errors"
	"time"

	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"github.com/IshuIsSleepy/KhanaKhalo/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VendorService struct {
	DB       *gorm.DB
	Repo     *repository.VendorRepository
	MenuRepo *repository.MenuRepository
	UserRepo *repository.UserRepository
}

func NewVendorService(db *gorm.DB, repo *repository.VendorRepository, menuRepo *repository.MenuRepository, userRepo *repository.UserRepository) *VendorService {
	return &VendorService{DB: db, Repo: repo, MenuRepo: menuRepo, UserRepo: userRepo}
}

// VendorSummary is what the home page shows per vendor.
type VendorSummary struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Logo         string  `json:"logo"`
	ServiceType  string  `json:"serviceType"`
	DietaryFocus string  `json:"dietaryFocus"`
	AvgRating    float64 `json:"avgRating"`
	CrowdStatus  string  `json:"crowdStatus"`
	IsOpen       bool    `json:"isOpen"`
}

// HomeForUser lists the vendors of the caller's university with their
// derived labels.
func (s *VendorService) HomeForUser(userID uint) (*entity.University, []VendorSummary, error) {
	profile, err := s.UserRepo.GetProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	vendors, err := s.Repo.ListByUniversity(profile.UniversityID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	out := make([]VendorSummary, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, VendorSummary{
			ID:           v.ID,
			Name:         v.Name,
			Location:     v.Location,
			Logo:         v.Logo,
			ServiceType:  v.ServiceType,
			DietaryFocus: v.DietaryFocus,
			AvgRating:    v.AvgRating,
			CrowdStatus:  v.CrowdStatus(),
			IsOpen:       v.IsOpen(now),
		})
	}
	return &profile.University, out, nil
}

// Menu returns the vendor and its items.
func (s *VendorService) Menu(vendorID uint) (*entity.Vendor, []entity.MenuItem, error) {
	vendor, err := s.Repo.FindByID(vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	items, err := s.MenuRepo.ListForVendor(vendor.ID)
	if err != nil {
		return nil, nil, err
	}
	return vendor, items, nil
}

// ----- Owner menu management -----

type MenuItemIn struct {
	Name             string         `json:"name"`
	ShortDescription string         `json:"shortDescription"`
	Price            float64        `json:"price"`
	IsAvailable      *bool          `json:"isAvailable"`
	IsVegetarian     bool           `json:"isVegetarian"`
	Options          datatypes.JSON `json:"options"`
}

func (s *VendorService) CreateMenuItem(ownerID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	vendor, err := s.Repo.FindByOwner(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	item := &entity.MenuItem{
		Name:             in.Name,
		ShortDescription: in.ShortDescription,
		Price:            in.Price,
		IsAvailable:      available,
		IsVegetarian:     in.IsVegetarian,
		Options:          in.Options,
		VendorID:         vendor.ID,
	}
	if err := s.MenuRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *VendorService) UpdateMenuItem(ownerID, itemID uint, updates map[string]any) (*entity.MenuItem, error) {
	item, err := s.MenuRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	owned, err := s.Repo.IsOwnedBy(item.VendorID, ownerID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrForbidden
	}

	if err := s.MenuRepo.Update(item.ID, updates); err != nil {
		return nil, err
	}
	return s.MenuRepo.FindByID(item.ID)
}
