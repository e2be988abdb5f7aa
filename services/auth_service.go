package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"github.com/IshuIsSleepy/KhanaKhalo/repository"
	"github.com/IshuIsSleepy/KhanaKhalo/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration and login.
type AuthService struct {
	DB       *gorm.DB
	UserRepo *repository.UserRepository
	UniRepo  *repository.UniversityRepository

	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(db *gorm.DB, userRepo *repository.UserRepository, uniRepo *repository.UniversityRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		DB:        db,
		UserRepo:  userRepo,
		UniRepo:   uniRepo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type RegisterInput struct {
	Username     string
	Password     string
	Email        string
	RollNo       string
	Phone        string
	UniversityID uint // 0 = not chosen, rely on domain inference
}

// Register creates the account and its profile in one transaction.
//
// The university comes from the email domain when a campus claims it; the
// caller's explicit choice is only a fallback for unclaimed domains.
func (s *AuthService) Register(in RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	count, err = s.UserRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	universityID, err := s.resolveUniversity(email, in.UniversityID)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     "student",
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.Create(tx, user); err != nil {
			return err
		}
		profile := &entity.Profile{
			UserID:       user.ID,
			UniversityID: universityID,
			RollNo:       strings.TrimSpace(in.RollNo),
			Phone:        strings.TrimSpace(in.Phone),
		}
		return s.UserRepo.CreateProfile(tx, profile)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) resolveUniversity(email string, chosenID uint) (uint, error) {
	at := strings.LastIndex(email, "@")
	if at >= 0 && at < len(email)-1 {
		domain := email[at+1:]
		uni, err := s.UniRepo.FindByDomain(domain)
		if err == nil {
			// A claimed domain wins over any manual choice.
			return uni.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
	}

	if chosenID == 0 {
		return 0, ErrUniversityRequired
	}
	uni, err := s.UniRepo.FindByID(chosenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUniversityRequired
		}
		return 0, err
	}
	return uni.ID, nil
}

// Login checks the password and mints a JWT.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	user, err := s.UserRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

// GetProfile loads the caller's profile with its university.
func (s *AuthService) GetProfile(userID uint) (*entity.Profile, error) {
	p, err := s.UserRepo.GetProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
