package services

import (
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/careerbridge/job-portal-api/internal/apperrors"
	"github.com/careerbridge/job-portal-api/internal/auth"
	"github.com/careerbridge/job-portal-api/internal/dtos"
	"github.com/careerbridge/job-portal-api/internal/models"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type UserService struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewUserService(db *gorm.DB, bcryptCost int) *UserService {
	return &UserService{DB: db, BcryptCost: bcryptCost}
}

// Register creates a new account. Emails are lowercased so the unique index
// catches case-variant duplicates too.
func (s *UserService) Register(req *dtos.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		return nil, apperrors.Validation("email", "please provide a valid email")
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleJobSeeker
	}
	if !models.ValidRole(role) {
		return nil, apperrors.Validation("role", "invalid role")
	}

	// Early lookup for a friendlier error; the unique index is the real guard.
	var existing models.User
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password, s.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hash,
		Role:     role,
		Phone:    strings.TrimSpace(req.Phone),
		Location: strings.TrimSpace(req.Location),
		Company:  strings.TrimSpace(req.Company),
	}
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

// Login checks credentials and returns the user. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *UserService) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile patches the caller's own profile. Email and role are never
// touched; the password is re-hashed only when a new one is supplied.
func (s *UserService) UpdateProfile(userID uint, req *dtos.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.Validation("name", "name is required")
		}
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password, s.BcryptCost)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Location != nil {
		user.Location = strings.TrimSpace(*req.Location)
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.Experience != nil {
		user.Experience = *req.Experience
	}
	if req.Education != nil {
		user.Education = *req.Education
	}
	if req.Company != nil {
		user.Company = strings.TrimSpace(*req.Company)
	}

	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SetResume updates the stored resume URL on a profile.
func (s *UserService) SetResume(userID uint, url string) error {
	return s.DB.Model(&models.User{}).Where("id = ?", userID).Update("resume", url).Error
}

// SetCompanyLogo updates the stored company logo URL on a profile.
func (s *UserService) SetCompanyLogo(userID uint, url string) error {
	return s.DB.Model(&models.User{}).Where("id = ?", userID).Update("company_logo", url).Error
}

// ListUsers returns a page of users, optionally filtered by role.
func (s *UserService) ListUsers(role string, page, limit int) ([]models.User, int64, error) {
	query := s.DB.Model(&models.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// DeleteUser removes a user and everything that hangs off them: a job
// seeker's applications, or an employer's jobs plus those jobs'
// applications. Admin accounts cannot be deleted.
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin {
		return apperrors.ErrForbidden
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		switch user.Role {
		case models.RoleJobSeeker:
			if err := tx.Where("job_seeker_id = ?", user.ID).Delete(&models.Application{}).Error; err != nil {
				return err
			}
		case models.RoleEmployer:
			var jobIDs []uint
			if err := tx.Model(&models.Job{}).Where("employer_id = ?", user.ID).Pluck("id", &jobIDs).Error; err != nil {
				return err
			}
			if len(jobIDs) > 0 {
				if err := tx.Where("job_id IN ?", jobIDs).Delete(&models.Application{}).Error; err != nil {
					return err
				}
				if err := tx.Where("employer_id = ?", user.ID).Delete(&models.Job{}).Error; err != nil {
					return err
				}
			}
		}
		return tx.Delete(&models.User{}, user.ID).Error
	})
}
