package services

import (
	"errors"
	"time"

	"waste-backend/internal/models"
	"waste-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AdminService struct {
	repo *repository.AdminRepository
}

func NewAdminService(repo *repository.AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

// CreateAdmin registers an admin account. The password is stored as a bcrypt
// hash; accounts created without one cannot log in until a password is set.
func (s *AdminService) CreateAdmin(admin *models.Admin, password string) (*models.Admin, error) {
	existing, _ := s.repo.FindByEmail(admin.Email)
	if existing != nil {
		return nil, errors.New("admin with this email already exists")
	}

	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.New("failed to hash password")
		}
		admin.Password = string(hashed)
	}

	admin.CreatedAt = time.Now()

	return s.repo.Create(admin)
}

func (s *AdminService) GetAllAdmins() ([]*models.Admin, error) {
	return s.repo.FindAll()
}

func (s *AdminService) DeleteAdmin(id string) error {
	return s.repo.Delete(id)
}
