package services

import (
	"errors"

	"waste-backend/internal/models"
	"waste-backend/internal/repository"
	"waste-backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	adminRepo *repository.AdminRepository
	jwtUtil   *jwt.JWTUtil
}

func NewAuthService(adminRepo *repository.AdminRepository, jwtUtil *jwt.JWTUtil) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		jwtUtil:   jwtUtil,
	}
}

// Login verifies admin credentials and issues a JWT. Unknown emails and bad
// passwords both return the same error so the response does not leak which
// accounts exist.
func (s *AuthService) Login(email, password string) (*models.AuthAdmin, string, error) {
	admin, err := s.adminRepo.FindByEmail(email)
	if err != nil {
		return nil, "", errors.New("invalid email or password")
	}

	if admin.Password == "" {
		return nil, "", errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, "", errors.New("invalid email or password")
	}

	token, err := s.jwtUtil.GenerateToken(admin.ID.Hex(), admin.Email)
	if err != nil {
		return nil, "", errors.New("failed to generate token")
	}

	return &models.AuthAdmin{
		ID:    admin.ID.Hex(),
		Email: admin.Email,
		Name:  admin.Name,
	}, token, nil
}
