package services

import (
	"errors"
	"time"

	"waste-backend/internal/models"
	"waste-backend/internal/repository"
	"waste-backend/internal/waste"
)

type VehicleService struct {
	repo *repository.VehicleRepository
}

func NewVehicleService(repo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{repo: repo}
}

// CreateVehicle registers a vehicle. Status defaults to Idle when omitted,
// and vehicle numbers are unique across the fleet.
func (s *VehicleService) CreateVehicle(vehicle *models.Vehicle) (*models.Vehicle, error) {
	existing, _ := s.repo.FindByVehicleNumber(vehicle.VehicleNumber)
	if existing != nil {
		return nil, errors.New("vehicle with this number already exists")
	}

	if vehicle.VehicleType != "" && !waste.ValidVehicleCategory(vehicle.VehicleType) {
		return nil, errors.New("invalid vehicle waste type")
	}

	if vehicle.Status == "" {
		vehicle.Status = waste.DefaultVehicleStatus
	} else if !waste.ValidVehicleStatus(vehicle.Status) {
		return nil, errors.New("invalid vehicle status")
	}

	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	return s.repo.Create(vehicle)
}

// GetAllVehicles lists vehicles newest first. A limit of 0 returns the
// whole fleet.
func (s *VehicleService) GetAllVehicles(limit int64) ([]*models.Vehicle, error) {
	return s.repo.FindAll(limit)
}

func (s *VehicleService) GetVehicle(id string) (*models.Vehicle, error) {
	return s.repo.FindByID(id)
}

// UpdateVehicleStatus moves a vehicle to any valid status. Unlike collection
// requests, vehicle status moves freely in both directions.
func (s *VehicleService) UpdateVehicleStatus(id string, status string) (*models.Vehicle, error) {
	if !waste.ValidVehicleStatus(status) {
		return nil, errors.New("invalid vehicle status")
	}

	return s.repo.UpdateStatus(id, status)
}

func (s *VehicleService) DeleteVehicle(id string) error {
	return s.repo.Delete(id)
}
