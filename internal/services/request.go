package services

import (
	"errors"
	"time"

	"waste-backend/internal/models"
	"waste-backend/internal/repository"
	"waste-backend/internal/waste"
)

type RequestService struct {
	repo        *repository.RequestRepository
	dustbinRepo *repository.DustbinRepository
	vehicleRepo *repository.VehicleRepository
}

func NewRequestService(
	repo *repository.RequestRepository,
	dustbinRepo *repository.DustbinRepository,
	vehicleRepo *repository.VehicleRepository,
) *RequestService {
	return &RequestService{
		repo:        repo,
		dustbinRepo: dustbinRepo,
		vehicleRepo: vehicleRepo,
	}
}

// CreateRequest opens a collection request manually, validating that the
// dustbin exists and that any assigned vehicle does too.
func (s *RequestService) CreateRequest(dustbinID string, vehicleID string) (*models.CollectionRequest, error) {
	dustbin, err := s.dustbinRepo.FindByID(dustbinID)
	if err != nil {
		return nil, err
	}

	open, err := s.repo.FindOpenByDustbin(dustbin.ID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, errors.New("dustbin already has an open collection request")
	}

	request := &models.CollectionRequest{
		DustbinID:   dustbin.ID,
		Status:      waste.RequestPending,
		RequestedAt: time.Now(),
	}

	if vehicleID != "" {
		vehicle, err := s.vehicleRepo.FindByID(vehicleID)
		if err != nil {
			return nil, err
		}
		request.VehicleID = &vehicle.ID
	}

	return s.repo.Create(request)
}

func (s *RequestService) GetAllRequests() ([]*models.CollectionRequestView, error) {
	return s.repo.FindAllWithRefs()
}

// UpdateRequestStatus advances a request along the Pending, In Progress,
// Completed lifecycle. Backward and skipping moves are rejected, and the
// completion timestamp is stamped exactly once.
func (s *RequestService) UpdateRequestStatus(id string, next string) (*models.CollectionRequest, error) {
	current, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	change, err := waste.TransitionRequest(current.Status, next, time.Now())
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateStatus(id, change)
}
