package services

import (
	"errors"
	"log"
	"time"

	"waste-backend/internal/models"
	"waste-backend/internal/repository"
	"waste-backend/internal/waste"
)

// FillReport is the outcome of a dustbin fill update, including the request
// opened when the bin crossed the collection threshold.
type FillReport struct {
	Dustbin       *models.Dustbin           `json:"dustbin"`
	OpenedRequest *models.CollectionRequest `json:"openedRequest,omitempty"`
}

type DustbinService struct {
	repo          *repository.DustbinRepository
	requestRepo   *repository.RequestRepository
	fillThreshold float64
}

func NewDustbinService(repo *repository.DustbinRepository, requestRepo *repository.RequestRepository, fillThreshold float64) *DustbinService {
	return &DustbinService{
		repo:          repo,
		requestRepo:   requestRepo,
		fillThreshold: fillThreshold,
	}
}

func (s *DustbinService) CreateDustbin(dustbin *models.Dustbin) (*models.Dustbin, error) {
	existing, _ := s.repo.FindByDustbinNumber(dustbin.DustbinNumber)
	if existing != nil {
		return nil, errors.New("dustbin with this number already exists")
	}

	if dustbin.FillPct < 0 || dustbin.FillPct > 100 {
		return nil, errors.New("fill percentage must be between 0 and 100")
	}

	now := time.Now()
	dustbin.CreatedAt = now
	dustbin.UpdatedAt = now

	return s.repo.Create(dustbin)
}

func (s *DustbinService) GetAllDustbins() ([]*models.Dustbin, error) {
	return s.repo.FindAll()
}

func (s *DustbinService) GetDustbin(id string) (*models.Dustbin, error) {
	return s.repo.FindByID(id)
}

// ReportFill records a fill reading. Crossing the threshold opens a Pending
// collection request, unless the bin already has one open.
func (s *DustbinService) ReportFill(id string, fillPct float64) (*FillReport, error) {
	if fillPct < 0 || fillPct > 100 {
		return nil, errors.New("fill percentage must be between 0 and 100")
	}

	dustbin, err := s.repo.UpdateFill(id, fillPct)
	if err != nil {
		return nil, err
	}

	report := &FillReport{Dustbin: dustbin}

	if !waste.NeedsCollection(fillPct, s.fillThreshold) {
		return report, nil
	}

	open, err := s.requestRepo.FindOpenByDustbin(dustbin.ID)
	if err != nil {
		log.Printf("Failed to check open requests for dustbin %s: %v", dustbin.DustbinNumber, err)
		return report, nil
	}
	if open != nil {
		return report, nil
	}

	request, err := s.requestRepo.Create(&models.CollectionRequest{
		DustbinID:   dustbin.ID,
		Status:      waste.RequestPending,
		RequestedAt: time.Now(),
	})
	if err != nil {
		log.Printf("Failed to open collection request for dustbin %s: %v", dustbin.DustbinNumber, err)
		return report, nil
	}

	report.OpenedRequest = request
	return report, nil
}
