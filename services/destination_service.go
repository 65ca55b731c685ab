package services

import (
	"strconv"

	"tour-backend/models"
	"tour-backend/repositories"
)

type DestinationService interface {
	List(f repositories.ListFilter) ([]models.Destination, error)
	Get(id uint) (*models.Destination, error)
	Create(d *models.Destination) (*models.Destination, error)
	Update(id uint, fields map[string]interface{}) (*models.Destination, error)
	Delete(id uint) error
}

type destinationService struct {
	repo repositories.DestinationRepository
}

func NewDestinationService(repo repositories.DestinationRepository) DestinationService {
	return &destinationService{repo: repo}
}

func (s *destinationService) List(f repositories.ListFilter) ([]models.Destination, error) {
	return s.repo.List(f)
}

func (s *destinationService) Get(id uint) (*models.Destination, error) {
	return s.repo.GetByID(id)
}

func (s *destinationService) Create(d *models.Destination) (*models.Destination, error) {
	missing := []string{}
	if d.Name == "" {
		missing = append(missing, "name")
	}
	if d.Location == "" {
		missing = append(missing, "location")
	}
	if d.Category == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return nil, requiredFieldsError(missing...)
	}

	if err := s.repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *destinationService) Update(id uint, fields map[string]interface{}) (*models.Destination, error) {
	fields = stripEmptyStrings(sanitizeUpdate(fields))

	// Admin forms submit rating as text; the column is numeric.
	if raw, ok := fields["rating"].(string); ok {
		if rating, err := strconv.ParseFloat(raw, 64); err == nil {
			fields["rating"] = rating
		} else {
			delete(fields, "rating")
		}
	}

	return s.repo.Update(id, fields)
}

func (s *destinationService) Delete(id uint) error {
	return s.repo.Delete(id)
}
