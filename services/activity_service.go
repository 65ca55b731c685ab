package services

import (
	"tour-backend/models"
	"tour-backend/repositories"
)

type ActivityListOptions struct {
	Filter     repositories.ListFilter
	PriceRange string
}

type ActivityService interface {
	List(opts ActivityListOptions) ([]models.Activity, error)
	Get(id uint) (*models.Activity, error)
	Create(a *models.Activity) (*models.Activity, error)
	Update(id uint, fields map[string]interface{}) (*models.Activity, error)
	Delete(id uint) error
}

type activityService struct {
	repo repositories.ActivityRepository
}

func NewActivityService(repo repositories.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) List(opts ActivityListOptions) ([]models.Activity, error) {
	activities, err := s.repo.List(opts.Filter)
	if err != nil {
		return nil, err
	}

	if opts.PriceRange == "" {
		return activities, nil
	}

	filtered := make([]models.Activity, 0, len(activities))
	for _, activity := range activities {
		if MatchesPriceRange(activity.Price, opts.PriceRange) {
			filtered = append(filtered, activity)
		}
	}
	return filtered, nil
}

func (s *activityService) Get(id uint) (*models.Activity, error) {
	return s.repo.GetByID(id)
}

func (s *activityService) Create(a *models.Activity) (*models.Activity, error) {
	missing := []string{}
	if a.Name == "" {
		missing = append(missing, "name")
	}
	if a.Location == "" {
		missing = append(missing, "location")
	}
	if a.Category == "" {
		missing = append(missing, "category")
	}
	if a.Duration == "" {
		missing = append(missing, "duration")
	}
	if a.Price == 0 {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return nil, requiredFieldsError(missing...)
	}

	if err := s.repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *activityService) Update(id uint, fields map[string]interface{}) (*models.Activity, error) {
	return s.repo.Update(id, sanitizeUpdate(fields))
}

func (s *activityService) Delete(id uint) error {
	return s.repo.Delete(id)
}
