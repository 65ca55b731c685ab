package services

import (
	"strings"
	"time"

	"tour-backend/models"
	"tour-backend/repositories"
)

type ReviewService interface {
	List(f repositories.ListFilter) ([]models.Review, error)
	Get(id uint) (*models.Review, error)
	Create(rv *models.Review) (*models.Review, error)
	Update(id uint, fields map[string]interface{}) (*models.Review, error)
	Delete(id uint) error
}

type reviewService struct {
	repo repositories.ReviewRepository
	now  func() time.Time
}

func NewReviewService(repo repositories.ReviewRepository) ReviewService {
	return &reviewService{repo: repo, now: time.Now}
}

func (s *reviewService) List(f repositories.ListFilter) ([]models.Review, error) {
	return s.repo.List(f)
}

func (s *reviewService) Get(id uint) (*models.Review, error) {
	return s.repo.GetByID(id)
}

func (s *reviewService) Create(rv *models.Review) (*models.Review, error) {
	missing := []string{}
	if rv.Name == "" {
		missing = append(missing, "name")
	}
	if rv.Country == "" {
		missing = append(missing, "country")
	}
	if rv.Tour == "" {
		missing = append(missing, "tour")
	}
	if rv.Comment == "" {
		missing = append(missing, "comment")
	}
	if rv.Rating == 0 {
		missing = append(missing, "rating")
	}
	if len(missing) > 0 {
		return nil, requiredFieldsError(missing...)
	}

	if rv.Rating < 1 || rv.Rating > 5 {
		return nil, validationErrorf("rating must be between 1 and 5")
	}

	// Auto-approve so submissions show immediately.
	rv.Approved = true

	if rv.Date == "" {
		rv.Date = s.now().Format("2006-01-02")
	}

	// Never persist an empty-string avatar; the column is nullable.
	if rv.Avatar != nil {
		trimmed := strings.TrimSpace(*rv.Avatar)
		if trimmed == "" {
			rv.Avatar = nil
		} else {
			rv.Avatar = &trimmed
		}
	}

	if err := s.repo.Create(rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *reviewService) Update(id uint, fields map[string]interface{}) (*models.Review, error) {
	fields = sanitizeUpdate(fields)

	if raw, ok := fields["rating"]; ok {
		rating, ok := ratingValue(raw)
		if !ok || rating < 1 || rating > 5 {
			return nil, validationErrorf("rating must be between 1 and 5")
		}
	}

	return s.repo.Update(id, fields)
}

// ratingValue reads a rating out of an update payload; JSON decoding hands
// numbers over as float64, direct callers may pass an int.
func ratingValue(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func (s *reviewService) Delete(id uint) error {
	return s.repo.Delete(id)
}
