package repositories

import (
	"tour-backend/models"

	"gorm.io/gorm"
)

type DestinationRepository interface {
	List(f ListFilter) ([]models.Destination, error)
	GetByID(id uint) (*models.Destination, error)
	Create(d *models.Destination) error
	Update(id uint, fields map[string]interface{}) (*models.Destination, error)
	Delete(id uint) error
	Count(f ListFilter) (int64, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) List(f ListFilter) ([]models.Destination, error) {
	destinations := make([]models.Destination, 0)
	q := applyListFilter(r.db.Model(&models.Destination{}), f, "name", "location", "description")
	err := q.Order("created_at DESC").Find(&destinations).Error
	return destinations, err
}

func (r *destinationRepository) GetByID(id uint) (*models.Destination, error) {
	var destination models.Destination
	if err := r.db.First(&destination, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &destination, nil
}

func (r *destinationRepository) Create(d *models.Destination) error {
	return r.db.Create(d).Error
}

func (r *destinationRepository) Update(id uint, fields map[string]interface{}) (*models.Destination, error) {
	var destination models.Destination
	if err := r.db.First(&destination, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	if err := r.db.Model(&destination).Updates(fields).Error; err != nil {
		return nil, err
	}
	if err := r.db.First(&destination, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &destination, nil
}

func (r *destinationRepository) Delete(id uint) error {
	// Hard delete, idempotent: deleting an id that no longer exists succeeds.
	return r.db.Delete(&models.Destination{}, id).Error
}

func (r *destinationRepository) Count(f ListFilter) (int64, error) {
	var n int64
	err := applyListFilter(r.db.Model(&models.Destination{}), f).Count(&n).Error
	return n, err
}
