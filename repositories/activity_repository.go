package repositories

import (
	"tour-backend/models"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	List(f ListFilter) ([]models.Activity, error)
	GetByID(id uint) (*models.Activity, error)
	Create(a *models.Activity) error
	Update(id uint, fields map[string]interface{}) (*models.Activity, error)
	Delete(id uint) error
	Count(f ListFilter) (int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) List(f ListFilter) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	q := applyListFilter(r.db.Model(&models.Activity{}), f, "name", "location", "description")
	err := q.Order("created_at DESC").Find(&activities).Error
	return activities, err
}

func (r *activityRepository) GetByID(id uint) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.First(&activity, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &activity, nil
}

func (r *activityRepository) Create(a *models.Activity) error {
	return r.db.Create(a).Error
}

func (r *activityRepository) Update(id uint, fields map[string]interface{}) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.First(&activity, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	if err := r.db.Model(&activity).Updates(fields).Error; err != nil {
		return nil, err
	}
	if err := r.db.First(&activity, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &activity, nil
}

func (r *activityRepository) Delete(id uint) error {
	return r.db.Delete(&models.Activity{}, id).Error
}

func (r *activityRepository) Count(f ListFilter) (int64, error) {
	var n int64
	err := applyListFilter(r.db.Model(&models.Activity{}), f).Count(&n).Error
	return n, err
}
