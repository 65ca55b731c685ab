package repositories

import (
	"tour-backend/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	List(f ListFilter) ([]models.Review, error)
	GetByID(id uint) (*models.Review, error)
	Create(rv *models.Review) error
	Update(id uint, fields map[string]interface{}) (*models.Review, error)
	Delete(id uint) error
	Count(f ListFilter) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) List(f ListFilter) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	q := applyListFilter(r.db.Model(&models.Review{}), f, "name", "country", "tour")
	err := q.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &review, nil
}

func (r *reviewRepository) Create(rv *models.Review) error {
	return r.db.Create(rv).Error
}

func (r *reviewRepository) Update(id uint, fields map[string]interface{}) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	if err := r.db.Model(&review).Updates(fields).Error; err != nil {
		return nil, err
	}
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &review, nil
}

func (r *reviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.Review{}, id).Error
}

func (r *reviewRepository) Count(f ListFilter) (int64, error) {
	var n int64
	err := applyListFilter(r.db.Model(&models.Review{}), f).Count(&n).Error
	return n, err
}
