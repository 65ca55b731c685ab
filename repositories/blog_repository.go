package repositories

import (
	"tour-backend/models"

	"gorm.io/gorm"
)

type BlogRepository interface {
	List(f ListFilter) ([]models.BlogPost, error)
	GetByID(id uint) (*models.BlogPost, error)
	Create(p *models.BlogPost) error
	Update(id uint, fields map[string]interface{}) (*models.BlogPost, error)
	Delete(id uint) error
	Count(f ListFilter) (int64, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) List(f ListFilter) ([]models.BlogPost, error) {
	posts := make([]models.BlogPost, 0)
	q := applyListFilter(r.db.Model(&models.BlogPost{}), f, "title", "excerpt", "content")
	err := q.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *blogRepository) GetByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &post, nil
}

func (r *blogRepository) Create(p *models.BlogPost) error {
	return r.db.Create(p).Error
}

func (r *blogRepository) Update(id uint, fields map[string]interface{}) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	if err := r.db.Model(&post).Updates(fields).Error; err != nil {
		return nil, err
	}
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &post, nil
}

func (r *blogRepository) Delete(id uint) error {
	return r.db.Delete(&models.BlogPost{}, id).Error
}

func (r *blogRepository) Count(f ListFilter) (int64, error) {
	var n int64
	err := applyListFilter(r.db.Model(&models.BlogPost{}), f).Count(&n).Error
	return n, err
}
