package repositories

import (
	"tour-backend/models"

	"gorm.io/gorm"
)

type PackageRepository interface {
	List(f ListFilter) ([]models.Package, error)
	GetByID(id uint) (*models.Package, error)
	Create(p *models.Package) error
	Update(id uint, fields map[string]interface{}) (*models.Package, error)
	Delete(id uint) error
	Count(f ListFilter) (int64, error)
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) List(f ListFilter) ([]models.Package, error) {
	packages := make([]models.Package, 0)
	q := applyListFilter(r.db.Model(&models.Package{}), f, "title", "category", "duration")
	err := q.Order("created_at DESC").Find(&packages).Error
	return packages, err
}

func (r *packageRepository) GetByID(id uint) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.First(&pkg, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &pkg, nil
}

func (r *packageRepository) Create(p *models.Package) error {
	return r.db.Create(p).Error
}

func (r *packageRepository) Update(id uint, fields map[string]interface{}) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.First(&pkg, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	if err := r.db.Model(&pkg).Updates(fields).Error; err != nil {
		return nil, err
	}
	if err := r.db.First(&pkg, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &pkg, nil
}

func (r *packageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Package{}, id).Error
}

func (r *packageRepository) Count(f ListFilter) (int64, error) {
	var n int64
	err := applyListFilter(r.db.Model(&models.Package{}), f).Count(&n).Error
	return n, err
}
