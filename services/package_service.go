package services

import (
	"tour-backend/models"
	"tour-backend/repositories"
)

// PackageListOptions combines the database-side filters with the bucket
// labels the public listing page offers.
type PackageListOptions struct {
	Filter        repositories.ListFilter
	PriceRange    string
	DurationRange string
}

type PackageService interface {
	List(opts PackageListOptions) ([]models.Package, error)
	Get(id uint) (*models.Package, error)
	Create(p *models.Package) (*models.Package, error)
	Update(id uint, fields map[string]interface{}) (*models.Package, error)
	Delete(id uint) error
}

type packageService struct {
	repo repositories.PackageRepository
}

func NewPackageService(repo repositories.PackageRepository) PackageService {
	return &packageService{repo: repo}
}

func (s *packageService) List(opts PackageListOptions) ([]models.Package, error) {
	packages, err := s.repo.List(opts.Filter)
	if err != nil {
		return nil, err
	}

	if opts.PriceRange == "" && opts.DurationRange == "" {
		return packages, nil
	}

	filtered := make([]models.Package, 0, len(packages))
	for _, pkg := range packages {
		if !MatchesPriceRange(pkg.Price, opts.PriceRange) {
			continue
		}
		if !MatchesDurationRange(pkg.Duration, opts.DurationRange) {
			continue
		}
		filtered = append(filtered, pkg)
	}
	return filtered, nil
}

func (s *packageService) Get(id uint) (*models.Package, error) {
	return s.repo.GetByID(id)
}

func (s *packageService) Create(p *models.Package) (*models.Package, error) {
	missing := []string{}
	if p.Title == "" {
		missing = append(missing, "title")
	}
	if p.Duration == "" {
		missing = append(missing, "duration")
	}
	if p.GroupSize == "" {
		missing = append(missing, "group_size")
	}
	if p.Price == 0 {
		missing = append(missing, "price")
	}
	if p.Category == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return nil, requiredFieldsError(missing...)
	}

	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *packageService) Update(id uint, fields map[string]interface{}) (*models.Package, error) {
	return s.repo.Update(id, sanitizeUpdate(fields))
}

func (s *packageService) Delete(id uint) error {
	return s.repo.Delete(id)
}
