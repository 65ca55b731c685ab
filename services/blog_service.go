package services

import (
	"tour-backend/models"
	"tour-backend/repositories"
)

type BlogListOptions struct {
	Filter repositories.ListFilter
	Tag    string
}

type BlogService interface {
	List(opts BlogListOptions) ([]models.BlogPost, error)
	Get(id uint) (*models.BlogPost, error)
	Create(p *models.BlogPost) (*models.BlogPost, error)
	Update(id uint, fields map[string]interface{}) (*models.BlogPost, error)
	Delete(id uint) error
}

type blogService struct {
	repo repositories.BlogRepository
}

func NewBlogService(repo repositories.BlogRepository) BlogService {
	return &blogService{repo: repo}
}

func (s *blogService) List(opts BlogListOptions) ([]models.BlogPost, error) {
	posts, err := s.repo.List(opts.Filter)
	if err != nil {
		return nil, err
	}

	if opts.Tag == "" {
		return posts, nil
	}

	filtered := make([]models.BlogPost, 0, len(posts))
	for _, post := range posts {
		if HasTag(post.Tags, opts.Tag) {
			filtered = append(filtered, post)
		}
	}
	return filtered, nil
}

func (s *blogService) Get(id uint) (*models.BlogPost, error) {
	return s.repo.GetByID(id)
}

func (s *blogService) Create(p *models.BlogPost) (*models.BlogPost, error) {
	missing := []string{}
	if p.Title == "" {
		missing = append(missing, "title")
	}
	if p.Excerpt == "" {
		missing = append(missing, "excerpt")
	}
	if p.Content == "" {
		missing = append(missing, "content")
	}
	if p.Author == "" {
		missing = append(missing, "author")
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

func (s *blogService) Update(id uint, fields map[string]interface{}) (*models.BlogPost, error) {
	return s.repo.Update(id, sanitizeUpdate(fields))
}

func (s *blogService) Delete(id uint) error {
	return s.repo.Delete(id)
}
