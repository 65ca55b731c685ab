package services

import (
	"errors"
	"testing"

	"tour-backend/models"
	"tour-backend/repositories"
)

type mockActivityRepository struct {
	activities []models.Activity
}

func (m *mockActivityRepository) List(f repositories.ListFilter) ([]models.Activity, error) {
	return m.activities, nil
}

func (m *mockActivityRepository) GetByID(id uint) (*models.Activity, error) {
	return nil, repositories.ErrNotFound
}

func (m *mockActivityRepository) Create(a *models.Activity) error {
	m.activities = append(m.activities, *a)
	return nil
}

func (m *mockActivityRepository) Update(id uint, fields map[string]interface{}) (*models.Activity, error) {
	return nil, repositories.ErrNotFound
}

func (m *mockActivityRepository) Delete(id uint) error {
	return nil
}

func (m *mockActivityRepository) Count(f repositories.ListFilter) (int64, error) {
	return int64(len(m.activities)), nil
}

func TestDashboardStats_Counts(t *testing.T) {
	destRepo := newMockDestinationRepository()
	destRepo.Create(&models.Destination{Name: "Ella", Location: "Uva", Category: "Nature"})
	destRepo.Create(&models.Destination{Name: "Kandy", Location: "Central", Category: "Cultural"})

	pkgRepo := newMockPackageRepository()
	pkgRepo.Create(&models.Package{Title: "T", Duration: "3 Days", GroupSize: "2", Price: 100, Category: "Beach"})

	actRepo := &mockActivityRepository{}
	actRepo.Create(&models.Activity{Name: "Rafting"})

	blogRepo := &mockBlogRepository{posts: []models.BlogPost{
		{ID: 1, Published: true, Featured: true},
		{ID: 2, Published: false},
	}}

	stats := NewStatsService(destRepo, pkgRepo, actRepo, blogRepo).Dashboard()

	if stats.Destinations != 2 {
		t.Errorf("destinations = %d, want 2", stats.Destinations)
	}
	if stats.Packages != 1 || stats.Activities != 1 {
		t.Errorf("packages/activities = %d/%d, want 1/1", stats.Packages, stats.Activities)
	}
	if stats.BlogPosts != 2 {
		t.Errorf("blog posts = %d, want 2", stats.BlogPosts)
	}
}

func TestDashboardStats_FailedCountDegradesToZero(t *testing.T) {
	blogRepo := &mockBlogRepository{countErr: errors.New("table gone")}

	stats := NewStatsService(
		newMockDestinationRepository(),
		newMockPackageRepository(),
		&mockActivityRepository{},
		blogRepo,
	).Dashboard()

	if stats.BlogPosts != 0 || stats.PublishedPosts != 0 {
		t.Errorf("failing counts should read as zero, got %+v", stats)
	}
}
