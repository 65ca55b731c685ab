package services

import (
	"errors"
	"testing"
	"time"

	"tour-backend/models"
	"tour-backend/repositories"
)

type mockReviewRepository struct {
	reviews     map[uint]*models.Review
	lastUpdate  map[string]interface{}
	failCreates bool
}

func newMockReviewRepository() *mockReviewRepository {
	return &mockReviewRepository{reviews: make(map[uint]*models.Review)}
}

func (m *mockReviewRepository) List(f repositories.ListFilter) ([]models.Review, error) {
	out := []models.Review{}
	for _, rv := range m.reviews {
		if f.Approved != nil && rv.Approved != *f.Approved {
			continue
		}
		out = append(out, *rv)
	}
	return out, nil
}

func (m *mockReviewRepository) GetByID(id uint) (*models.Review, error) {
	rv, ok := m.reviews[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return rv, nil
}

func (m *mockReviewRepository) Create(rv *models.Review) error {
	if m.failCreates {
		return errors.New("insert failed")
	}
	rv.ID = uint(len(m.reviews) + 1)
	m.reviews[rv.ID] = rv
	return nil
}

func (m *mockReviewRepository) Update(id uint, fields map[string]interface{}) (*models.Review, error) {
	rv, ok := m.reviews[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	m.lastUpdate = fields
	return rv, nil
}

func (m *mockReviewRepository) Delete(id uint) error {
	delete(m.reviews, id)
	return nil
}

func (m *mockReviewRepository) Count(f repositories.ListFilter) (int64, error) {
	return int64(len(m.reviews)), nil
}

func validReview() *models.Review {
	return &models.Review{
		Name:    "Ana",
		Country: "Portugal",
		Tour:    "Ella Tour",
		Comment: "Wonderful week in the hill country.",
		Rating:  5,
	}
}

func TestCreateReview_MissingFields(t *testing.T) {
	service := NewReviewService(newMockReviewRepository())

	_, err := service.Create(&models.Review{Name: "Ana", Rating: 4})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"country", "tour", "comment"} {
		found := false
		for _, f := range vErr.Fields {
			if f == field {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %s in missing fields, got %v", field, vErr.Fields)
		}
	}
}

func TestCreateReview_RatingRange(t *testing.T) {
	repo := newMockReviewRepository()
	service := NewReviewService(repo)

	for _, bad := range []int{-1, 6, 10} {
		rv := validReview()
		rv.Rating = bad
		if _, err := service.Create(rv); err == nil {
			t.Errorf("rating %d should be rejected", bad)
		}
	}

	// Rating 0 reads as missing, not out of range.
	rv := validReview()
	rv.Rating = 0
	var vErr *ValidationError
	if _, err := service.Create(rv); !errors.As(err, &vErr) {
		t.Errorf("rating 0 should fail validation, got %v", err)
	}

	for rating := 1; rating <= 5; rating++ {
		rv := validReview()
		rv.Rating = rating
		created, err := service.Create(rv)
		if err != nil {
			t.Fatalf("rating %d should be accepted: %v", rating, err)
		}
		if created.Rating != rating {
			t.Errorf("rating persisted as %d, want %d", created.Rating, rating)
		}
	}
}

func TestUpdateReview_RatingRange(t *testing.T) {
	repo := newMockReviewRepository()
	service := NewReviewService(repo)
	service.Create(validReview())

	// JSON decoding delivers numbers as float64.
	for _, bad := range []interface{}{float64(10), float64(0), -1, 6, "five"} {
		_, err := service.Update(1, map[string]interface{}{"rating": bad})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("rating %#v should be rejected, got %v", bad, err)
		}
		if repo.lastUpdate != nil {
			t.Fatalf("out-of-range rating reached the repository: %v", repo.lastUpdate)
		}
	}

	_, err := service.Update(1, map[string]interface{}{"rating": float64(4), "comment": "edited"})
	if err != nil {
		t.Fatalf("in-range rating rejected: %v", err)
	}
	if repo.lastUpdate["rating"] != float64(4) {
		t.Errorf("rating should pass through, got %#v", repo.lastUpdate["rating"])
	}
}

func TestCreateReview_ForcesApproval(t *testing.T) {
	service := NewReviewService(newMockReviewRepository())

	rv := validReview()
	rv.Approved = false
	created, err := service.Create(rv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.Approved {
		t.Error("created review should be auto-approved")
	}
}

func TestCreateReview_DefaultsDate(t *testing.T) {
	repo := newMockReviewRepository()
	service := &reviewService{
		repo: repo,
		now:  func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) },
	}

	created, err := service.Create(validReview())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Date != "2025-06-15" {
		t.Errorf("date defaulted to %q, want 2025-06-15", created.Date)
	}

	rv := validReview()
	rv.Date = "2025-01-01"
	created, err = service.Create(rv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Date != "2025-01-01" {
		t.Errorf("supplied date overwritten: got %q", created.Date)
	}
}

func TestCreateReview_NormalizesAvatar(t *testing.T) {
	service := NewReviewService(newMockReviewRepository())

	empty := "   "
	rv := validReview()
	rv.Avatar = &empty
	created, err := service.Create(rv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Avatar != nil {
		t.Errorf("blank avatar should persist as nil, got %q", *created.Avatar)
	}

	url := "  https://example.com/a.jpg "
	rv = validReview()
	rv.Avatar = &url
	created, err = service.Create(rv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Avatar == nil || *created.Avatar != "https://example.com/a.jpg" {
		t.Errorf("avatar should be trimmed, got %v", created.Avatar)
	}
}

func TestListReviews_ApprovedFilterPassthrough(t *testing.T) {
	repo := newMockReviewRepository()
	service := NewReviewService(repo)

	approved := validReview()
	service.Create(approved)
	hidden := validReview()
	service.Create(hidden)
	hidden.Approved = false // flip after create, as an admin edit would

	yes := true
	got, err := service.List(repositories.ListFilter{Approved: &yes})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 approved review, got %d", len(got))
	}

	all, err := service.List(repositories.ListFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 reviews without filter, got %d", len(all))
	}
}

func TestUpdateReview_StripsProtectedFields(t *testing.T) {
	repo := newMockReviewRepository()
	service := NewReviewService(repo)
	service.Create(validReview())

	_, err := service.Update(1, map[string]interface{}{
		"comment":    "edited",
		"id":         99,
		"created_at": "2020-01-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := repo.lastUpdate["id"]; ok {
		t.Error("id should be stripped from update payload")
	}
	if _, ok := repo.lastUpdate["created_at"]; ok {
		t.Error("created_at should be stripped from update payload")
	}
	if repo.lastUpdate["comment"] != "edited" {
		t.Error("comment should survive sanitizing")
	}
}

func TestUpdateReview_NotFound(t *testing.T) {
	service := NewReviewService(newMockReviewRepository())

	_, err := service.Update(42, map[string]interface{}{"comment": "x"})
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
