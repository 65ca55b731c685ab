package services

import (
	"errors"
	"testing"

	"tour-backend/models"
	"tour-backend/repositories"
)

type mockDestinationRepository struct {
	destinations map[uint]*models.Destination
	lastUpdate   map[string]interface{}
}

func newMockDestinationRepository() *mockDestinationRepository {
	return &mockDestinationRepository{destinations: make(map[uint]*models.Destination)}
}

func (m *mockDestinationRepository) List(f repositories.ListFilter) ([]models.Destination, error) {
	out := []models.Destination{}
	for _, d := range m.destinations {
		out = append(out, *d)
	}
	return out, nil
}

func (m *mockDestinationRepository) GetByID(id uint) (*models.Destination, error) {
	d, ok := m.destinations[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return d, nil
}

func (m *mockDestinationRepository) Create(d *models.Destination) error {
	d.ID = uint(len(m.destinations) + 1)
	m.destinations[d.ID] = d
	return nil
}

func (m *mockDestinationRepository) Update(id uint, fields map[string]interface{}) (*models.Destination, error) {
	d, ok := m.destinations[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	m.lastUpdate = fields
	return d, nil
}

func (m *mockDestinationRepository) Delete(id uint) error {
	delete(m.destinations, id)
	return nil
}

func (m *mockDestinationRepository) Count(f repositories.ListFilter) (int64, error) {
	return int64(len(m.destinations)), nil
}

func TestCreateDestination_RequiredFields(t *testing.T) {
	service := NewDestinationService(newMockDestinationRepository())

	_, err := service.Create(&models.Destination{})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	want := "name, location, and category are required"
	if vErr.Message != want {
		t.Errorf("message %q, want %q", vErr.Message, want)
	}
}

func TestCreateDestination_SingleMissingField(t *testing.T) {
	service := NewDestinationService(newMockDestinationRepository())

	_, err := service.Create(&models.Destination{Name: "Ella", Location: "Uva"})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Message != "category is required" {
		t.Errorf("message %q, want %q", vErr.Message, "category is required")
	}
}

func TestUpdateDestination_StripsEmptyStrings(t *testing.T) {
	repo := newMockDestinationRepository()
	service := NewDestinationService(repo)
	service.Create(&models.Destination{Name: "Ella", Location: "Uva", Category: "Nature"})

	_, err := service.Update(1, map[string]interface{}{
		"name":        "Ella Gap",
		"description": "",
		"best_time":   "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := repo.lastUpdate["description"]; ok {
		t.Error("empty description should be stripped, not persisted")
	}
	if _, ok := repo.lastUpdate["best_time"]; ok {
		t.Error("empty best_time should be stripped, not persisted")
	}
	if repo.lastUpdate["name"] != "Ella Gap" {
		t.Error("non-empty name should pass through")
	}
}

func TestUpdateDestination_CoercesRating(t *testing.T) {
	repo := newMockDestinationRepository()
	service := NewDestinationService(repo)
	service.Create(&models.Destination{Name: "Ella", Location: "Uva", Category: "Nature"})

	_, err := service.Update(1, map[string]interface{}{"rating": "4.5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := repo.lastUpdate["rating"].(float64); !ok || got != 4.5 {
		t.Errorf("rating should be coerced to 4.5, got %#v", repo.lastUpdate["rating"])
	}

	_, err = service.Update(1, map[string]interface{}{"rating": "high"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.lastUpdate["rating"]; ok {
		t.Error("unparseable rating should be dropped from the update")
	}
}

func TestDeleteDestination_Idempotent(t *testing.T) {
	repo := newMockDestinationRepository()
	service := NewDestinationService(repo)
	service.Create(&models.Destination{Name: "Ella", Location: "Uva", Category: "Nature"})

	if err := service.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := service.Delete(1); err != nil {
		t.Errorf("second delete should succeed, got %v", err)
	}
	if _, err := service.Get(1); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("get after delete should be not found, got %v", err)
	}
}
