package services

import (
	"context"
	"errors"
	"testing"

	"github.com/UNI-F-2025/campus-service/internal/models"
)

func TestUpdateCareer_AppliesProvidedFields(t *testing.T) {
	var saved *models.Career
	repo := &fakeRepository{
		careers: &fakeCareerRepo{
			getByID: func(id string) (*models.Career, error) {
				return &models.Career{ID: id, Name: "Engineering", CampusID: "campus-1", Faculty: "Sciences"}, nil
			},
			update: func(career *models.Career) error {
				saved = career
				return nil
			},
		},
	}
	svc := NewAcademicService(repo, newTestLogger(), newTestValidator())

	name := "Software Engineering"
	career, err := svc.UpdateCareer(context.Background(), adminSession("campus-1"), "career-1", UpdateCareerRequest{
		Name: &name,
	})
	if err != nil {
		t.Fatalf("UpdateCareer() error = %v", err)
	}

	if saved == nil {
		t.Fatal("career was not persisted")
	}
	if career.Name != "Software Engineering" {
		t.Errorf("name = %s, want Software Engineering", career.Name)
	}
	// Omitted fields keep their stored value
	if career.Faculty != "Sciences" {
		t.Errorf("faculty = %s, want Sciences", career.Faculty)
	}
}

func TestUpdateCareer_AdminOnly(t *testing.T) {
	svc := NewAcademicService(&fakeRepository{}, newTestLogger(), newTestValidator())

	name := "Renamed"
	_, err := svc.UpdateCareer(context.Background(), professorSession("prof-1", "campus-1"), "career-1", UpdateCareerRequest{
		Name: &name,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}
