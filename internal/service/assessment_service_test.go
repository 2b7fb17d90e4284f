package service

import (
	"errors"
	"sort"
	"testing"
	"time"

	"literacy_dapat_backend/internal/model"
	"literacy_dapat_backend/internal/util"

	"gorm.io/gorm"
)

// fakeAssessmentRepo is an in-memory AssessmentRepo for service tests.
type fakeAssessmentRepo struct {
	assessments map[uint]*model.Assessment
	nextID      uint
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{assessments: make(map[uint]*model.Assessment), nextID: 1}
}

func (r *fakeAssessmentRepo) Create(a *model.Assessment) error {
	a.ID = r.nextID
	a.CreatedAt = time.Now()
	r.nextID++
	copied := *a
	r.assessments[a.ID] = &copied
	return nil
}

func (r *fakeAssessmentRepo) FindAll() ([]model.Assessment, error) {
	out := make([]model.Assessment, 0, len(r.assessments))
	for _, a := range r.assessments {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeAssessmentRepo) FindByID(id uint) (*model.Assessment, error) {
	a, ok := r.assessments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAssessmentRepo) DeleteByIDs(ids []uint) error {
	for _, id := range ids {
		delete(r.assessments, id)
	}
	return nil
}

func (r *fakeAssessmentRepo) UpdateStatus(id uint, status string) (*model.Assessment, error) {
	a, ok := r.assessments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a.Status = status
	copied := *a
	return &copied, nil
}

func (r *fakeAssessmentRepo) UpdateLevel(id uint, level string) (*model.Assessment, error) {
	a, ok := r.assessments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a.Level = level
	copied := *a
	return &copied, nil
}

func seedAssessment(t *testing.T, svc *AssessmentService) *model.Assessment {
	t.Helper()
	a := &model.Assessment{
		StudentAge:        9,
		StudentGender:     "F",
		StudentGradeLevel: "Grade 3",
		StudentCity:       "Davao",
		StudentSchool:     "Central Elementary",
		StudentBarangay:   "Poblacion",
		StudentRegion:     "XI",
	}
	if err := svc.Create(a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return a
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	svc := NewAssessmentService(newFakeAssessmentRepo())
	a := seedAssessment(t, svc)

	if a.ID == 0 {
		t.Error("ID not assigned")
	}
	if a.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if a.Status != "" || a.Level != "" {
		t.Errorf("status/level should be unset at creation, got %q/%q", a.Status, a.Level)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewAssessmentService(newFakeAssessmentRepo())
	if _, err := svc.GetByID(42); !errors.Is(err, util.ErrAssessmentNotFound) {
		t.Fatalf("err = %v, want ErrAssessmentNotFound", err)
	}
}

func TestDeleteMany(t *testing.T) {
	repo := newFakeAssessmentRepo()
	svc := NewAssessmentService(repo)
	a := seedAssessment(t, svc)
	b := seedAssessment(t, svc)

	tests := []struct {
		name    string
		ids     []uint
		wantErr error
		wantLen int
	}{
		{name: "empty list", ids: nil, wantErr: util.ErrNoAssessmentIDs, wantLen: 2},
		{name: "existing and unknown ids", ids: []uint{a.ID, 999}, wantErr: nil, wantLen: 1},
		{name: "idempotent repeat", ids: []uint{a.ID, b.ID}, wantErr: nil, wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.DeleteMany(tt.ids)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if len(repo.assessments) != tt.wantLen {
				t.Errorf("store holds %d rows, want %d", len(repo.assessments), tt.wantLen)
			}
		})
	}
}

func TestSetStatus(t *testing.T) {
	repo := newFakeAssessmentRepo()
	svc := NewAssessmentService(repo)
	a := seedAssessment(t, svc)

	if _, err := svc.SetStatus(a.ID, ""); !errors.Is(err, util.ErrMissingStatusField) {
		t.Fatalf("empty status err = %v, want ErrMissingStatusField", err)
	}
	if _, err := svc.SetStatus(999, "reviewed"); !errors.Is(err, util.ErrAssessmentNotFound) {
		t.Fatalf("unknown id err = %v, want ErrAssessmentNotFound", err)
	}

	updated, err := svc.SetStatus(a.ID, "reviewed")
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if updated.Status != "reviewed" {
		t.Errorf("Status = %q, want reviewed", updated.Status)
	}
	if updated.StudentSchool != a.StudentSchool || updated.Level != a.Level {
		t.Error("SetStatus touched unrelated fields")
	}
}

func TestSetLevel(t *testing.T) {
	repo := newFakeAssessmentRepo()
	svc := NewAssessmentService(repo)
	a := seedAssessment(t, svc)

	if _, err := svc.SetLevel(a.ID, ""); !errors.Is(err, util.ErrMissingLevelField) {
		t.Fatalf("empty level err = %v, want ErrMissingLevelField", err)
	}
	if _, err := svc.SetLevel(999, "emergent"); !errors.Is(err, util.ErrAssessmentNotFound) {
		t.Fatalf("unknown id err = %v, want ErrAssessmentNotFound", err)
	}

	updated, err := svc.SetLevel(a.ID, "emergent")
	if err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	if updated.Level != "emergent" {
		t.Errorf("Level = %q, want emergent", updated.Level)
	}
	if updated.Status != a.Status {
		t.Error("SetLevel touched the status field")
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := newFakeAssessmentRepo()
	svc := NewAssessmentService(repo)

	first := seedAssessment(t, svc)
	repo.assessments[first.ID].CreatedAt = time.Now().Add(-time.Hour)
	second := seedAssessment(t, svc)

	list, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].ID != second.ID {
		t.Errorf("first element ID = %d, want most recent %d", list[0].ID, second.ID)
	}
}
