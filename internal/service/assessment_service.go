package service

import (
	"errors"

	"literacy_dapat_backend/internal/model"
	"literacy_dapat_backend/internal/util"

	"gorm.io/gorm"
)

type AssessmentService struct {
	AssessmentRepo AssessmentRepo
}

func NewAssessmentService(assessmentRepo AssessmentRepo) *AssessmentService {
	return &AssessmentService{
		AssessmentRepo: assessmentRepo,
	}
}

// List returns all assessments, most recently created first.
func (s *AssessmentService) List() ([]model.Assessment, error) {
	return s.AssessmentRepo.FindAll()
}

func (s *AssessmentService) Create(assessment *model.Assessment) error {
	return s.AssessmentRepo.Create(assessment)
}

func (s *AssessmentService) GetByID(id uint) (*model.Assessment, error) {
	assessment, err := s.AssessmentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	return assessment, err
}

// DeleteMany removes all rows matching the given ids in one operation.
// Unknown ids are not an error; an empty list is.
func (s *AssessmentService) DeleteMany(ids []uint) error {
	if len(ids) == 0 {
		return util.ErrNoAssessmentIDs
	}
	return s.AssessmentRepo.DeleteByIDs(ids)
}

func (s *AssessmentService) SetStatus(id uint, status string) (*model.Assessment, error) {
	if status == "" {
		return nil, util.ErrMissingStatusField
	}
	assessment, err := s.AssessmentRepo.UpdateStatus(id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	return assessment, err
}

func (s *AssessmentService) SetLevel(id uint, level string) (*model.Assessment, error) {
	if level == "" {
		return nil, util.ErrMissingLevelField
	}
	assessment, err := s.AssessmentRepo.UpdateLevel(id, level)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	return assessment, err
}
