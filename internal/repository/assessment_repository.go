package repository

import (
	"literacy_dapat_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(assessment *model.Assessment) error {
	return r.DB.Create(assessment).Error
}

func (r *AssessmentRepository) FindAll() ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.DB.Order("created_at DESC").Find(&assessments).Error
	return assessments, err
}

func (r *AssessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.DB.First(&assessment, id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// DeleteByIDs removes all matching rows in one statement. IDs without a
// matching row are silently skipped.
func (r *AssessmentRepository) DeleteByIDs(ids []uint) error {
	return r.DB.Where("id IN ?", ids).Delete(&model.Assessment{}).Error
}

func (r *AssessmentRepository) UpdateStatus(id uint, status string) (*model.Assessment, error) {
	return r.updateField(id, "status", status)
}

func (r *AssessmentRepository) UpdateLevel(id uint, level string) (*model.Assessment, error) {
	return r.updateField(id, "level", level)
}

func (r *AssessmentRepository) updateField(id uint, column, value string) (*model.Assessment, error) {
	res := r.DB.Model(&model.Assessment{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}
