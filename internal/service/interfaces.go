package service

import (
	"literacy_dapat_backend/internal/model"
)

// Repository contracts consumed by the services. The gorm-backed
// implementations live in internal/repository; tests substitute fakes.

type UserRepo interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	UpdateProfile(id uint, fields map[string]interface{}) error
	UpdateAvatarURL(id uint, avatarURL string) error
}

type AssessmentRepo interface {
	Create(assessment *model.Assessment) error
	FindAll() ([]model.Assessment, error)
	FindByID(id uint) (*model.Assessment, error)
	DeleteByIDs(ids []uint) error
	UpdateStatus(id uint, status string) (*model.Assessment, error)
	UpdateLevel(id uint, level string) (*model.Assessment, error)
}
