package repository

import (
	"literacy_dapat_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile overwrites every profile field, including empty values.
// Select forces gorm to write zero-valued columns too.
func (r *UserRepository) UpdateProfile(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", id).
		Select("full_name", "bio", "avatar_url", "phone_number", "skills", "location").
		Updates(fields).
		Error
}

func (r *UserRepository) UpdateAvatarURL(id uint, avatarURL string) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", id).
		Update("avatar_url", avatarURL).
		Error
}
