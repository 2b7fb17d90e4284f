package service

import (
	"errors"

	"literacy_dapat_backend/internal/model"
	"literacy_dapat_backend/internal/util"

	"gorm.io/gorm"
)

// ProfileUpdate carries the full replacement set of profile fields.
// Absent fields arrive as empty strings and are written as such; there is
// no partial-merge behavior.
type ProfileUpdate struct {
	FullName    string
	Bio         string
	AvatarURL   string
	PhoneNumber string
	Skills      string
	Location    string
}

type UserService struct {
	UserRepo UserRepo
}

func NewUserService(userRepo UserRepo) *UserService {
	return &UserService{
		UserRepo: userRepo,
	}
}

func (s *UserService) GetProfile(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *UserService) UpdateProfile(id uint, update ProfileUpdate) error {
	return s.UserRepo.UpdateProfile(id, map[string]interface{}{
		"full_name":    update.FullName,
		"bio":          update.Bio,
		"avatar_url":   update.AvatarURL,
		"phone_number": update.PhoneNumber,
		"skills":       update.Skills,
		"location":     update.Location,
	})
}

func (s *UserService) UpdateAvatar(id uint, avatarURL string) error {
	return s.UserRepo.UpdateAvatarURL(id, avatarURL)
}
