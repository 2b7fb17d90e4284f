package controller

import (
	"errors"
	"mime/multipart"
	"net/http"

	"literacy_dapat_backend/internal/service"
	"literacy_dapat_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService    *service.UserService
	StorageService *service.StorageService
}

func NewUserController(userService *service.UserService, storageService *service.StorageService) *UserController {
	return &UserController{
		UserService:    userService,
		StorageService: storageService,
	}
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Description Return the authenticated user's profile fields
// @Tags user
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} object "Profile fields"
// @Failure 404 {object} object "Profile not found"
// @Router /api/user/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, util.ErrUserNotFound.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"email":        user.Email,
		"full_name":    user.FullName,
		"bio":          user.Bio,
		"avatar_url":   user.AvatarURL,
		"phone_number": user.PhoneNumber,
		"skills":       user.Skills,
		"location":     user.Location,
	})
}

// UpdateProfileRequest is bound from the multipart/urlencoded form body.
type UpdateProfileRequest struct {
	FullName    string `form:"full_name"`
	Bio         string `form:"bio"`
	PhoneNumber string `form:"phone_number"`
	Skills      string `form:"skills"`
	Location    string `form:"location"`
	AvatarURL   string `form:"avatar_url"`
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Description Overwrite every profile field; an attached avatar file replaces the avatar URL
// @Tags user
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   full_name formData string false "Full name"
// @Param   bio formData string false "Bio"
// @Param   phone_number formData string false "Phone number"
// @Param   skills formData string false "Skills"
// @Param   location formData string false "Location"
// @Param   avatar_url formData string false "Existing avatar URL to keep"
// @Param   avatar formData file false "New avatar image"
// @Success 200 {object} object "Profile updated successfully"
// @Failure 500 {object} object "Internal error"
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	avatarURL := req.AvatarURL
	if file, err := ctx.FormFile("avatar"); err == nil {
		url, uploadErr := c.storeAvatar(ctx, file)
		if uploadErr != nil {
			util.LogInternalError(ctx, uploadErr)
			return
		}
		avatarURL = url
	}

	update := service.ProfileUpdate{
		FullName:    req.FullName,
		Bio:         req.Bio,
		AvatarURL:   avatarURL,
		PhoneNumber: req.PhoneNumber,
		Skills:      req.Skills,
		Location:    req.Location,
	}

	if err := c.UserService.UpdateProfile(claims.UserID, update); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Message(ctx, http.StatusOK, "Profile updated successfully")
}

// UploadAvatar godoc
// @Summary Upload an avatar image
// @Description Persist the uploaded image and write its URL onto the user record
// @Tags user
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   avatar formData file true "Avatar image"
// @Success 200 {object} object "avatar_url"
// @Failure 400 {object} object "No file uploaded"
// @Failure 500 {object} object "Internal error"
// @Router /api/upload-avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("avatar")
	if err != nil {
		util.ErrorMessage(ctx, http.StatusBadRequest, util.ErrNoFileUploaded.Error())
		return
	}

	url, err := c.storeAvatar(ctx, file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := c.UserService.UpdateAvatar(claims.UserID, url); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"avatar_url": url})
}

func (c *UserController) storeAvatar(ctx *gin.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{"image/"})
	if err != nil {
		return "", err
	}
	if _, err := src.Seek(0, 0); err != nil {
		return "", err
	}

	filename := util.GenerateUploadFilename("", file.Filename)
	return c.StorageService.Upload(ctx, filename, src, file.Size, mimeType)
}
