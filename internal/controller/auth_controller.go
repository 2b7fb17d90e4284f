package controller

import (
	"errors"
	"net/http"

	"literacy_dapat_backend/internal/model"
	"literacy_dapat_backend/internal/service"
	"literacy_dapat_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		AuthService: authService,
	}
}

// RegisterRequest carries the credentials plus optional profile fields; the
// optional ones default to empty strings.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Role        string `json:"role"`
	FullName    string `json:"fullName"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatarUrl"`
	PhoneNumber string `json:"phoneNumber"`
	Skills      string `json:"skills"`
	Location    string `json:"location"`
}

// Register godoc
// @Summary Register a new account
// @Description Create a user account with a hashed password and optional profile fields
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "Registration payload"
// @Success 201 {object} object "User registered successfully"
// @Failure 400 {object} object "Email already registered or invalid payload"
// @Failure 500 {object} object "Internal error"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Email:       req.Email,
		Password:    req.Password,
		Role:        model.UserRole(req.Role),
		FullName:    req.FullName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
		PhoneNumber: req.PhoneNumber,
		Skills:      req.Skills,
		Location:    req.Location,
	}

	if err := c.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.BadRequest(ctx, util.ErrEmailRegistered.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Message(ctx, http.StatusCreated, "User registered successfully")
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and return a session token with the public profile fields
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Login credentials"
// @Success 200 {object} object "Token and profile"
// @Failure 401 {object} object "Invalid credentials"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Message(ctx, http.StatusUnauthorized, util.ErrInvalidCredentials.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Message(ctx, http.StatusUnauthorized, util.ErrInvalidCredentials.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"token":       token,
		"role":        user.Role,
		"email":       user.Email,
		"fullName":    user.FullName,
		"bio":         user.Bio,
		"avatarUrl":   user.AvatarURL,
		"phoneNumber": user.PhoneNumber,
		"skills":      user.Skills,
		"location":    user.Location,
	})
}
