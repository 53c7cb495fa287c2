package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careerbridge/job-portal-api/internal/apperrors"
	"github.com/careerbridge/job-portal-api/internal/auth"
	"github.com/careerbridge/job-portal-api/internal/dtos"
	"github.com/careerbridge/job-portal-api/internal/middleware"
	"github.com/careerbridge/job-portal-api/internal/services"
)

type AuthHandler struct {
	Users  *services.UserService
	Tokens *auth.TokenManager
}

func NewAuthHandler(users *services.UserService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens}
}

// Register is POST /auth/register. On success the new user is logged in
// immediately: the response carries a token alongside the public profile.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	user, err := h.Users.Register(&req)
	if err != nil {
		fail(c, err, "Server error registering user")
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		fail(c, err, "Server error issuing token")
		return
	}

	respondMessage(c, http.StatusCreated, "User registered successfully", gin.H{
		"token": token,
		"user":  user,
	})
}

// Login is POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	user, err := h.Users.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err, "Server error logging in")
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		fail(c, err, "Server error issuing token")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me is GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	respondData(c, http.StatusOK, middleware.CurrentUser(c))
}

// UpdateProfile is PUT /auth/profile. Email and role cannot be changed here.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dtos.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	user, err := h.Users.UpdateProfile(middleware.CurrentUser(c).ID, &req)
	if err != nil {
		fail(c, err, "Server error updating profile")
		return
	}
	respondMessage(c, http.StatusOK, "Profile updated successfully", user)
}

// GetUser is GET /auth/user/:userId, used by employers to view an
// applicant's profile.
func (h *AuthHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		fail(c, apperrors.Validation("userId", "invalid user id"), "")
		return
	}

	user, err := h.Users.GetByID(uint(id))
	if err != nil {
		fail(c, err, "Server error fetching user")
		return
	}
	respondData(c, http.StatusOK, user)
}
