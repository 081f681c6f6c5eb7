package handlers

import (
	"errors"
	"net/http"
	"time"

	"training-service/internal/middleware"
	"training-service/internal/models"
	"training-service/internal/service"
	"training-service/internal/taskgen"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: s}
}

type registerRequest struct {
	Username  string `json:"username"`
	StudentID string `json:"studentId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Group     string `json:"group"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.Service.Register(c.Request.Context(), service.RegisterInput{
		Username:  req.Username,
		StudentID: req.StudentID,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Group:     req.Group,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken),
			errors.Is(err, service.ErrUsernameTaken),
			errors.Is(err, service.ErrStudentIDTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, authResponse(user, token))
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today := taskgen.DateString(time.Now())
	user, token, err := h.Service.Login(c.Request.Context(), req.Email, req.Password, today)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, authResponse(user, token))
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	u, progress, err := h.Service.CurrentUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": u,
		"progress": gin.H{
			"totalTime":      progress.TotalTime,
			"loginStreak":    progress.LoginStreak,
			"loginFrequency": progress.LoginFrequency,
		},
	})
}

func authResponse(user *models.User, token string) gin.H {
	return gin.H{
		"_id":       user.ID,
		"username":  user.Username,
		"studentId": user.StudentID,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"group":     user.Group,
		"token":     token,
	}
}
