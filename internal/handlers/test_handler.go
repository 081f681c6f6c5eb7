package handlers

import (
	"errors"
	"net/http"

	"training-service/internal/middleware"
	"training-service/internal/models"
	"training-service/internal/service"

	"github.com/gin-gonic/gin"
)

type TestHandler struct {
	Service *service.TestService
}

func NewTestHandler(s *service.TestService) *TestHandler {
	return &TestHandler{Service: s}
}

type submitScoreRequest struct {
	StudentID string          `json:"studentId" binding:"required"`
	TestType  string          `json:"testType" binding:"required"`
	Scores    models.ScoreSet `json:"scores" binding:"required"`
}

func (h *TestHandler) SubmitScore(c *gin.Context) {
	var req submitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score, err := h.Service.SubmitScore(c.Request.Context(), req.StudentID, req.TestType, req.Scores)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTestType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "testType must be pre, post or delayed"})
		case errors.Is(err, service.ErrStudentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save score"})
		}
		return
	}
	c.JSON(http.StatusCreated, score)
}

func (h *TestHandler) GetScoresByUser(c *gin.Context) {
	user := middleware.CurrentUser(c)
	userID := c.Param("userId")
	if userID != user.ID && !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view these scores"})
		return
	}

	scores, err := h.Service.ScoresByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load scores"})
		return
	}
	c.JSON(http.StatusOK, scores)
}

func (h *TestHandler) GetMyScores(c *gin.Context) {
	user := middleware.CurrentUser(c)

	scores, err := h.Service.ScoresByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load scores"})
		return
	}
	c.JSON(http.StatusOK, scores)
}
