package handlers

import (
	"errors"
	"net/http"
	"time"

	"training-service/internal/middleware"
	"training-service/internal/models"
	"training-service/internal/repository"
	"training-service/internal/service"
	"training-service/internal/taskgen"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	Service *service.GameService
}

func NewGameHandler(s *service.GameService) *GameHandler {
	return &GameHandler{Service: s}
}

func (h *GameHandler) GetDailyTasks(c *gin.Context) {
	user := middleware.CurrentUser(c)
	today := taskgen.DateString(time.Now())

	result, err := h.Service.GetDailyTasks(c.Request.Context(), user.ID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load daily tasks"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *GameHandler) GetTask(c *gin.Context) {
	user := middleware.CurrentUser(c)
	taskID := c.Param("taskId")

	task, err := h.Service.GetTask(c.Request.Context(), user.ID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, taskgen.ErrInvalidTaskID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		case errors.Is(err, taskgen.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load task"})
		}
		return
	}
	c.JSON(http.StatusOK, task)
}

// correctRate is a pointer so an exact 0 still satisfies required.
type submitTaskRequest struct {
	TaskID      string   `json:"taskId" binding:"required"`
	Module      int      `json:"module" binding:"required,min=1,max=4"`
	TaskType    string   `json:"taskType" binding:"required"`
	CorrectRate *float64 `json:"correctRate" binding:"required"`
	TimeSpent   int      `json:"timeSpent" binding:"required,gt=0"`
}

func (h *GameHandler) SubmitTask(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req submitTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today := taskgen.DateString(time.Now())
	result, err := h.Service.SubmitTask(c.Request.Context(), user.ID, today, service.Submission{
		TaskID:      req.TaskID,
		Module:      req.Module,
		TaskType:    models.TaskType(req.TaskType),
		CorrectRate: *req.CorrectRate,
		TimeSpent:   req.TimeSpent,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCorrectRate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "correctRate must be between 0 and 1"})
		case errors.Is(err, repository.ErrAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": "Task already completed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record completion"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *GameHandler) GetProgress(c *gin.Context) {
	user := middleware.CurrentUser(c)
	today := taskgen.DateString(time.Now())

	summary, err := h.Service.GetProgressSummary(c.Request.Context(), user.ID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
