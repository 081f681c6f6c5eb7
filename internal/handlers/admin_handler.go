package handlers

import (
	"errors"
	"net/http"

	"training-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminHandler struct {
	Service *service.AdminService
}

func NewAdminHandler(s *service.AdminService) *AdminHandler {
	return &AdminHandler{Service: s}
}

func (h *AdminHandler) ListStudents(c *gin.Context) {
	students, err := h.Service.ListStudents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load students"})
		return
	}
	c.JSON(http.StatusOK, students)
}

func (h *AdminHandler) GetStudentDetail(c *gin.Context) {
	detail, err := h.Service.StudentDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load student"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *AdminHandler) ExportCSV(c *gin.Context) {
	data, err := h.Service.ExportCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="research_data.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *AdminHandler) ExportExcel(c *gin.Context) {
	data, err := h.Service.ExportExcel(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="research_data.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

type createAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Service.CreateAdmin(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminExists) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin account already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin"})
		return
	}
	c.JSON(http.StatusCreated, user)
}
