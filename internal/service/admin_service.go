package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"training-service/internal/models"
	"training-service/internal/repository"

	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
)

// ErrAdminExists rejects admin bootstrap once an admin account is
// present.
var ErrAdminExists = errors.New("admin account already exists")

type AdminService struct {
	Users    *repository.UserRepository
	Progress *repository.ProgressRepository
	Scores   *repository.TestScoreRepository
}

func NewAdminService(users *repository.UserRepository, progress *repository.ProgressRepository, scores *repository.TestScoreRepository) *AdminService {
	return &AdminService{Users: users, Progress: progress, Scores: scores}
}

// CreateAdmin bootstraps the researcher account. Only usable while no
// admin exists yet.
func (s *AdminService) CreateAdmin(ctx context.Context, name, email, password string) (*models.User, error) {
	count, err := s.Users.CountAdmins(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:      name,
		Email:     email,
		Password:  string(hash),
		Role:      models.RoleAdmin,
		Group:     models.GroupControl,
		CreatedAt: time.Now(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

type StudentOverview struct {
	ID             string    `json:"_id"`
	StudentID      string    `json:"studentId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Group          string    `json:"group"`
	CreatedAt      time.Time `json:"createdAt"`
	TotalTime      int       `json:"totalTime"`
	LoginFrequency int       `json:"loginFrequency"`
	TasksCompleted int       `json:"tasksCompleted"`
	HasPreTest     bool      `json:"hasPreTest"`
	HasPostTest    bool      `json:"hasPostTest"`
	HasDelayedTest bool      `json:"hasDelayedTest"`
}

func (s *AdminService) ListStudents(ctx context.Context) ([]StudentOverview, error) {
	students, err := s.Users.FindStudents(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]StudentOverview, 0, len(students))
	for _, student := range students {
		progress, err := s.progressOrZero(ctx, student.ID)
		if err != nil {
			return nil, err
		}
		scores, err := s.Scores.FindByUser(ctx, student.ID)
		if err != nil {
			return nil, err
		}

		overview := StudentOverview{
			ID:             student.ID,
			StudentID:      student.StudentID,
			Name:           student.Name,
			Email:          student.Email,
			Group:          student.Group,
			CreatedAt:      student.CreatedAt,
			TotalTime:      progress.TotalTime,
			LoginFrequency: progress.LoginFrequency,
			TasksCompleted: len(progress.TaskHistory),
		}
		for _, score := range scores {
			switch score.TestType {
			case models.TestPre:
				overview.HasPreTest = true
			case models.TestPost:
				overview.HasPostTest = true
			case models.TestDelayed:
				overview.HasDelayedTest = true
			}
		}
		overviews = append(overviews, overview)
	}
	return overviews, nil
}

type StudentDetail struct {
	Student struct {
		ID        string    `json:"_id"`
		StudentID string    `json:"studentId"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Group     string    `json:"group"`
		CreatedAt time.Time `json:"createdAt"`
	} `json:"student"`
	Progress struct {
		TotalTime           int                    `json:"totalTime"`
		LoginFrequency      int                    `json:"loginFrequency"`
		LoginStreak         int                    `json:"loginStreak"`
		ModuleBreakdown     models.ModuleBreakdown `json:"moduleBreakdown"`
		TaskHistory         []models.TaskRecord    `json:"taskHistory"`
		CompletedTasksCount int                    `json:"completedTasksCount"`
	} `json:"progress"`
	TestScores map[string]*models.ScoreSet `json:"testScores"`
}

func (s *AdminService) StudentDetail(ctx context.Context, id string) (*StudentDetail, error) {
	student, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	progress, err := s.progressOrZero(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	scores, err := s.Scores.FindByUser(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	detail := &StudentDetail{
		TestScores: map[string]*models.ScoreSet{
			models.TestPre:     nil,
			models.TestPost:    nil,
			models.TestDelayed: nil,
		},
	}
	detail.Student.ID = student.ID
	detail.Student.StudentID = student.StudentID
	detail.Student.Name = student.Name
	detail.Student.Email = student.Email
	detail.Student.Group = student.Group
	detail.Student.CreatedAt = student.CreatedAt

	detail.Progress.TotalTime = progress.TotalTime
	detail.Progress.LoginFrequency = progress.LoginFrequency
	detail.Progress.LoginStreak = progress.LoginStreak
	detail.Progress.ModuleBreakdown = progress.ModuleBreakdown
	detail.Progress.TaskHistory = progress.TaskHistory
	detail.Progress.CompletedTasksCount = len(progress.CompletedTaskIDs)

	for _, score := range scores {
		set := score.Scores
		detail.TestScores[score.TestType] = &set
	}
	return detail, nil
}

// exportHeader is the research export column layout. The analysis
// scripts consume these names; keep them stable.
var exportHeader = []string{
	"student_id", "group", "total_time", "login_freq",
	"m1_time", "m2_time", "m3_time", "m4_time",
	"pre_vocab", "pre_coll", "pre_freq", "pre_div", "pre_comp", "pre_hedg", "pre_cohe",
	"post_vocab", "post_coll", "post_freq", "post_div", "post_comp", "post_hedg", "post_cohe",
	"delayed_vocab", "delayed_coll", "delayed_freq", "delayed_div", "delayed_comp", "delayed_hedg", "delayed_cohe",
}

func (s *AdminService) exportRows(ctx context.Context) ([][]string, error) {
	students, err := s.Users.FindStudents(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(students))
	for _, student := range students {
		progress, err := s.progressOrZero(ctx, student.ID)
		if err != nil {
			return nil, err
		}
		scores, err := s.Scores.FindByUser(ctx, student.ID)
		if err != nil {
			return nil, err
		}

		var pre, post, delayed *models.ScoreSet
		for _, score := range scores {
			set := score.Scores
			switch score.TestType {
			case models.TestPre:
				pre = &set
			case models.TestPost:
				post = &set
			case models.TestDelayed:
				delayed = &set
			}
		}

		row := []string{
			student.StudentID,
			student.Group,
			strconv.Itoa(progress.TotalTime),
			strconv.Itoa(progress.LoginFrequency),
			strconv.Itoa(progress.ModuleBreakdown.Module1),
			strconv.Itoa(progress.ModuleBreakdown.Module2),
			strconv.Itoa(progress.ModuleBreakdown.Module3),
			strconv.Itoa(progress.ModuleBreakdown.Module4),
		}
		row = append(row, scoreColumns(pre)...)
		row = append(row, scoreColumns(post)...)
		row = append(row, scoreColumns(delayed)...)
		rows = append(rows, row)
	}
	return rows, nil
}

// ExportCSV renders the full research dataset, one row per student.
func (s *AdminService) ExportCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.exportRows(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportExcel renders the same dataset as an xlsx workbook.
func (s *AdminService) ExportExcel(ctx context.Context) ([]byte, error) {
	rows, err := s.exportRows(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Research Data"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scoreColumns(set *models.ScoreSet) []string {
	if set == nil {
		return []string{"", "", "", "", "", "", ""}
	}
	return []string{
		formatScore(set.Vocabulary),
		formatScore(set.Collocation),
		formatScore(set.Frequency),
		formatScore(set.Diversity),
		formatScore(set.Complexity),
		formatScore(set.Hedging),
		formatScore(set.Coherence),
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (s *AdminService) progressOrZero(ctx context.Context, userID string) (*models.GameProgress, error) {
	progress, err := s.Progress.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrProgressNotFound) {
		return &models.GameProgress{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return progress, nil
}
