package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"training-service/internal/models"
	"training-service/internal/repository"
	"training-service/internal/taskgen"
)

// ErrInvalidCorrectRate reports a correct rate outside [0,1]. Rejected
// before any ledger access so research data never contains altered
// rates.
var ErrInvalidCorrectRate = errors.New("correct rate out of range")

// ProgressStore is the ledger persistence contract the game flow needs.
// Implementations must make CompleteTask an atomic append-if-absent:
// duplicate task ids get ErrAlreadyCompleted with no field changes,
// even under concurrent submissions.
type ProgressStore interface {
	FindByUser(ctx context.Context, userID string) (*models.GameProgress, error)
	Ensure(ctx context.Context, userID string) (*models.GameProgress, error)
	RecordLogin(ctx context.Context, userID, today string, streak int) (bool, error)
	CompleteTask(ctx context.Context, userID string, rec models.TaskRecord, minutes int) error
	BumpDailyHistory(ctx context.Context, userID, date string, timeSpent int) error
}

type GameService struct {
	Progress  ProgressStore
	Generator *taskgen.Generator
}

func NewGameService(progress ProgressStore, generator *taskgen.Generator) *GameService {
	return &GameService{Progress: progress, Generator: generator}
}

type DailyTasksResult struct {
	Date           string        `json:"date"`
	Tasks          []models.Task `json:"tasks"`
	AllCompleted   bool          `json:"allCompleted"`
	TodayCompleted int           `json:"todayCompleted"`
	TodayTotal     int           `json:"todayTotal"`
	LoginStreak    int           `json:"loginStreak"`
}

// GetDailyTasks returns today's deterministic task set with completion
// flags overlaid from the ledger, recording the login day first when
// needed.
func (s *GameService) GetDailyTasks(ctx context.Context, userID, today string) (*DailyTasksResult, error) {
	progress, err := s.Progress.Ensure(ctx, userID)
	if err != nil {
		return nil, err
	}

	if progress.IsNewLoginDay(today) {
		streak := taskgen.CalculateLoginStreak(progress.LastLoginDate, today, progress.LoginStreak)
		recorded, err := s.Progress.RecordLogin(ctx, userID, today, streak)
		if err != nil {
			return nil, err
		}
		if recorded {
			progress.LoginStreak = streak
			progress.LoginFrequency++
			progress.LastLoginDate = today
		}
	}

	set := s.Generator.GenerateDailyTasks(userID, today)

	completedToday := progress.CompletedOn(today)
	for i := range set.Tasks {
		set.Tasks[i].Completed = containsID(completedToday, set.Tasks[i].ID)
	}

	return &DailyTasksResult{
		Date:           set.Date,
		Tasks:          set.Tasks,
		AllCompleted:   len(completedToday) >= models.ModuleCount,
		TodayCompleted: len(completedToday),
		TodayTotal:     models.ModuleCount,
		LoginStreak:    progress.LoginStreak,
	}, nil
}

// GetTask re-derives a single task, possibly for a past date, and
// overlays its completion flag.
func (s *GameService) GetTask(ctx context.Context, userID, taskID string) (*models.Task, error) {
	task, err := s.Generator.FindTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	progress, err := s.Progress.FindByUser(ctx, userID)
	switch {
	case err == nil:
		task.Completed = progress.HasCompleted(taskID)
	case errors.Is(err, repository.ErrProgressNotFound):
		task.Completed = false
	default:
		return nil, err
	}
	return task, nil
}

type Submission struct {
	TaskID      string
	Module      int
	TaskType    models.TaskType
	CorrectRate float64
	TimeSpent   int // seconds
}

type ProgressSnapshot struct {
	TodayCompleted int  `json:"todayCompleted"`
	TodayTotal     int  `json:"todayTotal"`
	AllCompleted   bool `json:"allCompleted"`
	TotalTime      int  `json:"totalTime"`
	LoginStreak    int  `json:"loginStreak"`
}

type SubmissionResult struct {
	CorrectRate float64          `json:"correctRate"`
	TimeSpent   int              `json:"timeSpent"`
	Progress    ProgressSnapshot `json:"progress"`
}

// SubmitTask records a task completion at most once. Duplicate ids get
// repository.ErrAlreadyCompleted and leave every ledger field
// untouched.
func (s *GameService) SubmitTask(ctx context.Context, userID, today string, sub Submission) (*SubmissionResult, error) {
	if sub.CorrectRate < 0 || sub.CorrectRate > 1 {
		return nil, ErrInvalidCorrectRate
	}

	if _, err := s.Progress.Ensure(ctx, userID); err != nil {
		return nil, err
	}

	minutes := int(math.Round(float64(sub.TimeSpent) / 60))
	rec := models.TaskRecord{
		Date:        time.Now(),
		Module:      sub.Module,
		TaskType:    sub.TaskType,
		TaskID:      sub.TaskID,
		CorrectRate: sub.CorrectRate,
		TimeSpent:   sub.TimeSpent,
	}

	if err := s.Progress.CompleteTask(ctx, userID, rec, minutes); err != nil {
		return nil, err
	}
	if err := s.Progress.BumpDailyHistory(ctx, userID, today, sub.TimeSpent); err != nil {
		return nil, err
	}

	progress, err := s.Progress.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	todayCompleted := len(progress.CompletedOn(today))

	return &SubmissionResult{
		CorrectRate: sub.CorrectRate,
		TimeSpent:   sub.TimeSpent,
		Progress: ProgressSnapshot{
			TodayCompleted: todayCompleted,
			TodayTotal:     models.ModuleCount,
			AllCompleted:   todayCompleted >= models.ModuleCount,
			TotalTime:      progress.TotalTime,
			LoginStreak:    progress.LoginStreak,
		},
	}, nil
}

type DayStat struct {
	Date           string `json:"date"`
	Day            string `json:"day"`
	TimeSpent      int    `json:"timeSpent"` // minutes
	TasksCompleted int    `json:"tasksCompleted"`
}

type ModuleStat struct {
	Time           int `json:"time"` // minutes
	TaskCount      int `json:"taskCount"`
	AvgCorrectRate int `json:"avgCorrectRate"` // percent
}

type ProgressSummary struct {
	TotalTime           int                    `json:"totalTime"`
	LoginFrequency      int                    `json:"loginFrequency"`
	LoginStreak         int                    `json:"loginStreak"`
	ModuleBreakdown     models.ModuleBreakdown `json:"moduleBreakdown"`
	ModuleStats         map[string]ModuleStat  `json:"moduleStats"`
	WeeklyStats         []DayStat              `json:"weeklyStats"`
	RecentTasks         []models.TaskRecord    `json:"recentTasks"`
	CompletedTasksCount int                    `json:"completedTasksCount"`
	TodayCompleted      int                    `json:"todayCompleted"`
	TodayTotal          int                    `json:"todayTotal"`
}

// GetProgressSummary aggregates the ledger for the progress page. All
// derived values (weekly buckets, today's gate) are recomputed on every
// read.
func (s *GameService) GetProgressSummary(ctx context.Context, userID, today string) (*ProgressSummary, error) {
	progress, err := s.Progress.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrProgressNotFound) {
		return &ProgressSummary{
			ModuleStats: emptyModuleStats(),
			WeeklyStats: []DayStat{},
			RecentTasks: []models.TaskRecord{},
			TodayTotal:  models.ModuleCount,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	weekly := make([]DayStat, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dateStr := taskgen.DateString(day)

		var seconds, count int
		for _, t := range progress.TaskHistory {
			if taskgen.DateString(t.Date) == dateStr {
				seconds += t.TimeSpent
				count++
			}
		}
		weekly = append(weekly, DayStat{
			Date:           dateStr,
			Day:            day.UTC().Weekday().String()[:3],
			TimeSpent:      int(math.Round(float64(seconds) / 60)),
			TasksCompleted: count,
		})
	}

	recent := recentTasks(progress.TaskHistory, 10)

	stats := make(map[string]ModuleStat, models.ModuleCount)
	for module := 1; module <= models.ModuleCount; module++ {
		var count int
		var rateSum float64
		for _, t := range progress.TaskHistory {
			if t.Module == module {
				count++
				rateSum += t.CorrectRate
			}
		}
		stat := ModuleStat{Time: progress.ModuleBreakdown.Minutes(module)}
		if count > 0 {
			stat.TaskCount = count
			stat.AvgCorrectRate = int(math.Round(rateSum / float64(count) * 100))
		}
		stats[moduleKey(module)] = stat
	}

	return &ProgressSummary{
		TotalTime:           progress.TotalTime,
		LoginFrequency:      progress.LoginFrequency,
		LoginStreak:         progress.LoginStreak,
		ModuleBreakdown:     progress.ModuleBreakdown,
		ModuleStats:         stats,
		WeeklyStats:         weekly,
		RecentTasks:         recent,
		CompletedTasksCount: len(progress.CompletedTaskIDs),
		TodayCompleted:      len(progress.CompletedOn(today)),
		TodayTotal:          models.ModuleCount,
	}, nil
}

func recentTasks(history []models.TaskRecord, n int) []models.TaskRecord {
	start := len(history) - n
	if start < 0 {
		start = 0
	}
	tail := history[start:]

	recent := make([]models.TaskRecord, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		recent = append(recent, tail[i])
	}
	return recent
}

func emptyModuleStats() map[string]ModuleStat {
	stats := make(map[string]ModuleStat, models.ModuleCount)
	for module := 1; module <= models.ModuleCount; module++ {
		stats[moduleKey(module)] = ModuleStat{}
	}
	return stats
}

func moduleKey(module int) string {
	return fmt.Sprintf("module%d", module)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
