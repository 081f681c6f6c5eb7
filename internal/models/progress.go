package models

import (
	"strings"
	"time"
)

// TaskRecord is one completed task in the append-only history.
type TaskRecord struct {
	Date        time.Time `bson:"date" json:"date"`
	Module      int       `bson:"module" json:"module"`
	TaskType    TaskType  `bson:"task_type" json:"taskType"`
	TaskID      string    `bson:"task_id" json:"taskId"`
	CorrectRate float64   `bson:"correct_rate" json:"correctRate"`
	TimeSpent   int       `bson:"time_spent" json:"timeSpent"` // seconds
}

// DailyRecord aggregates one calendar day of completions.
type DailyRecord struct {
	Date           string `bson:"date" json:"date"` // YYYY-MM-DD
	CompletedCount int    `bson:"completed_count" json:"completedCount"`
	TotalCount     int    `bson:"total_count" json:"totalCount"`
	TotalTime      int    `bson:"total_time" json:"totalTime"` // seconds
}

// ModuleBreakdown holds cumulative minutes per module.
type ModuleBreakdown struct {
	Module1 int `bson:"module1" json:"module1"`
	Module2 int `bson:"module2" json:"module2"`
	Module3 int `bson:"module3" json:"module3"`
	Module4 int `bson:"module4" json:"module4"`
}

// Add accumulates minutes into the given module counter.
func (m *ModuleBreakdown) Add(module, minutes int) {
	switch module {
	case 1:
		m.Module1 += minutes
	case 2:
		m.Module2 += minutes
	case 3:
		m.Module3 += minutes
	case 4:
		m.Module4 += minutes
	}
}

// Minutes returns the counter for the given module.
func (m *ModuleBreakdown) Minutes(module int) int {
	switch module {
	case 1:
		return m.Module1
	case 2:
		return m.Module2
	case 3:
		return m.Module3
	case 4:
		return m.Module4
	}
	return 0
}

// GameProgress is the per-user progress ledger. One document per user,
// mutated only through record-login and record-completion.
type GameProgress struct {
	ID               string          `bson:"_id,omitempty" json:"-"`
	UserID           string          `bson:"user_id" json:"userId"`
	TotalTime        int             `bson:"total_time" json:"totalTime"` // minutes
	LoginFrequency   int             `bson:"login_frequency" json:"loginFrequency"`
	LoginStreak      int             `bson:"login_streak" json:"loginStreak"`
	LastLoginDate    string          `bson:"last_login_date" json:"lastLoginDate"` // YYYY-MM-DD
	ModuleBreakdown  ModuleBreakdown `bson:"module_breakdown" json:"moduleBreakdown"`
	TaskHistory      []TaskRecord    `bson:"task_history" json:"taskHistory"`
	CompletedTaskIDs []string        `bson:"completed_task_ids" json:"completedTaskIds"`
	DailyTaskHistory []DailyRecord   `bson:"daily_task_history" json:"dailyTaskHistory"`
	CreatedAt        time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time       `bson:"updated_at" json:"updatedAt"`
}

// IsNewLoginDay reports whether the streak/frequency fields have not yet
// been updated for the given day.
func (p *GameProgress) IsNewLoginDay(today string) bool {
	return p.LastLoginDate != today
}

// HasCompleted reports whether the given task id was ever completed.
func (p *GameProgress) HasCompleted(taskID string) bool {
	for _, id := range p.CompletedTaskIDs {
		if id == taskID {
			return true
		}
	}
	return false
}

// CompletedOn returns the completed task ids carrying the given date
// prefix. The daily gate is always derived from the id prefix, never
// from a separately tracked counter.
func (p *GameProgress) CompletedOn(date string) []string {
	var ids []string
	for _, id := range p.CompletedTaskIDs {
		if strings.HasPrefix(id, date) {
			ids = append(ids, id)
		}
	}
	return ids
}

// AllDailyTasksCompleted reports whether all four tasks for the given
// day are done.
func (p *GameProgress) AllDailyTasksCompleted(date string) bool {
	return len(p.CompletedOn(date)) >= ModuleCount
}
