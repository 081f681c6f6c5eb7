package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"training-service/internal/content"
	"training-service/internal/models"
	"training-service/internal/repository"
	"training-service/internal/taskgen"
)

// memStore is an in-memory ProgressStore with the same conditional
// update semantics as the Mongo implementation.
type memStore struct {
	progress map[string]*models.GameProgress
}

func newMemStore() *memStore {
	return &memStore{progress: make(map[string]*models.GameProgress)}
}

func (m *memStore) FindByUser(_ context.Context, userID string) (*models.GameProgress, error) {
	p, ok := m.progress[userID]
	if !ok {
		return nil, repository.ErrProgressNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) Ensure(_ context.Context, userID string) (*models.GameProgress, error) {
	if p, ok := m.progress[userID]; ok {
		cp := *p
		return &cp, nil
	}
	p := &models.GameProgress{UserID: userID}
	m.progress[userID] = p
	cp := *p
	return &cp, nil
}

func (m *memStore) RecordLogin(_ context.Context, userID, today string, streak int) (bool, error) {
	p := m.progress[userID]
	if p.LastLoginDate == today {
		return false, nil
	}
	p.LoginStreak = streak
	p.LastLoginDate = today
	p.LoginFrequency++
	return true, nil
}

func (m *memStore) CompleteTask(_ context.Context, userID string, rec models.TaskRecord, minutes int) error {
	p := m.progress[userID]
	if p.HasCompleted(rec.TaskID) {
		return repository.ErrAlreadyCompleted
	}
	p.TaskHistory = append(p.TaskHistory, rec)
	p.CompletedTaskIDs = append(p.CompletedTaskIDs, rec.TaskID)
	p.TotalTime += minutes
	p.ModuleBreakdown.Add(rec.Module, minutes)
	return nil
}

func (m *memStore) BumpDailyHistory(_ context.Context, userID, date string, timeSpent int) error {
	p := m.progress[userID]
	for i := range p.DailyTaskHistory {
		if p.DailyTaskHistory[i].Date == date {
			p.DailyTaskHistory[i].CompletedCount++
			p.DailyTaskHistory[i].TotalTime += timeSpent
			return nil
		}
	}
	p.DailyTaskHistory = append(p.DailyTaskHistory, models.DailyRecord{
		Date:           date,
		CompletedCount: 1,
		TotalCount:     models.ModuleCount,
		TotalTime:      timeSpent,
	})
	return nil
}

func newTestGameService() (*GameService, *memStore) {
	store := newMemStore()
	return NewGameService(store, taskgen.NewGenerator(content.Fixtures())), store
}

func TestSubmitTaskRecordsOnce(t *testing.T) {
	svc, store := newTestGameService()
	ctx := context.Background()

	sub := Submission{
		TaskID:      "2024-01-15-1-flashcard",
		Module:      1,
		TaskType:    models.TaskFlashcard,
		CorrectRate: 0.8,
		TimeSpent:   120,
	}

	result, err := svc.SubmitTask(ctx, "u1", "2024-01-15", sub)
	if err != nil {
		t.Fatalf("First submission failed: %v", err)
	}
	if result.Progress.TodayCompleted != 1 {
		t.Errorf("Expected 1 task completed today, got %d", result.Progress.TodayCompleted)
	}
	if result.Progress.TotalTime != 2 {
		t.Errorf("Expected 2 minutes total time, got %d", result.Progress.TotalTime)
	}

	if _, err := svc.SubmitTask(ctx, "u1", "2024-01-15", sub); !errors.Is(err, repository.ErrAlreadyCompleted) {
		t.Fatalf("Expected ErrAlreadyCompleted on duplicate, got %v", err)
	}

	p := store.progress["u1"]
	if len(p.TaskHistory) != 1 || len(p.CompletedTaskIDs) != 1 {
		t.Error("Expected duplicate submission to leave the ledger untouched")
	}
	if p.TotalTime != 2 || p.ModuleBreakdown.Module1 != 2 {
		t.Errorf("Expected totals unchanged after duplicate, got total=%d module1=%d",
			p.TotalTime, p.ModuleBreakdown.Module1)
	}
	if len(p.DailyTaskHistory) != 1 || p.DailyTaskHistory[0].CompletedCount != 1 {
		t.Error("Expected daily history to count the task exactly once")
	}
}

func TestSubmitTaskCorrectRateBounds(t *testing.T) {
	svc, _ := newTestGameService()
	ctx := context.Background()

	for _, rate := range []float64{-0.1, 1.5} {
		sub := Submission{TaskID: "2024-01-15-1-flashcard", Module: 1, TaskType: models.TaskFlashcard, CorrectRate: rate, TimeSpent: 60}
		if _, err := svc.SubmitTask(ctx, "u1", "2024-01-15", sub); !errors.Is(err, ErrInvalidCorrectRate) {
			t.Errorf("Expected ErrInvalidCorrectRate for rate %v, got %v", rate, err)
		}
	}

	boundary := []struct {
		taskID string
		rate   float64
	}{
		{"2024-01-15-1-flashcard", 0},
		{"2024-01-15-2-gap_fill", 1},
	}
	for _, b := range boundary {
		sub := Submission{TaskID: b.taskID, Module: 1, TaskType: models.TaskFlashcard, CorrectRate: b.rate, TimeSpent: 60}
		if _, err := svc.SubmitTask(ctx, "u1", "2024-01-15", sub); err != nil {
			t.Errorf("Expected rate %v to be accepted, got %v", b.rate, err)
		}
	}
}

func TestSubmitTaskMinutesRounding(t *testing.T) {
	svc, store := newTestGameService()
	ctx := context.Background()

	testCases := []struct {
		taskID    string
		timeSpent int
		expected  int
	}{
		{"2024-01-15-1-flashcard", 29, 0},
		{"2024-01-15-2-gap_fill", 90, 2},
		{"2024-01-15-3-add_hedging", 60, 1},
	}

	total := 0
	for _, tc := range testCases {
		sub := Submission{TaskID: tc.taskID, Module: 1, TaskType: models.TaskFlashcard, CorrectRate: 1, TimeSpent: tc.timeSpent}
		if _, err := svc.SubmitTask(ctx, "u1", "2024-01-15", sub); err != nil {
			t.Fatalf("Submission failed: %v", err)
		}
		total += tc.expected
		if got := store.progress["u1"].TotalTime; got != total {
			t.Errorf("After %ds task: expected total %d minutes, got %d", tc.timeSpent, total, got)
		}
	}
}

func TestDailyGateOpensAfterFourTasks(t *testing.T) {
	svc, _ := newTestGameService()
	ctx := context.Background()
	today := taskgen.DateString(time.Now())

	set, err := svc.GetDailyTasks(ctx, "u1", today)
	if err != nil {
		t.Fatalf("GetDailyTasks failed: %v", err)
	}
	if set.AllCompleted {
		t.Fatal("Expected gate closed before any submissions")
	}

	for i, task := range set.Tasks {
		result, err := svc.SubmitTask(ctx, "u1", today, Submission{
			TaskID:      task.ID,
			Module:      task.Module,
			TaskType:    task.TaskType,
			CorrectRate: 0.75,
			TimeSpent:   60,
		})
		if err != nil {
			t.Fatalf("Submission %d failed: %v", i, err)
		}
		wantOpen := i == len(set.Tasks)-1
		if result.Progress.AllCompleted != wantOpen {
			t.Errorf("After %d submissions: expected allCompleted=%v, got %v",
				i+1, wantOpen, result.Progress.AllCompleted)
		}
	}

	set, err = svc.GetDailyTasks(ctx, "u1", today)
	if err != nil {
		t.Fatalf("GetDailyTasks failed: %v", err)
	}
	if !set.AllCompleted || set.TodayCompleted != models.ModuleCount {
		t.Errorf("Expected open gate with %d completions, got allCompleted=%v completed=%d",
			models.ModuleCount, set.AllCompleted, set.TodayCompleted)
	}
	for _, task := range set.Tasks {
		if !task.Completed {
			t.Errorf("Expected task %s to be flagged completed", task.ID)
		}
	}
}

func TestGetDailyTasksRecordsLoginOnce(t *testing.T) {
	svc, store := newTestGameService()
	ctx := context.Background()
	today := taskgen.DateString(time.Now())

	first, err := svc.GetDailyTasks(ctx, "u1", today)
	if err != nil {
		t.Fatalf("GetDailyTasks failed: %v", err)
	}
	if first.LoginStreak != 1 {
		t.Errorf("Expected streak 1 on first login, got %d", first.LoginStreak)
	}

	if _, err := svc.GetDailyTasks(ctx, "u1", today); err != nil {
		t.Fatalf("GetDailyTasks failed: %v", err)
	}

	p := store.progress["u1"]
	if p.LoginFrequency != 1 {
		t.Errorf("Expected login frequency 1 after repeated same-day calls, got %d", p.LoginFrequency)
	}
	if p.LastLoginDate != today {
		t.Errorf("Expected last login date %s, got %s", today, p.LastLoginDate)
	}
}

func TestGetTaskOverlaysCompletion(t *testing.T) {
	svc, _ := newTestGameService()
	ctx := context.Background()
	today := taskgen.DateString(time.Now())

	set, err := svc.GetDailyTasks(ctx, "u1", today)
	if err != nil {
		t.Fatalf("GetDailyTasks failed: %v", err)
	}
	target := set.Tasks[0]

	task, err := svc.GetTask(ctx, "u1", target.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if task.Completed {
		t.Error("Expected task to be incomplete before submission")
	}

	if _, err := svc.SubmitTask(ctx, "u1", today, Submission{
		TaskID:      target.ID,
		Module:      target.Module,
		TaskType:    target.TaskType,
		CorrectRate: 1,
		TimeSpent:   60,
	}); err != nil {
		t.Fatalf("Submission failed: %v", err)
	}

	task, err = svc.GetTask(ctx, "u1", target.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if !task.Completed {
		t.Error("Expected task to be flagged completed after submission")
	}
}

func TestGetProgressSummaryEmpty(t *testing.T) {
	svc, _ := newTestGameService()

	summary, err := svc.GetProgressSummary(context.Background(), "nobody", "2024-01-15")
	if err != nil {
		t.Fatalf("GetProgressSummary failed: %v", err)
	}
	if summary.TotalTime != 0 || summary.CompletedTasksCount != 0 {
		t.Error("Expected zeroed summary for unknown user")
	}
	if summary.TodayTotal != models.ModuleCount {
		t.Errorf("Expected today total %d, got %d", models.ModuleCount, summary.TodayTotal)
	}
	if len(summary.ModuleStats) != models.ModuleCount {
		t.Errorf("Expected %d module stat entries, got %d", models.ModuleCount, len(summary.ModuleStats))
	}
}

func TestGetProgressSummaryAggregates(t *testing.T) {
	svc, _ := newTestGameService()
	ctx := context.Background()
	today := taskgen.DateString(time.Now())

	subs := []Submission{
		{TaskID: today + "-1-flashcard", Module: 1, TaskType: models.TaskFlashcard, CorrectRate: 0.5, TimeSpent: 120},
		{TaskID: today + "-1-spelling", Module: 1, TaskType: models.TaskSpelling, CorrectRate: 1, TimeSpent: 60},
		{TaskID: today + "-2-gap_fill", Module: 2, TaskType: models.TaskGapFill, CorrectRate: 0.9, TimeSpent: 180},
	}
	for _, sub := range subs {
		if _, err := svc.SubmitTask(ctx, "u1", today, sub); err != nil {
			t.Fatalf("Submission failed: %v", err)
		}
	}

	summary, err := svc.GetProgressSummary(ctx, "u1", today)
	if err != nil {
		t.Fatalf("GetProgressSummary failed: %v", err)
	}

	if summary.CompletedTasksCount != 3 {
		t.Errorf("Expected 3 completions, got %d", summary.CompletedTasksCount)
	}
	if summary.TodayCompleted != 3 {
		t.Errorf("Expected 3 completions today, got %d", summary.TodayCompleted)
	}

	m1 := summary.ModuleStats["module1"]
	if m1.TaskCount != 2 {
		t.Errorf("Expected 2 module 1 tasks, got %d", m1.TaskCount)
	}
	if m1.AvgCorrectRate != 75 {
		t.Errorf("Expected module 1 average 75%%, got %d", m1.AvgCorrectRate)
	}

	m3 := summary.ModuleStats["module3"]
	if m3.TaskCount != 0 || m3.AvgCorrectRate != 0 {
		t.Error("Expected untouched module stats to stay zero")
	}

	if len(summary.WeeklyStats) != 7 {
		t.Fatalf("Expected 7 weekly buckets, got %d", len(summary.WeeklyStats))
	}
	todayBucket := summary.WeeklyStats[6]
	if todayBucket.Date != today {
		t.Errorf("Expected last bucket to be today (%s), got %s", today, todayBucket.Date)
	}
	if todayBucket.TasksCompleted != 3 {
		t.Errorf("Expected 3 tasks in today's bucket, got %d", todayBucket.TasksCompleted)
	}
	if todayBucket.TimeSpent != 6 {
		t.Errorf("Expected 6 minutes in today's bucket, got %d", todayBucket.TimeSpent)
	}

	if len(summary.RecentTasks) != 3 {
		t.Fatalf("Expected 3 recent tasks, got %d", len(summary.RecentTasks))
	}
	if summary.RecentTasks[0].TaskID != subs[2].TaskID {
		t.Errorf("Expected most recent task first, got %s", summary.RecentTasks[0].TaskID)
	}
}
