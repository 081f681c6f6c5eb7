package taskgen

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"training-service/internal/content"
	"training-service/internal/models"
)

func newTestGenerator() *Generator {
	return NewGenerator(content.Fixtures())
}

func TestGenerateDailyTasksDeterministic(t *testing.T) {
	g := newTestGenerator()

	first := g.GenerateDailyTasks("u1", "2024-01-15")
	second := g.GenerateDailyTasks("u1", "2024-01-15")

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical task sets for the same user and date")
	}
}

func TestGenerateDailyTasksShape(t *testing.T) {
	g := newTestGenerator()
	set := g.GenerateDailyTasks("u1", "2024-01-15")

	if set.Date != "2024-01-15" {
		t.Errorf("Expected date 2024-01-15, got %s", set.Date)
	}
	if len(set.Tasks) != models.ModuleCount {
		t.Fatalf("Expected %d tasks, got %d", models.ModuleCount, len(set.Tasks))
	}

	for i, task := range set.Tasks {
		module := i + 1
		if task.Module != module {
			t.Errorf("Task %d: expected module %d, got %d", i, module, task.Module)
		}

		expectedID := fmt.Sprintf("2024-01-15-%d-%s", module, task.TaskType)
		if task.ID != expectedID {
			t.Errorf("Expected id %s, got %s", expectedID, task.ID)
		}

		allowed := false
		for _, tt := range models.ModuleTasks[module] {
			if tt == task.TaskType {
				allowed = true
			}
		}
		if !allowed {
			t.Errorf("Task type %s is not valid for module %d", task.TaskType, module)
		}

		if task.ModuleName == "" || task.TaskName == "" {
			t.Errorf("Task %s is missing display names", task.ID)
		}
		if task.Data == nil {
			t.Errorf("Task %s has no payload", task.ID)
		}
		if task.Completed {
			t.Errorf("Freshly generated task %s must not be completed", task.ID)
		}
	}
}

func TestGenerateDailyTasksVariesByUserAndDate(t *testing.T) {
	g := newTestGenerator()

	base := g.GenerateDailyTasks("u1", "2024-01-15")
	otherUser := g.GenerateDailyTasks("u2", "2024-01-15")
	otherDate := g.GenerateDailyTasks("u1", "2024-01-16")

	if reflect.DeepEqual(base.Tasks, otherUser.Tasks) {
		t.Error("Expected different users to get different task sets")
	}
	if reflect.DeepEqual(base.Tasks, otherDate.Tasks) {
		t.Error("Expected different dates to get different task sets")
	}
}

func TestParseTaskID(t *testing.T) {
	testCases := []struct {
		name     string
		taskID   string
		date     string
		module   int
		taskType models.TaskType
		wantErr  bool
	}{
		{"simple type", "2024-01-15-1-flashcard", "2024-01-15", 1, models.TaskFlashcard, false},
		{"type with underscore", "2024-01-15-2-error_detection", "2024-01-15", 2, models.TaskErrorDetection, false},
		{"type with dash survives rejoin", "2024-01-15-3-add-hedging", "2024-01-15", 3, models.TaskType("add-hedging"), false},
		{"garbage", "garbage", "", 0, "", true},
		{"too few parts", "2024-01-15-1", "", 0, "", true},
		{"module zero", "2024-01-15-0-flashcard", "", 0, "", true},
		{"module out of range", "2024-01-15-5-flashcard", "", 0, "", true},
		{"invalid date", "2024-13-40-1-flashcard", "", 0, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			date, module, taskType, err := ParseTaskID(tc.taskID)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidTaskID) {
					t.Fatalf("Expected ErrInvalidTaskID, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if date != tc.date || module != tc.module || taskType != tc.taskType {
				t.Errorf("Expected (%s, %d, %s), got (%s, %d, %s)",
					tc.date, tc.module, tc.taskType, date, module, taskType)
			}
		})
	}
}

func TestFindTaskRoundtrip(t *testing.T) {
	g := newTestGenerator()
	set := g.GenerateDailyTasks("u1", "2024-01-15")

	for _, want := range set.Tasks {
		got, err := g.FindTask("u1", want.ID)
		if err != nil {
			t.Fatalf("FindTask(%s): %v", want.ID, err)
		}
		if got.ID != want.ID || got.Module != want.Module || got.TaskType != want.TaskType {
			t.Errorf("Expected task %s, got %s", want.ID, got.ID)
		}
		if !reflect.DeepEqual(got.Data, want.Data) {
			t.Errorf("Re-derived payload for %s differs from the generated one", want.ID)
		}
	}
}

func TestFindTaskErrors(t *testing.T) {
	g := newTestGenerator()

	if _, err := g.FindTask("u1", "nonsense"); !errors.Is(err, ErrInvalidTaskID) {
		t.Errorf("Expected ErrInvalidTaskID, got %v", err)
	}

	// gap_fill never belongs to module 1, so this id parses but can
	// never be generated.
	if _, err := g.FindTask("u1", "2024-01-15-1-gap_fill"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}
