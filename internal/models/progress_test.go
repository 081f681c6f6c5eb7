package models

import "testing"

func TestCompletedOn(t *testing.T) {
	p := &GameProgress{CompletedTaskIDs: []string{
		"2024-01-15-1-flashcard",
		"2024-01-15-2-gap_fill",
		"2024-01-14-1-spelling",
	}}

	today := p.CompletedOn("2024-01-15")
	if len(today) != 2 {
		t.Errorf("Expected 2 completions on 2024-01-15, got %d", len(today))
	}
	yesterday := p.CompletedOn("2024-01-14")
	if len(yesterday) != 1 {
		t.Errorf("Expected 1 completion on 2024-01-14, got %d", len(yesterday))
	}
	if got := p.CompletedOn("2024-01-13"); len(got) != 0 {
		t.Errorf("Expected no completions on 2024-01-13, got %v", got)
	}
}

func TestAllDailyTasksCompleted(t *testing.T) {
	p := &GameProgress{CompletedTaskIDs: []string{
		"2024-01-15-1-flashcard",
		"2024-01-15-2-gap_fill",
		"2024-01-15-3-add_hedging",
	}}

	if p.AllDailyTasksCompleted("2024-01-15") {
		t.Error("Expected gate to stay closed with 3 of 4 tasks done")
	}

	p.CompletedTaskIDs = append(p.CompletedTaskIDs, "2024-01-15-4-completion")
	if !p.AllDailyTasksCompleted("2024-01-15") {
		t.Error("Expected gate to open with all 4 tasks done")
	}
	if p.AllDailyTasksCompleted("2024-01-16") {
		t.Error("Expected gate to be per-day")
	}
}

func TestHasCompleted(t *testing.T) {
	p := &GameProgress{CompletedTaskIDs: []string{"2024-01-15-1-flashcard"}}

	if !p.HasCompleted("2024-01-15-1-flashcard") {
		t.Error("Expected completed id to be found")
	}
	if p.HasCompleted("2024-01-15-2-gap_fill") {
		t.Error("Expected unknown id to be absent")
	}
}

func TestIsNewLoginDay(t *testing.T) {
	p := &GameProgress{LastLoginDate: "2024-01-15"}

	if p.IsNewLoginDay("2024-01-15") {
		t.Error("Expected same day not to count as new")
	}
	if !p.IsNewLoginDay("2024-01-16") {
		t.Error("Expected next day to count as new")
	}

	fresh := &GameProgress{}
	if !fresh.IsNewLoginDay("2024-01-15") {
		t.Error("Expected first login to count as new")
	}
}

func TestModuleBreakdown(t *testing.T) {
	var m ModuleBreakdown
	m.Add(1, 5)
	m.Add(1, 3)
	m.Add(4, 2)
	m.Add(9, 7) // unknown module is ignored

	if m.Minutes(1) != 8 {
		t.Errorf("Expected 8 minutes in module 1, got %d", m.Minutes(1))
	}
	if m.Minutes(4) != 2 {
		t.Errorf("Expected 2 minutes in module 4, got %d", m.Minutes(4))
	}
	if m.Minutes(2) != 0 || m.Minutes(9) != 0 {
		t.Error("Expected untouched modules to stay at zero")
	}
}
