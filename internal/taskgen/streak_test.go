package taskgen

import "testing"

func TestCalculateLoginStreak(t *testing.T) {
	testCases := []struct {
		name          string
		lastLoginDate string
		currentDate   string
		currentStreak int
		expected      int
	}{
		{"first login ever", "", "2024-01-15", 0, 1},
		{"same day keeps streak", "2024-01-15", "2024-01-15", 5, 5},
		{"consecutive day increments", "2024-01-14", "2024-01-15", 5, 6},
		{"consecutive across month boundary", "2024-01-31", "2024-02-01", 2, 3},
		{"two day gap resets", "2024-01-13", "2024-01-15", 5, 1},
		{"long gap resets", "2023-11-01", "2024-01-15", 9, 1},
		{"clock skew resets", "2024-01-16", "2024-01-15", 5, 1},
		{"unparseable last date resets", "not-a-date", "2024-01-15", 5, 1},
		{"unparseable current date resets", "2024-01-14", "garbage", 5, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateLoginStreak(tc.lastLoginDate, tc.currentDate, tc.currentStreak)
			if got != tc.expected {
				t.Errorf("Expected streak %d, got %d", tc.expected, got)
			}
		})
	}
}
