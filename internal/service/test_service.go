package service

import (
	"context"
	"errors"
	"time"

	"training-service/internal/models"
	"training-service/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrInvalidTestType = errors.New("invalid test type")
	ErrStudentNotFound = errors.New("student not found")
)

type TestService struct {
	Scores *repository.TestScoreRepository
	Users  *repository.UserRepository
}

func NewTestService(scores *repository.TestScoreRepository, users *repository.UserRepository) *TestService {
	return &TestService{Scores: scores, Users: users}
}

// SubmitScore records the score set for a student's pre/post/delayed
// test, replacing a previous submission of the same test type.
func (s *TestService) SubmitScore(ctx context.Context, studentID, testType string, scores models.ScoreSet) (*models.TestScore, error) {
	if !models.ValidTestType(testType) {
		return nil, ErrInvalidTestType
	}

	user, err := s.Users.FindByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	score := &models.TestScore{
		UserID:      user.ID,
		TestType:    testType,
		Scores:      scores,
		CompletedAt: time.Now(),
	}
	if err := s.Scores.Upsert(ctx, score); err != nil {
		return nil, err
	}
	return score, nil
}

type ScoreEntry struct {
	Scores      models.ScoreSet `json:"scores"`
	CompletedAt time.Time       `json:"completedAt"`
}

// FormattedScores always carries all three slots; missing tests are
// null.
type FormattedScores struct {
	Pre     *ScoreEntry `json:"pre"`
	Post    *ScoreEntry `json:"post"`
	Delayed *ScoreEntry `json:"delayed"`
}

func (s *TestService) ScoresByUser(ctx context.Context, userID string) (*FormattedScores, error) {
	scores, err := s.Scores.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	formatted := &FormattedScores{}
	for _, score := range scores {
		entry := &ScoreEntry{Scores: score.Scores, CompletedAt: score.CompletedAt}
		switch score.TestType {
		case models.TestPre:
			formatted.Pre = entry
		case models.TestPost:
			formatted.Post = entry
		case models.TestDelayed:
			formatted.Delayed = entry
		}
	}
	return formatted, nil
}
