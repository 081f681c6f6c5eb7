package service

import (
	"context"
	"errors"
	"time"

	"training-service/internal/models"
	"training-service/internal/repository"
	"training-service/internal/taskgen"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrStudentIDTaken     = errors.New("student id already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const tokenLifetime = 30 * 24 * time.Hour

type AuthService struct {
	Users     *repository.UserRepository
	Progress  ProgressStore
	jwtSecret []byte
}

func NewAuthService(users *repository.UserRepository, progress ProgressStore, jwtSecret string) *AuthService {
	return &AuthService{
		Users:     users,
		Progress:  progress,
		jwtSecret: []byte(jwtSecret),
	}
}

type RegisterInput struct {
	Username  string
	StudentID string
	Name      string
	Email     string
	Password  string
	Group     string
}

// Register creates a student account and its empty progress ledger,
// returning the user and a signed token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	existing, err := s.Users.FindExisting(ctx, in.Email, in.Username, in.StudentID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", err
	}
	if existing != nil {
		switch {
		case existing.Email == in.Email:
			return nil, "", ErrEmailTaken
		case in.Username != "" && existing.Username == in.Username:
			return nil, "", ErrUsernameTaken
		default:
			return nil, "", ErrStudentIDTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	group := in.Group
	if group != models.GroupExperimental {
		group = models.GroupControl
	}

	user := &models.User{
		Username:  in.Username,
		StudentID: in.StudentID,
		Name:      in.Name,
		Email:     in.Email,
		Password:  string(hash),
		Role:      models.RoleStudent,
		Group:     group,
		CreatedAt: time.Now(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, "", err
	}
	if _, err := s.Progress.Ensure(ctx, user.ID); err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks credentials and records the login day through the same
// streak rule the daily-tasks path uses.
func (s *AuthService) Login(ctx context.Context, email, password, today string) (*models.User, string, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	progress, err := s.Progress.Ensure(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	if progress.IsNewLoginDay(today) {
		streak := taskgen.CalculateLoginStreak(progress.LastLoginDate, today, progress.LoginStreak)
		if _, err := s.Progress.RecordLogin(ctx, user.ID, today, streak); err != nil {
			return nil, "", err
		}
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// CurrentUser resolves the authenticated user plus the progress fields
// shown in the account header.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, *models.GameProgress, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	progress, err := s.Progress.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrProgressNotFound) {
		return user, &models.GameProgress{UserID: userID}, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return user, progress, nil
}

// IssueToken signs a JWT carrying the user id as subject.
func (s *AuthService) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
