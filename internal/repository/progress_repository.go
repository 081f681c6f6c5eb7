package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"training-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrAlreadyCompleted reports that a task id is already in the user's
// completed set. Expected steady-state outcome on duplicate
// submissions, not an exception path.
var ErrAlreadyCompleted = errors.New("task already completed")

// ErrProgressNotFound reports that no ledger document exists for the
// user yet.
var ErrProgressNotFound = errors.New("progress not found")

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("game_progress")}
}

// EnsureIndexes creates the unique per-user index. The one-document-
// per-user shape is what makes the conditional completion update an
// adequate serialization point.
func (r *ProgressRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"user_id": 1},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *ProgressRepository) FindByUser(ctx context.Context, userID string) (*models.GameProgress, error) {
	var progress models.GameProgress
	if err := r.Col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&progress); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}
	return &progress, nil
}

// Ensure returns the user's ledger, creating a zeroed one if missing.
func (r *ProgressRepository) Ensure(ctx context.Context, userID string) (*models.GameProgress, error) {
	now := time.Now()
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var progress models.GameProgress
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID},
		bson.M{"$setOnInsert": bson.M{
			"user_id":            userID,
			"total_time":         0,
			"login_frequency":    0,
			"login_streak":       0,
			"last_login_date":    "",
			"module_breakdown":   models.ModuleBreakdown{},
			"task_history":       []models.TaskRecord{},
			"completed_task_ids": []string{},
			"daily_task_history": []models.DailyRecord{},
			"created_at":         now,
			"updated_at":         now,
		}},
		opts,
	).Decode(&progress)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// RecordLogin applies the new-day login update. The filter on
// last_login_date makes the call same-day idempotent: repeated calls
// within one day match nothing and never double-increment the
// frequency. Returns whether a new day was recorded.
func (r *ProgressRepository) RecordLogin(ctx context.Context, userID, today string, streak int) (bool, error) {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"user_id": userID, "last_login_date": bson.M{"$ne": today}},
		bson.M{
			"$set": bson.M{
				"login_streak":    streak,
				"last_login_date": today,
				"updated_at":      time.Now(),
			},
			"$inc": bson.M{"login_frequency": 1},
		},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// CompleteTask performs the at-most-once completion update as a single
// conditional write: the filter excludes documents already holding the
// task id, and the update appends the history record, adds the id and
// bumps the minute counters in one operation. Concurrent duplicate
// submissions therefore cannot both pass; the loser matches no document
// and gets ErrAlreadyCompleted with the ledger untouched.
func (r *ProgressRepository) CompleteTask(ctx context.Context, userID string, rec models.TaskRecord, minutes int) error {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{
			"user_id":            userID,
			"completed_task_ids": bson.M{"$ne": rec.TaskID},
		},
		bson.M{
			"$push":     bson.M{"task_history": rec},
			"$addToSet": bson.M{"completed_task_ids": rec.TaskID},
			"$inc": bson.M{
				"total_time": minutes,
				fmt.Sprintf("module_breakdown.module%d", rec.Module): minutes,
			},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrAlreadyCompleted
	}
	return nil
}

// BumpDailyHistory folds an accepted completion into the per-day
// aggregate: increment the existing day entry, or append one. Called
// only after CompleteTask accepted the id.
func (r *ProgressRepository) BumpDailyHistory(ctx context.Context, userID, date string, timeSpent int) error {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"user_id": userID, "daily_task_history.date": date},
		bson.M{"$inc": bson.M{
			"daily_task_history.$.completed_count": 1,
			"daily_task_history.$.total_time":      timeSpent,
		}},
	)
	if err != nil {
		return err
	}
	if res.ModifiedCount > 0 {
		return nil
	}

	_, err = r.Col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$push": bson.M{"daily_task_history": models.DailyRecord{
			Date:           date,
			CompletedCount: 1,
			TotalCount:     models.ModuleCount,
			TotalTime:      timeSpent,
		}}},
	)
	return err
}
