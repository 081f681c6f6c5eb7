package repository

import (
	"context"
	"time"

	"training-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TestScoreRepository struct {
	Col *mongo.Collection
}

func NewTestScoreRepository(db *mongo.Database) *TestScoreRepository {
	return &TestScoreRepository{Col: db.Collection("test_scores")}
}

// EnsureIndexes enforces one score row per (user, testType).
func (r *TestScoreRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "test_type", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Upsert writes the score set for (user, testType), replacing a
// previous submission of the same test.
func (r *TestScoreRepository) Upsert(ctx context.Context, score *models.TestScore) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"user_id": score.UserID, "test_type": score.TestType},
		bson.M{"$set": bson.M{
			"scores":       score.Scores,
			"completed_at": time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *TestScoreRepository) FindByUser(ctx context.Context, userID string) ([]models.TestScore, error) {
	opts := options.Find().SetSort(bson.M{"completed_at": 1})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var scores []models.TestScore
	for cur.Next(ctx) {
		var s models.TestScore
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, cur.Err()
}
