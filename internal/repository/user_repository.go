package repository

import (
	"context"

	"training-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	res, err := r.Col.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.Col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByStudentID(ctx context.Context, studentID string) (*models.User, error) {
	var user models.User
	if err := r.Col.FindOne(ctx, bson.M{"student_id": studentID}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindExisting looks for any user already holding one of the given
// unique identity fields. Blank fields are not matched.
func (r *UserRepository) FindExisting(ctx context.Context, email, username, studentID string) (*models.User, error) {
	or := []bson.M{{"email": email}}
	if username != "" {
		or = append(or, bson.M{"username": username})
	}
	if studentID != "" {
		or = append(or, bson.M{"student_id": studentID})
	}

	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"$or": or}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountAdmins(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
}

func (r *UserRepository) FindStudents(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := r.Col.Find(ctx, bson.M{"role": models.RoleStudent}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, cur.Err()
}
