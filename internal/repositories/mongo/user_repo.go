package mongo

import (
	"context"
	"errors"
	"os"

	"scorequest/user/internal/models"
	"scorequest/user/internal/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repo wraps the users collection.
type Repo struct{ col *mongo.Collection }

var _ repositories.UserRepository = (*Repo)(nil)

// NewUserRepo connects to Mongo and ensures the unique username index.
// Username uniqueness is enforced here, not by application locking: two
// racing registrations hit the index and exactly one wins.
func NewUserRepo(c *Client) (*Repo, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}

	colName := os.Getenv("USERS_COLLECTION")
	if colName == "" {
		colName = "users"
	}

	col := db.Collection(colName)
	r := &Repo{col: col}

	_, err = r.col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Create inserts a new account. The password must already be hashed.
func (r *Repo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if _, err := r.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repositories.ErrDuplicateUsername
		}
		return nil, err
	}
	return user, nil
}

// List retrieves all accounts.
func (r *Repo) List(ctx context.Context) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrUserNotFound
	}
	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Update applies the non-nil fields of the patch and returns the
// updated account.
func (r *Repo) Update(ctx context.Context, id string, update repositories.UserUpdate) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrUserNotFound
	}

	patch := bson.M{}
	if update.Username != nil {
		patch["username"] = *update.Username
	}
	if update.PasswordHash != nil {
		patch["password"] = *update.PasswordHash
	}
	if update.Points != nil {
		patch["points"] = *update.Points
	}
	if update.Role != nil {
		patch["role"] = *update.Role
	}
	if len(patch) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": patch}, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, repositories.ErrDuplicateUsername
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes an account and returns the removed document.
func (r *Repo) Delete(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrUserNotFound
	}
	var deleted models.User
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrUserNotFound
		}
		return nil, err
	}
	return &deleted, nil
}
