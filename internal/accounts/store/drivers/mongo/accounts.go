package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staffroomhq/accounts/internal/accounts/domain"
	"github.com/staffroomhq/accounts/internal/accounts/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const accountsCollection = "accounts"

// accountDoc is the persisted shape. The app-generated ULID is the _id.
type accountDoc struct {
	ID           string     `bson:"_id"`
	FullName     string     `bson:"full_name"`
	Email        string     `bson:"email"`
	PasswordHash string     `bson:"password_hash"`
	Role         string     `bson:"role"`
	Status       string     `bson:"status"`
	LastLogin    *time.Time `bson:"last_login,omitempty"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
}

type accountsRepo struct {
	coll *mongo.Collection
}

func (r *accountsRepo) GetByID(ctx context.Context, id string) (domain.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *accountsRepo) findOne(ctx context.Context, filter bson.M) (domain.Account, error) {
	var doc accountDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Account{}, store.ErrNotFound
		}
		return domain.Account{}, fmt.Errorf("find account: %w", err)
	}
	return mapAccount(doc), nil
}

func (r *accountsRepo) Create(ctx context.Context, a domain.Account) error {
	_, err := r.coll.InsertOne(ctx, accountDoc{
		ID:           a.ID,
		FullName:     a.FullName,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         string(a.Role),
		Status:       string(a.Status),
		LastLogin:    a.LastLogin,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *accountsRepo) UpdateProfile(ctx context.Context, id, fullName, email string) error {
	err := r.updateOne(ctx, id, bson.M{"full_name": fullName, "email": email})
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, id, newHash string) error {
	return r.updateOne(ctx, id, bson.M{"password_hash": newHash})
}

func (r *accountsRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	return r.updateOne(ctx, id, bson.M{"status": string(status)})
}

func (r *accountsRepo) UpdateLastLogin(ctx context.Context, id string) error {
	return r.updateOne(ctx, id, bson.M{"last_login": time.Now().UTC()})
}

func (r *accountsRepo) updateOne(ctx context.Context, id string, set bson.M) error {
	set["updated_at"] = time.Now().UTC()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *accountsRepo) List(ctx context.Context, role domain.Role, offset, limit int64) ([]domain.Account, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"role": string(role)}, opts)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []accountDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}

	accounts := make([]domain.Account, len(docs))
	for i, doc := range docs {
		accounts[i] = mapAccount(doc)
	}
	return accounts, nil
}

func (r *accountsRepo) Count(ctx context.Context, role domain.Role) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"role": string(role)})
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return count, nil
}

func mapAccount(doc accountDoc) domain.Account {
	return domain.Account{
		ID:           doc.ID,
		FullName:     doc.FullName,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Role:         domain.Role(doc.Role),
		Status:       domain.Status(doc.Status),
		LastLogin:    doc.LastLogin,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}
