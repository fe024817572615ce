package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

const accountCollection = "users"

// AccountRepository is the MongoDB-backed account store.
type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(accountCollection)}
}

type mongoAccount struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	Email        string              `bson:"email"`
	PasswordHash string              `bson:"password_hash"`
	Role         string              `bson:"role"`
	Privileges   map[string]bool     `bson:"privileges"`
	IsActive     bool                `bson:"is_active"`
	CreatedBy    *primitive.ObjectID `bson:"created_by,omitempty"`
	UpdatedBy    *primitive.ObjectID `bson:"updated_by,omitempty"`
	CreatedAt    int64               `bson:"created_at"`
	UpdatedAt    int64               `bson:"updated_at"`
}

// EnsureIndexes creates the unique email index. Called once at startup; the
// index is what turns a racing duplicate insert into ErrAccountExists
// instead of a second account.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindActiveByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email, "is_active": true})
}

func (r *AccountRepository) FindActiveByID(ctx context.Context, id string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid, "is_active": true})
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return toDomainAccount(&ma), nil
}

func (r *AccountRepository) ListByRole(ctx context.Context, role string) ([]domain.Account, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"role": role}, opts)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []domain.Account
	for cursor.Next(ctx) {
		var ma mongoAccount
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		accounts = append(accounts, *toDomainAccount(&ma))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	doc := toMongoAccount(account)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(account.ID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	doc := toMongoAccount(account)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func toMongoAccount(a *domain.Account) *mongoAccount {
	ma := &mongoAccount{
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         a.Role,
		Privileges:   a.Privileges,
		IsActive:     a.IsActive,
		CreatedAt:    a.CreatedAt.Unix(),
		UpdatedAt:    a.UpdatedAt.Unix(),
	}
	if oid, err := primitive.ObjectIDFromHex(a.ID); err == nil {
		ma.ID = oid
	}
	ma.CreatedBy = hexToOID(a.CreatedBy)
	ma.UpdatedBy = hexToOID(a.UpdatedBy)
	return ma
}

func toDomainAccount(ma *mongoAccount) *domain.Account {
	a := &domain.Account{
		ID:           ma.ID.Hex(),
		Email:        ma.Email,
		PasswordHash: ma.PasswordHash,
		Role:         ma.Role,
		Privileges:   ma.Privileges,
		IsActive:     ma.IsActive,
		CreatedAt:    unixToTime(ma.CreatedAt),
		UpdatedAt:    unixToTime(ma.UpdatedAt),
	}
	a.CreatedBy = oidToHex(ma.CreatedBy)
	a.UpdatedBy = oidToHex(ma.UpdatedBy)
	return a
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
