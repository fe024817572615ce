package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

const categoryCollection = "categories"

// CategoryRepository is the MongoDB-backed category store.
type CategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{coll: db.Collection(categoryCollection)}
}

type mongoCategory struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Name        string              `bson:"name"`
	Description string              `bson:"description,omitempty"`
	IsActive    bool                `bson:"is_active"`
	CreatedBy   *primitive.ObjectID `bson:"created_by,omitempty"`
	UpdatedBy   *primitive.ObjectID `bson:"updated_by,omitempty"`
	CreatedAt   int64               `bson:"created_at"`
	UpdatedAt   int64               `bson:"updated_at"`
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []domain.Category
	for cursor.Next(ctx) {
		var mc mongoCategory
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		categories = append(categories, *toDomainCategory(&mc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	var mc mongoCategory
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return toDomainCategory(&mc), nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	res, err := r.coll.InsertOne(ctx, toMongoCategory(category))
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	created := *category
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(category.ID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoCategory(category))
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCategoryNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func toMongoCategory(c *domain.Category) *mongoCategory {
	mc := &mongoCategory{
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt.Unix(),
		UpdatedAt:   c.UpdatedAt.Unix(),
	}
	if oid, err := primitive.ObjectIDFromHex(c.ID); err == nil {
		mc.ID = oid
	}
	mc.CreatedBy = hexToOID(c.CreatedBy)
	mc.UpdatedBy = hexToOID(c.UpdatedBy)
	return mc
}

func toDomainCategory(mc *mongoCategory) *domain.Category {
	c := &domain.Category{
		ID:          mc.ID.Hex(),
		Name:        mc.Name,
		Description: mc.Description,
		IsActive:    mc.IsActive,
		CreatedAt:   unixToTime(mc.CreatedAt),
		UpdatedAt:   unixToTime(mc.UpdatedAt),
	}
	c.CreatedBy = oidToHex(mc.CreatedBy)
	c.UpdatedBy = oidToHex(mc.UpdatedBy)
	return c
}

// hexToOID converts an object id hex string, returning nil for empty or
// invalid input.
func hexToOID(hex string) *primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil
	}
	return &oid
}

func oidToHex(oid *primitive.ObjectID) string {
	if oid == nil {
		return ""
	}
	return oid.Hex()
}
