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

const brandCollection = "brands"

// BrandRepository is the MongoDB-backed brand store.
type BrandRepository struct {
	coll *mongo.Collection
}

func NewBrandRepository(db *mongo.Database) *BrandRepository {
	return &BrandRepository{coll: db.Collection(brandCollection)}
}

type mongoBrand struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Name        string              `bson:"name"`
	Description string              `bson:"description,omitempty"`
	Logo        string              `bson:"logo,omitempty"`
	Website     string              `bson:"website,omitempty"`
	IsActive    bool                `bson:"is_active"`
	CreatedBy   *primitive.ObjectID `bson:"created_by,omitempty"`
	UpdatedBy   *primitive.ObjectID `bson:"updated_by,omitempty"`
	CreatedAt   int64               `bson:"created_at"`
	UpdatedAt   int64               `bson:"updated_at"`
}

func (r *BrandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer cursor.Close(ctx)

	var brands []domain.Brand
	for cursor.Next(ctx) {
		var mb mongoBrand
		if err := cursor.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode brand: %w", err)
		}
		brands = append(brands, *toDomainBrand(&mb))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return brands, nil
}

func (r *BrandRepository) FindByID(ctx context.Context, id string) (*domain.Brand, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBrandNotFound
	}

	var mb mongoBrand
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBrandNotFound
		}
		return nil, fmt.Errorf("find brand: %w", err)
	}
	return toDomainBrand(&mb), nil
}

func (r *BrandRepository) Create(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	res, err := r.coll.InsertOne(ctx, toMongoBrand(brand))
	if err != nil {
		return nil, fmt.Errorf("insert brand: %w", err)
	}

	created := *brand
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BrandRepository) Update(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	oid, err := primitive.ObjectIDFromHex(brand.ID)
	if err != nil {
		return nil, domain.ErrBrandNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoBrand(brand))
	if err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrBrandNotFound
	}
	return brand, nil
}

func (r *BrandRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBrandNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBrandNotFound
	}
	return nil
}

func toMongoBrand(b *domain.Brand) *mongoBrand {
	mb := &mongoBrand{
		Name:        b.Name,
		Description: b.Description,
		Logo:        b.Logo,
		Website:     b.Website,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt.Unix(),
		UpdatedAt:   b.UpdatedAt.Unix(),
	}
	if oid, err := primitive.ObjectIDFromHex(b.ID); err == nil {
		mb.ID = oid
	}
	mb.CreatedBy = hexToOID(b.CreatedBy)
	mb.UpdatedBy = hexToOID(b.UpdatedBy)
	return mb
}

func toDomainBrand(mb *mongoBrand) *domain.Brand {
	b := &domain.Brand{
		ID:          mb.ID.Hex(),
		Name:        mb.Name,
		Description: mb.Description,
		Logo:        mb.Logo,
		Website:     mb.Website,
		IsActive:    mb.IsActive,
		CreatedAt:   unixToTime(mb.CreatedAt),
		UpdatedAt:   unixToTime(mb.UpdatedAt),
	}
	b.CreatedBy = oidToHex(mb.CreatedBy)
	b.UpdatedBy = oidToHex(mb.UpdatedBy)
	return b
}
