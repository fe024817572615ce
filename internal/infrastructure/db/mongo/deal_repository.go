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

const dealCollection = "deals"

// DealRepository is the MongoDB-backed deal store.
type DealRepository struct {
	coll *mongo.Collection
}

func NewDealRepository(db *mongo.Database) *DealRepository {
	return &DealRepository{coll: db.Collection(dealCollection)}
}

type mongoDeal struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Brand       primitive.ObjectID  `bson:"brand"`
	Season      *primitive.ObjectID `bson:"season,omitempty"`
	Code        string              `bson:"code,omitempty"`
	Link        string              `bson:"link"`
	Type        string              `bson:"type,omitempty"`
	Description string              `bson:"description,omitempty"`
	PercentOff  float64             `bson:"percent_off,omitempty"`
	StartDate   *time.Time          `bson:"start_date,omitempty"`
	EndDate     *time.Time          `bson:"end_date,omitempty"`
	IsActive    bool                `bson:"is_active"`
	IsHot       bool                `bson:"is_hot"`
	CreatedBy   *primitive.ObjectID `bson:"created_by,omitempty"`
	UpdatedBy   *primitive.ObjectID `bson:"updated_by,omitempty"`
	CreatedAt   int64               `bson:"created_at"`
	UpdatedAt   int64               `bson:"updated_at"`
}

// EnsureIndexes creates the query indexes the catalog UI relies on.
func (r *DealRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "brand", Value: 1}, {Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "start_date", Value: 1}, {Key: "end_date", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create deal indexes: %w", err)
	}
	return nil
}

func (r *DealRepository) List(ctx context.Context) ([]domain.Deal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	defer cursor.Close(ctx)

	var deals []domain.Deal
	for cursor.Next(ctx) {
		var md mongoDeal
		if err := cursor.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode deal: %w", err)
		}
		deals = append(deals, *toDomainDeal(&md))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	return deals, nil
}

func (r *DealRepository) FindByID(ctx context.Context, id string) (*domain.Deal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDealNotFound
	}

	var md mongoDeal
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&md); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDealNotFound
		}
		return nil, fmt.Errorf("find deal: %w", err)
	}
	return toDomainDeal(&md), nil
}

func (r *DealRepository) Create(ctx context.Context, deal *domain.Deal) (*domain.Deal, error) {
	doc, err := toMongoDeal(deal)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert deal: %w", err)
	}

	created := *deal
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DealRepository) Update(ctx context.Context, deal *domain.Deal) (*domain.Deal, error) {
	oid, err := primitive.ObjectIDFromHex(deal.ID)
	if err != nil {
		return nil, domain.ErrDealNotFound
	}

	doc, err := toMongoDeal(deal)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update deal: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrDealNotFound
	}
	return deal, nil
}

func (r *DealRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDealNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDealNotFound
	}
	return nil
}

func toMongoDeal(d *domain.Deal) (*mongoDeal, error) {
	brandOID, err := primitive.ObjectIDFromHex(d.BrandID)
	if err != nil {
		return nil, domain.ErrBrandNotFound
	}

	md := &mongoDeal{
		Brand:       brandOID,
		Season:      hexToOID(d.SeasonID),
		Code:        d.Code,
		Link:        d.Link,
		Type:        d.Type,
		Description: d.Description,
		PercentOff:  d.PercentOff,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		IsActive:    d.IsActive,
		IsHot:       d.IsHot,
		CreatedAt:   d.CreatedAt.Unix(),
		UpdatedAt:   d.UpdatedAt.Unix(),
	}
	if oid, err := primitive.ObjectIDFromHex(d.ID); err == nil {
		md.ID = oid
	}
	md.CreatedBy = hexToOID(d.CreatedBy)
	md.UpdatedBy = hexToOID(d.UpdatedBy)
	return md, nil
}

func toDomainDeal(md *mongoDeal) *domain.Deal {
	d := &domain.Deal{
		ID:          md.ID.Hex(),
		BrandID:     md.Brand.Hex(),
		SeasonID:    oidToHex(md.Season),
		Code:        md.Code,
		Link:        md.Link,
		Type:        md.Type,
		Description: md.Description,
		PercentOff:  md.PercentOff,
		StartDate:   md.StartDate,
		EndDate:     md.EndDate,
		IsActive:    md.IsActive,
		IsHot:       md.IsHot,
		CreatedAt:   unixToTime(md.CreatedAt),
		UpdatedAt:   unixToTime(md.UpdatedAt),
	}
	d.CreatedBy = oidToHex(md.CreatedBy)
	d.UpdatedBy = oidToHex(md.UpdatedBy)
	return d
}
