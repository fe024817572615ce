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

const seasonCollection = "seasons"

// SeasonRepository is the MongoDB-backed season store.
type SeasonRepository struct {
	coll *mongo.Collection
}

func NewSeasonRepository(db *mongo.Database) *SeasonRepository {
	return &SeasonRepository{coll: db.Collection(seasonCollection)}
}

type mongoSeason struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Name      string              `bson:"name"`
	Logo      string              `bson:"logo,omitempty"`
	StartDate *time.Time          `bson:"start_date,omitempty"`
	EndDate   *time.Time          `bson:"end_date,omitempty"`
	IsActive  bool                `bson:"is_active"`
	CreatedBy *primitive.ObjectID `bson:"created_by,omitempty"`
	UpdatedBy *primitive.ObjectID `bson:"updated_by,omitempty"`
	CreatedAt int64               `bson:"created_at"`
	UpdatedAt int64               `bson:"updated_at"`
}

func (r *SeasonRepository) List(ctx context.Context) ([]domain.Season, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	defer cursor.Close(ctx)

	var seasons []domain.Season
	for cursor.Next(ctx) {
		var ms mongoSeason
		if err := cursor.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode season: %w", err)
		}
		seasons = append(seasons, *toDomainSeason(&ms))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return seasons, nil
}

func (r *SeasonRepository) FindByID(ctx context.Context, id string) (*domain.Season, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSeasonNotFound
	}

	var ms mongoSeason
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSeasonNotFound
		}
		return nil, fmt.Errorf("find season: %w", err)
	}
	return toDomainSeason(&ms), nil
}

func (r *SeasonRepository) Create(ctx context.Context, season *domain.Season) (*domain.Season, error) {
	res, err := r.coll.InsertOne(ctx, toMongoSeason(season))
	if err != nil {
		return nil, fmt.Errorf("insert season: %w", err)
	}

	created := *season
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *SeasonRepository) Update(ctx context.Context, season *domain.Season) (*domain.Season, error) {
	oid, err := primitive.ObjectIDFromHex(season.ID)
	if err != nil {
		return nil, domain.ErrSeasonNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoSeason(season))
	if err != nil {
		return nil, fmt.Errorf("update season: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrSeasonNotFound
	}
	return season, nil
}

func (r *SeasonRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSeasonNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete season: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSeasonNotFound
	}
	return nil
}

func toMongoSeason(s *domain.Season) *mongoSeason {
	ms := &mongoSeason{
		Name:      s.Name,
		Logo:      s.Logo,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt.Unix(),
		UpdatedAt: s.UpdatedAt.Unix(),
	}
	if oid, err := primitive.ObjectIDFromHex(s.ID); err == nil {
		ms.ID = oid
	}
	ms.CreatedBy = hexToOID(s.CreatedBy)
	ms.UpdatedBy = hexToOID(s.UpdatedBy)
	return ms
}

func toDomainSeason(ms *mongoSeason) *domain.Season {
	s := &domain.Season{
		ID:        ms.ID.Hex(),
		Name:      ms.Name,
		Logo:      ms.Logo,
		StartDate: ms.StartDate,
		EndDate:   ms.EndDate,
		IsActive:  ms.IsActive,
		CreatedAt: unixToTime(ms.CreatedAt),
		UpdatedAt: unixToTime(ms.UpdatedAt),
	}
	s.CreatedBy = oidToHex(ms.CreatedBy)
	s.UpdatedBy = oidToHex(ms.UpdatedBy)
	return s
}
