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

const blogCollection = "blogs"

// BlogRepository is the MongoDB-backed blog store.
type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(blogCollection)}
}

type mongoBlog struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Title     string              `bson:"title"`
	Content   string              `bson:"content"`
	Image     string              `bson:"image,omitempty"`
	IsActive  bool                `bson:"is_active"`
	CreatedBy *primitive.ObjectID `bson:"created_by,omitempty"`
	UpdatedBy *primitive.ObjectID `bson:"updated_by,omitempty"`
	CreatedAt int64               `bson:"created_at"`
	UpdatedAt int64               `bson:"updated_at"`
}

func (r *BlogRepository) List(ctx context.Context) ([]domain.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer cursor.Close(ctx)

	var blogs []domain.Blog
	for cursor.Next(ctx) {
		var mb mongoBlog
		if err := cursor.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode blog: %w", err)
		}
		blogs = append(blogs, *toDomainBlog(&mb))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBlogNotFound
	}

	var mb mongoBlog
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return toDomainBlog(&mb), nil
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	res, err := r.coll.InsertOne(ctx, toMongoBlog(blog))
	if err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	created := *blog
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BlogRepository) Update(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(blog.ID)
	if err != nil {
		return nil, domain.ErrBlogNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoBlog(blog))
	if err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrBlogNotFound
	}
	return blog, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBlogNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

func toMongoBlog(b *domain.Blog) *mongoBlog {
	mb := &mongoBlog{
		Title:     b.Title,
		Content:   b.Content,
		Image:     b.Image,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt.Unix(),
		UpdatedAt: b.UpdatedAt.Unix(),
	}
	if oid, err := primitive.ObjectIDFromHex(b.ID); err == nil {
		mb.ID = oid
	}
	mb.CreatedBy = hexToOID(b.CreatedBy)
	mb.UpdatedBy = hexToOID(b.UpdatedBy)
	return mb
}

func toDomainBlog(mb *mongoBlog) *domain.Blog {
	b := &domain.Blog{
		ID:        mb.ID.Hex(),
		Title:     mb.Title,
		Content:   mb.Content,
		Image:     mb.Image,
		IsActive:  mb.IsActive,
		CreatedAt: unixToTime(mb.CreatedAt),
		UpdatedAt: unixToTime(mb.UpdatedAt),
	}
	b.CreatedBy = oidToHex(mb.CreatedBy)
	b.UpdatedBy = oidToHex(mb.UpdatedBy)
	return b
}
