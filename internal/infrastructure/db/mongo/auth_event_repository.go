package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

const authEventCollection = "auth_events"

// AuthEventRepository persists security events for later inspection.
type AuthEventRepository struct {
	coll *mongo.Collection
}

func NewAuthEventRepository(db *mongo.Database) *AuthEventRepository {
	return &AuthEventRepository{coll: db.Collection(authEventCollection)}
}

type mongoAuthEvent struct {
	Kind      string    `bson:"kind"`
	Email     string    `bson:"email,omitempty"`
	AccountID string    `bson:"account_id,omitempty"`
	Resource  string    `bson:"resource,omitempty"`
	RemoteIP  string    `bson:"remote_ip,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *AuthEventRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Kind:      event.Kind,
		Email:     event.Email,
		AccountID: event.AccountID,
		Resource:  event.Resource,
		RemoteIP:  event.RemoteIP,
		Timestamp: event.Timestamp.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}

func (r *AuthEventRepository) ListRecent(ctx context.Context, limit int64) ([]domain.AuthEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list auth events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []domain.AuthEvent
	for cursor.Next(ctx) {
		var me mongoAuthEvent
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode auth event: %w", err)
		}
		events = append(events, domain.AuthEvent{
			Kind:      me.Kind,
			Email:     me.Email,
			AccountID: me.AccountID,
			Resource:  me.Resource,
			RemoteIP:  me.RemoteIP,
			Timestamp: me.Timestamp,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list auth events: %w", err)
	}
	return events, nil
}
