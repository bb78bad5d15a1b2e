package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sesamelabs/identity-service/internal/core/domain"
)

const auditCollection = "auth_events"

// MongoAuditRepository appends authentication audit events. The collection
// is write-only from the service's point of view.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	Username string `bson:"username"`
	ActorID  string `bson:"actor_id,omitempty"`
	Action   string `bson:"action"`
	At       int64  `bson:"at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Username: event.Username,
		ActorID:  event.ActorID,
		Action:   string(event.Action),
		At:       event.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
