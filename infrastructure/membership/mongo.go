package membership

import (
	"chat-relay/domain"
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const MembersCollection = "conversation_members"

// MemberDocument is one participant row of the conversation_members collection.
type MemberDocument struct {
	ConversationID string    `bson:"conversation_id"`
	UserID         string    `bson:"user_id"`
	JoinedAt       time.Time `bson:"joined_at,omitempty"`
}

type MongoMembership struct {
	collection *mongo.Collection
	log        *slog.Logger
}

func NewMongoMembership(db *mongo.Database, log *slog.Logger) *MongoMembership {
	return &MongoMembership{collection: db.Collection(MembersCollection), log: log}
}

func ConnectMongo(ctx context.Context, uri, appName string, timeout time.Duration) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetAppName(appName).
		SetConnectTimeout(timeout).
		SetMaxPoolSize(20)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the two lookups used by the relay. Creating an existing index is a no-op.
func (m *MongoMembership) EnsureIndexes(ctx context.Context) error {
	_, err := m.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "conversation_id", Value: 1}, {Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	})
	return err
}

func (m *MongoMembership) ConversationIDsForUser(ctx context.Context, userID domain.UserID) ([]domain.ConversationID, error) {
	docs, err := m.find(ctx, bson.D{{Key: "user_id", Value: string(userID)}}, "conversation_id")
	if err != nil {
		return nil, err
	}
	ids := make([]domain.ConversationID, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, domain.ConversationID(doc.ConversationID))
	}
	return ids, nil
}

func (m *MongoMembership) MemberIDs(ctx context.Context, conversationID domain.ConversationID) ([]domain.UserID, error) {
	docs, err := m.find(ctx, bson.D{{Key: "conversation_id", Value: string(conversationID)}}, "user_id")
	if err != nil {
		return nil, err
	}
	ids := make([]domain.UserID, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, domain.UserID(doc.UserID))
	}
	return ids, nil
}

func (m *MongoMembership) IsMember(ctx context.Context, conversationID domain.ConversationID, userID domain.UserID) (bool, error) {
	filter := bson.D{
		{Key: "conversation_id", Value: string(conversationID)},
		{Key: "user_id", Value: string(userID)},
	}
	var doc MemberDocument
	err := m.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *MongoMembership) AddMember(ctx context.Context, conversationID domain.ConversationID, userID domain.UserID) error {
	filter := bson.D{
		{Key: "conversation_id", Value: string(conversationID)},
		{Key: "user_id", Value: string(userID)},
	}
	update := bson.D{{Key: "$setOnInsert", Value: MemberDocument{
		ConversationID: string(conversationID),
		UserID:         string(userID),
		JoinedAt:       time.Now().UTC(),
	}}}
	_, err := m.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (m *MongoMembership) Ping(ctx context.Context) error {
	return m.collection.Database().Client().Ping(ctx, readpref.Primary())
}

func (m *MongoMembership) find(ctx context.Context, filter bson.D, sortKey string) ([]MemberDocument, error) {
	cursor, err := m.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: sortKey, Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []MemberDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
