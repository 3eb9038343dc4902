package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sparkmeet/dating-api/internal/core/domain"
)

const (
	clientsCollection  = "clients"
	likesCollection    = "likes"
	countersCollection = "counters"
)

type ClientRepository struct {
	clients  *mongo.Collection
	likes    *mongo.Collection
	counters *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{
		clients:  db.Collection(clientsCollection),
		likes:    db.Collection(likesCollection),
		counters: db.Collection(countersCollection),
	}
}

type mongoLocation struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

type mongoClient struct {
	ID           int64          `bson:"_id"`
	FirstName    string         `bson:"first_name"`
	LastName     string         `bson:"last_name"`
	Gender       string         `bson:"gender"`
	Email        string         `bson:"email"`
	PasswordHash string         `bson:"password_hash"`
	Avatar       string         `bson:"avatar,omitempty"`
	Location     *mongoLocation `bson:"location,omitempty"`
	CreatedAt    time.Time      `bson:"created_at"`
}

type mongoLike struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ClientID  int64              `bson:"client_id"`
	TargetID  int64              `bson:"target_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

// EnsureIndexes creates the unique email index on clients and the query
// indexes on likes. Call once at startup.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.clients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("clients email index: %w", err)
	}

	_, err = r.likes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "target_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("likes indexes: %w", err)
	}
	return nil
}

// nextID allocates the next sequential client id from the counters collection.
func (r *ClientRepository) nextID(ctx context.Context) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": clientsCollection},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("allocate client id: %w", err)
	}
	return doc.Seq, nil
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	doc := mongoClient{
		ID:           id,
		FirstName:    client.FirstName,
		LastName:     client.LastName,
		Gender:       string(client.Gender),
		Email:        client.Email,
		PasswordHash: client.PasswordHash,
		Avatar:       client.Avatar,
		CreatedAt:    client.CreatedAt,
	}
	if client.Location != nil {
		doc.Location = &mongoLocation{Latitude: client.Location.Latitude, Longitude: client.Location.Longitude}
	}

	if _, err := r.clients.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}

	created := *client
	created.ID = id
	return &created, nil
}

func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ClientRepository) findOne(ctx context.Context, filter bson.M) (*domain.Client, error) {
	var mc mongoClient
	if err := r.clients.FindOne(ctx, filter).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *ClientRepository) List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error) {
	cursor, err := r.clients.Find(ctx, buildListQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Client
	for cursor.Next(ctx) {
		var mc mongoClient
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		out = append(out, *mc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return out, nil
}

// buildListQuery translates a ClientFilter into a Mongo query. Name filters
// become case-insensitive substring regexes with the input quoted, so user
// text can never inject regex syntax.
func buildListQuery(filter domain.ClientFilter) bson.M {
	query := bson.M{}
	if filter.Gender != "" {
		query["gender"] = string(filter.Gender)
	}
	if filter.FirstName != "" {
		query["first_name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.FirstName), Options: "i"}
	}
	if filter.LastName != "" {
		query["last_name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.LastName), Options: "i"}
	}
	if !filter.CreatedAfter.IsZero() {
		query["created_at"] = bson.M{"$gte": filter.CreatedAfter}
	}
	return query
}

func (r *ClientRepository) ExistsLike(ctx context.Context, clientID, targetID int64) (bool, error) {
	err := r.likes.FindOne(ctx, bson.M{"client_id": clientID, "target_id": targetID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find like: %w", err)
	}
	return true, nil
}

func (r *ClientRepository) RecordLike(ctx context.Context, clientID, targetID int64) error {
	doc := mongoLike{
		ClientID:  clientID,
		TargetID:  targetID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.likes.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (r *ClientRepository) CountLikesSince(ctx context.Context, clientID int64, since time.Time) (int64, error) {
	count, err := r.likes.CountDocuments(ctx, bson.M{
		"client_id":  clientID,
		"created_at": bson.M{"$gte": since},
	})
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}

func (mc *mongoClient) toDomain() *domain.Client {
	c := &domain.Client{
		ID:           mc.ID,
		FirstName:    mc.FirstName,
		LastName:     mc.LastName,
		Gender:       domain.Gender(mc.Gender),
		Email:        mc.Email,
		PasswordHash: mc.PasswordHash,
		Avatar:       mc.Avatar,
		CreatedAt:    mc.CreatedAt.UTC(),
	}
	if mc.Location != nil {
		c.Location = &domain.Location{Latitude: mc.Location.Latitude, Longitude: mc.Location.Longitude}
	}
	return c
}
