package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travelapi/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoCollectionName = "resource_records"
	mongoCountersName   = "resource_counters"
)

// mongoListSort orders by the per-kind sequence; ObjectIDs are only
// second-ordered across writers.
var mongoListSort = bson.D{{Key: "seq", Value: 1}, {Key: "_id", Value: 1}}

// mongoRecord stores the payload as JSON text so open-ended client fields
// round-trip without bson type coercion.
type mongoRecord struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty"`
	Kind      string             `bson:"kind"`
	RecordID  string             `bson:"recordId"`
	Payload   string             `bson:"payload"`
	Seq       int64              `bson:"seq"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// MongoStore keeps every kind in one collection. Counters holds one
// document per kind whose seq is advanced with $inc on every insert.
type MongoStore struct {
	Client     *mongo.Client
	Collection *mongo.Collection
	Counters   *mongo.Collection
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	db := client.Database(database)
	return &MongoStore{
		Client:     client,
		Collection: db.Collection(mongoCollectionName),
		Counters:   db.Collection(mongoCountersName),
	}
}

// reserveSeq advances the kind's counter by n and returns the first reserved value.
func (s *MongoStore) reserveSeq(ctx context.Context, kind domain.ResourceKind, n int) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.Counters.FindOneAndUpdate(ctx,
		bson.M{"_id": string(kind)},
		bson.M{"$inc": bson.M{"seq": int64(n)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, domain.InternalError{Op: fmt.Sprintf("reserve %s seq", kind), Err: err}
	}
	return counter.Seq - int64(n) + 1, nil
}

func (s *MongoStore) Init(ctx context.Context, seed map[domain.ResourceKind][]domain.Record) error {
	_, err := s.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "kind", Value: 1}, {Key: "recordId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "kind", Value: 1}, {Key: "seq", Value: 1}},
		},
	})
	if err != nil {
		return domain.InternalError{Op: "create resource indexes", Err: err}
	}

	for _, kind := range sortedKinds(seed) {
		count, err := s.Collection.CountDocuments(ctx, bson.M{"kind": string(kind)})
		if err != nil {
			return domain.InternalError{Op: fmt.Sprintf("count %s", kind), Err: err}
		}
		if count > 0 || len(seed[kind]) == 0 {
			continue
		}

		first, err := s.reserveSeq(ctx, kind, len(seed[kind]))
		if err != nil {
			return err
		}
		docs, err := seedDocs(kind, seed[kind], first)
		if err != nil {
			return err
		}
		if _, err := s.Collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
			return mapMongoError(kind, "", fmt.Sprintf("seed %s", kind), err)
		}
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, nil)
}

func (s *MongoStore) List(ctx context.Context, kind domain.ResourceKind) ([]domain.Record, error) {
	opts := options.Find().SetSort(mongoListSort)
	cursor, err := s.Collection.Find(ctx, bson.M{"kind": string(kind)}, opts)
	if err != nil {
		return nil, domain.InternalError{Op: fmt.Sprintf("list %s", kind), Err: err}
	}
	defer cursor.Close(ctx)

	var docs []mongoRecord
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domain.InternalError{Op: fmt.Sprintf("decode %s", kind), Err: err}
	}

	out := make([]domain.Record, 0, len(docs))
	for _, doc := range docs {
		rec, err := decodeStored(kind, []byte(doc.Payload))
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *MongoStore) Get(ctx context.Context, kind domain.ResourceKind, id string) (domain.Record, error) {
	var doc mongoRecord
	err := s.Collection.FindOne(ctx, bson.M{"kind": string(kind), "recordId": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFoundError{Kind: kind, ID: id}
		}
		return nil, domain.InternalError{Op: fmt.Sprintf("get %s", kind), Err: err}
	}
	return decodeStored(kind, []byte(doc.Payload))
}

func (s *MongoStore) Create(ctx context.Context, kind domain.ResourceKind, rec domain.Record) (domain.Record, error) {
	payload, err := encodeRecord(rec)
	if err != nil {
		return nil, err
	}
	seq, err := s.reserveSeq(ctx, kind, 1)
	if err != nil {
		return nil, err
	}
	doc := newMongoRecord(kind, rec.ID(), payload, seq)
	if _, err := s.Collection.InsertOne(ctx, doc); err != nil {
		return nil, mapMongoError(kind, rec.ID(), fmt.Sprintf("create %s", kind), err)
	}
	return rec.Clone(), nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Client.Disconnect(ctx)
}

func newMongoRecord(kind domain.ResourceKind, id string, payload []byte, seq int64) mongoRecord {
	return mongoRecord{
		Kind:      string(kind),
		RecordID:  id,
		Payload:   string(payload),
		Seq:       seq,
		CreatedAt: time.Now().UTC(),
	}
}

// seedDocs numbers records consecutively from first, in seed order.
func seedDocs(kind domain.ResourceKind, records []domain.Record, first int64) ([]interface{}, error) {
	docs := make([]interface{}, 0, len(records))
	for i, rec := range records {
		payload, err := encodeRecord(rec)
		if err != nil {
			return nil, err
		}
		docs = append(docs, newMongoRecord(kind, rec.ID(), payload, first+int64(i)))
	}
	return docs, nil
}

func mapMongoError(kind domain.ResourceKind, id, op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return domain.ConflictError{Kind: kind, ID: id, Err: err}
	}
	return domain.InternalError{Op: op, Err: err}
}
