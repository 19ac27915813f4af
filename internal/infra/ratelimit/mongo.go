package ratelimit

import (
	"context"
	"errors"
	"time"

	"qr-loyalty-service/internal/infra"
	"qr-loyalty-service/internal/pkg/clock"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const rateLimitCollection = "scan_rate_limits"

// MongoStore backs the limiter with a shared document collection, the
// preferred choice for multi-instance deployments. Atomicity comes from
// findOneAndUpdate on the key's document.
type MongoStore struct {
	coll  *mongo.Collection
	clock clock.Clock
}

type mongoCounter struct {
	Key       string `bson:"_id"`
	Count     int    `bson:"count"`
	ResetTime int64  `bson:"reset_time"`
}

func NewMongoStore(database *mongo.Database, clk clock.Clock) *MongoStore {
	return &MongoStore{
		coll:  database.Collection(rateLimitCollection),
		clock: clk,
	}
}

func (s *MongoStore) Increment(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	now := s.clock.Now()

	// Fast path: bump inside a live window.
	count, resetAt, err := s.bumpLiveWindow(ctx, key, now)
	if err == nil {
		return count, resetAt, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, time.Time{}, infra.WrapRepoErr("failed to increment rate limit counter", err, mongoErrKind(err))
	}

	// No live window: start a fresh one, replacing an expired document if
	// present. A duplicate-key error means a concurrent request won the
	// race, so fall back to bumping the window it created.
	reset := now.Add(window)
	_, err = s.coll.UpdateOne(ctx,
		bson.M{"_id": key, "reset_time": bson.M{"$lte": now.UnixMilli()}},
		bson.M{"$set": bson.M{"count": 1, "reset_time": reset.UnixMilli()}},
		options.Update().SetUpsert(true))
	if err == nil {
		return 1, reset, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return 0, time.Time{}, infra.WrapRepoErr("failed to start rate limit window", err, mongoErrKind(err))
	}

	count, resetAt, err = s.bumpLiveWindow(ctx, key, now)
	if err != nil {
		return 0, time.Time{}, infra.WrapRepoErr("failed to increment rate limit counter after race", err)
	}
	return count, resetAt, nil
}

func (s *MongoStore) bumpLiveWindow(ctx context.Context, key string, now time.Time) (int, time.Time, error) {
	var doc mongoCounter
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": key, "reset_time": bson.M{"$gt": now.UnixMilli()}},
		bson.M{"$inc": bson.M{"count": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		return 0, time.Time{}, err
	}
	return doc.Count, time.UnixMilli(doc.ResetTime), nil
}

func (s *MongoStore) Peek(ctx context.Context, key string) (int, time.Time, error) {
	var doc mongoCounter
	err := s.coll.FindOne(ctx,
		bson.M{"_id": key, "reset_time": bson.M{"$gt": s.clock.Now().UnixMilli()}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, time.Time{}, nil
		}
		return 0, time.Time{}, infra.WrapRepoErr("failed to read rate limit counter", err, mongoErrKind(err))
	}
	return doc.Count, time.UnixMilli(doc.ResetTime), nil
}

// Connection-level failures are tagged UNAVAILABLE so the fail-open log
// line separates an unreachable store from a rejected statement.
func mongoErrKind(err error) infra.RepositoryErrorKind {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return infra.KindUnavailable
	}
	return infra.KindDBFailure
}

func (s *MongoStore) Reset(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return infra.WrapRepoErr("failed to reset rate limit counter", err)
	}
	return nil
}

func (s *MongoStore) Cleanup(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{"reset_time": bson.M{"$lte": s.clock.Now().UnixMilli()}})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clean up rate limit counters", err)
	}
	return res.DeletedCount, nil
}
