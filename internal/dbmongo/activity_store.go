package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stepsocial/internal/common"
	"stepsocial/internal/dbmysql"
)

const (
	activityCollection = "steps_daily"
	countersCollection = "counters"
)

// activityDoc mirrors dbmysql.DailyActivity. Seq is the numeric id exposed to
// clients; Mongo's own _id stays internal.
type activityDoc struct {
	ObjectID     primitive.ObjectID `bson:"_id,omitempty"`
	Seq          uint64             `bson:"seq"`
	UserID       uint64             `bson:"user_id"`
	StepDate     time.Time          `bson:"step_date"`
	StepCount    int                `bson:"step_count"`
	SourceHint   *string            `bson:"source_hint,omitempty"`
	LastSyncedAt time.Time          `bson:"last_synced_at"`
}

func (d *activityDoc) toModel() dbmysql.DailyActivity {
	return dbmysql.DailyActivity{
		ID:           d.Seq,
		UserID:       d.UserID,
		StepDate:     dbmysql.DateOf(d.StepDate.UTC()),
		StepCount:    d.StepCount,
		SourceHint:   d.SourceHint,
		LastSyncedAt: d.LastSyncedAt.UTC(),
	}
}

// ActivityStore is the document-store counterpart of the SQL activity
// repository. One document per (user_id, step_date), enforced by a unique index.
type ActivityStore struct {
	days     *mongo.Collection
	counters *mongo.Collection
}

func NewActivityStore(ctx context.Context, mc *MongoClient) (*ActivityStore, error) {
	store := &ActivityStore{
		days:     mc.Database.Collection(activityCollection),
		counters: mc.Database.Collection(countersCollection),
	}
	if err := store.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *ActivityStore) ensureIndexes(ctx context.Context) error {
	_, err := s.days.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "step_date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uq_user_day"),
	})
	if err != nil {
		return fmt.Errorf("create steps_daily index: %w", err)
	}
	return nil
}

func (s *ActivityStore) GetHistory(ctx context.Context, userID uint64) ([]dbmysql.DailyActivity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "step_date", Value: 1}})
	cursor, err := s.days.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("load step history for user %d: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var docs []activityDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode step history for user %d: %w", userID, err)
	}

	history := make([]dbmysql.DailyActivity, 0, len(docs))
	for i := range docs {
		history = append(history, docs[i].toModel())
	}
	return history, nil
}

func (s *ActivityStore) GetDay(ctx context.Context, userID uint64, date time.Time) (*dbmysql.DailyActivity, error) {
	day := dbmysql.DateOf(date)

	var doc activityDoc
	err := s.days.FindOne(ctx, bson.M{"user_id": userID, "step_date": day}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: steps for user %d on %s", common.ErrNotFound, userID, dbmysql.DateKey(day))
	}
	if err != nil {
		return nil, fmt.Errorf("load steps for user %d on %s: %w", userID, dbmysql.DateKey(day), err)
	}

	activity := doc.toModel()
	return &activity, nil
}

// UpsertDay writes the day atomically. A new document gets its numeric id
// from the counters collection right after insertion.
func (s *ActivityStore) UpsertDay(ctx context.Context, activity *dbmysql.DailyActivity) (*dbmysql.DailyActivity, error) {
	day := dbmysql.DateOf(activity.StepDate)
	filter := bson.M{"user_id": activity.UserID, "step_date": day}

	set := bson.M{
		"step_count":     activity.StepCount,
		"last_synced_at": activity.LastSyncedAt.UTC(),
	}
	if activity.SourceHint != nil {
		set["source_hint"] = *activity.SourceHint
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"user_id": activity.UserID, "step_date": day, "seq": uint64(0)},
	}

	res, err := s.days.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// Lost an insert race on the unique index; the row exists now.
		res, err = s.days.UpdateOne(ctx, filter, bson.M{"$set": set})
	}
	if err != nil {
		return nil, fmt.Errorf("upsert steps for user %d on %s: %w", activity.UserID, dbmysql.DateKey(day), err)
	}

	if res.UpsertedID != nil {
		seq, err := s.nextSeq(ctx, activityCollection)
		if err != nil {
			return nil, err
		}
		if _, err := s.days.UpdateByID(ctx, res.UpsertedID, bson.M{"$set": bson.M{"seq": seq}}); err != nil {
			return nil, fmt.Errorf("assign id to steps for user %d: %w", activity.UserID, err)
		}
	}

	return s.GetDay(ctx, activity.UserID, day)
}

func (s *ActivityStore) nextSeq(ctx context.Context, name string) (uint64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}
	return uint64(counter.Seq), nil
}
