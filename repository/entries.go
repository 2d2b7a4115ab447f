package repository

import (
	"context"
	"errors"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrEntryNotFound = errors.New("daily entry not found")

type EntriesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves the MongoDB collection for daily task entries
func GetEntriesRepo(client *mongo.Client) *EntriesRepo {
	return &EntriesRepo{
		MongoCollection: utils.CollectionFor(client, "ENTRIES_COLLECTION", "daily_entries"),
	}
}

// Loads the full daily entry collection
func (r *EntriesRepo) LoadEntries(ctx context.Context) ([]*model.DailyTaskEntry, error) {
	timer := utils.TrackDBOperation("find", "daily_entries")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.TrackError("database", "entry_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.DailyTaskEntry
	if err = cursor.All(ctx, &entries); err != nil {
		utils.TrackError("database", "entry_decode_failed")
		return nil, err
	}
	return entries, nil
}

// Loads the entries whose date matches the given YYYY-MM-DD string
func (r *EntriesRepo) EntriesForDate(ctx context.Context, date string) ([]*model.DailyTaskEntry, error) {
	timer := utils.TrackDBOperation("find", "daily_entries")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"date": date})
	if err != nil {
		utils.TrackError("database", "entry_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.DailyTaskEntry
	if err = cursor.All(ctx, &entries); err != nil {
		utils.TrackError("database", "entry_decode_failed")
		return nil, err
	}
	return entries, nil
}

// Adds a new daily entry
func (r *EntriesRepo) InsertEntry(ctx context.Context, entry *model.DailyTaskEntry) error {
	timer := utils.TrackDBOperation("insert", "daily_entries")
	defer timer.ObserveDuration()

	if entry.EntryID == "" {
		utils.TrackError("database", "missing_entry_id")
		return errors.New("entry ID is required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, entry); err != nil {
		utils.TrackError("database", "entry_creation_failed")
		return err
	}
	return nil
}

// Persists an entry's status, completion timestamp and notes. completed_at
// is unset whenever the entry carries none, so a status moving away from
// completed clears the old timestamp in the store too.
func (r *EntriesRepo) UpdateEntry(ctx context.Context, entry *model.DailyTaskEntry) error {
	timer := utils.TrackDBOperation("update", "daily_entries")
	defer timer.ObserveDuration()

	set := bson.M{
		"status": entry.Status,
		"notes":  entry.Notes,
	}
	update := bson.M{"$set": set}
	if entry.CompletedAt != nil {
		set["completed_at"] = entry.CompletedAt
	} else {
		update["$unset"] = bson.M{"completed_at": ""}
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": entry.EntryID}, update)
	if err != nil {
		utils.TrackError("database", "entry_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "entry_not_found")
		return ErrEntryNotFound
	}
	return nil
}
