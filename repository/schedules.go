package repository

import (
	"context"
	"errors"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrDuplicateWeekSchedule = errors.New("a schedule for that week already exists")

type SchedulesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves the MongoDB collection for week schedules
func GetSchedulesRepo(client *mongo.Client) *SchedulesRepo {
	return &SchedulesRepo{
		MongoCollection: utils.CollectionFor(client, "SCHEDULES_COLLECTION", "week_schedules"),
	}
}

// Loads the full week schedule collection
func (r *SchedulesRepo) LoadSchedules(ctx context.Context) ([]*model.WeekSchedule, error) {
	timer := utils.TrackDBOperation("find", "week_schedules")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.TrackError("database", "schedule_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []*model.WeekSchedule
	if err = cursor.All(ctx, &schedules); err != nil {
		utils.TrackError("database", "schedule_decode_failed")
		return nil, err
	}
	return schedules, nil
}

// SaveSchedule replaces the stored schedule with the same id, or appends
// the schedule as new. A second schedule for an already-stored
// week_start_date under a different id is rejected, keeping one schedule
// per week.
func (r *SchedulesRepo) SaveSchedule(ctx context.Context, schedule *model.WeekSchedule) error {
	timer := utils.TrackDBOperation("upsert", "week_schedules")
	defer timer.ObserveDuration()

	if schedule.ScheduleID == "" {
		utils.TrackError("database", "missing_schedule_id")
		return errors.New("schedule ID is required")
	}

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"week_start_date": schedule.WeekStartDate,
		"_id":             bson.M{"$ne": schedule.ScheduleID},
	})
	if err != nil {
		utils.TrackError("database", "schedule_count_failed")
		return err
	}
	if count > 0 {
		utils.TrackError("database", "duplicate_week_schedule")
		return ErrDuplicateWeekSchedule
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": schedule.ScheduleID}, schedule, opts); err != nil {
		utils.TrackError("database", "schedule_save_failed")
		return err
	}
	return nil
}
