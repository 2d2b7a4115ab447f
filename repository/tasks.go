package repository

import (
	"context"
	"errors"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrTaskNotFound = errors.New("task not found")

type TasksRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves the MongoDB collection for tasks
func GetTasksRepo(client *mongo.Client) *TasksRepo {
	return &TasksRepo{
		MongoCollection: utils.CollectionFor(client, "TASKS_COLLECTION", "tasks"),
	}
}

// Loads the full task collection
func (r *TasksRepo) LoadTasks(ctx context.Context) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		utils.TrackError("database", "task_decode_failed")
		return nil, err
	}
	return tasks, nil
}

// Adds a new task to the collection
func (r *TasksRepo) InsertTask(ctx context.Context, task *model.Task) error {
	timer := utils.TrackDBOperation("insert", "tasks")
	defer timer.ObserveDuration()

	if task.TaskID == "" {
		utils.TrackError("database", "missing_task_id")
		return errors.New("task ID is required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, task); err != nil {
		utils.TrackError("database", "task_creation_failed")
		return err
	}
	return nil
}

// Replaces the stored task matching the given id
func (r *TasksRepo) UpdateTask(ctx context.Context, task *model.Task) error {
	timer := utils.TrackDBOperation("update", "tasks")
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"title":             task.Title,
			"description":       task.Description,
			"estimated_minutes": task.EstimatedMinutes,
			"priority":          task.Priority,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": task.TaskID}, update)
	if err != nil {
		utils.TrackError("database", "task_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "task_not_found")
		return ErrTaskNotFound
	}
	return nil
}

// Removes a task. Daily entries and week schedules referencing the task
// keep their task ids; there is no cascading cleanup.
func (r *TasksRepo) DeleteTask(ctx context.Context, taskID string) error {
	timer := utils.TrackDBOperation("delete", "tasks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": taskID})
	if err != nil {
		utils.TrackError("database", "task_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "task_not_found")
		return ErrTaskNotFound
	}
	return nil
}
