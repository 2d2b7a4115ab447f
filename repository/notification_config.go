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

// The config is a singleton document stored under a fixed id.
const notificationConfigID = "notification_config"

type NotificationConfigRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves the MongoDB collection holding the notification config
func GetNotificationConfigRepo(client *mongo.Client) *NotificationConfigRepo {
	return &NotificationConfigRepo{
		MongoCollection: utils.CollectionFor(client, "CONFIG_COLLECTION", "notification_config"),
	}
}

// Loads the stored config, or the defaults when nothing is stored yet
func (r *NotificationConfigRepo) LoadNotificationConfig(ctx context.Context) (*model.NotificationConfig, error) {
	timer := utils.TrackDBOperation("find", "notification_config")
	defer timer.ObserveDuration()

	var doc struct {
		Config model.NotificationConfig `bson:"config"`
	}
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": notificationConfigID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.DefaultNotificationConfig(), nil
	}
	if err != nil {
		utils.TrackError("database", "config_fetch_failed")
		return nil, err
	}
	return &doc.Config, nil
}

// Replaces the stored config
func (r *NotificationConfigRepo) SaveNotificationConfig(ctx context.Context, cfg *model.NotificationConfig) error {
	timer := utils.TrackDBOperation("upsert", "notification_config")
	defer timer.ObserveDuration()

	doc := bson.M{
		"_id":    notificationConfigID,
		"config": cfg,
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": notificationConfigID}, doc, opts); err != nil {
		utils.TrackError("database", "config_save_failed")
		return err
	}
	return nil
}
