package model

// NotificationConfig is the process-wide daily reminder configuration.
// Time is a 24h "HH:mm" clock string.
type NotificationConfig struct {
	Enabled   bool   `bson:"enabled" json:"enabled"`
	Time      string `bson:"time" json:"time"`
	Sound     bool   `bson:"sound" json:"sound"`
	Vibration bool   `bson:"vibration" json:"vibration"`
}

// DefaultNotificationConfig matches the defaults applied when nothing has
// been persisted yet.
func DefaultNotificationConfig() *NotificationConfig {
	return &NotificationConfig{
		Enabled:   true,
		Time:      "20:00",
		Sound:     true,
		Vibration: true,
	}
}
