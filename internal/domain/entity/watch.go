package entity

import "time"

// WatchEntry records that a user opened a video. There is one entry per
// (user, video); watching again moves it to the front of the history.
type WatchEntry struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	VideoID   string    `bson:"video_id" json:"video_id"`
	WatchedAt time.Time `bson:"watched_at" json:"watched_at"`
}

func WatchEntryID(userID, videoID string) string {
	return userID + ":" + videoID
}
