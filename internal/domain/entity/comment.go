package entity

import "time"

// Comment represents a comment left on a video.
type Comment struct {
	ID        string    `bson:"_id" json:"id"`
	VideoID   string    `bson:"video_id" json:"video_id"`
	OwnerID   string    `bson:"owner_id" json:"owner_id"`
	Content   string    `bson:"content" json:"content"`
	LikeCount int64     `bson:"like_count" json:"like_count"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
