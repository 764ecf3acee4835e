package entity

import (
	"time"
)

// Video represents an uploaded video and its assets on the media host.
type Video struct {
	ID               string    `bson:"_id" json:"id"`
	OwnerID          string    `bson:"owner_id" json:"owner_id"`
	Title            string    `bson:"title" json:"title"`
	Description      string    `bson:"description" json:"description"`
	VideoURL         string    `bson:"video_url" json:"video_url"`
	VideoAssetID     string    `bson:"video_asset_id" json:"video_asset_id"`
	ThumbnailURL     string    `bson:"thumbnail_url" json:"thumbnail_url"`
	ThumbnailAssetID string    `bson:"thumbnail_asset_id" json:"thumbnail_asset_id"`
	Duration         *float64  `bson:"duration,omitempty" json:"duration,omitempty"`
	Views            int64     `bson:"views" json:"views"`
	LikeCount        int64     `bson:"like_count" json:"like_count"`
	IsPublished      bool      `bson:"is_published" json:"is_published"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

// VideoUpdate holds optional fields for a partial video update.
type VideoUpdate struct {
	Title        *string
	Description  *string
	ThumbnailURL *string
	ThumbnailID  *string
}
