package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User represents a registered user. Every user owns a channel.
type User struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Username        string    `bson:"username" json:"username"`
	Email           string    `bson:"email" json:"email"`
	FullName        string    `bson:"full_name" json:"full_name"`
	PasswordHash    string    `bson:"password_hash" json:"-"`
	AvatarURL       *string   `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	AvatarAssetID   string    `bson:"avatar_asset_id,omitempty" json:"-"`
	CoverImageURL   *string   `bson:"cover_image_url,omitempty" json:"cover_image_url,omitempty"`
	CoverAssetID    string    `bson:"cover_asset_id,omitempty" json:"-"`
	SubscriberCount int64     `bson:"subscriber_count" json:"subscriber_count"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// UserUpdate lists the profile fields to change. Nil fields are left alone.
type UserUpdate struct {
	FullName      *string
	Email         *string
	AvatarURL     *string
	AvatarAssetID *string
	CoverImageURL *string
	CoverAssetID  *string
	PasswordHash  *string
}

// Claims are the verified contents of an access token.
type Claims struct {
	UserID string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}
