package entity

import "time"

// PublicationState tracks how far a video publication got. A publication that
// stops in a non-terminal state is compensated by the background sweep.
type PublicationState string

const (
	PublicationPending           PublicationState = "pending"
	PublicationVideoUploaded     PublicationState = "video_uploaded"
	PublicationThumbnailUploaded PublicationState = "thumbnail_uploaded"
	PublicationCommitted         PublicationState = "committed"
	PublicationCompensated       PublicationState = "compensated"
	PublicationFailed            PublicationState = "failed"
)

// Terminal reports whether no further work is needed for the publication.
func (s PublicationState) Terminal() bool {
	return s == PublicationCommitted || s == PublicationCompensated
}

// Publication is the recorded state of an upload-and-persist sequence.
type Publication struct {
	ID               string           `bson:"_id" json:"id"`
	OwnerID          string           `bson:"owner_id" json:"owner_id"`
	State            PublicationState `bson:"state" json:"state"`
	VideoAssetID     string           `bson:"video_asset_id,omitempty" json:"video_asset_id,omitempty"`
	ThumbnailAssetID string           `bson:"thumbnail_asset_id,omitempty" json:"thumbnail_asset_id,omitempty"`
	VideoID          string           `bson:"video_id,omitempty" json:"video_id,omitempty"`
	LastError        string           `bson:"last_error,omitempty" json:"last_error,omitempty"`
	CreatedAt        time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time        `bson:"updated_at" json:"updated_at"`
}
