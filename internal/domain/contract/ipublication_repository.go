package contract

import (
	"context"
	"time"

	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
)

// PublicationUpdate moves a publication to State and records any non-empty field.
type PublicationUpdate struct {
	State            entity.PublicationState
	VideoAssetID     string
	ThumbnailAssetID string
	VideoID          string
	LastError        string
}

type IPublicationRepository interface {
	Create(ctx context.Context, publication *entity.Publication) error
	Update(ctx context.Context, publicationID string, update PublicationUpdate) error
	// ListStale returns non-terminal publications last touched before cutoff.
	ListStale(ctx context.Context, cutoff time.Time, limit int64) ([]entity.Publication, error)
}
