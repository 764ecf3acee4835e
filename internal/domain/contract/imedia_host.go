package contract

import (
	"context"
	"io"
)

// MediaKind selects the resource type on the media host.
type MediaKind string

const (
	MediaKindVideo MediaKind = "video"
	MediaKindImage MediaKind = "image"
)

// MediaFile is an incoming upload.
type MediaFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.ReadSeeker
}

// UploadedAsset is what the media host returns for a stored file.
type UploadedAsset struct {
	URL      string
	AssetID  string
	Duration *float64
}

// IMediaHost stores binary assets.
type IMediaHost interface {
	Upload(ctx context.Context, file MediaFile, kind MediaKind) (*UploadedAsset, error)
	Delete(ctx context.Context, assetID string, kind MediaKind) error
}
