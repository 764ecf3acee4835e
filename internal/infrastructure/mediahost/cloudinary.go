package mediahost

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/utils"
)

// cloudinaryAPI is the part of the Cloudinary upload API the host uses.
type cloudinaryAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// CloudinaryHost stores assets on Cloudinary.
type CloudinaryHost struct {
	api    cloudinaryAPI
	folder string
}

// NewCloudinaryHost creates a Cloudinary backed media host. folder may be empty.
func NewCloudinaryHost(cloudName, apiKey, apiSecret, folder string) (*CloudinaryHost, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary configuration is missing")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return newCloudinaryHost(&cld.Upload, folder), nil
}

func newCloudinaryHost(api cloudinaryAPI, folder string) *CloudinaryHost {
	return &CloudinaryHost{api: api, folder: folder}
}

var _ contract.IMediaHost = (*CloudinaryHost)(nil)

// Upload sends the file to Cloudinary. The returned AssetID is the public id
// without the folder, the same value utils.AssetIDFromURL derives from the URL.
func (h *CloudinaryHost) Upload(ctx context.Context, file contract.MediaFile, kind contract.MediaKind) (*contract.UploadedAsset, error) {
	if file.Body == nil {
		return nil, fmt.Errorf("%w: empty upload", domain.ErrInvalidArgument)
	}
	res, err := h.api.Upload(ctx, file.Body, uploader.UploadParams{
		Folder:       h.folder,
		ResourceType: string(kind),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to upload to cloudinary: %w", domain.ErrUpstream, err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("%w: cloudinary rejected upload: %s", domain.ErrUpstream, res.Error.Message)
	}
	if res.SecureURL == "" {
		return nil, fmt.Errorf("%w: cloudinary returned no url", domain.ErrUpstream)
	}

	asset := &contract.UploadedAsset{
		URL:     res.SecureURL,
		AssetID: utils.AssetIDFromURL(res.SecureURL),
	}
	if kind == contract.MediaKindVideo {
		asset.Duration = durationOf(res.Response)
	}
	return asset, nil
}

// Delete destroys the asset. A missing asset is not an error.
func (h *CloudinaryHost) Delete(ctx context.Context, assetID string, kind contract.MediaKind) error {
	if assetID == "" {
		return fmt.Errorf("%w: asset id is required", domain.ErrInvalidArgument)
	}
	publicID := assetID
	if h.folder != "" {
		publicID = path.Join(h.folder, assetID)
	}
	res, err := h.api.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: string(kind),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to delete %s from cloudinary: %w", domain.ErrUpstream, publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("%w: cloudinary rejected delete of %s: %s", domain.ErrUpstream, publicID, res.Error.Message)
	}
	return nil
}

// durationOf reads the video length from the raw upload response.
func durationOf(raw interface{}) *float64 {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	d, ok := m["duration"].(float64)
	if !ok {
		return nil
	}
	return &d
}
