package mediahost

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
)

// s3API is the subset of the S3 client the host calls.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Options configures an S3 compatible bucket (AWS, R2, MinIO).
type S3Options struct {
	AccessKey     string
	SecretKey     string
	Bucket        string
	Region        string
	Endpoint      string
	PublicBaseURL string
}

// S3Host stores assets as objects keyed <kind folder>/<asset id><ext>.
type S3Host struct {
	client  s3API
	bucket  string
	baseURL string
	ids     contract.IUUIDGenerator
}

// NewS3Host builds an S3 client with static credentials and an optional custom endpoint.
func NewS3Host(ctx context.Context, opts S3Options, ids contract.IUUIDGenerator) (*S3Host, error) {
	if opts.AccessKey == "" || opts.SecretKey == "" || opts.Bucket == "" || opts.PublicBaseURL == "" {
		return nil, errors.New("s3 configuration is missing")
	}
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	endpoint := strings.TrimSuffix(opts.Endpoint, "/")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3Host(client, opts.Bucket, opts.PublicBaseURL, ids), nil
}

func newS3Host(client s3API, bucket, baseURL string, ids contract.IUUIDGenerator) *S3Host {
	return &S3Host{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		ids:     ids,
	}
}

var _ contract.IMediaHost = (*S3Host)(nil)

func kindFolder(kind contract.MediaKind) string {
	if kind == contract.MediaKindVideo {
		return "videos"
	}
	return "images"
}

// Upload puts the object publicly readable under a fresh id. Object storage
// cannot probe media, so Duration is always nil.
func (h *S3Host) Upload(ctx context.Context, file contract.MediaFile, kind contract.MediaKind) (*contract.UploadedAsset, error) {
	if file.Body == nil {
		return nil, fmt.Errorf("%w: empty upload", domain.ErrInvalidArgument)
	}
	assetID := h.ids.NewUUID()
	key := kindFolder(kind) + "/" + assetID + strings.ToLower(path.Ext(file.Name))

	input := &s3.PutObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(key),
		Body:   file.Body,
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}
	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}
	if _, err := h.client.PutObject(ctx, input); err != nil {
		return nil, fmt.Errorf("%w: failed to put object %s: %w", domain.ErrUpstream, key, err)
	}
	return &contract.UploadedAsset{
		URL:     h.baseURL + "/" + key,
		AssetID: assetID,
	}, nil
}

// Delete removes every object stored for assetID. The extension is not known
// from the id alone, so the key is found by prefix.
func (h *S3Host) Delete(ctx context.Context, assetID string, kind contract.MediaKind) error {
	if assetID == "" {
		return fmt.Errorf("%w: asset id is required", domain.ErrInvalidArgument)
	}
	stem := kindFolder(kind) + "/" + assetID
	out, err := h.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(h.bucket),
		Prefix: aws.String(stem),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to list objects for %s: %w", domain.ErrUpstream, stem, err)
	}
	for _, obj := range out.Contents {
		key := aws.ToString(obj.Key)
		if key != stem && !strings.HasPrefix(key, stem+".") {
			continue
		}
		if _, err := h.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(h.bucket),
			Key:    aws.String(key),
		}); err != nil {
			return fmt.Errorf("%w: failed to delete object %s: %w", domain.ErrUpstream, key, err)
		}
	}
	return nil
}
