package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/muhammadheryan/hoardspace/cmd/config"
	"github.com/muhammadheryan/hoardspace/model"
)

// ErrNotConfigured is returned by NewUploader when any credential is missing.
var ErrNotConfigured = errors.New("cloudinary credentials not configured")

type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (*model.UploadResponse, error)
}

type cloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewUploader(cfg *config.Config) (Uploader, error) {
	c := cfg.Cloudinary
	if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" {
		return nil, ErrNotConfigured
	}

	cld, err := cloudinary.NewFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary client: %w", err)
	}
	return &cloudinaryUploader{cld: cld, folder: cfg.Cloudinary.Folder}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, file io.Reader, filename string) (*model.UploadResponse, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       u.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload %s: %w", filename, err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload %s: %s", filename, resp.Error.Message)
	}

	return &model.UploadResponse{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}, nil
}
