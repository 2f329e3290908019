package upload

import (
	"context"
	"io"

	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/model"
	"github.com/muhammadheryan/hoardspace/thirdparty/cloudinary"
	"github.com/muhammadheryan/hoardspace/utils/errors"
	"github.com/muhammadheryan/hoardspace/utils/logger"
	"go.uber.org/zap"
)

// MaxFileSize is the largest accepted upload.
const MaxFileSize = 10 << 20

type UploadApp interface {
	Upload(ctx context.Context, file io.Reader, filename string) (*model.UploadResponse, error)
}

type uploadAppImpl struct {
	uploader cloudinary.Uploader
}

// NewUploadApp accepts a nil uploader when storage credentials are absent.
func NewUploadApp(uploader cloudinary.Uploader) UploadApp {
	return &uploadAppImpl{uploader: uploader}
}

func (s *uploadAppImpl) Upload(ctx context.Context, file io.Reader, filename string) (*model.UploadResponse, error) {
	if s.uploader == nil {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrUploadFailed, "Upload service not configured")
	}

	resp, err := s.uploader.Upload(ctx, file, filename)
	if err != nil {
		logger.Error("[Upload] err uploader.Upload", zap.String("filename", filename), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrUploadFailed)
	}
	return resp, nil
}
