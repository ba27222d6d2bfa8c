package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/muhammadheryan/warung-order/cmd/config"
	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/model"
	"github.com/muhammadheryan/warung-order/utils/errors"
	"github.com/muhammadheryan/warung-order/utils/logger"
	"go.uber.org/zap"
)

const sniffLen = 512

// ObjectStorage stores uploaded files and hands back their public URL.
type ObjectStorage interface {
	PutObject(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
}

type MediaApp interface {
	UploadImage(ctx context.Context, filename string, size int64, r io.Reader) (*model.ImageUploadResponse, error)
}

type mediaAppImpl struct {
	maxBytes int64
	storage  ObjectStorage
}

func NewMediaApp(config *config.Config, storage ObjectStorage) MediaApp {
	return &mediaAppImpl{
		maxBytes: config.Minio.MaxUploadBytes,
		storage:  storage,
	}
}

func (s *mediaAppImpl) UploadImage(ctx context.Context, filename string, size int64, r io.Reader) (*model.ImageUploadResponse, error) {
	if s.storage == nil {
		logger.Error("[UploadImage] object storage is not configured")
		return nil, errors.SetFieldError(constant.ErrConfiguration, "image", "image storage is not configured")
	}
	if size <= 0 {
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "image", "file is empty")
	}
	if s.maxBytes > 0 && size > s.maxBytes {
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "image", fmt.Sprintf("file exceeds %d bytes", s.maxBytes))
	}

	// content type comes from the file head, not from the client
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		logger.Error("[UploadImage] read upload", zap.Error(err))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	head = head[:n]
	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "image", "only image files are accepted")
	}

	objectName := "products/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
	url, err := s.storage.PutObject(ctx, objectName, io.MultiReader(bytes.NewReader(head), r), size, contentType)
	if err != nil {
		logger.Error("[UploadImage] storage.PutObject", zap.String("object", objectName), zap.Error(err))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	logger.Info("[UploadImage] image stored", zap.String("object", objectName), zap.Int64("size", size))
	return &model.ImageUploadResponse{URL: url}, nil
}
