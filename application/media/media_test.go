package media_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	appmedia "github.com/muhammadheryan/warung-order/application/media"
	"github.com/muhammadheryan/warung-order/cmd/config"
	"github.com/muhammadheryan/warung-order/constant"
	mediamocks "github.com/muhammadheryan/warung-order/mocks/application/media"
	cerr "github.com/muhammadheryan/warung-order/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngFile = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

func testConfig() *config.Config {
	return &config.Config{Minio: config.MinioConfig{MaxUploadBytes: 1024}}
}

func TestMediaApp_UploadImage(t *testing.T) {
	t.Run("success: png is stored under a generated name", func(t *testing.T) {
		storage := mediamocks.NewObjectStorage(t)
		var stored []byte
		storage.
			On("PutObject", mock.Anything, mock.MatchedBy(func(name string) bool {
				return strings.HasPrefix(name, "products/") && strings.HasSuffix(name, ".png")
			}), mock.Anything, int64(len(pngFile)), "image/png").
			Run(func(args mock.Arguments) {
				stored, _ = io.ReadAll(args.Get(2).(io.Reader))
			}).
			Return("http://cdn.example/product-images/products/x.png", nil).
			Once()

		app := appmedia.NewMediaApp(testConfig(), storage)
		got, err := app.UploadImage(context.Background(), "Nasi Goreng.PNG", int64(len(pngFile)), bytes.NewReader(pngFile))
		require.NoError(t, err)
		assert.Equal(t, "http://cdn.example/product-images/products/x.png", got.URL)
		assert.Equal(t, pngFile, stored, "sniffed bytes must still reach storage")
	})

	tests := []struct {
		name    string
		size    int64
		body    []byte
		errType constant.ErrorType
	}{
		{name: "error: not an image", size: 11, body: []byte("hello world"), errType: constant.ErrInvalidRequest},
		{name: "error: too large", size: 4096, body: pngFile, errType: constant.ErrInvalidRequest},
		{name: "error: empty", size: 0, body: nil, errType: constant.ErrInvalidRequest},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := appmedia.NewMediaApp(testConfig(), mediamocks.NewObjectStorage(t))
			_, err := app.UploadImage(context.Background(), "file.png", tt.size, bytes.NewReader(tt.body))
			require.Error(t, err)
			ce, ok := cerr.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.errType, ce.ErrorType())
			assert.Equal(t, "image", ce.Field())
		})
	}

	t.Run("error: storage failure", func(t *testing.T) {
		storage := mediamocks.NewObjectStorage(t)
		storage.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("bucket gone")).Once()

		app := appmedia.NewMediaApp(testConfig(), storage)
		_, err := app.UploadImage(context.Background(), "a.png", int64(len(pngFile)), bytes.NewReader(pngFile))
		assert.True(t, cerr.Is(err, constant.ErrInternal))
	})

	t.Run("error: storage not configured", func(t *testing.T) {
		app := appmedia.NewMediaApp(testConfig(), nil)
		_, err := app.UploadImage(context.Background(), "a.png", int64(len(pngFile)), bytes.NewReader(pngFile))
		assert.True(t, cerr.Is(err, constant.ErrConfiguration))
	})
}
