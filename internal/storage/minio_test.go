package storage

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docdesk/internal/apperr"
	"docdesk/internal/config"
)

func TestNewMinIOValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{name: "missing endpoint", cfg: config.MinIOConfig{}, want: "endpoint is required"},
		{name: "missing credentials", cfg: config.MinIOConfig{Endpoint: "localhost:9000"}, want: "credentials are required"},
		{name: "missing bucket", cfg: config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, want: "bucket is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(tt.cfg)
			assert.Nil(t, s)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestClassify(t *testing.T) {
	err := classify("storage.put", errors.New("dial tcp 127.0.0.1:9000: connect: connection refused"))
	assert.True(t, apperr.IsToolUnavailable(err))

	err = classify("storage.put", minio.ErrorResponse{Code: "NoSuchBucket", BucketName: "docs", StatusCode: 404})
	assert.True(t, apperr.IsToolUnavailable(err))
	assert.Contains(t, err.Error(), "bucket docs does not exist")

	err = classify("storage.put", minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403})
	assert.Equal(t, apperr.KindUnknown, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "storage.put")
}

func TestPresignGetSetsDownloadName(t *testing.T) {
	// A fixed region keeps presigning offline.
	cli, err := minio.New("localhost:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("access", "secret", ""),
		Region: "us-east-1",
	})
	require.NoError(t, err)
	ms := &minioStorage{client: cli, bucket: "docs"}

	raw, err := ms.PresignGet(context.Background(), "Default/4/report final.pdf", time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/docs/Default/4/report%20final.pdf", u.EscapedPath())
	assert.Equal(t, `attachment; filename="report final.pdf"`, u.Query().Get("response-content-disposition"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
