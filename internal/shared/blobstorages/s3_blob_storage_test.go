package blobstorages_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"tracking-pixel/internal/shared/blobstorages"
	"tracking-pixel/internal/shared/blobstorages/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestS3Put_SetsMetadataAndConditionalWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockS3API(ctrl)

	storage, err := blobstorages.NewS3BlobStorage(client, "archive")
	require.NoError(t, err)

	client.EXPECT().
		PutObject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			assert.Equal(t, "archive", aws.ToString(in.Bucket))
			assert.Equal(t, "events/a.json.gz", aws.ToString(in.Key))
			assert.Equal(t, "application/json", aws.ToString(in.ContentType))
			assert.Equal(t, "gzip", aws.ToString(in.ContentEncoding))
			assert.Equal(t, "*", aws.ToString(in.IfNoneMatch))
			assert.Equal(t, int64(7), aws.ToInt64(in.ContentLength))
			body, err := io.ReadAll(in.Body)
			require.NoError(t, err)
			assert.Equal(t, "payload", string(body))
			return &s3.PutObjectOutput{}, nil
		})

	result, err := storage.Put(context.Background(), "events/a.json.gz", strings.NewReader("payload"), blobstorages.PutOptions{
		ContentType:     "application/json",
		ContentEncoding: "gzip",
	})
	require.NoError(t, err)
	assert.Equal(t, "events/a.json.gz", result.Key)
}

func TestS3Put_AllowOverwriteSkipsCondition(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockS3API(ctrl)
	storage, err := blobstorages.NewS3BlobStorage(client, "archive")
	require.NoError(t, err)

	client.EXPECT().
		PutObject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			assert.Nil(t, in.IfNoneMatch)
			assert.Nil(t, in.ContentType)
			return &s3.PutObjectOutput{}, nil
		})

	_, err = storage.Put(context.Background(), "k", strings.NewReader("x"), blobstorages.PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
}

func TestS3Put_PreconditionFailedMapsToAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockS3API(ctrl)
	storage, err := blobstorages.NewS3BlobStorage(client, "archive")
	require.NoError(t, err)

	client.EXPECT().
		PutObject(gomock.Any(), gomock.Any()).
		Return(nil, &smithy.GenericAPIError{Code: "PreconditionFailed", Message: "At least one of the pre-conditions you specified did not hold"})

	_, err = storage.Put(context.Background(), "k", strings.NewReader("x"), blobstorages.PutOptions{})
	assert.ErrorIs(t, err, blobstorages.ErrBlobAlreadyExists)
}

func TestS3Put_ClientErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockS3API(ctrl)
	storage, err := blobstorages.NewS3BlobStorage(client, "archive")
	require.NoError(t, err)

	boom := errors.New("connection reset")
	client.EXPECT().PutObject(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err = storage.Put(context.Background(), "k", strings.NewReader("x"), blobstorages.PutOptions{})
	assert.ErrorIs(t, err, boom)
}

func TestS3Put_InvalidKeyNeverCallsClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockS3API(ctrl)
	storage, err := blobstorages.NewS3BlobStorage(client, "archive")
	require.NoError(t, err)

	_, err = storage.Put(context.Background(), "../escape", strings.NewReader("x"), blobstorages.PutOptions{})
	assert.ErrorIs(t, err, blobstorages.ErrInvalidKey)
}

func TestS3Get_NoSuchKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockS3API(ctrl)
	storage, err := blobstorages.NewS3BlobStorage(client, "archive")
	require.NoError(t, err)

	client.EXPECT().GetObject(gomock.Any(), gomock.Any()).Return(nil, &types.NoSuchKey{})

	_, err = storage.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, blobstorages.ErrBlobNotFound)
}

func TestS3Get_ReturnsBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockS3API(ctrl)
	storage, err := blobstorages.NewS3BlobStorage(client, "archive")
	require.NoError(t, err)

	client.EXPECT().GetObject(gomock.Any(), gomock.Any()).Return(&s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader("hello")),
	}, nil)

	rc, err := storage.Get(context.Background(), "k")
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestNewS3BlobStorage_EmptyBucket(t *testing.T) {
	_, err := blobstorages.NewS3BlobStorage(nil, "")
	assert.ErrorIs(t, err, blobstorages.ErrInvalidBucket)
}
