package blobstorages

import (
	"context"
	"errors"
	"io"
)

var (
	ErrBlobNotFound      = errors.New("blob not found")
	ErrBlobAlreadyExists = errors.New("blob already exists")
	ErrInvalidKey        = errors.New("invalid blob key")
	ErrInvalidRootDir    = errors.New("invalid root directory")
	ErrInvalidBucket     = errors.New("invalid bucket")
)

type PutResult struct {
	Key string
}

type PutOptions struct {
	AllowOverwrite  bool
	ContentType     string
	ContentEncoding string
}

// BlobStorage stores immutable archive objects under slash-separated keys.
//
//go:generate mockgen -source=blob_storage.go -destination=./mocks/blob_storage_mock.go -package=mocks
type BlobStorage interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}
