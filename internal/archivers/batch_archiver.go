package archivers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"tracking-pixel/internal/models"
	"tracking-pixel/internal/shared/blobstorages"
	"tracking-pixel/internal/shared/loggers"
	"tracking-pixel/internal/shared/metrics"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
)

const (
	contentTypeJSON     = "application/json"
	contentEncodingGzip = "gzip"

	// maxKeyAttempts bounds how many millisecond suffixes are tried when a key is taken.
	maxKeyAttempts = 5
)

// BatchArchiver writes one immutable, gzip-compressed NDJSON blob per stream batch.
//
//go:generate mockgen -source=batch_archiver.go -destination=./mocks/batch_archiver_mock.go -package=mocks
type BatchArchiver interface {
	// Archive stores the batch and returns the key it was written under.
	// An empty batch writes nothing and returns an empty key.
	Archive(ctx context.Context, events []*models.Event) (string, error)
}

type batchArchiver struct {
	storage blobstorages.BlobStorage
	now     func() time.Time
}

func NewBatchArchiver(storage blobstorages.BlobStorage) BatchArchiver {
	return newBatchArchiver(storage, time.Now)
}

func newBatchArchiver(storage blobstorages.BlobStorage, now func() time.Time) *batchArchiver {
	return &batchArchiver{storage: storage, now: now}
}

func (a *batchArchiver) Archive(ctx context.Context, events []*models.Event) (string, error) {
	if len(events) == 0 {
		return "", nil
	}

	body, err := encodeBatch(events)
	if err != nil {
		metricBatchArchivedTotal.WithLabelValues(metrics.ValueFailure).Inc()
		return "", errInternalArchiveEncodeFailed(err)
	}

	key, err := a.put(ctx, body)
	metricBatchArchivedTotal.WithLabelValues(metrics.ResultLabel(err)).Inc()
	if err != nil {
		return "", err
	}

	metricRecordArchivedTotal.Add(float64(len(events)))
	loggers.Ctx(ctx).Info().
		Str(loggers.FieldArchiveKey, key).
		Int(loggers.FieldBatchSize, len(events)).
		Msg("batch archived")
	return key, nil
}

// put writes body under the key for the current wall-clock time, moving to the next
// millisecond when a blob already exists under that key.
func (a *batchArchiver) put(ctx context.Context, body []byte) (string, error) {
	writeTime := a.now().UTC()
	var key string
	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		key = ArchiveKey(writeTime.Add(time.Duration(attempt) * time.Millisecond))
		_, err := a.storage.Put(ctx, key, bytes.NewReader(body), blobstorages.PutOptions{
			AllowOverwrite:  false,
			ContentType:     contentTypeJSON,
			ContentEncoding: contentEncodingGzip,
		})
		if err == nil {
			return key, nil
		}
		if !errors.Is(err, blobstorages.ErrBlobAlreadyExists) {
			return "", errInternalArchiveWriteFailed(key, err)
		}
		loggers.Ctx(ctx).Warn().Str(loggers.FieldArchiveKey, key).Msg("archive key taken, retrying with next millisecond")
	}
	return "", errInternalArchiveWriteFailed(key, blobstorages.ErrBlobAlreadyExists)
}

// ArchiveKey returns the hour-partitioned key of a blob written at t.
func ArchiveKey(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("events/year=%04d/month=%02d/day=%02d/hour=%02d/%d.json.gz",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.UnixMilli())
}

// encodeBatch serializes one JSON document per event, joined by newlines, and gzips the result.
func encodeBatch(events []*models.Event) ([]byte, error) {
	var buf bytes.Buffer
	gz, err := gzip.NewWriterLevel(&buf, gzip.BestSpeed)
	if err != nil {
		return nil, err
	}

	for i, event := range events {
		line, err := json.Marshal(event)
		if err != nil {
			_ = gz.Close()
			return nil, err
		}
		if i > 0 {
			if _, err := gz.Write([]byte{'\n'}); err != nil {
				_ = gz.Close()
				return nil, err
			}
		}
		if _, err := gz.Write(line); err != nil {
			_ = gz.Close()
			return nil, err
		}
	}

	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
