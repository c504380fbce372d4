package archivers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"tracking-pixel/internal/models"
	"tracking-pixel/internal/shared/blobstorages"
	"tracking-pixel/internal/shared/blobstorages/mocks"
	"tracking-pixel/internal/shared/svcerrors"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var writeTime = time.Date(2024, 5, 1, 12, 30, 45, 123_000_000, time.UTC)

func fixedNow() time.Time { return writeTime }

func archiveEvents() []*models.Event {
	return []*models.Event{
		{Ts: "2024-05-01T12:30:40.000Z", RequestID: "req-1", Method: "GET", Path: "/e", Payload: models.MissingPayload(), Browser: "Chrome", OS: "Windows", Device: "Desktop"},
		{Ts: "2024-05-01T12:30:41.000Z", RequestID: "req-2", Method: "POST", Path: "/e", Payload: models.JSONPayload([]byte(`{"action":"click"}`)), Browser: "Safari", OS: "iOS", Device: "Mobile"},
		{Ts: "2024-05-01T12:30:42.000Z", RequestID: "req-3", Method: "POST", Path: "/e", Payload: models.TextPayload("hello"), Browser: "Firefox", OS: "Linux", Device: "Desktop"},
	}
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	r, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer r.Close()
	plain, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(plain)
}

func TestArchiveKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "events/year=2024/month=05/day=01/hour=12/1714566645123.json.gz", ArchiveKey(writeTime))

	nonUTC := writeTime.In(time.FixedZone("UTC+9", 9*60*60))
	assert.Equal(t, "events/year=2024/month=05/day=01/hour=12/1714566645123.json.gz", ArchiveKey(nonUTC))
}

func TestBatchArchiver_ArchivesThreeRecords(t *testing.T) {
	t.Parallel()

	storage, err := blobstorages.NewLocalBlobStorage(t.TempDir())
	require.NoError(t, err)
	archiver := newBatchArchiver(storage, fixedNow)

	key, err := archiver.Archive(context.Background(), archiveEvents())
	require.NoError(t, err)
	assert.Equal(t, "events/year=2024/month=05/day=01/hour=12/1714566645123.json.gz", key)

	rc, err := storage.Get(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()
	compressed, err := io.ReadAll(rc)
	require.NoError(t, err)

	lines := strings.Split(gunzip(t, compressed), "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		var got models.Event
		require.NoError(t, json.Unmarshal([]byte(line), &got))
		assert.Equal(t, archiveEvents()[i].RequestID, got.RequestID)
	}
	assert.JSONEq(t, `{"ts":"2024-05-01T12:30:41.000Z","requestId":"req-2","method":"POST","path":"/e","ip":"","payload":{"action":"click"},"browser":"Safari","os":"iOS","device":"Mobile"}`, lines[1])
}

func TestBatchArchiver_EmptyBatchWritesNothing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockBlobStorage(ctrl)
	archiver := newBatchArchiver(storage, fixedNow)

	key, err := archiver.Archive(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestBatchArchiver_PutOptions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockBlobStorage(ctrl)
	archiver := newBatchArchiver(storage, fixedNow)

	storage.EXPECT().
		Put(gomock.Any(), "events/year=2024/month=05/day=01/hour=12/1714566645123.json.gz", gomock.Any(), blobstorages.PutOptions{
			AllowOverwrite:  false,
			ContentType:     "application/json",
			ContentEncoding: "gzip",
		}).
		Return(&blobstorages.PutResult{Key: "events/year=2024/month=05/day=01/hour=12/1714566645123.json.gz"}, nil)

	_, err := archiver.Archive(context.Background(), archiveEvents()[:1])
	require.NoError(t, err)
}

func TestBatchArchiver_KeyCollisionMovesToNextMillisecond(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockBlobStorage(ctrl)
	archiver := newBatchArchiver(storage, fixedNow)

	gomock.InOrder(
		storage.EXPECT().
			Put(gomock.Any(), "events/year=2024/month=05/day=01/hour=12/1714566645123.json.gz", gomock.Any(), gomock.Any()).
			Return(nil, blobstorages.ErrBlobAlreadyExists),
		storage.EXPECT().
			Put(gomock.Any(), "events/year=2024/month=05/day=01/hour=12/1714566645124.json.gz", gomock.Any(), gomock.Any()).
			Return(&blobstorages.PutResult{}, nil),
	)

	key, err := archiver.Archive(context.Background(), archiveEvents())
	require.NoError(t, err)
	assert.Equal(t, "events/year=2024/month=05/day=01/hour=12/1714566645124.json.gz", key)
}

func TestBatchArchiver_WriteFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockBlobStorage(ctrl)
	archiver := newBatchArchiver(storage, fixedNow)

	cause := errors.New("access denied")
	storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, cause)

	key, err := archiver.Archive(context.Background(), archiveEvents())
	require.ErrorIs(t, err, cause)
	assert.Empty(t, key)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInternalArchiveWriteFailed, svcErr.Code)
}

func TestBatchArchiver_GivesUpAfterRepeatedCollisions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockBlobStorage(ctrl)
	archiver := newBatchArchiver(storage, fixedNow)

	storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, blobstorages.ErrBlobAlreadyExists).
		Times(maxKeyAttempts)

	_, err := archiver.Archive(context.Background(), archiveEvents())
	require.ErrorIs(t, err, blobstorages.ErrBlobAlreadyExists)
}
