package backup

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahathirrr/portfolio/pkg/logger"
)

type recordingUploader struct {
	body     []byte
	folder   string
	publicID string
	err      error
}

func (u *recordingUploader) Upload(_ context.Context, file io.Reader, folder, publicID string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	u.body, u.folder, u.publicID = data, folder, publicID
	return "https://cdn.example.com/" + folder + "/" + publicID, nil
}

func newTestBackup(up *recordingUploader, dump Dumper) *BackupUseCase {
	uc := NewBackupUseCase("postgres://localhost/portfolio", "backups", up, logger.NewNop())
	uc.dump = dump
	uc.now = func() time.Time { return time.Date(2024, 3, 5, 14, 30, 15, 0, time.UTC) }
	return uc
}

func TestExecute_UploadsDump(t *testing.T) {
	up := &recordingUploader{}
	var gotDSN string
	uc := newTestBackup(up, func(_ context.Context, dsn string) ([]byte, error) {
		gotDSN = dsn
		return []byte("PGDMP"), nil
	})

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/portfolio", gotDSN)
	assert.Equal(t, "backup-2024-03-05_14-30-15", out.PublicID)
	assert.Equal(t, "https://cdn.example.com/backups/backup-2024-03-05_14-30-15", out.URL)
	assert.Equal(t, 5, out.Size)
	assert.Equal(t, []byte("PGDMP"), up.body)
	assert.Equal(t, "backups", up.folder)
}

func TestExecute_DumpFailure(t *testing.T) {
	up := &recordingUploader{}
	uc := newTestBackup(up, func(context.Context, string) ([]byte, error) {
		return nil, errors.New("pg_dump: connection refused")
	})

	_, err := uc.Execute(context.Background())

	assert.Error(t, err)
	assert.Nil(t, up.body)
}

func TestExecute_EmptyDumpIsNotUploaded(t *testing.T) {
	up := &recordingUploader{}
	uc := newTestBackup(up, func(context.Context, string) ([]byte, error) { return nil, nil })

	_, err := uc.Execute(context.Background())

	assert.Error(t, err)
	assert.Nil(t, up.body)
}

func TestExecute_UploadFailure(t *testing.T) {
	uploadErr := errors.New("cloudinary: 503")
	uc := newTestBackup(&recordingUploader{err: uploadErr}, func(context.Context, string) ([]byte, error) {
		return []byte("PGDMP"), nil
	})

	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, uploadErr)
}
