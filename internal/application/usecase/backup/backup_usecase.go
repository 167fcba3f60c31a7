package backup

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/application/service"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

// Dumper returns the full database dump.
type Dumper func(ctx context.Context, dsn string) ([]byte, error)

type BackupUseCase struct {
	dsn      string
	folder   string
	uploader service.Uploader
	dump     Dumper
	logger   logger.Logger
	now      func() time.Time
}

func NewBackupUseCase(dsn, folder string, uploader service.Uploader, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		dsn:      dsn,
		folder:   folder,
		uploader: uploader,
		dump:     PgDump,
		logger:   log,
		now:      time.Now,
	}
}

func PgDump(ctx context.Context, dsn string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "pg_dump", "--dbname="+dsn, "--format=c")

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pg_dump failed: %w (stderr: %s)", err, stderr.String())
	}
	return out.Bytes(), nil
}

type BackupOutput struct {
	URL      string
	PublicID string
	Size     int
}

func (uc *BackupUseCase) Execute(ctx context.Context) (*BackupOutput, error) {
	uc.logger.Info("Starting database backup...")

	data, err := uc.dump(ctx, uc.dsn)
	if err != nil {
		uc.logger.Error("pg_dump failed", err)
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("pg_dump produced an empty dump")
	}

	timestamp := uc.now().UTC().Format("2006-01-02_15-04-05")
	publicID := fmt.Sprintf("backup-%s", timestamp)

	uploadURL, err := uc.uploader.Upload(ctx, bytes.NewReader(data), uc.folder, publicID)
	if err != nil {
		uc.logger.Error("Failed to upload backup to Cloudinary", err)
		return nil, fmt.Errorf("upload backup: %w", err)
	}

	uc.logger.Info("Database backup completed and uploaded successfully",
		zap.String("url", uploadURL),
		zap.String("public_id", publicID),
		zap.String("size", humanize.Bytes(uint64(len(data)))),
	)
	return &BackupOutput{URL: uploadURL, PublicID: publicID, Size: len(data)}, nil
}
