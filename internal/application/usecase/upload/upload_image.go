package upload

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/application/service"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

var tracer = otel.Tracer("upload_usecase")

type UploadImageUseCase struct {
	uploader service.Uploader
	bucket   string
	maxBytes int64
	logger   logger.Logger
	now      func() time.Time
}

func NewUploadImageUseCase(u service.Uploader, bucket string, maxBytes int64, log logger.Logger) *UploadImageUseCase {
	return &UploadImageUseCase{uploader: u, bucket: bucket, maxBytes: maxBytes, logger: log, now: time.Now}
}

type UploadImageInput struct {
	File     io.Reader
	Filename string
}

type UploadImageOutput struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

func (uc *UploadImageUseCase) Execute(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error) {
	ctx, span := tracer.Start(ctx, "UploadImage")
	defer span.End()

	if input.File == nil {
		return nil, apperror.NewInvalidInput("file is required", nil)
	}

	data, err := io.ReadAll(io.LimitReader(input.File, uc.maxBytes+1))
	if err != nil {
		return nil, apperror.NewInvalidInput("failed to read upload", err)
	}
	if len(data) == 0 {
		return nil, apperror.NewInvalidInput("file is empty", nil)
	}
	if int64(len(data)) > uc.maxBytes {
		return nil, apperror.NewInvalidInput(
			fmt.Sprintf("file exceeds the %s limit", humanize.Bytes(uint64(uc.maxBytes))), nil)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unsupported file type %s", mt.String()), nil)
	}

	publicID, err := uc.newPublicID()
	if err != nil {
		return nil, apperror.NewInternal("failed to generate upload key", err)
	}
	key := publicID + mt.Extension()

	url, err := uc.uploader.Upload(ctx, bytes.NewReader(data), uc.bucket, publicID)
	if err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to upload image", err, zap.String("key", key))
		return nil, apperror.NewInternal("failed to upload image", err)
	}

	uc.logger.Info("Image uploaded",
		zap.String("key", key),
		zap.String("filename", input.Filename),
		zap.String("size", humanize.Bytes(uint64(len(data)))),
	)
	return &UploadImageOutput{URL: url, Key: key}, nil
}

// newPublicID returns "<random>-<unixmillis>".
func (uc *UploadImageUseCase) newPublicID() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d", hex.EncodeToString(buf), uc.now().UnixMilli()), nil
}
