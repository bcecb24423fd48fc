package service

import (
	"CivicReportAPI/internal/adapter"
	"CivicReportAPI/internal/config"
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/model"
	"CivicReportAPI/internal/repository"
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type MediaService struct {
	repo           *repository.Repository
	cfg            *config.AppConfig
	validator      *validator.Validate
	storageAdapter *adapter.StorageAdapter
}

func NewMediaService(repo *repository.Repository, cfg *config.AppConfig, validator *validator.Validate, storageAdapter *adapter.StorageAdapter) *MediaService {
	return &MediaService{
		repo:           repo,
		cfg:            cfg,
		validator:      validator,
		storageAdapter: storageAdapter,
	}
}

// UploadReportImage stores one image and returns the opaque reference the
// citizen later passes in a report submission.
func (s *MediaService) UploadReportImage(ctx context.Context, uploaderID uuid.UUID, req model.UploadMediaRequest) (*model.MediaDTO, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	file, err := req.File.Open()
	if err != nil {
		slog.Error("Failed to open uploaded file", "error", err)
		return nil, helper.NewInternalServerError("")
	}
	defer file.Close()

	contentType, err := helper.DetectFileContentType(file)
	if err != nil {
		slog.Error("Failed to detect file content type", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	if !strings.HasPrefix(contentType, "image/") {
		return nil, helper.NewBadRequestError("Only image uploads are allowed")
	}

	finalFileName := helper.GenerateUniqueFileName(req.File.Filename)

	mediaRecord, err := s.repo.Media.Create(ctx, finalFileName, req.File.Filename, req.File.Size, contentType, uploaderID)
	if err != nil {
		slog.Error("Failed to create media record", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	filePath := filepath.Join(s.cfg.StorageReportImages, finalFileName)
	if err := s.storageAdapter.StoreFromReader(file, contentType, filePath); err != nil {
		slog.Error("Failed to upload file to storage", "error", err)

		if delErr := s.repo.Media.Delete(context.Background(), mediaRecord.ID); delErr != nil {
			slog.Error("Failed to delete media record after file upload failure", "error", delErr)
		}

		return nil, helper.NewInternalServerError("")
	}

	return &model.MediaDTO{
		Reference:    mediaRecord.FileName,
		OriginalName: mediaRecord.OriginalName,
		FileSize:     mediaRecord.FileSize,
		MimeType:     mediaRecord.MimeType,
		URL:          helper.BuildImageURL(s.cfg.S3PublicDomain, s.cfg.StorageReportImages, mediaRecord.FileName),
	}, nil
}
