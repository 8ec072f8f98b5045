package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"
	"ceslar/internal/repository"
	"ceslar/internal/storage"

	"github.com/google/uuid"
)

const uploadURLExpiry = 15 * time.Minute

// UploadService issues presigned upload URLs for church media.
type UploadService struct {
	churches repository.ChurchRepository
	store    storage.Storage
}

// NewUploadService creates a new UploadService.
func NewUploadService(churches repository.ChurchRepository, store storage.Storage) *UploadService {
	return &UploadService{
		churches: churches,
		store:    store,
	}
}

// CreateUpload returns a presigned PUT URL for a new object under the
// church's prefix. The returned key is what content documents store.
func (s *UploadService) CreateUpload(ctx context.Context, churchID string, req *models.CreateUploadRequest) (*models.UploadResponse, error) {
	switch req.Kind {
	case models.UploadLogo, models.UploadEvent, models.UploadSermon, models.UploadMinistry:
	default:
		return nil, apperrors.ErrInvalidUploadKind
	}

	oid, err := objectID(churchID, apperrors.ErrChurchNotFound)
	if err != nil {
		return nil, err
	}
	if _, err := s.churches.FindByID(ctx, oid); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s%s/%s.%s", churchPrefix(churchID), req.Kind, uuid.NewString(), strings.ToLower(req.Extension))
	url, err := s.store.GetPresignedPutURL(ctx, key, req.ContentType, uploadURLExpiry)
	if err != nil {
		return nil, err
	}

	return &models.UploadResponse{
		Key:       key,
		UploadURL: url,
		Method:    http.MethodPut,
		ExpiresAt: time.Now().Add(uploadURLExpiry),
	}, nil
}

// DeleteUpload removes an object stored under the church's prefix.
func (s *UploadService) DeleteUpload(ctx context.Context, churchID, key string) error {
	key = strings.TrimPrefix(key, "/")
	if !strings.HasPrefix(key, churchPrefix(churchID)) || strings.Contains(key, "..") {
		return apperrors.ErrChurchMismatch
	}
	return s.store.DeleteObject(ctx, key)
}

func churchPrefix(churchID string) string {
	return "churches/" + churchID + "/"
}
