package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
)

// attachmentService implements the AttachmentUsecase interface.
type attachmentService struct {
	storage           service.DocumentStorage
	maxFilesPerEntity int
	maxFileSizeBytes  int64
	logger            *slog.Logger
}

// NewAttachmentUsecase is the constructor for attachmentService.
func NewAttachmentUsecase(
	storage service.DocumentStorage,
	maxFilesPerEntity int,
	maxFileSizeBytes int64,
	logger *slog.Logger,
) usecase.AttachmentUsecase {
	return &attachmentService{
		storage:           storage,
		maxFilesPerEntity: maxFilesPerEntity,
		maxFileSizeBytes:  maxFileSizeBytes,
		logger:            logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *attachmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// UploadDocument stores one attachment after enforcing the per-entity count
// and per-file size caps. The object key gets a random prefix so uploads of
// the same filename never collide.
func (s *attachmentService) UploadDocument(ctx context.Context, sess *entity.Session, input *usecase.UploadDocumentInput) (string, error) {
	if !sess.IsAuthenticated() {
		return "", domainerrors.ErrUnauthenticated.WrapMessage("upload requires an authenticated session")
	}

	if input.ExistingCount >= s.maxFilesPerEntity {
		return "", domainerrors.ErrAttachmentLimit.WrapMessage(
			fmt.Sprintf("at most %d documents per entity", s.maxFilesPerEntity))
	}
	if input.Size > s.maxFileSizeBytes {
		return "", domainerrors.ErrAttachmentLimit.WrapMessage(
			fmt.Sprintf("file exceeds the %d byte limit", s.maxFileSizeBytes))
	}

	key := path.Join("documents", uuid.New().String(), path.Base(input.FileName))
	url, err := s.storage.Upload(ctx, key, input.ContentType, input.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload document")
	}

	s.log(ctx).Info("Uploaded document",
		slog.String("key", key),
		slog.Int64("size", input.Size),
	)

	return url, nil
}
