package usecase

import (
	"context"
	"io"

	"backoffice/internal/domain/entity"
)

// UploadDocumentInput carries one document attachment upload.
type UploadDocumentInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader

	// ExistingCount is how many documents the entity already has; the cap is
	// enforced before any byte is written.
	ExistingCount int
}

// AttachmentUsecase handles service provider document attachments.
type AttachmentUsecase interface {
	// UploadDocument stores one document and returns its public URL.
	UploadDocument(ctx context.Context, sess *entity.Session, input *UploadDocumentInput) (string, error)
}
