package impl

import (
	"context"
	"strings"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	mockSvc "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAttachmentService(t *testing.T) (usecase.AttachmentUsecase, *mockSvc.MockDocumentStorage) {
	storage := mockSvc.NewMockDocumentStorage(t)
	svc := NewAttachmentUsecase(storage, 5, 1024, newDiscardLogger())

	return svc, storage
}

func TestAttachmentService_UploadDocument_Success(t *testing.T) {
	svc, storage := createTestAttachmentService(t)

	ctx := context.Background()
	body := strings.NewReader("pdf bytes")

	storage.On("Upload", ctx, mock.MatchedBy(func(key string) bool {
		// Keys carry a random prefix so identical filenames never collide.
		return strings.HasPrefix(key, "documents/") && strings.HasSuffix(key, "/license.pdf")
	}), "application/pdf", body).Return("https://cdn.example.com/license.pdf", nil)

	url, err := svc.UploadDocument(ctx, adminSession(), &usecase.UploadDocumentInput{
		FileName:      "license.pdf",
		ContentType:   "application/pdf",
		Size:          9,
		Body:          body,
		ExistingCount: 0,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/license.pdf", url)
}

func TestAttachmentService_UploadDocument_CountCapReached(t *testing.T) {
	svc, _ := createTestAttachmentService(t)

	_, err := svc.UploadDocument(context.Background(), adminSession(), &usecase.UploadDocumentInput{
		FileName:      "license.pdf",
		ContentType:   "application/pdf",
		Size:          9,
		Body:          strings.NewReader("pdf bytes"),
		ExistingCount: 5,
	})

	require.ErrorIs(t, err, domainerrors.ErrAttachmentLimit)
}

func TestAttachmentService_UploadDocument_FileTooLarge(t *testing.T) {
	svc, _ := createTestAttachmentService(t)

	_, err := svc.UploadDocument(context.Background(), adminSession(), &usecase.UploadDocumentInput{
		FileName:    "license.pdf",
		ContentType: "application/pdf",
		Size:        2048,
		Body:        strings.NewReader("pdf bytes"),
	})

	require.ErrorIs(t, err, domainerrors.ErrAttachmentLimit)
}

func TestAttachmentService_UploadDocument_RequiresSession(t *testing.T) {
	svc, _ := createTestAttachmentService(t)

	_, err := svc.UploadDocument(context.Background(), &entity.Session{}, &usecase.UploadDocumentInput{
		FileName: "license.pdf",
		Size:     9,
		Body:     strings.NewReader("pdf bytes"),
	})

	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
