package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// documentFormField is the multipart form field carrying the uploaded file.
const documentFormField = "document"

// ProviderHandler holds dependencies for service provider handlers.
type ProviderHandler struct {
	uc           usecase.ProviderUsecase
	attachmentUC usecase.AttachmentUsecase
	logger       *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler, injected by Fx.
func NewProviderHandler(uc usecase.ProviderUsecase, attachmentUC usecase.AttachmentUsecase, logger *slog.Logger) *ProviderHandler {
	return &ProviderHandler{
		uc:           uc,
		attachmentUC: attachmentUC,
		logger:       logger,
	}
}

// List returns one page of service providers filtered and sorted by query parameters.
func (h *ProviderHandler) List(c echo.Context) error {
	page, err := h.uc.List(c.Request().Context(), listOptionsFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// Get returns a single service provider.
func (h *ProviderHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service provider ID")
	}

	provider, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, provider, "")
}

// FindCovering returns the active providers whose working area covers the
// given coordinates.
func (h *ProviderHandler) FindCovering(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid longitude")
	}

	providers, err := h.uc.FindCovering(c.Request().Context(), lat, lng)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, providers, "")
}

// Submit handles a service provider create or update submission.
func (h *ProviderHandler) Submit(c echo.Context) error {
	var input *usecase.ProviderSubmitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service provider submission")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	sess := deliverycontext.GetSession(c)
	provider, err := h.uc.Submit(c.Request().Context(), sess, input)
	if err != nil {
		return errors.WithStack(err)
	}

	if input.ID == nil {
		return response.Success(c, http.StatusCreated, provider, "Service provider created successfully")
	}

	return response.Success(c, http.StatusOK, provider, "Service provider updated successfully")
}

// Delete removes a service provider.
func (h *ProviderHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service provider ID")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.Delete(c.Request().Context(), sess, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Service provider deleted successfully")
}

// UploadDocument stores one document attachment and returns its public URL.
func (h *ProviderHandler) UploadDocument(c echo.Context) error {
	fileHeader, err := c.FormFile(documentFormField)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing document file")
	}

	existingCount, _ := strconv.Atoi(c.FormValue("existing_count"))

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded document")
	}
	defer file.Close()

	sess := deliverycontext.GetSession(c)
	url, err := h.attachmentUC.UploadDocument(c.Request().Context(), sess, &usecase.UploadDocumentInput{
		FileName:      fileHeader.Filename,
		ContentType:   fileHeader.Header.Get("Content-Type"),
		Size:          fileHeader.Size,
		Body:          file,
		ExistingCount: existingCount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Document uploaded successfully")
}
