package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// nameRequest is the body of taxonomy create and rename calls.
type nameRequest struct {
	Name string `json:"name" validate:"required"`
}

// createSubcategoryRequest attaches a new subcategory to its category.
type createSubcategoryRequest struct {
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
	Name       string    `json:"name" validate:"required"`
}

// createServiceTypeRequest attaches a new service type to its subcategory.
type createServiceTypeRequest struct {
	SubcategoryID uuid.UUID `json:"subcategory_id" validate:"required"`
	Name          string    `json:"name" validate:"required"`
}

// countryRequest is the body of country create and update calls.
type countryRequest struct {
	Name      string `json:"name" validate:"required"`
	Code      string `json:"code" validate:"required"`
	PhoneCode string `json:"phone_code"`
}

// TaxonomyHandler holds dependencies for taxonomy and reference data handlers.
type TaxonomyHandler struct {
	uc     usecase.TaxonomyUsecase
	logger *slog.Logger
}

// NewTaxonomyHandler is the constructor for TaxonomyHandler, injected by Fx.
func NewTaxonomyHandler(uc usecase.TaxonomyUsecase, logger *slog.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCategories returns the full category tree.
func (h *TaxonomyHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// CreateCategory adds a new top-level category.
func (h *TaxonomyHandler) CreateCategory(c echo.Context) error {
	var input *nameRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	sess := deliverycontext.GetSession(c)
	category, err := h.uc.CreateCategory(c.Request().Context(), sess, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// RenameCategory renames a category.
func (h *TaxonomyHandler) RenameCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category ID")
	}

	var input *nameRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.RenameCategory(c.Request().Context(), sess, id, input.Name); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category renamed successfully")
}

// DeleteCategory removes a category and everything beneath it.
func (h *TaxonomyHandler) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category ID")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.DeleteCategory(c.Request().Context(), sess, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}

// CreateSubcategory adds a subcategory to a category.
func (h *TaxonomyHandler) CreateSubcategory(c echo.Context) error {
	var input *createSubcategoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory input")
	}

	sess := deliverycontext.GetSession(c)
	subcategory, err := h.uc.CreateSubcategory(c.Request().Context(), sess, input.CategoryID, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subcategory, "Subcategory created successfully")
}

// RenameSubcategory renames a subcategory.
func (h *TaxonomyHandler) RenameSubcategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory ID")
	}

	var input *nameRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory input")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.RenameSubcategory(c.Request().Context(), sess, id, input.Name); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subcategory renamed successfully")
}

// DeleteSubcategory removes a subcategory and its service types.
func (h *TaxonomyHandler) DeleteSubcategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory ID")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.DeleteSubcategory(c.Request().Context(), sess, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subcategory deleted successfully")
}

// CreateServiceType adds a service type to a subcategory.
func (h *TaxonomyHandler) CreateServiceType(c echo.Context) error {
	var input *createServiceTypeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service type input")
	}

	sess := deliverycontext.GetSession(c)
	serviceType, err := h.uc.CreateServiceType(c.Request().Context(), sess, input.SubcategoryID, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, serviceType, "Service type created successfully")
}

// RenameServiceType renames a service type.
func (h *TaxonomyHandler) RenameServiceType(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service type ID")
	}

	var input *nameRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service type input")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.RenameServiceType(c.Request().Context(), sess, id, input.Name); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Service type renamed successfully")
}

// DeleteServiceType removes a service type.
func (h *TaxonomyHandler) DeleteServiceType(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service type ID")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.DeleteServiceType(c.Request().Context(), sess, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Service type deleted successfully")
}

// ListStoreCategories returns the flat store category list.
func (h *TaxonomyHandler) ListStoreCategories(c echo.Context) error {
	categories, err := h.uc.ListStoreCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// CreateStoreCategory adds a new store category.
func (h *TaxonomyHandler) CreateStoreCategory(c echo.Context) error {
	var input *nameRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store category input")
	}

	sess := deliverycontext.GetSession(c)
	category, err := h.uc.CreateStoreCategory(c.Request().Context(), sess, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Store category created successfully")
}

// RenameStoreCategory renames a store category.
func (h *TaxonomyHandler) RenameStoreCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store category ID")
	}

	var input *nameRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store category input")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.RenameStoreCategory(c.Request().Context(), sess, id, input.Name); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Store category renamed successfully")
}

// DeleteStoreCategory removes a store category.
func (h *TaxonomyHandler) DeleteStoreCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store category ID")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.DeleteStoreCategory(c.Request().Context(), sess, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Store category deleted successfully")
}

// ListWorkingAreas returns the working area reference list.
func (h *TaxonomyHandler) ListWorkingAreas(c echo.Context) error {
	areas, err := h.uc.ListWorkingAreas(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, areas, "")
}

// CreateWorkingArea adds a new working area.
func (h *TaxonomyHandler) CreateWorkingArea(c echo.Context) error {
	var input *nameRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid working area input")
	}

	sess := deliverycontext.GetSession(c)
	area, err := h.uc.CreateWorkingArea(c.Request().Context(), sess, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, area, "Working area created successfully")
}

// RenameWorkingArea renames a working area.
func (h *TaxonomyHandler) RenameWorkingArea(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid working area ID")
	}

	var input *nameRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid working area input")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.RenameWorkingArea(c.Request().Context(), sess, id, input.Name); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Working area renamed successfully")
}

// DeleteWorkingArea removes a working area.
func (h *TaxonomyHandler) DeleteWorkingArea(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid working area ID")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.DeleteWorkingArea(c.Request().Context(), sess, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Working area deleted successfully")
}

// ListCountries returns the country reference list.
func (h *TaxonomyHandler) ListCountries(c echo.Context) error {
	countries, err := h.uc.ListCountries(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, countries, "")
}

// CreateCountry adds a new country.
func (h *TaxonomyHandler) CreateCountry(c echo.Context) error {
	var input *countryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid country input")
	}

	sess := deliverycontext.GetSession(c)
	country, err := h.uc.CreateCountry(c.Request().Context(), sess, &usecase.CountryInput{
		Name:      input.Name,
		Code:      input.Code,
		PhoneCode: input.PhoneCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, country, "Country created successfully")
}

// UpdateCountry changes a country's name, code or phone code.
func (h *TaxonomyHandler) UpdateCountry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid country ID")
	}

	var input *countryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid country input")
	}

	sess := deliverycontext.GetSession(c)
	err = h.uc.UpdateCountry(c.Request().Context(), sess, id, &usecase.CountryInput{
		Name:      input.Name,
		Code:      input.Code,
		PhoneCode: input.PhoneCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Country updated successfully")
}

// DeleteCountry removes a country.
func (h *TaxonomyHandler) DeleteCountry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid country ID")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.DeleteCountry(c.Request().Context(), sess, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Country deleted successfully")
}
