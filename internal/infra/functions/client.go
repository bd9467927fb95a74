// Package functions is the console-side HTTP client for the privileged
// functions service.
package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultCallTimeout = 30 * time.Second

// client implements the EntityMutator interface over HTTP. Each call is one
// POST to /functions/v1/<name> authorized by the acting administrator's
// bearer token.
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for the functions client.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.EntityMutator, error) {
	if cfg.Functions.BaseURL == "" {
		return nil, errors.New("functions base URL must be provided")
	}

	return &client{
		baseURL: strings.TrimRight(cfg.Functions.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultCallTimeout,
		},
		logger: logger,
	}, nil
}

// errorBody is the failure envelope returned by every function.
type errorBody struct {
	Error string `json:"error"`
}

// call invokes one function. On success the response envelope is decoded into
// out when out is non-nil; on failure the error body maps to a domain error.
func (c *client) call(ctx context.Context, token, name string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s payload", name)
	}

	url := c.baseURL + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "failed to build %s request", name)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.NewRemoteProcedureError(http.StatusBadGateway,
			fmt.Sprintf("function %s is unreachable", name))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s response", name)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapFailure(name, resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return errors.Wrapf(err, "failed to decode %s response", name)
		}
	}

	return nil
}

// mapFailure converts a non-2xx function response into a domain error. The
// function's own error message travels through unchanged.
func (c *client) mapFailure(name string, statusCode int, body []byte) error {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Error == "" {
		parsed.Error = strings.TrimSpace(string(body))
	}

	c.logger.Warn("Function call failed",
		slog.String("function", name),
		slog.Int("status", statusCode),
		slog.String("error", parsed.Error),
	)

	switch statusCode {
	case http.StatusUnauthorized:
		return domainerrors.ErrUnauthenticated.WrapMessage(parsed.Error)
	case http.StatusForbidden:
		return domainerrors.ErrForbidden.WrapMessage(parsed.Error)
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.WrapMessage(parsed.Error)
	case http.StatusConflict:
		return domainerrors.ErrIdentityConflict.WrapMessage(parsed.Error)
	default:
		return domainerrors.NewRemoteProcedureError(statusCode, parsed.Error)
	}
}

// deletePayload is the wire payload of every delete function.
type deletePayload struct {
	ID uuid.UUID `json:"id"`
}

// CreateOperator invokes the create-operator function.
func (c *client) CreateOperator(ctx context.Context, token string, payload *service.CreateOperatorPayload) (*entity.Operator, error) {
	var out struct {
		Message  string           `json:"message"`
		Operator *entity.Operator `json:"operator"`
	}
	if err := c.call(ctx, token, "create-operator", payload, &out); err != nil {
		return nil, err
	}

	return out.Operator, nil
}

// UpdateOperator invokes the update-operator function.
func (c *client) UpdateOperator(ctx context.Context, token string, payload *service.UpdateOperatorPayload) (*entity.Operator, error) {
	var out struct {
		Message  string           `json:"message"`
		Operator *entity.Operator `json:"operator"`
	}
	if err := c.call(ctx, token, "update-operator", payload, &out); err != nil {
		return nil, err
	}

	return out.Operator, nil
}

// DeleteOperator invokes the delete-operator function.
func (c *client) DeleteOperator(ctx context.Context, token string, id uuid.UUID) error {
	return c.call(ctx, token, "delete-operator", &deletePayload{ID: id}, nil)
}

// CreateFieldOperator invokes the create-field-operator function.
func (c *client) CreateFieldOperator(ctx context.Context, token string, payload *service.CreateFieldOperatorPayload) (*entity.FieldOperator, error) {
	var out struct {
		Message       string                `json:"message"`
		FieldOperator *entity.FieldOperator `json:"field_operator"`
	}
	if err := c.call(ctx, token, "create-field-operator", payload, &out); err != nil {
		return nil, err
	}

	return out.FieldOperator, nil
}

// UpdateFieldOperator invokes the update-field-operator function.
func (c *client) UpdateFieldOperator(ctx context.Context, token string, payload *service.UpdateFieldOperatorPayload) (*entity.FieldOperator, error) {
	var out struct {
		Message       string                `json:"message"`
		FieldOperator *entity.FieldOperator `json:"field_operator"`
	}
	if err := c.call(ctx, token, "update-field-operator", payload, &out); err != nil {
		return nil, err
	}

	return out.FieldOperator, nil
}

// DeleteFieldOperator invokes the delete-field-operator function.
func (c *client) DeleteFieldOperator(ctx context.Context, token string, id uuid.UUID) error {
	return c.call(ctx, token, "delete-field-operator", &deletePayload{ID: id}, nil)
}

// CreateServiceProvider invokes the create-service-provider function.
func (c *client) CreateServiceProvider(ctx context.Context, token string, payload *service.CreateServiceProviderPayload) (*entity.ServiceProvider, error) {
	var out struct {
		Message  string                  `json:"message"`
		Provider *entity.ServiceProvider `json:"service_provider"`
	}
	if err := c.call(ctx, token, "create-service-provider", payload, &out); err != nil {
		return nil, err
	}

	return out.Provider, nil
}

// UpdateServiceProvider invokes the update-service-provider function.
func (c *client) UpdateServiceProvider(ctx context.Context, token string, payload *service.UpdateServiceProviderPayload) (*entity.ServiceProvider, error) {
	var out struct {
		Message  string                  `json:"message"`
		Provider *entity.ServiceProvider `json:"service_provider"`
	}
	if err := c.call(ctx, token, "update-service-provider", payload, &out); err != nil {
		return nil, err
	}

	return out.Provider, nil
}

// DeleteServiceProvider invokes the delete-service-provider function.
func (c *client) DeleteServiceProvider(ctx context.Context, token string, id uuid.UUID) error {
	return c.call(ctx, token, "delete-service-provider", &deletePayload{ID: id}, nil)
}

// CreateStore invokes the create-store function.
func (c *client) CreateStore(ctx context.Context, token string, payload *service.CreateStorePayload) (*entity.Store, error) {
	var out struct {
		Message string        `json:"message"`
		Store   *entity.Store `json:"store"`
	}
	if err := c.call(ctx, token, "create-store", payload, &out); err != nil {
		return nil, err
	}

	return out.Store, nil
}

// UpdateStore invokes the update-store function.
func (c *client) UpdateStore(ctx context.Context, token string, payload *service.UpdateStorePayload) (*entity.Store, error) {
	var out struct {
		Message string        `json:"message"`
		Store   *entity.Store `json:"store"`
	}
	if err := c.call(ctx, token, "update-store", payload, &out); err != nil {
		return nil, err
	}

	return out.Store, nil
}

// DeleteStore invokes the delete-store function.
func (c *client) DeleteStore(ctx context.Context, token string, id uuid.UUID) error {
	return c.call(ctx, token, "delete-store", &deletePayload{ID: id}, nil)
}
