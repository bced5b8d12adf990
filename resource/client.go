package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rentora/backoffice/metrics"
)

// AdminBasePath is the prefix of every back-office collection endpoint
const AdminBasePath = "/api/v1/admin"

// TenantPayload is implemented by create/update request payloads so the
// client can stamp the resolved tenant onto the body. The stamp from the
// scope always wins; callers cannot write into another tenant.
type TenantPayload interface {
	SetTenantID(id uint)
}

// ClientConfig holds the settings shared by every resource client
type ClientConfig struct {
	BaseURL      string
	Locale       string
	SessionToken string
	HTTPClient   *http.Client
	Metrics      *metrics.APIMetrics
	Logger       *zap.Logger
}

// Client is a typed gateway to one back-office resource collection. It
// translates list/get/create/update/delete operations into REST calls scoped
// by tenant (and optionally branch).
type Client[T any] struct {
	baseURL    string
	locale     string
	token      string
	httpClient *http.Client
	apiMetrics *metrics.APIMetrics
	log        *zap.Logger
	desc       Descriptor
}

// NewClient creates a resource client for one collection
func NewClient[T any](cfg ClientConfig, desc Descriptor) *Client[T] {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	locale := cfg.Locale
	if locale == "" {
		locale = "en"
	}
	return &Client[T]{
		baseURL:    cfg.BaseURL,
		locale:     locale,
		token:      cfg.SessionToken,
		httpClient: httpClient,
		apiMetrics: cfg.Metrics,
		log:        log.With(zap.String("resource", desc.Name)),
		desc:       desc,
	}
}

// Descriptor returns the collection descriptor this client serves
func (c *Client[T]) Descriptor() Descriptor {
	return c.desc
}

// List fetches one page of records for the resolved scope
func (c *Client[T]) List(ctx context.Context, query ListQuery, scope Scope) (*ListResult[T], error) {
	if err := c.requireScope(scope, "list"); err != nil {
		return nil, err
	}

	endpoint := c.collectionURL() + "?" + query.Values(c.desc, scope).Encode()
	body, err := c.do(ctx, http.MethodGet, endpoint, nil, "list")
	if err != nil {
		return nil, c.apiError(err)
	}

	var envelope struct {
		Data       []T `json:"data"`
		TotalPages int `json:"totalPages"`
		Count      int `json:"count"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}

	page := query.Page
	if page < 1 {
		page = 1
	}

	return &ListResult[T]{
		Items:      envelope.Data,
		Page:       page,
		TotalPages: envelope.TotalPages,
		TotalCount: envelope.Count,
	}, nil
}

// Get fetches a single record by id for the resolved scope
func (c *Client[T]) Get(ctx context.Context, id uint, scope Scope) (*T, error) {
	if err := c.requireScope(scope, "get"); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%d?tenant_id=%d", c.collectionURL(), id, *scope.TenantID)
	body, err := c.do(ctx, http.MethodGet, endpoint, nil, "get")
	if err != nil {
		return nil, c.apiError(err)
	}

	return decodeRecord[T](body)
}

// Create persists a new record. The payload is stamped with the scope's
// tenant before serialization. Non-2xx responses come back as *SaveError.
func (c *Client[T]) Create(ctx context.Context, payload TenantPayload, scope Scope) (*T, error) {
	if err := c.requireScope(scope, "create"); err != nil {
		return nil, err
	}
	payload.SetTenantID(*scope.TenantID)

	body, err := c.do(ctx, http.MethodPost, c.collectionURL(), payload, "create")
	if err != nil {
		return nil, c.saveError(err)
	}

	return decodeRecord[T](body)
}

// Update persists changes to an existing record. Non-2xx responses come
// back as *SaveError.
func (c *Client[T]) Update(ctx context.Context, id uint, payload TenantPayload, scope Scope) (*T, error) {
	if err := c.requireScope(scope, "update"); err != nil {
		return nil, err
	}
	payload.SetTenantID(*scope.TenantID)

	endpoint := fmt.Sprintf("%s/%d", c.collectionURL(), id)
	body, err := c.do(ctx, http.MethodPut, endpoint, payload, "update")
	if err != nil {
		return nil, c.saveError(err)
	}

	return decodeRecord[T](body)
}

// Remove deletes a single record for the resolved scope
func (c *Client[T]) Remove(ctx context.Context, id uint, scope Scope) error {
	if err := c.requireScope(scope, "remove"); err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/%d", c.collectionURL(), id)
	payload := map[string]any{"tenant_id": *scope.TenantID}
	_, err := c.do(ctx, http.MethodDelete, endpoint, payload, "remove")
	return c.apiError(err)
}

// RemoveBulk deletes a batch of records for the resolved scope. A partial
// server-side application is not distinguished from total failure; the
// subsequent list refresh reveals true state.
func (c *Client[T]) RemoveBulk(ctx context.Context, ids []uint, scope Scope) error {
	if err := c.requireScope(scope, "remove_bulk"); err != nil {
		return err
	}

	payload := map[string]any{
		"tenant_id":         *scope.TenantID,
		c.desc.BulkIDsField: ids,
	}
	_, err := c.do(ctx, http.MethodDelete, c.collectionURL(), payload, "remove_bulk")
	return c.apiError(err)
}

func (c *Client[T]) collectionURL() string {
	return c.baseURL + AdminBasePath + "/" + c.desc.Name
}

// requireScope fails fast before any network request when no tenant is
// resolved. This is the hard multi-tenancy invariant.
func (c *Client[T]) requireScope(scope Scope, operation string) error {
	if scope.Resolved() {
		return nil
	}
	c.apiMetrics.RecordScopeUnresolved(c.desc.Name, operation)
	c.log.Warn("operation suppressed, tenant scope unresolved", zap.String("operation", operation))
	return ErrScopeUnresolved
}

// statusError carries a non-2xx response before it is shaped into an
// *APIError or *SaveError by the calling operation.
type statusError struct {
	status int
	body   []byte
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.status)
}

// do issues one request and returns the response body. Non-2xx responses
// come back as *statusError for the caller to shape.
func (c *Client[T]) do(ctx context.Context, method, endpoint string, payload any, operation string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s payload: %w", c.desc.Name, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("accept-language", c.locale)
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.apiMetrics.RecordRequest(c.desc.Name, operation, 0, time.Since(start))
		c.log.Error("request failed", zap.String("operation", operation), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.apiMetrics.RecordRequest(c.desc.Name, operation, resp.StatusCode, time.Since(start))
		return nil, err
	}

	c.apiMetrics.RecordRequest(c.desc.Name, operation, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("request rejected",
			zap.String("operation", operation),
			zap.Int("status", resp.StatusCode))
		return nil, &statusError{status: resp.StatusCode, body: body}
	}

	return body, nil
}

// apiError shapes a rejection from list/get/delete into *APIError
func (c *Client[T]) apiError(err error) error {
	statusErr, ok := err.(*statusError)
	if !ok {
		return err
	}
	message, fields := parseErrorBody(statusErr.body)
	if message == "" && len(fields) > 0 {
		message = strings.Join(fields, "; ")
	}
	return &APIError{Status: statusErr.status, Message: message}
}

// saveError shapes a create/update rejection into the tagged form the form
// controller renders: either a single message or field messages.
func (c *Client[T]) saveError(err error) error {
	statusErr, ok := err.(*statusError)
	if !ok {
		return err
	}
	c.apiMetrics.RecordValidationFailure(c.desc.Name)
	message, fields := parseErrorBody(statusErr.body)
	if len(fields) > 0 {
		return &SaveError{Status: statusErr.status, Fields: fields}
	}
	return &SaveError{Status: statusErr.status, Message: message}
}

// decodeRecord accepts both the {data: record} envelope and a bare record
// body; the backend uses both shapes.
func decodeRecord[T any](body []byte) (*T, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	raw := body
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		raw = envelope.Data
	}

	var record T
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return &record, nil
}
