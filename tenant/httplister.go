package tenant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rentora/backoffice/resource"
)

// HTTPLister fetches the selectable tenants from the back-office API. The
// tenants collection is the one endpoint a super-admin reaches without a
// resolved tenant; everything else stays blocked until selection.
type HTTPLister struct {
	baseURL    string
	locale     string
	token      string
	httpClient *http.Client
}

// NewHTTPLister creates a tenant lister against the back-office API
func NewHTTPLister(cfg resource.ClientConfig) *HTTPLister {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	locale := cfg.Locale
	if locale == "" {
		locale = "en"
	}
	return &HTTPLister{
		baseURL:    cfg.BaseURL,
		locale:     locale,
		token:      cfg.SessionToken,
		httpClient: httpClient,
	}
}

// ListTenants fetches all selectable tenants
func (l *HTTPLister) ListTenants(ctx context.Context) ([]Ref, error) {
	endpoint := l.baseURL + resource.AdminBasePath + "/tenants"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept-language", l.locale)
	req.Header.Set("X-Request-ID", uuid.New().String())
	if l.token != "" {
		req.Header.Set("Authorization", "Bearer "+l.token)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to list tenants: %d %s", resp.StatusCode, string(body))
	}

	var envelope struct {
		Data []Ref `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode tenant list: %w", err)
	}
	return envelope.Data, nil
}
